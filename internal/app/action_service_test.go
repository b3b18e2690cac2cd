package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/project-actions-service/internal/domain"
	"github.com/jsamuelsen11/project-actions-service/internal/domain/action"
	"github.com/jsamuelsen11/project-actions-service/mocks"
)

func validAction() action.Action {
	return action.Action{
		ID:          1,
		ProjectID:   1,
		Description: "Write tests",
		Notes:       "Cover the happy path first",
		Completed:   false,
	}
}

func newActionService(t *testing.T) (*ActionService, *mocks.MockActionStore, *mocks.MockProjectStore) {
	t.Helper()
	actions := mocks.NewMockActionStore(t)
	projects := mocks.NewMockProjectStore(t)
	return NewActionService(actions, projects, discardLogger()), actions, projects
}

func TestNewActionService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewActionService(mocks.NewMockActionStore(t), mocks.NewMockProjectStore(t), nil)
	if svc.logger == nil {
		t.Fatal("NewActionService(nil logger) should create a no-op logger, got nil")
	}
}

// --- ListActions ---

func TestActionService_ListActions(t *testing.T) {
	t.Parallel()

	t.Run("returns actions on success", func(t *testing.T) {
		t.Parallel()
		svc, actions, _ := newActionService(t)

		want := []action.Action{validAction()}
		actions.EXPECT().List(mock.Anything).Return(want, nil)

		got, err := svc.ListActions(context.Background())
		if err != nil {
			t.Fatalf("ListActions() error = %v, want nil", err)
		}
		if len(got) != 1 || got[0] != want[0] {
			t.Errorf("ListActions() = %+v, want %+v", got, want)
		}
	})

	t.Run("returns empty slice when store returns nil", func(t *testing.T) {
		t.Parallel()
		svc, actions, _ := newActionService(t)

		actions.EXPECT().List(mock.Anything).Return(nil, nil)

		got, err := svc.ListActions(context.Background())
		if err != nil {
			t.Fatalf("ListActions() error = %v, want nil", err)
		}
		if got == nil {
			t.Error("ListActions() = nil, want empty slice")
		}
	})

	t.Run("returns storage error when store fails", func(t *testing.T) {
		t.Parallel()
		svc, actions, _ := newActionService(t)

		actions.EXPECT().List(mock.Anything).Return(nil, errDB)

		_, err := svc.ListActions(context.Background())
		requireStorage(t, err, errDB, "Failed to retrieve actions")
	})
}

// --- GetAction ---

func TestActionService_GetAction(t *testing.T) {
	t.Parallel()

	t.Run("returns action", func(t *testing.T) {
		t.Parallel()
		svc, actions, _ := newActionService(t)

		a := validAction()
		actions.EXPECT().GetByID(mock.Anything, int64(1)).Return(&a, nil)

		got, err := svc.GetAction(context.Background(), 1)
		if err != nil {
			t.Fatalf("GetAction() error = %v, want nil", err)
		}
		if *got != a {
			t.Errorf("GetAction() = %+v, want %+v", *got, a)
		}
	})

	t.Run("returns not found", func(t *testing.T) {
		t.Parallel()
		svc, actions, _ := newActionService(t)

		actions.EXPECT().GetByID(mock.Anything, int64(8)).Return(nil, domain.ErrNotFound)

		_, err := svc.GetAction(context.Background(), 8)
		requireNotFound(t, err, "Action not found")
	})

	t.Run("returns storage error when store fails", func(t *testing.T) {
		t.Parallel()
		svc, actions, _ := newActionService(t)

		actions.EXPECT().GetByID(mock.Anything, int64(1)).Return(nil, errDB)

		_, err := svc.GetAction(context.Background(), 1)
		requireStorage(t, err, errDB, "Failed to retrieve the action")
	})
}

// --- CreateAction ---

func TestActionService_CreateAction(t *testing.T) {
	t.Parallel()

	t.Run("verifies project then inserts and re-reads", func(t *testing.T) {
		t.Parallel()
		svc, actions, projects := newActionService(t)

		p := validProject()
		input := &action.Action{ProjectID: 1, Description: "x", Notes: "y"}
		stored := action.Action{ID: 11, ProjectID: 1, Description: "x", Notes: "y"}

		projects.EXPECT().GetByID(mock.Anything, int64(1)).Return(&p, nil)
		actions.EXPECT().Insert(mock.Anything, input).Return(int64(11), nil)
		actions.EXPECT().GetByID(mock.Anything, int64(11)).Return(&stored, nil)

		got, err := svc.CreateAction(context.Background(), input)
		if err != nil {
			t.Fatalf("CreateAction() error = %v, want nil", err)
		}
		if *got != stored {
			t.Errorf("CreateAction() = %+v, want %+v", *got, stored)
		}
	})

	t.Run("returns project not found without inserting", func(t *testing.T) {
		t.Parallel()
		svc, _, projects := newActionService(t)

		projects.EXPECT().GetByID(mock.Anything, int64(999)).Return(nil, domain.ErrNotFound)

		_, err := svc.CreateAction(context.Background(), &action.Action{ProjectID: 999, Description: "x", Notes: "y"})
		requireNotFound(t, err, "Project not found")
	})

	t.Run("rejects invalid action without touching stores", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newActionService(t)

		_, err := svc.CreateAction(context.Background(), &action.Action{ProjectID: 1, Description: "x"})

		var vErr *domain.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("CreateAction() error = %v, want *domain.ValidationError", err)
		}
		if _, ok := vErr.Fields["notes"]; !ok {
			t.Errorf("ValidationError.Fields = %v, want notes", vErr.Fields)
		}
	})

	t.Run("returns storage error when project check fails", func(t *testing.T) {
		t.Parallel()
		svc, _, projects := newActionService(t)

		projects.EXPECT().GetByID(mock.Anything, int64(1)).Return(nil, errDB)

		a := validAction()
		_, err := svc.CreateAction(context.Background(), &a)
		requireStorage(t, err, errDB, "Failed to create new action")
	})

	t.Run("returns storage error when insert fails", func(t *testing.T) {
		t.Parallel()
		svc, actions, projects := newActionService(t)

		p := validProject()
		a := validAction()
		projects.EXPECT().GetByID(mock.Anything, int64(1)).Return(&p, nil)
		actions.EXPECT().Insert(mock.Anything, &a).Return(int64(0), errDB)

		_, err := svc.CreateAction(context.Background(), &a)
		requireStorage(t, err, errDB, "Failed to create new action")
	})

	t.Run("reports re-read failure as creation failure", func(t *testing.T) {
		t.Parallel()
		svc, actions, projects := newActionService(t)

		p := validProject()
		a := validAction()
		projects.EXPECT().GetByID(mock.Anything, int64(1)).Return(&p, nil)
		actions.EXPECT().Insert(mock.Anything, &a).Return(int64(2), nil)
		actions.EXPECT().GetByID(mock.Anything, int64(2)).Return(nil, domain.ErrNotFound)

		_, err := svc.CreateAction(context.Background(), &a)
		requireStorage(t, err, domain.ErrNotFound, "Failed to create new action")
	})
}

// --- UpdateAction ---

func TestActionService_UpdateAction(t *testing.T) {
	t.Parallel()

	t.Run("replaces every field", func(t *testing.T) {
		t.Parallel()
		svc, actions, _ := newActionService(t)

		existing := validAction()
		input := &action.Action{ProjectID: 2, Description: "x2", Notes: "y2", Completed: true}
		updated := action.Action{ID: 1, ProjectID: 2, Description: "x2", Notes: "y2", Completed: true}

		actions.EXPECT().GetByID(mock.Anything, int64(1)).Return(&existing, nil)
		actions.EXPECT().Update(mock.Anything, int64(1), input).Return(&updated, nil)

		got, err := svc.UpdateAction(context.Background(), 1, input)
		if err != nil {
			t.Fatalf("UpdateAction() error = %v, want nil", err)
		}
		if *got != updated {
			t.Errorf("UpdateAction() = %+v, want %+v", *got, updated)
		}
	})

	t.Run("returns not found for unknown action", func(t *testing.T) {
		t.Parallel()
		svc, actions, _ := newActionService(t)

		a := validAction()
		actions.EXPECT().GetByID(mock.Anything, int64(50)).Return(nil, domain.ErrNotFound)

		_, err := svc.UpdateAction(context.Background(), 50, &a)
		requireNotFound(t, err, "Action not found")
	})

	t.Run("rejects non-positive project id", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newActionService(t)

		_, err := svc.UpdateAction(context.Background(), 1, &action.Action{ProjectID: 0, Description: "x", Notes: "y"})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("UpdateAction() error = %v, want ErrValidation", err)
		}
	})

	t.Run("surfaces unknown project as storage failure", func(t *testing.T) {
		t.Parallel()
		svc, actions, _ := newActionService(t)

		existing := validAction()
		input := &action.Action{ProjectID: 999, Description: "x", Notes: "y"}
		fkErr := errors.New("FOREIGN KEY constraint failed")

		actions.EXPECT().GetByID(mock.Anything, int64(1)).Return(&existing, nil)
		actions.EXPECT().Update(mock.Anything, int64(1), input).Return(nil, fkErr)

		_, err := svc.UpdateAction(context.Background(), 1, input)
		requireStorage(t, err, fkErr, "Failed to update action")
	})

	t.Run("classifies late not-found as storage failure", func(t *testing.T) {
		t.Parallel()
		svc, actions, _ := newActionService(t)

		a := validAction()
		actions.EXPECT().GetByID(mock.Anything, int64(1)).Return(&a, nil)
		actions.EXPECT().Update(mock.Anything, int64(1), &a).Return(nil, domain.ErrNotFound)

		_, err := svc.UpdateAction(context.Background(), 1, &a)
		requireStorage(t, err, domain.ErrNotFound, "Failed to update action")
	})
}

// --- DeleteAction ---

func TestActionService_DeleteAction(t *testing.T) {
	t.Parallel()

	t.Run("removes an existing action", func(t *testing.T) {
		t.Parallel()
		svc, actions, _ := newActionService(t)

		a := validAction()
		actions.EXPECT().GetByID(mock.Anything, int64(1)).Return(&a, nil)
		actions.EXPECT().Remove(mock.Anything, int64(1)).Return(nil)

		if err := svc.DeleteAction(context.Background(), 1); err != nil {
			t.Errorf("DeleteAction() error = %v, want nil", err)
		}
	})

	t.Run("returns not found without removing", func(t *testing.T) {
		t.Parallel()
		svc, actions, _ := newActionService(t)

		actions.EXPECT().GetByID(mock.Anything, int64(3)).Return(nil, domain.ErrNotFound)

		err := svc.DeleteAction(context.Background(), 3)
		requireNotFound(t, err, "Action not found")
	})

	t.Run("returns storage error when remove fails", func(t *testing.T) {
		t.Parallel()
		svc, actions, _ := newActionService(t)

		a := validAction()
		actions.EXPECT().GetByID(mock.Anything, int64(1)).Return(&a, nil)
		actions.EXPECT().Remove(mock.Anything, int64(1)).Return(errDB)

		err := svc.DeleteAction(context.Background(), 1)
		requireStorage(t, err, errDB, "Failed to delete action")
	})
}
