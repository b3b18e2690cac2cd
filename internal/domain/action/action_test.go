package action

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/project-actions-service/internal/domain"
)

func validAction() Action {
	return Action{
		ID:          1,
		ProjectID:   1,
		Description: "Write the proposal",
		Notes:       "Two pages max",
	}
}

func TestAction_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Action)
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid action passes",
			modify:  func(_ *Action) {},
			wantErr: false,
		},
		{
			name:    "completed action passes",
			modify:  func(a *Action) { a.Completed = true },
			wantErr: false,
		},
		{
			name:      "zero project id fails",
			modify:    func(a *Action) { a.ProjectID = 0 },
			wantErr:   true,
			wantField: "project_id",
		},
		{
			name:      "negative project id fails",
			modify:    func(a *Action) { a.ProjectID = -4 },
			wantErr:   true,
			wantField: "project_id",
		},
		{
			name:      "empty description fails",
			modify:    func(a *Action) { a.Description = "" },
			wantErr:   true,
			wantField: "description",
		},
		{
			name:      "whitespace-only notes fails",
			modify:    func(a *Action) { a.Notes = "  " },
			wantErr:   true,
			wantField: "notes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := validAction()
			tt.modify(&a)
			err := a.Validate()

			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("errors.Is(err, ErrValidation) = false, got %v", err)
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("ValidationError.Fields missing key %q, got %v", tt.wantField, verr.Fields)
			}
		})
	}
}

func TestAction_Validate_Nil(t *testing.T) {
	t.Parallel()

	var a *Action
	if err := a.Validate(); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Validate() on nil = %v, want ErrValidation", err)
	}
}
