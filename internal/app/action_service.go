package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/project-actions-service/internal/domain/action"
	"github.com/jsamuelsen11/project-actions-service/internal/platform/logging"
	"github.com/jsamuelsen11/project-actions-service/internal/ports"
)

// Compile-time check that ActionService implements ports.ActionService.
var _ ports.ActionService = (*ActionService)(nil)

// ActionService implements ports.ActionService. The ProjectStore is used to
// verify that a new action references an existing project.
type ActionService struct {
	actions  ports.ActionStore
	projects ports.ProjectStore
	logger   *slog.Logger
}

// NewActionService creates an ActionService. If logger is nil, logs are
// discarded.
func NewActionService(actions ports.ActionStore, projects ports.ProjectStore, logger *slog.Logger) *ActionService {
	logger = logging.OrDiscard(logger)
	return &ActionService{
		actions:  actions,
		projects: projects,
		logger:   logger,
	}
}

// ListActions returns all actions.
func (s *ActionService) ListActions(ctx context.Context) ([]action.Action, error) {
	s.logger.InfoContext(ctx, "listing actions")

	actions, err := s.actions.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list actions",
			slog.String("operation", "ListActions"),
			slog.Any("error", err),
		)
		return nil, storageError(err, msgActionsListFailed)
	}

	if actions == nil {
		actions = []action.Action{}
	}
	return actions, nil
}

// GetAction returns a single action by ID.
func (s *ActionService) GetAction(ctx context.Context, id int64) (*action.Action, error) {
	s.logger.InfoContext(ctx, "fetching action", slog.Int64("id", id))

	a, err := s.actions.GetByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch action",
			slog.String("operation", "GetAction"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, lookupError(err, msgActionNotFound, msgActionGetFailed)
	}

	return a, nil
}

// CreateAction validates the action, checks that its project exists, inserts
// it and re-reads the stored record. Completed is always stored as false.
func (s *ActionService) CreateAction(ctx context.Context, a *action.Action) (*action.Action, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating action", slog.Int64("project_id", a.ProjectID))

	if _, err := s.projects.GetByID(ctx, a.ProjectID); err != nil {
		s.logger.ErrorContext(ctx, "failed to verify project",
			slog.String("operation", "CreateAction"),
			slog.Int64("project_id", a.ProjectID),
			slog.Any("error", err),
		)
		return nil, lookupError(err, msgActionProjectAbsent, msgActionCreateFailed)
	}

	id, err := s.actions.Insert(ctx, a)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create action",
			slog.String("operation", "CreateAction"),
			slog.Int64("project_id", a.ProjectID),
			slog.Any("error", err),
		)
		return nil, storageError(err, msgActionCreateFailed)
	}

	created, err := s.actions.GetByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch created action",
			slog.String("operation", "CreateAction"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, storageError(err, msgActionCreateFailed)
	}

	return created, nil
}

// UpdateAction replaces every field of an existing action. The referenced
// project is not checked here; the foreign key rejects an unknown one.
func (s *ActionService) UpdateAction(ctx context.Context, id int64, a *action.Action) (*action.Action, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "updating action",
		slog.Int64("id", id),
		slog.Int64("project_id", a.ProjectID),
	)

	if _, err := s.actions.GetByID(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to verify action",
			slog.String("operation", "UpdateAction"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, lookupError(err, msgActionNotFound, msgActionUpdateFailed)
	}

	updated, err := s.actions.Update(ctx, id, a)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update action",
			slog.String("operation", "UpdateAction"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, storageError(err, msgActionUpdateFailed)
	}

	return updated, nil
}

// DeleteAction removes a single action.
func (s *ActionService) DeleteAction(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting action", slog.Int64("id", id))

	if _, err := s.actions.GetByID(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to verify action",
			slog.String("operation", "DeleteAction"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return lookupError(err, msgActionNotFound, msgActionDeleteFailed)
	}

	if err := s.actions.Remove(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete action",
			slog.String("operation", "DeleteAction"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return storageError(err, msgActionDeleteFailed)
	}

	return nil
}
