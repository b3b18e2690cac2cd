// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/project-actions-service/internal/domain/action"
	"github.com/jsamuelsen11/project-actions-service/internal/domain/project"
	"github.com/jsamuelsen11/project-actions-service/internal/platform/logging"
	"github.com/jsamuelsen11/project-actions-service/internal/ports"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ProjectService implements ports.ProjectService on top of the ProjectStore
// port. Mutations follow a check-then-act sequence: an existence read decides
// 404, the write that follows is not atomic with it.
type ProjectService struct {
	projects ports.ProjectStore
	logger   *slog.Logger
}

// NewProjectService creates a ProjectService. If logger is nil, logs are
// discarded.
func NewProjectService(projects ports.ProjectStore, logger *slog.Logger) *ProjectService {
	logger = logging.OrDiscard(logger)
	return &ProjectService{
		projects: projects,
		logger:   logger,
	}
}

// ListProjects returns all projects.
func (s *ProjectService) ListProjects(ctx context.Context) ([]project.Project, error) {
	s.logger.InfoContext(ctx, "listing projects")

	projects, err := s.projects.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list projects",
			slog.String("operation", "ListProjects"),
			slog.Any("error", err),
		)
		return nil, storageError(err, msgProjectsListFailed)
	}

	if projects == nil {
		projects = []project.Project{}
	}
	return projects, nil
}

// GetProject returns a single project by ID.
func (s *ProjectService) GetProject(ctx context.Context, id int64) (*project.Project, error) {
	s.logger.InfoContext(ctx, "fetching project", slog.Int64("id", id))

	proj, err := s.projects.GetByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch project",
			slog.String("operation", "GetProject"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, lookupError(err, msgProjectNotFound, msgProjectGetFailed)
	}

	return proj, nil
}

// CreateProject validates and inserts a new project, then re-reads it so the
// caller sees the persisted record. A failed re-read is reported as a
// creation failure even though the row may already exist.
func (s *ProjectService) CreateProject(ctx context.Context, p *project.Project) (*project.Project, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating project", slog.String("name", p.Name))

	id, err := s.projects.Insert(ctx, p)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create project",
			slog.String("operation", "CreateProject"),
			slog.Any("error", err),
		)
		return nil, storageError(err, msgProjectCreateFailed)
	}

	created, err := s.projects.GetByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch created project",
			slog.String("operation", "CreateProject"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, storageError(err, msgProjectCreateFailed)
	}

	return created, nil
}

// UpdateProject replaces the fields of an existing project.
func (s *ProjectService) UpdateProject(ctx context.Context, id int64, p *project.Project) (*project.Project, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "updating project", slog.Int64("id", id))

	if _, err := s.projects.GetByID(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to verify project",
			slog.String("operation", "UpdateProject"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, lookupError(err, msgProjectNotFound, msgProjectUpdateFailed)
	}

	updated, err := s.projects.Update(ctx, id, p)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update project",
			slog.String("operation", "UpdateProject"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, storageError(err, msgProjectUpdateFailed)
	}

	return updated, nil
}

// DeleteProject removes a project together with its actions.
func (s *ProjectService) DeleteProject(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting project", slog.Int64("id", id))

	if _, err := s.projects.GetByID(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to verify project",
			slog.String("operation", "DeleteProject"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return lookupError(err, msgProjectNotFound, msgProjectDeleteFailed)
	}

	if err := s.projects.Remove(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete project",
			slog.String("operation", "DeleteProject"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return storageError(err, msgProjectDeleteFailed)
	}

	return nil
}

// ListProjectActions returns the actions of an existing project.
func (s *ProjectService) ListProjectActions(ctx context.Context, projectID int64) ([]action.Action, error) {
	s.logger.InfoContext(ctx, "listing project actions", slog.Int64("project_id", projectID))

	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		s.logger.ErrorContext(ctx, "failed to verify project",
			slog.String("operation", "ListProjectActions"),
			slog.Int64("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, lookupError(err, msgProjectNotFound, msgProjectActionsFailed)
	}

	actions, err := s.projects.ListActions(ctx, projectID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list project actions",
			slog.String("operation", "ListProjectActions"),
			slog.Int64("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, storageError(err, msgProjectActionsFailed)
	}

	if actions == nil {
		actions = []action.Action{}
	}
	return actions, nil
}
