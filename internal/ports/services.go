package ports

import (
	"context"

	"github.com/jsamuelsen11/project-actions-service/internal/domain/action"
	"github.com/jsamuelsen11/project-actions-service/internal/domain/project"
)

// ProjectService defines the service port for project operations.
// Implemented by the application layer; called by inbound adapters (handlers).
//
// Every returned error is one of *domain.ValidationError,
// *domain.NotFoundError or *domain.StorageError.
type ProjectService interface {
	// ListProjects returns all projects ordered by ID. Never returns a nil
	// slice on success.
	ListProjects(ctx context.Context) ([]project.Project, error)

	// GetProject returns a single project by ID.
	GetProject(ctx context.Context, id int64) (*project.Project, error)

	// CreateProject validates and stores a new project, then returns the
	// record as persisted.
	CreateProject(ctx context.Context, p *project.Project) (*project.Project, error)

	// UpdateProject replaces name, description and completed on an existing
	// project and returns the updated record.
	UpdateProject(ctx context.Context, id int64, p *project.Project) (*project.Project, error)

	// DeleteProject removes a project and the actions that belong to it.
	DeleteProject(ctx context.Context, id int64) error

	// ListProjectActions returns the actions belonging to a project ordered
	// by ID. Never returns a nil slice on success.
	ListProjectActions(ctx context.Context, projectID int64) ([]action.Action, error)
}

// ActionService defines the service port for action operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type ActionService interface {
	// ListActions returns all actions ordered by ID. Never returns a nil
	// slice on success.
	ListActions(ctx context.Context) ([]action.Action, error)

	// GetAction returns a single action by ID.
	GetAction(ctx context.Context, id int64) (*action.Action, error)

	// CreateAction validates the action, verifies the referenced project
	// exists, stores it and returns the record as persisted.
	CreateAction(ctx context.Context, a *action.Action) (*action.Action, error)

	// UpdateAction replaces every field of an existing action and returns
	// the updated record.
	UpdateAction(ctx context.Context, id int64, a *action.Action) (*action.Action, error)

	// DeleteAction removes a single action.
	DeleteAction(ctx context.Context, id int64) error
}
