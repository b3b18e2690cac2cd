package ports

import (
	"context"

	"github.com/jsamuelsen11/project-actions-service/internal/domain/action"
	"github.com/jsamuelsen11/project-actions-service/internal/domain/project"
)

// ProjectStore defines the data-access port for projects.
// Implemented by the storage adapter; called by the application layer.
type ProjectStore interface {
	// List returns every project ordered by ID.
	List(ctx context.Context) ([]project.Project, error)

	// GetByID returns a single project.
	// Returns domain.ErrNotFound if the project does not exist.
	GetByID(ctx context.Context, id int64) (*project.Project, error)

	// Insert stores a new project and returns its generated ID.
	Insert(ctx context.Context, p *project.Project) (int64, error)

	// Update replaces name, description and completed and returns the
	// stored record. Returns domain.ErrNotFound if no row was affected.
	Update(ctx context.Context, id int64, p *project.Project) (*project.Project, error)

	// Remove deletes a project; its actions are deleted with it.
	// Returns domain.ErrNotFound if no row was affected.
	Remove(ctx context.Context, id int64) error

	// ListActions returns the actions belonging to a project ordered by ID.
	ListActions(ctx context.Context, projectID int64) ([]action.Action, error)
}

// ActionStore defines the data-access port for actions.
// Implemented by the storage adapter; called by the application layer.
type ActionStore interface {
	// List returns every action ordered by ID.
	List(ctx context.Context) ([]action.Action, error)

	// GetByID returns a single action.
	// Returns domain.ErrNotFound if the action does not exist.
	GetByID(ctx context.Context, id int64) (*action.Action, error)

	// Insert stores a new action and returns its generated ID.
	Insert(ctx context.Context, a *action.Action) (int64, error)

	// Update replaces every field and returns the stored record.
	// Returns domain.ErrNotFound if no row was affected.
	Update(ctx context.Context, id int64, a *action.Action) (*action.Action, error)

	// Remove deletes a single action.
	// Returns domain.ErrNotFound if no row was affected.
	Remove(ctx context.Context, id int64) error
}
