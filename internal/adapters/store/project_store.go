package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/project-actions-service/internal/domain"
	"github.com/jsamuelsen11/project-actions-service/internal/domain/action"
	"github.com/jsamuelsen11/project-actions-service/internal/domain/project"
	"github.com/jsamuelsen11/project-actions-service/internal/ports"
)

// Compile-time check that ProjectStore implements ports.ProjectStore.
var _ ports.ProjectStore = (*ProjectStore)(nil)

const projectColumns = `id, name, description, completed`

// ProjectStore implements ports.ProjectStore on the projects table.
type ProjectStore struct {
	s *Store
}

// NewProjectStore creates a ProjectStore backed by s.
func NewProjectStore(s *Store) *ProjectStore {
	return &ProjectStore{s: s}
}

// List returns every project ordered by ID.
func (ps *ProjectStore) List(ctx context.Context) ([]project.Project, error) {
	projects := []project.Project{}

	err := ps.s.run(ctx, "projects.list", func(ctx context.Context) error {
		rows, err := ps.s.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id`)
		if err != nil {
			return fmt.Errorf("querying projects: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			p, err := scanProject(rows)
			if err != nil {
				return err
			}
			projects = append(projects, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// GetByID returns a single project or domain.ErrNotFound.
func (ps *ProjectStore) GetByID(ctx context.Context, id int64) (*project.Project, error) {
	var p project.Project

	err := ps.s.run(ctx, "projects.get", func(ctx context.Context) error {
		row := ps.s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
		var err error
		p, err = scanProject(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Insert stores a new project and returns its generated ID.
func (ps *ProjectStore) Insert(ctx context.Context, p *project.Project) (int64, error) {
	var id int64

	err := ps.s.run(ctx, "projects.insert", func(ctx context.Context) error {
		res, err := ps.s.db.ExecContext(ctx,
			`INSERT INTO projects (name, description, completed) VALUES (?, ?, ?)`,
			p.Name, p.Description, p.Completed)
		if err != nil {
			return fmt.Errorf("inserting project: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading project id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update replaces name, description and completed, then returns the stored
// record. Returns domain.ErrNotFound if the project no longer exists.
func (ps *ProjectStore) Update(ctx context.Context, id int64, p *project.Project) (*project.Project, error) {
	err := ps.s.run(ctx, "projects.update", func(ctx context.Context) error {
		res, err := ps.s.db.ExecContext(ctx,
			`UPDATE projects SET name = ?, description = ?, completed = ? WHERE id = ?`,
			p.Name, p.Description, p.Completed, id)
		if err != nil {
			return fmt.Errorf("updating project %d: %w", id, err)
		}
		return requireAffected(res)
	})
	if err != nil {
		return nil, err
	}
	return ps.GetByID(ctx, id)
}

// Remove deletes a project and, through the foreign key cascade, its
// actions. Returns domain.ErrNotFound if no row was deleted.
func (ps *ProjectStore) Remove(ctx context.Context, id int64) error {
	return ps.s.run(ctx, "projects.remove", func(ctx context.Context) error {
		res, err := ps.s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("deleting project %d: %w", id, err)
		}
		return requireAffected(res)
	})
}

// ListActions returns the actions belonging to a project ordered by ID.
// An unknown project yields an empty slice.
func (ps *ProjectStore) ListActions(ctx context.Context, projectID int64) ([]action.Action, error) {
	actions := []action.Action{}

	err := ps.s.run(ctx, "projects.list_actions", func(ctx context.Context) error {
		rows, err := ps.s.db.QueryContext(ctx,
			`SELECT `+actionColumns+` FROM actions WHERE project_id = ? ORDER BY id`, projectID)
		if err != nil {
			return fmt.Errorf("querying actions of project %d: %w", projectID, err)
		}
		defer rows.Close()

		for rows.Next() {
			a, err := scanAction(rows)
			if err != nil {
				return err
			}
			actions = append(actions, a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return actions, nil
}

func scanProject(row rowScanner) (project.Project, error) {
	var p project.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Completed)
	if errors.Is(err, sql.ErrNoRows) {
		return p, domain.ErrNotFound
	}
	if err != nil {
		return p, fmt.Errorf("scanning project: %w", err)
	}
	return p, nil
}

// requireAffected maps a zero-row UPDATE or DELETE to domain.ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
