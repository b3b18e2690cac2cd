package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/project-actions-service/internal/domain"
	"github.com/jsamuelsen11/project-actions-service/internal/domain/action"
	"github.com/jsamuelsen11/project-actions-service/internal/ports"
)

// Compile-time check that ActionStore implements ports.ActionStore.
var _ ports.ActionStore = (*ActionStore)(nil)

const actionColumns = `id, project_id, description, notes, completed`

// ActionStore implements ports.ActionStore on the actions table.
type ActionStore struct {
	s *Store
}

// NewActionStore creates an ActionStore backed by s.
func NewActionStore(s *Store) *ActionStore {
	return &ActionStore{s: s}
}

// List returns every action ordered by ID.
func (as *ActionStore) List(ctx context.Context) ([]action.Action, error) {
	actions := []action.Action{}

	err := as.s.run(ctx, "actions.list", func(ctx context.Context) error {
		rows, err := as.s.db.QueryContext(ctx, `SELECT `+actionColumns+` FROM actions ORDER BY id`)
		if err != nil {
			return fmt.Errorf("querying actions: %w", err)
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

// GetByID returns a single action or domain.ErrNotFound.
func (as *ActionStore) GetByID(ctx context.Context, id int64) (*action.Action, error) {
	var a action.Action

	err := as.s.run(ctx, "actions.get", func(ctx context.Context) error {
		row := as.s.db.QueryRowContext(ctx, `SELECT `+actionColumns+` FROM actions WHERE id = ?`, id)
		var err error
		a, err = scanAction(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Insert stores a new, not yet completed action and returns its generated
// ID. A project_id with no matching project fails the foreign key.
func (as *ActionStore) Insert(ctx context.Context, a *action.Action) (int64, error) {
	var id int64

	err := as.s.run(ctx, "actions.insert", func(ctx context.Context) error {
		res, err := as.s.db.ExecContext(ctx,
			`INSERT INTO actions (project_id, description, notes) VALUES (?, ?, ?)`,
			a.ProjectID, a.Description, a.Notes)
		if err != nil {
			return fmt.Errorf("inserting action: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading action id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update replaces every field, then returns the stored record.
// Returns domain.ErrNotFound if the action no longer exists.
func (as *ActionStore) Update(ctx context.Context, id int64, a *action.Action) (*action.Action, error) {
	err := as.s.run(ctx, "actions.update", func(ctx context.Context) error {
		res, err := as.s.db.ExecContext(ctx,
			`UPDATE actions SET project_id = ?, description = ?, notes = ?, completed = ? WHERE id = ?`,
			a.ProjectID, a.Description, a.Notes, a.Completed, id)
		if err != nil {
			return fmt.Errorf("updating action %d: %w", id, err)
		}
		return requireAffected(res)
	})
	if err != nil {
		return nil, err
	}
	return as.GetByID(ctx, id)
}

// Remove deletes a single action. Returns domain.ErrNotFound if no row was
// deleted.
func (as *ActionStore) Remove(ctx context.Context, id int64) error {
	return as.s.run(ctx, "actions.remove", func(ctx context.Context) error {
		res, err := as.s.db.ExecContext(ctx, `DELETE FROM actions WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("deleting action %d: %w", id, err)
		}
		return requireAffected(res)
	})
}

func scanAction(row rowScanner) (action.Action, error) {
	var a action.Action
	err := row.Scan(&a.ID, &a.ProjectID, &a.Description, &a.Notes, &a.Completed)
	if errors.Is(err, sql.ErrNoRows) {
		return a, domain.ErrNotFound
	}
	if err != nil {
		return a, fmt.Errorf("scanning action: %w", err)
	}
	return a, nil
}
