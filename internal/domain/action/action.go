// Package action defines the Action entity: a task that belongs to exactly
// one project.
package action

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/project-actions-service/internal/domain"
)

// Action represents a single task within a project. Completed is not
// accepted on creation and is stored as false until an update sets it.
type Action struct {
	ID          int64
	ProjectID   int64
	Description string
	Notes       string
	Completed   bool
}

// Validate checks business rules for the Action entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (a *Action) Validate() error {
	if a == nil {
		return &domain.ValidationError{Fields: map[string]string{"action": domain.MsgRequired}}
	}

	fields := make(map[string]string)

	if a.ProjectID <= 0 {
		fields["project_id"] = fmt.Sprintf("must be positive, got %d", a.ProjectID)
	}
	if strings.TrimSpace(a.Description) == "" {
		fields["description"] = domain.MsgRequired
	}
	if strings.TrimSpace(a.Notes) == "" {
		fields["notes"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
