// Package project defines the Project entity: a unit of work that owns zero
// or more actions.
package project

import (
	"strings"

	"github.com/jsamuelsen11/project-actions-service/internal/domain"
)

// Project represents a unit of work. Deleting a project deletes the actions
// that belong to it.
type Project struct {
	ID          int64
	Name        string
	Description string
	Completed   bool
}

// Validate reports blank name and description as field errors. Completed
// needs no check: a decoded bool is always defined.
func (p *Project) Validate() error {
	if p == nil {
		return &domain.ValidationError{Fields: map[string]string{"project": domain.MsgRequired}}
	}

	fields := make(map[string]string)

	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.Description) == "" {
		fields["description"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
