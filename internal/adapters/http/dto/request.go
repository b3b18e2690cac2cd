package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/project-actions-service/internal/domain"
	"github.com/jsamuelsen11/project-actions-service/internal/domain/action"
	"github.com/jsamuelsen11/project-actions-service/internal/domain/project"
)

const (
	msgProjectFieldsRequired      = "Please provide name, description, and completed status for the project"
	msgActionCreateFieldsRequired = "Missing required fields: project_id, description, and notes"
	msgActionUpdateFieldsRequired = "Missing required fields: project_id, description, notes, and completed status"
)

// ProjectRequest is the JSON body for creating or replacing a project.
// Completed is a pointer so that an explicit false can be told apart from
// an absent field.
type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Completed   *bool  `json:"completed"`
}

// Validate checks that name, description and completed are all present.
// Returns a *domain.ValidationError if any checks fail.
func (r *ProjectRequest) Validate() error {
	fields := make(map[string]string)

	requireText(fields, "name", r.Name)
	requireText(fields, "description", r.Description)
	if r.Completed == nil {
		fields["completed"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Message: msgProjectFieldsRequired, Fields: fields}
	}
	return nil
}

// ToDomain converts a validated request to a domain Project.
func (r *ProjectRequest) ToDomain() *project.Project {
	p := &project.Project{
		Name:        r.Name,
		Description: r.Description,
	}
	if r.Completed != nil {
		p.Completed = *r.Completed
	}
	return p
}

// CreateActionRequest is the JSON body for creating an action. A new action
// always starts incomplete, so completed is not accepted.
type CreateActionRequest struct {
	ProjectID   *int64 `json:"project_id"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
}

// Validate checks that project_id, description and notes are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateActionRequest) Validate() error {
	fields := make(map[string]string)

	requireProjectID(fields, r.ProjectID)
	requireText(fields, "description", r.Description)
	requireText(fields, "notes", r.Notes)

	if len(fields) > 0 {
		return &domain.ValidationError{Message: msgActionCreateFieldsRequired, Fields: fields}
	}
	return nil
}

// ToDomain converts a validated request to a domain Action.
func (r *CreateActionRequest) ToDomain() *action.Action {
	a := &action.Action{
		Description: r.Description,
		Notes:       r.Notes,
	}
	if r.ProjectID != nil {
		a.ProjectID = *r.ProjectID
	}
	return a
}

// UpdateActionRequest is the JSON body for replacing an action.
type UpdateActionRequest struct {
	ProjectID   *int64 `json:"project_id"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	Completed   *bool  `json:"completed"`
}

// Validate checks that every field is present.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateActionRequest) Validate() error {
	fields := make(map[string]string)

	requireProjectID(fields, r.ProjectID)
	requireText(fields, "description", r.Description)
	requireText(fields, "notes", r.Notes)
	if r.Completed == nil {
		fields["completed"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Message: msgActionUpdateFieldsRequired, Fields: fields}
	}
	return nil
}

// ToDomain converts a validated request to a domain Action.
func (r *UpdateActionRequest) ToDomain() *action.Action {
	a := &action.Action{
		Description: r.Description,
		Notes:       r.Notes,
	}
	if r.ProjectID != nil {
		a.ProjectID = *r.ProjectID
	}
	if r.Completed != nil {
		a.Completed = *r.Completed
	}
	return a
}

func requireText(fields map[string]string, name, value string) {
	if strings.TrimSpace(value) == "" {
		fields[name] = domain.MsgRequired
	}
}

func requireProjectID(fields map[string]string, id *int64) {
	switch {
	case id == nil:
		fields["project_id"] = domain.MsgRequired
	case *id <= 0:
		fields["project_id"] = fmt.Sprintf("must be positive, got %d", *id)
	}
}
