// Package dto provides HTTP request/response data transfer objects and the
// error response mapping for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/project-actions-service/internal/domain/action"
	"github.com/jsamuelsen11/project-actions-service/internal/domain/project"
)

// ProjectResponse represents a single project in HTTP responses.
type ProjectResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// ToProjectResponse converts a domain Project entity to an HTTP response DTO.
func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Completed:   p.Completed,
	}
}

// ToProjectListResponse converts a slice of projects to a JSON array body.
// The result is never nil, so an empty list encodes as [].
func ToProjectListResponse(projects []project.Project) []ProjectResponse {
	items := make([]ProjectResponse, len(projects))
	for i := range projects {
		items[i] = ToProjectResponse(&projects[i])
	}
	return items
}

// ActionResponse represents a single action in HTTP responses.
type ActionResponse struct {
	ID          int64  `json:"id"`
	ProjectID   int64  `json:"project_id"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	Completed   bool   `json:"completed"`
}

// ToActionResponse converts a domain Action entity to an HTTP response DTO.
func ToActionResponse(a *action.Action) ActionResponse {
	return ActionResponse{
		ID:          a.ID,
		ProjectID:   a.ProjectID,
		Description: a.Description,
		Notes:       a.Notes,
		Completed:   a.Completed,
	}
}

// ToActionListResponse converts a slice of actions to a JSON array body.
// The result is never nil, so an empty list encodes as [].
func ToActionListResponse(actions []action.Action) []ActionResponse {
	items := make([]ActionResponse, len(actions))
	for i := range actions {
		items[i] = ToActionResponse(&actions[i])
	}
	return items
}

// HealthResponse is the body of the liveness and readiness endpoints. Checks
// maps each readiness checker to "ok" or its failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
