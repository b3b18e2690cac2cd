// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-actions-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-actions-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-actions-service/internal/domain"
)

const msgRouteNotFound = "The requested resource does not exist"

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	projectHandler *handlers.ProjectHandler,
	actionHandler *handlers.ActionHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteErrorResponse(w, r, &domain.NotFoundError{Message: msgRouteNotFound})
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Project CRUD.
	r.Get("/projects", projectHandler.ListProjects)
	r.Post("/projects", projectHandler.CreateProject)
	r.Get("/projects/{id}", projectHandler.GetProject)
	r.Put("/projects/{id}", projectHandler.UpdateProject)
	r.Delete("/projects/{id}", projectHandler.DeleteProject)
	r.Get("/projects/{id}/actions", projectHandler.ListProjectActions)

	// Action CRUD.
	r.Get("/actions", actionHandler.ListActions)
	r.Post("/actions", actionHandler.CreateAction)
	r.Get("/actions/{id}", actionHandler.GetAction)
	r.Put("/actions/{id}", actionHandler.UpdateAction)
	r.Delete("/actions/{id}", actionHandler.DeleteAction)

	return r
}
