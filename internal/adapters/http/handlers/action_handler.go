package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/project-actions-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-actions-service/internal/ports"
)

// ActionHandler handles HTTP requests for action CRUD operations.
type ActionHandler struct {
	svc ports.ActionService
}

// NewActionHandler creates a new ActionHandler with the given service port.
func NewActionHandler(svc ports.ActionService) *ActionHandler {
	return &ActionHandler{svc: svc}
}

// ListActions handles GET /actions.
func (h *ActionHandler) ListActions(w http.ResponseWriter, r *http.Request) {
	actions, err := h.svc.ListActions(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToActionListResponse(actions))
}

// GetAction handles GET /actions/{id}.
func (h *ActionHandler) GetAction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	a, err := h.svc.GetAction(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToActionResponse(a))
}

// CreateAction handles POST /actions.
func (h *ActionHandler) CreateAction(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateActionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateAction(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToActionResponse(created))
}

// UpdateAction handles PUT /actions/{id}. Every field is replaced.
func (h *ActionHandler) UpdateAction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateActionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateAction(r.Context(), id, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToActionResponse(updated))
}

// DeleteAction handles DELETE /actions/{id}.
func (h *ActionHandler) DeleteAction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteAction(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
