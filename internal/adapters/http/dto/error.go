package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/project-actions-service/internal/domain"
)

// msgInternal is returned for failures outside the domain taxonomy.
const msgInternal = "An unexpected error occurred"

// ErrorResponse is the JSON body of every non-2xx API response.
//
// 400 and 404 responses carry only Message (400 may add Errors). 500
// responses also carry Err, the underlying failure.
type ErrorResponse struct {
	Message string        `json:"message"`
	Err     string        `json:"err,omitempty"`
	Errors  []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewErrorResponse maps err to an HTTP status and response body.
//
// StorageError is checked first: a storage failure may wrap ErrNotFound
// (a row that vanished mid-operation) and must still be reported as 500.
func NewErrorResponse(err error) (int, ErrorResponse) {
	var (
		serr *domain.StorageError
		nerr *domain.NotFoundError
		verr *domain.ValidationError
	)

	switch {
	case errors.As(err, &serr):
		cause := serr.Cause()
		if cause == "" {
			cause = serr.Message
		}
		return http.StatusInternalServerError, ErrorResponse{Message: serr.Message, Err: cause}
	case errors.As(err, &nerr):
		return http.StatusNotFound, ErrorResponse{Message: nerr.Error()}
	case errors.As(err, &verr):
		return http.StatusBadRequest, ErrorResponse{
			Message: verr.Error(),
			Errors:  validationFieldsToDetails(verr.Fields),
		}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Message: err.Error()}
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, ErrorResponse{Message: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Message: msgInternal, Err: err.Error()}
	}
}

// WriteErrorResponse writes the JSON error response for err. It is the only
// place where errors are translated into status codes.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := NewErrorResponse(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// validationFieldsToDetails converts domain validation fields to ErrorDetail
// entries sorted by field name.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	if len(fields) == 0 {
		return nil
	}
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{
			Field:   field,
			Message: msg,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Field < details[j].Field
	})
	return details
}
