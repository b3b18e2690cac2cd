package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-actions-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-actions-service/internal/domain"
)

// pathID parses the {id} route parameter. A non-integer id is answered with
// 400 before any service call and ok is false.
func pathID(w http.ResponseWriter, r *http.Request) (id int64, ok bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Message: "The id path parameter must be an integer",
			Fields:  map[string]string{"id": "must be a valid integer"},
		})
		return 0, false
	}
	return id, true
}

// writeJSON writes v as the JSON body. Encoding failures happen after the
// status is sent, so they can only be logged.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

const maxJSONBodyBytes = 1 << 20

// decodeJSONBody reads at most maxJSONBodyBytes of JSON into dst. An empty
// body leaves dst zero-valued so validation names every missing field.
// Malformed JSON is answered with 400 and false is returned.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	dto.WriteErrorResponse(w, r, &domain.ValidationError{
		Message: "The request body must be valid JSON",
		Fields:  map[string]string{"body": "invalid JSON"},
	})
	return false
}

type validatable interface {
	Validate() error
}

// decodeAndValidate is decodeJSONBody followed by dst.Validate; either
// failure is written as the response.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
