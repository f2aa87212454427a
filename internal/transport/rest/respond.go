package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alarino/alarino-backend/internal/domain"
)

// envelope is the uniform response shape for every API endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{
		Success: true,
		Status:  status,
		Message: message,
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{
		Success: false,
		Status:  status,
		Message: message,
	})
}

// writeDomainError maps domain errors onto HTTP statuses. Unrecognized
// errors become opaque 500s; their details stay in the logs.
func writeDomainError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeError(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, domain.ErrUnsupportedLanguage):
		writeError(w, http.StatusBadRequest, "unsupported language")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "word not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrSelectionExhausted):
		writeError(w, http.StatusInternalServerError, "no daily word could be selected")
	case errors.Is(err, domain.ErrBatchCommitFailed):
		writeError(w, http.StatusInternalServerError, "batch commit failed, no rows were stored")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
