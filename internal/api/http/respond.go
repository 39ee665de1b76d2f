package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"rewear-backend/internal/domain"
	"rewear-backend/internal/logger"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response body", "error", err)
		}
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// writeDomainError maps service errors onto HTTP statuses. Persistence and
// unknown errors get a generic body so internals never leak to clients.
func writeDomainError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSONError(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSONError(w, http.StatusForbidden, "not allowed")
	case errors.Is(err, domain.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyHandled):
		writeJSONError(w, http.StatusConflict, "already handled")
	default:
		logger.Error("Request failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
	}
}
