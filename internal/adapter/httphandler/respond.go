package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/stokpilot/stokpilot/internal/core/port"
	"github.com/stokpilot/stokpilot/internal/core/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "err", err)
	}
}

type errBody struct {
	Error string `json:"error"`
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errBody{msg})
}

// writeServiceErr maps service and repository sentinels onto HTTP
// statuses; anything unrecognized is a 500 with a generic body.
func writeServiceErr(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeErr(w, http.StatusBadRequest, "invalid input")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeErr(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrEmailTaken):
		writeErr(w, http.StatusConflict, "email already registered")
	case errors.Is(err, port.ErrNotFound):
		writeErr(w, http.StatusNotFound, "not found")
	case errors.Is(err, port.ErrConflict):
		writeErr(w, http.StatusConflict, "already exists")
	default:
		log.Error("internal error", "err", err)
		writeErr(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON data")
		return false
	}
	return true
}
