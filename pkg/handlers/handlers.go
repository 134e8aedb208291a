// Package handlers provides HTTP response utilities for JSON APIs.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/mirofish/pkg/middleware"
)

// ErrorResponse is the JSON body written by RespondError.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// RespondJSON writes a JSON response with the given status code and data.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs the error with request context and writes a JSON error
// response. Server errors log at error level, client errors at warn.
func RespondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, err error) {
	id := middleware.RequestIDFrom(r.Context())

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.Log(r.Context(), level, "handler error",
		"error", err,
		"status", status,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", id,
	)

	RespondJSON(w, status, ErrorResponse{Error: err.Error(), RequestID: id})
}
