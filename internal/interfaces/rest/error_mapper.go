package rest

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/goccy/go-json"
)

// APIResponse is the envelope for every JSON response.
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteJSON wraps data in a success envelope.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	write(w, status, APIResponse{Success: true, Data: data})
}

// WriteError maps application errors to HTTP responses. Server-side failures are logged with
// their cause; the caller only sees the safe message.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	status := application.ToHTTPStatus(err)

	apiErr := &APIError{
		Code:    application.ToErrorCode(err),
		Message: application.ToErrorMessage(err),
	}
	if svcErr, ok := application.IsServiceError(err); ok && len(svcErr.Details) > 0 {
		apiErr.Details = svcErr.Details
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "code", apiErr.Code, "error", err)
	}

	write(w, status, APIResponse{Success: false, Error: apiErr})
}

func write(w http.ResponseWriter, status int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
