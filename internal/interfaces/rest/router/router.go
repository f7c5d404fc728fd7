// Package router assembles the HTTP handler chain.
package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/paygate/internal/api"
	"github.com/DanielPopoola/paygate/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/paygate/internal/interfaces/rest/middleware"
)

// New registers the API and docs routes and wraps them, outermost first, in request id,
// logging, recovery and timeout middleware.
func New(h *handlers.Handlers, requestTimeout time.Duration, logger *slog.Logger) (http.Handler, error) {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	if err := api.RegisterDocsRoutes(mux); err != nil {
		return nil, err
	}

	handler := http.Handler(mux)
	if requestTimeout > 0 {
		handler = middleware.Timeout(requestTimeout)(handler)
	}
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)

	return handler, nil
}
