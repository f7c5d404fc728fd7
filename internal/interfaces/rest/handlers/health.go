package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/interfaces/rest"
)

// HandleHealth reports whether the database answers
// @Summary      Liveness and database check
// @Description  Pings the database
// @Tags         health
// @Produce      json
// @Success      200  {object}  rest.APIResponse  "Service is healthy"
// @Failure      503  {object}  rest.APIResponse  "Database unreachable"
// @Router       /healthz [get]
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		rest.WriteError(w, &application.ServiceError{
			Code:       "UNAVAILABLE",
			Message:    "Database is unreachable",
			HTTPStatus: http.StatusServiceUnavailable,
			Err:        err,
		}, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
