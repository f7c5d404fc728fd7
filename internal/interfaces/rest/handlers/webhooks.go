package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/application/services"
	"github.com/DanielPopoola/paygate/internal/interfaces/rest"
)

type ReconciliationResponse struct {
	TransactionRef string `json:"transaction_ref"`
	PreviousStatus string `json:"previous_status"`
	Status         string `json:"status"`
	Updated        bool   `json:"updated"`
	Duplicate      bool   `json:"duplicate"`
	Conflict       bool   `json:"conflict"`
	AmountMismatch bool   `json:"amount_mismatch"`
	Flagged        bool   `json:"flagged"`
}

func toReconciliationResponse(o *services.ReconciliationOutcome) ReconciliationResponse {
	return ReconciliationResponse{
		TransactionRef: o.TransactionRef,
		PreviousStatus: string(o.PreviousStatus),
		Status:         string(o.Status),
		Updated:        o.Updated,
		Duplicate:      o.Duplicate,
		Conflict:       o.Conflict,
		AmountMismatch: o.AmountMismatch,
		Flagged:        o.NeedsReview,
	}
}

// HandleWebhook reconciles a provider notification
// @Summary      Receive a gateway webhook
// @Description  Accepts a raw provider notification and reconciles the referenced transaction. Deliveries may repeat.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        gateway  path      string            true  "Gateway name (flutterwave, paystack)"
// @Param        payload  body      object            true  "Raw provider payload"
// @Success      200      {object}  rest.APIResponse  "Reconciliation outcome"
// @Failure      400      {object}  rest.APIResponse  "Unknown gateway, unparseable payload or missing reference"
// @Failure      404      {object}  rest.APIResponse  "Transaction not found"
// @Failure      409      {object}  rest.APIResponse  "Transaction belongs to another gateway"
// @Router       /v1/webhooks/{gateway} [post]
func (h *Handlers) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	gateway, err := pathParam(r, "gateway")
	if err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			rest.WriteError(w, application.NewInvalidInputError(fmt.Errorf("payload exceeds %d bytes", tooLarge.Limit)), h.logger)
			return
		}
		rest.WriteError(w, application.NewInvalidInputError(fmt.Errorf("failed to read payload: %w", err)), h.logger)
		return
	}

	outcome, err := h.reconciler.ReconcileWebhook(r.Context(), gateway, payload)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, toReconciliationResponse(outcome))
}
