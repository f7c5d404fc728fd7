package handlers

import (
	"net/http"
	"time"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/domain"
	"github.com/DanielPopoola/paygate/internal/interfaces/rest"
)

type TransactionResponse struct {
	TransactionRef string    `json:"transaction_ref"`
	ClientID       int64     `json:"client_id"`
	OrderID        int64     `json:"order_id"`
	Amount         string    `json:"amount"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	Gateway        string    `json:"gateway"`
	GatewayRef     string    `json:"gateway_ref,omitempty"`
	NeedsReview    bool      `json:"needs_review"`
	ReviewReason   string    `json:"review_reason,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toTransactionResponse(t *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionRef: t.TransactionRef,
		ClientID:       t.ClientID,
		OrderID:        t.OrderID,
		Amount:         t.Amount.StringFixed(domain.CurrencyExponent(t.Currency)),
		Currency:       t.Currency,
		Status:         string(t.Status),
		Gateway:        t.GatewayName,
		NeedsReview:    t.NeedsReview,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
	if t.GatewayRef != nil {
		resp.GatewayRef = *t.GatewayRef
	}
	if t.ReviewReason != nil {
		resp.ReviewReason = *t.ReviewReason
	}
	return resp
}

// HandleGetTransaction returns one transaction
// @Summary      Get a transaction
// @Tags         transactions
// @Produce      json
// @Param        transactionRef  path      string            true  "Transaction reference"
// @Success      200             {object}  rest.APIResponse  "Transaction found"
// @Failure      404             {object}  rest.APIResponse  "Transaction not found"
// @Router       /v1/transactions/{transactionRef} [get]
func (h *Handlers) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	ref, err := pathParam(r, "transactionRef")
	if err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	txn, err := h.query.GetTransaction(r.Context(), ref)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, toTransactionResponse(txn))
}

// HandleVerifyTransaction asks the gateway for the current status
// @Summary      Verify a transaction with its gateway
// @Description  Asks the owning gateway for the current status and reconciles it like a webhook.
// @Tags         transactions
// @Produce      json
// @Param        transactionRef  path      string            true  "Transaction reference"
// @Success      200             {object}  rest.APIResponse  "Reconciliation outcome"
// @Failure      404             {object}  rest.APIResponse  "Transaction not found"
// @Failure      502             {object}  rest.APIResponse  "Gateway verification failed"
// @Router       /v1/transactions/{transactionRef}/verify [post]
func (h *Handlers) HandleVerifyTransaction(w http.ResponseWriter, r *http.Request) {
	ref, err := pathParam(r, "transactionRef")
	if err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	outcome, err := h.reconciler.VerifyTransaction(r.Context(), ref)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, toReconciliationResponse(outcome))
}
