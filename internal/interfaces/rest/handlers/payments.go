package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/application/services"
	"github.com/DanielPopoola/paygate/internal/domain"
	"github.com/DanielPopoola/paygate/internal/interfaces/rest"
	"github.com/goccy/go-json"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type InitiatePaymentRequest struct {
	Email       openapi_types.Email `json:"email" validate:"required,email" example:"ada@example.com"`
	Currency    string              `json:"currency" validate:"required,len=3,alpha" example:"NGN"`
	Gateway     string              `json:"gateway,omitempty" example:"paystack"`
	IsPermanent bool                `json:"is_permanent"`
}

type PaymentResponse struct {
	TransactionRef  string          `json:"transaction_ref"`
	Status          string          `json:"status"`
	Gateway         string          `json:"gateway"`
	GatewayRef      string          `json:"gateway_ref,omitempty"`
	GatewayResponse json.RawMessage `json:"gateway_response,omitempty"`
}

// HandleInitiatePayment charges the client's latest order
// @Summary      Initiate a payment
// @Description  Charges the client's most recent order through the selected gateway. The transaction is stored as pending before the gateway is called.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      InitiatePaymentRequest  true  "Payment details"
// @Success      201      {object}  rest.APIResponse        "Payment accepted by the gateway"
// @Failure      400      {object}  rest.APIResponse        "Invalid request or unknown gateway"
// @Failure      402      {object}  rest.APIResponse        "Payment rejected by the gateway"
// @Failure      404      {object}  rest.APIResponse        "Client or payable order not found"
// @Failure      502      {object}  rest.APIResponse        "Gateway unreachable, transaction left pending"
// @Router       /v1/payments [post]
func (h *Handlers) HandleInitiatePayment(w http.ResponseWriter, r *http.Request) {
	var req InitiatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(fmt.Errorf("malformed request body: %w", err)), h.logger)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	result, err := h.initiator.InitiatePayment(r.Context(), services.InitiatePaymentCommand{
		ClientEmail: string(req.Email),
		Currency:    strings.ToUpper(req.Currency),
		GatewayName: req.Gateway,
		IsPermanent: req.IsPermanent,
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	if result.Status == domain.StatusFailed {
		rest.WriteError(w, application.NewGatewayRejectedError(result.TransactionRef, result.GatewayMessage), h.logger)
		return
	}

	resp := PaymentResponse{
		TransactionRef: result.TransactionRef,
		Status:         string(result.Status),
		Gateway:        result.GatewayName,
		GatewayRef:     result.GatewayRef,
	}
	if json.Valid(result.GatewayResponse) {
		resp.GatewayResponse = result.GatewayResponse
	}

	rest.WriteJSON(w, http.StatusCreated, resp)
}
