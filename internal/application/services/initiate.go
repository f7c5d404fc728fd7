package services

import (
	"context"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/domain"
	"github.com/google/uuid"
)

// InitiatePayment charges the client's latest order through the selected gateway.
//
// The transaction row is written before the gateway is called. When the gateway cannot be
// reached the row stays pending and a GATEWAY_TRANSPORT_ERROR is returned.
func (e *PaymentEngine) InitiatePayment(ctx context.Context, cmd InitiatePaymentCommand) (*InitiatePaymentResult, error) {
	client, err := e.repo.GetClientByEmail(ctx, cmd.ClientEmail)
	if err != nil {
		return nil, wrapRepoError(err)
	}

	order, err := e.repo.GetLatestOrderAndAmountForClient(ctx, client.ID)
	if err != nil {
		return nil, wrapRepoError(err)
	}

	gateway, err := e.selector.SelectGateway(application.SelectionCriteria{
		GatewayName: cmd.GatewayName,
		Currency:    cmd.Currency,
	})
	if err != nil {
		return nil, err
	}

	txn, err := domain.NewTransaction(uuid.New().String(), client, order, cmd.Currency, gateway.Name())
	if err != nil {
		return nil, application.NewInvalidInputError(err)
	}

	if err := e.repo.CreatePaymentTransaction(ctx, txn); err != nil {
		return nil, wrapRepoError(err)
	}

	logger := e.logger.With("transaction_ref", txn.TransactionRef, "gateway", txn.GatewayName)
	logger.Info("payment transaction created",
		"client_id", client.ID,
		"order_id", order.ID,
		"amount", txn.Amount.StringFixed(domain.CurrencyExponent(txn.Currency)),
		"currency", txn.Currency,
	)

	result, err := gateway.ProcessPayment(ctx, application.PaymentRequest{
		TransactionRef: txn.TransactionRef,
		Amount:         txn.Amount,
		Currency:       txn.Currency,
		ClientEmail:    client.Email,
		ClientName:     client.FullName,
		IsPermanent:    cmd.IsPermanent,
	})
	if err != nil {
		logger.Error("gateway call failed, transaction left pending", "error", err)
		return nil, application.NewGatewayTransportError(txn.TransactionRef, err)
	}

	logger.Debug("gateway responded", "success", result.Success, "raw_response", string(result.RawResponse))

	// the gateway has answered; a cancelled request must not lose that answer
	updated, err := e.applyGatewayResponse(context.WithoutCancel(ctx), txn.TransactionRef, result)
	if err != nil {
		logger.Error("failed to record gateway response", "error", err)
		return nil, wrapRepoError(err)
	}

	if !result.Success {
		logger.Warn("gateway rejected payment", "message", result.Message)
	}

	out := &InitiatePaymentResult{
		TransactionRef:  updated.TransactionRef,
		Status:          updated.Status,
		GatewayName:     updated.GatewayName,
		GatewayMessage:  result.Message,
		GatewayResponse: result.RawResponse,
	}
	if updated.GatewayRef != nil {
		out.GatewayRef = *updated.GatewayRef
	}
	return out, nil
}

// applyGatewayResponse records the synchronous outcome under the row lock so a webhook that
// already finished the transaction is not overwritten.
func (e *PaymentEngine) applyGatewayResponse(
	ctx context.Context,
	transactionRef string,
	result *application.PaymentResult,
) (*domain.Transaction, error) {
	var updated *domain.Transaction

	err := e.repo.WithTx(ctx, func(repo application.TransactionRepository) error {
		current, err := repo.GetTransactionByReferenceForUpdate(ctx, transactionRef)
		if err != nil {
			return err
		}

		before := *current
		changed, err := current.ApplyGatewayResponse(result.Success, result.GatewayRef)
		if err != nil {
			return err
		}
		if !changed {
			updated = current
			return nil
		}

		updated, err = repo.UpdatePaymentTransaction(ctx, transactionRef, application.PatchFrom(&before, current))
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
