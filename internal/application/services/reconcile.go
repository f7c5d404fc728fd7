package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/domain"
)

// ReconcileWebhook applies a provider webhook to the transaction it references.
// Webhooks may arrive more than once and before InitiatePayment returns.
func (e *PaymentEngine) ReconcileWebhook(ctx context.Context, gatewayName string, payload []byte) (*ReconciliationOutcome, error) {
	gateway, err := e.selector.Get(gatewayName)
	if err != nil {
		return nil, err
	}

	event, err := gateway.HandleWebhook(payload)
	if err != nil {
		e.logger.Warn("webhook payload rejected", "gateway", gateway.Name(), "error", err)
		e.logger.Debug("rejected webhook payload", "gateway", gateway.Name(), "payload", string(payload))
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, domain.NewInvalidWebhookPayloadError(gateway.Name(), err)
	}

	if event.TransactionRef == "" {
		e.logger.Warn("webhook without transaction reference", "gateway", gateway.Name(), "gateway_ref", event.GatewayRef)
		return nil, domain.NewMissingReferenceError()
	}

	key := deliveryKey(gateway.Name(), event)
	if outcome := e.knownDelivery(ctx, key, gateway.Name(), event); outcome != nil {
		return outcome, nil
	}

	outcome, err := e.reconcile(ctx, gateway.Name(), event)
	if err != nil {
		return nil, err
	}

	if e.guard != nil {
		if err := e.guard.Remember(ctx, key); err != nil {
			e.logger.Warn("failed to remember webhook delivery", "transaction_ref", event.TransactionRef, "error", err)
		}
	}

	return outcome, nil
}

// VerifyTransaction asks the owning gateway for the current status and applies it like a webhook.
func (e *PaymentEngine) VerifyTransaction(ctx context.Context, transactionRef string) (*ReconciliationOutcome, error) {
	if transactionRef == "" {
		return nil, domain.NewMissingReferenceError()
	}

	txn, err := e.repo.GetTransactionByReference(ctx, transactionRef)
	if err != nil {
		return nil, wrapRepoError(err)
	}

	gateway, err := e.selector.Get(txn.GatewayName)
	if err != nil {
		return nil, err
	}

	res, err := gateway.VerifyPayment(ctx, transactionRef)
	if err != nil {
		e.logger.Warn("payment verification failed",
			"transaction_ref", transactionRef,
			"gateway", txn.GatewayName,
			"error", err,
		)
		return nil, application.NewVerificationFailedError(transactionRef, err)
	}

	e.logger.Debug("verification response", "transaction_ref", transactionRef, "raw_response", string(res.RawResponse))

	event := res.Event
	if event.TransactionRef == "" {
		event.TransactionRef = transactionRef
	}

	return e.reconcile(ctx, txn.GatewayName, &event)
}

func (e *PaymentEngine) reconcile(ctx context.Context, gatewayName string, event *domain.GatewayEvent) (*ReconciliationOutcome, error) {
	logger := e.logger.With("transaction_ref", event.TransactionRef, "gateway", gatewayName)

	var (
		outcome *ReconciliationOutcome
		stored  *domain.Transaction
	)

	err := e.repo.WithTx(ctx, func(repo application.TransactionRepository) error {
		current, err := repo.GetTransactionByReferenceForUpdate(ctx, event.TransactionRef)
		if err != nil {
			return err
		}
		if current.GatewayName != gatewayName {
			return domain.NewGatewayMismatchError(current.TransactionRef, current.GatewayName, gatewayName)
		}

		before := *current
		result, err := current.Reconcile(*event)
		if err != nil {
			return err
		}

		stored = &before
		outcome = &ReconciliationOutcome{
			TransactionRef: current.TransactionRef,
			PreviousStatus: result.PreviousStatus,
			Status:         current.Status,
			Updated:        result.Changed,
			Duplicate:      result.Duplicate,
			Conflict:       result.Conflict,
			AmountMismatch: result.AmountMismatch,
			NeedsReview:    current.NeedsReview,
		}

		if !result.Changed {
			return nil
		}

		_, err = repo.UpdatePaymentTransaction(ctx, current.TransactionRef, application.PatchFrom(&before, current))
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTransactionNotFound):
			logger.Warn("event references unknown transaction", "gateway_ref", event.GatewayRef, "status", event.Status)
		case errors.Is(err, domain.ErrGatewayMismatch):
			logger.Warn("event rejected, transaction belongs to another gateway", "error", err)
		default:
			logger.Error("reconciliation failed", "error", err)
		}
		return nil, wrapRepoError(err)
	}

	e.logOutcome(logger, stored, event, outcome)
	return outcome, nil
}

func (e *PaymentEngine) logOutcome(
	logger *slog.Logger,
	stored *domain.Transaction,
	event *domain.GatewayEvent,
	outcome *ReconciliationOutcome,
) {
	if outcome.Conflict {
		logger.Warn("conflicting terminal status, transaction flagged for review",
			"error", application.NewReconciliationConflictError(outcome.TransactionRef, outcome.PreviousStatus, event.Status),
			"previous_status", outcome.PreviousStatus,
			"status", outcome.Status,
		)
	}

	if outcome.AmountMismatch {
		logger.Warn("gateway reported a different amount, transaction flagged for review",
			"stored_amount", stored.Amount.String(),
			"reported_amount", event.Amount.String(),
			"currency", event.Currency,
		)
	}

	switch {
	case outcome.Duplicate:
		logger.Info("duplicate event ignored", "status", outcome.Status)
	case outcome.Updated:
		logger.Info("transaction reconciled", "previous_status", outcome.PreviousStatus, "status", outcome.Status)
	default:
		logger.Info("event carried nothing to apply", "status", outcome.Status, "event_status", event.Status)
	}
}

// knownDelivery answers a redelivered event from the stored row. It only short-circuits when the
// row is terminal with the event's status, so the database stays the source of truth.
func (e *PaymentEngine) knownDelivery(ctx context.Context, key, gatewayName string, event *domain.GatewayEvent) *ReconciliationOutcome {
	if !e.alreadyDelivered(ctx, key) {
		return nil
	}

	txn, err := e.repo.GetTransactionByReference(ctx, event.TransactionRef)
	if err != nil || txn.GatewayName != gatewayName || !txn.IsTerminal() || txn.Status != event.Status {
		return nil
	}

	e.logger.Info("duplicate webhook delivery skipped",
		"transaction_ref", event.TransactionRef,
		"gateway", gatewayName,
		"status", txn.Status,
	)
	return &ReconciliationOutcome{
		TransactionRef: txn.TransactionRef,
		PreviousStatus: txn.Status,
		Status:         txn.Status,
		Duplicate:      true,
		NeedsReview:    txn.NeedsReview,
	}
}

func (e *PaymentEngine) alreadyDelivered(ctx context.Context, key string) bool {
	if e.guard == nil {
		return false
	}
	seen, err := e.guard.Seen(ctx, key)
	if err != nil {
		e.logger.Warn("delivery guard unavailable, falling back to database checks", "error", err)
		return false
	}
	return seen
}
