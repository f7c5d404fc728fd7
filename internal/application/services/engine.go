package services

import (
	"errors"
	"log/slog"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/domain"
)

// PaymentEngine creates transactions, hands them to a gateway and reconciles their outcome.
type PaymentEngine struct {
	repo     application.TransactionRepository
	selector application.GatewaySelector
	guard    application.DeliveryGuard
	logger   *slog.Logger
}

// NewPaymentEngine wires the engine. guard may be nil.
func NewPaymentEngine(
	repo application.TransactionRepository,
	selector application.GatewaySelector,
	guard application.DeliveryGuard,
	logger *slog.Logger,
) *PaymentEngine {
	return &PaymentEngine{
		repo:     repo,
		selector: selector,
		guard:    guard,
		logger:   logger,
	}
}

// passes domain and service errors through, hides everything else behind an internal error
func wrapRepoError(err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	if _, ok := application.IsServiceError(err); ok {
		return err
	}
	return application.NewInternalError(err)
}
