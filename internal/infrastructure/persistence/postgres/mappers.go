package postgres

import (
	"fmt"
	"strings"

	"github.com/DanielPopoola/paygate/internal/domain"
	"github.com/shopspring/decimal"
)

// toDomainTransaction: maps db model to domain entity
func toDomainTransaction(m TransactionModel) (*domain.Transaction, error) {
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q for %s: %w", m.Amount, m.TransactionRef, err)
	}

	status, err := domain.ParseStatus(m.Status)
	if err != nil {
		return nil, err
	}

	return domain.Reconstitute(
		m.ID,
		m.TransactionRef,
		m.ClientID,
		m.OrderID,
		amount,
		strings.TrimSpace(m.Currency),
		status,
		m.GatewayName,
		m.GatewayRef,
		m.NeedsReview,
		m.ReviewReason,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func toDomainClient(m ClientModel) *domain.Client {
	return &domain.Client{
		ID:       m.ID,
		Email:    m.Email,
		FullName: m.FullName,
	}
}

// toDomainOrder returns nil when the order has no total to charge.
func toDomainOrder(m OrderModel) (*domain.Order, error) {
	if m.TotalAmount == nil {
		return nil, nil
	}
	total, err := decimal.NewFromString(*m.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid total for order %d: %w", m.ID, err)
	}
	return &domain.Order{
		ID:          m.ID,
		ClientID:    m.ClientID,
		TotalAmount: total,
	}, nil
}
