// Package domain encodes a payment transaction and the rules for moving it to a terminal state
package domain

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus represents the current state of a transaction in its lifecycle
type TransactionStatus string

const (
	StatusPending TransactionStatus = "pending"
	StatusSuccess TransactionStatus = "success"
	StatusFailed  TransactionStatus = "failed"
)

// ParseStatus maps a stored status string back to a TransactionStatus.
func ParseStatus(s string) (TransactionStatus, error) {
	switch TransactionStatus(strings.ToLower(s)) {
	case StatusPending:
		return StatusPending, nil
	case StatusSuccess:
		return StatusSuccess, nil
	case StatusFailed:
		return StatusFailed, nil
	}
	return "", NewInvalidStatusError(s)
}

func (s TransactionStatus) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

// Review reasons recorded on transactions that need an operator to look at them.
const (
	ReviewReasonConflict       = "RECONCILIATION_CONFLICT"
	ReviewReasonAmountMismatch = "AMOUNT_MISMATCH"
)

type Transaction struct {
	ID             int64
	TransactionRef string
	ClientID       int64
	OrderID        int64
	Amount         decimal.Decimal
	Currency       string
	Status         TransactionStatus
	GatewayName    string
	GatewayRef     *string

	NeedsReview  bool
	ReviewReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewTransaction(
	ref string,
	client *Client,
	order *Order,
	currency string,
	gatewayName string,
) (*Transaction, error) {
	if ref == "" {
		return nil, errors.New("transaction reference is required")
	}
	if client == nil || order == nil {
		return nil, errors.New("client and order are required")
	}
	if order.ClientID != client.ID {
		return nil, errors.New("order does not belong to client")
	}
	if gatewayName == "" {
		return nil, errors.New("gateway name is required")
	}

	money, err := NewMoney(order.TotalAmount, currency)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Transaction{
		TransactionRef: ref,
		ClientID:       client.ID,
		OrderID:        order.ID,
		Amount:         money.Amount,
		Currency:       money.Currency,
		Status:         StatusPending,
		GatewayName:    gatewayName,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func (t *Transaction) IsTerminal() bool {
	return t.Status.IsTerminal()
}

func (t *Transaction) MarkFailed() error {
	return t.transition(StatusFailed)
}

func (t *Transaction) transition(target TransactionStatus) error {
	if err := t.canTransitionTo(target); err != nil {
		return err
	}
	t.Status = target
	return nil
}

// only pending rows move, and only to a terminal status
func (t *Transaction) canTransitionTo(target TransactionStatus) error {
	switch t.Status {
	case StatusPending:
		return t.allow(target, StatusSuccess, StatusFailed)
	}
	return NewInvalidTransitionError(t.Status, target)
}

func (t *Transaction) allow(target TransactionStatus, allowed ...TransactionStatus) error {
	if slices.Contains(allowed, target) {
		return nil
	}
	return NewInvalidTransitionError(t.Status, target)
}

// flag marks the transaction for operator review. The first reason wins.
func (t *Transaction) flag(reason string) {
	t.NeedsReview = true
	if t.ReviewReason == nil {
		t.ReviewReason = &reason
	}
}

// attachGatewayRef sets the provider reference when one is reported and differs from the stored one.
func (t *Transaction) attachGatewayRef(ref string) bool {
	if ref == "" {
		return false
	}
	if t.GatewayRef != nil && *t.GatewayRef == ref {
		return false
	}
	t.GatewayRef = &ref
	return true
}

// ApplyGatewayResponse records the synchronous answer to process_payment.
// An accepted request stays pending until a webhook confirms it. A row that a
// faster webhook already moved to a terminal status keeps that status.
func (t *Transaction) ApplyGatewayResponse(accepted bool, gatewayRef string) (bool, error) {
	changed := false
	if t.GatewayRef == nil {
		changed = t.attachGatewayRef(gatewayRef)
	}

	if accepted || t.IsTerminal() {
		return changed, nil
	}

	if err := t.MarkFailed(); err != nil {
		return changed, err
	}
	return true, nil
}

// Reconstitute - Special constructor for loading from DB
func Reconstitute(
	id int64, ref string, clientID, orderID int64,
	amount decimal.Decimal, currency string,
	status TransactionStatus,
	gatewayName string, gatewayRef *string,
	needsReview bool, reviewReason *string,
	createdAt, updatedAt time.Time,
) *Transaction {
	return &Transaction{
		ID:             id,
		TransactionRef: ref,
		ClientID:       clientID,
		OrderID:        orderID,
		Amount:         amount,
		Currency:       currency,
		Status:         status,
		GatewayName:    gatewayName,
		GatewayRef:     gatewayRef,
		NeedsReview:    needsReview,
		ReviewReason:   reviewReason,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
