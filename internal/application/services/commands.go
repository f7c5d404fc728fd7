package services

import (
	"github.com/DanielPopoola/paygate/internal/domain"
)

type InitiatePaymentCommand struct {
	ClientEmail string
	Currency    string
	GatewayName string
	IsPermanent bool
}

type InitiatePaymentResult struct {
	TransactionRef  string
	Status          domain.TransactionStatus
	GatewayName     string
	GatewayRef      string
	GatewayMessage  string
	GatewayResponse []byte
}

// ReconciliationOutcome reports what a webhook or verification did to a transaction.
// Updated is false when there was nothing to apply.
type ReconciliationOutcome struct {
	TransactionRef string
	PreviousStatus domain.TransactionStatus
	Status         domain.TransactionStatus
	Updated        bool
	Duplicate      bool
	Conflict       bool
	AmountMismatch bool
	NeedsReview    bool
}
