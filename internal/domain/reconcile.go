package domain

import (
	"github.com/shopspring/decimal"
)

// GatewayEvent is a provider notification after the adapter normalized it.
// Amount is in major units; a zero Amount means the provider did not report one.
type GatewayEvent struct {
	TransactionRef string
	GatewayRef     string
	Status         TransactionStatus
	Amount         decimal.Decimal
	Currency       string
}

// ReconcileResult describes what applying a GatewayEvent did to a transaction.
type ReconcileResult struct {
	PreviousStatus TransactionStatus
	Changed        bool
	Duplicate      bool
	Conflict       bool
	AmountMismatch bool
}

// Reconcile applies a normalized provider event to the transaction.
//
// A terminal transaction that receives the same status again is a duplicate delivery and is left
// untouched. A different terminal status is a conflict: the latest event wins and the transaction
// is flagged for review. A pending event never moves a terminal transaction.
func (t *Transaction) Reconcile(event GatewayEvent) (ReconcileResult, error) {
	if event.TransactionRef == "" {
		return ReconcileResult{}, NewMissingReferenceError()
	}
	if event.TransactionRef != t.TransactionRef {
		return ReconcileResult{}, NewReferenceMismatchError(t.TransactionRef, event.TransactionRef)
	}

	result := ReconcileResult{PreviousStatus: t.Status}

	if t.IsTerminal() {
		if event.Status == t.Status {
			result.Duplicate = true
			return result, nil
		}
		if !event.Status.IsTerminal() {
			return result, nil
		}

		result.Conflict = true
		result.Changed = true
		t.Status = event.Status
		t.flag(ReviewReasonConflict)
		t.attachGatewayRef(event.GatewayRef)
		result.AmountMismatch = t.applyReportedAmount(event.Amount)
		return result, nil
	}

	if event.Status.IsTerminal() {
		if err := t.transition(event.Status); err != nil {
			return result, err
		}
		result.Changed = true
	}

	if t.attachGatewayRef(event.GatewayRef) {
		result.Changed = true
	}

	if t.applyReportedAmount(event.Amount) {
		result.AmountMismatch = true
		result.Changed = true
	}

	return result, nil
}

// applyReportedAmount overwrites the stored amount with the provider's figure and flags the
// transaction when they differ.
func (t *Transaction) applyReportedAmount(amount decimal.Decimal) bool {
	if amount.IsZero() || amount.Equal(t.Amount) {
		return false
	}
	t.Amount = amount
	t.flag(ReviewReasonAmountMismatch)
	return true
}
