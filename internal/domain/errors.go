package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

var (
	ErrClientNotFound         = errors.New("client not found")
	ErrNoOrderFound           = errors.New("no order found")
	ErrMissingReference       = errors.New("missing transaction reference")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrGatewayTransport       = errors.New("gateway transport failure")
	ErrGatewayRejected        = errors.New("gateway rejected payment")
	ErrReconciliationConflict = errors.New("reconciliation conflict")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrUnknownGateway         = errors.New("unknown gateway")
	ErrInvalidWebhookPayload  = errors.New("invalid webhook payload")
	ErrDuplicateGatewayRef    = errors.New("duplicate gateway reference")
	ErrReferenceMismatch      = errors.New("transaction reference mismatch")
	ErrGatewayMismatch        = errors.New("event from a different gateway")
)

const (
	ErrCodeClientNotFound         = "CLIENT_NOT_FOUND"
	ErrCodeNoOrderFound           = "NO_ORDER_FOUND"
	ErrCodeMissingReference       = "MISSING_REFERENCE"
	ErrCodeTransactionNotFound    = "TRANSACTION_NOT_FOUND"
	ErrCodeGatewayTransport       = "GATEWAY_TRANSPORT_ERROR"
	ErrCodeGatewayRejected        = "GATEWAY_REJECTED"
	ErrCodeReconciliationConflict = "RECONCILIATION_CONFLICT"
	ErrCodeInvalidTransition      = "INVALID_TRANSITION"
	ErrCodeInvalidStatus          = "INVALID_STATUS"
	ErrCodeUnknownGateway         = "UNKNOWN_GATEWAY"
	ErrCodeInvalidWebhookPayload  = "INVALID_WEBHOOK_PAYLOAD"
	ErrCodeDuplicateGatewayRef    = "DUPLICATE_GATEWAY_REF"
	ErrCodeReferenceMismatch      = "REFERENCE_MISMATCH"
	ErrCodeGatewayMismatch        = "GATEWAY_MISMATCH"
)

func NewClientNotFoundError(email string) *DomainError {
	return &DomainError{
		Code:    ErrCodeClientNotFound,
		Message: fmt.Sprintf("client with email %s not found", email),
		Err:     ErrClientNotFound,
	}
}

func NewNoOrderFoundError(clientID int64) *DomainError {
	return &DomainError{
		Code:    ErrCodeNoOrderFound,
		Message: fmt.Sprintf("client %d has no payable order", clientID),
		Err:     ErrNoOrderFound,
	}
}

func NewMissingReferenceError() *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingReference,
		Message: "event carries no transaction reference",
		Err:     ErrMissingReference,
	}
}

func NewTransactionNotFoundError(ref string) *DomainError {
	return &DomainError{
		Code:    ErrCodeTransactionNotFound,
		Message: fmt.Sprintf("transaction %s not found", ref),
		Err:     ErrTransactionNotFound,
	}
}

func NewInvalidTransitionError(from, to TransactionStatus) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidTransition,
		Message: fmt.Sprintf("cannot transition from %s to %s", from, to),
		Err:     ErrInvalidTransition,
	}
}

func NewInvalidStatusError(status string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidStatus,
		Message: fmt.Sprintf("unknown transaction status %q", status),
		Err:     ErrInvalidStatus,
	}
}

func NewUnknownGatewayError(name string) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnknownGateway,
		Message: fmt.Sprintf("gateway %q is not configured", name),
		Err:     ErrUnknownGateway,
	}
}

func NewInvalidWebhookPayloadError(gateway string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidWebhookPayload,
		Message: fmt.Sprintf("%s webhook payload could not be parsed", gateway),
		Err:     errors.Join(ErrInvalidWebhookPayload, err),
	}
}

func NewDuplicateGatewayRefError(ref string) *DomainError {
	return &DomainError{
		Code:    ErrCodeDuplicateGatewayRef,
		Message: fmt.Sprintf("gateway reference %s already belongs to another transaction", ref),
		Err:     ErrDuplicateGatewayRef,
	}
}

func NewReferenceMismatchError(expected, actual string) *DomainError {
	return &DomainError{
		Code:    ErrCodeReferenceMismatch,
		Message: fmt.Sprintf("event for %s applied to transaction %s", actual, expected),
		Err:     ErrReferenceMismatch,
	}
}

func NewGatewayMismatchError(ref, owner, sender string) *DomainError {
	return &DomainError{
		Code:    ErrCodeGatewayMismatch,
		Message: fmt.Sprintf("transaction %s belongs to %s, not %s", ref, owner, sender),
		Err:     ErrGatewayMismatch,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
