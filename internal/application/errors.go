package application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/DanielPopoola/paygate/internal/domain"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeTimeout      = "TIMEOUT"
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeInvalidInput = "INVALID_INPUT"

	ErrCodeVerificationFailed = "VERIFICATION_FAILED"
)

// NewGatewayTransportError reports an ambiguous outcome: the provider may have processed the
// payment, so the transaction stays pending.
func NewGatewayTransportError(transactionRef string, err error) *ServiceError {
	return &ServiceError{
		Code:       domain.ErrCodeGatewayTransport,
		Message:    "Payment gateway could not be reached; the payment is pending confirmation",
		HTTPStatus: http.StatusBadGateway,
		Details:    map[string]string{"transaction_ref": transactionRef},
		Err:        errors.Join(domain.ErrGatewayTransport, err),
	}
}

func NewGatewayRejectedError(transactionRef, reason string) *ServiceError {
	msg := "Payment was rejected by the gateway"
	if reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, reason)
	}
	return &ServiceError{
		Code:       domain.ErrCodeGatewayRejected,
		Message:    msg,
		HTTPStatus: http.StatusPaymentRequired,
		Details:    map[string]string{"transaction_ref": transactionRef},
		Err:        domain.ErrGatewayRejected,
	}
}

func NewReconciliationConflictError(transactionRef string, stored, reported domain.TransactionStatus) *ServiceError {
	return &ServiceError{
		Code:       domain.ErrCodeReconciliationConflict,
		Message:    fmt.Sprintf("Gateway reported %s for a transaction already %s", reported, stored),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]string{"transaction_ref": transactionRef},
		Err:        domain.ErrReconciliationConflict,
	}
}

func NewVerificationFailedError(transactionRef string, err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeVerificationFailed,
		Message:    "Payment status could not be verified with the gateway",
		HTTPStatus: http.StatusBadGateway,
		Details:    map[string]string{"transaction_ref": transactionRef},
		Err:        err,
	}
}

func NewTimeoutError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeTimeout,
		Message:    "Request timed out waiting for completion",
		HTTPStatus: http.StatusRequestTimeout,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    "Invalid input",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
