package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/paygate/internal/domain"
)

// ErrorCategory represents the nature of an error for retry logic
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryPermanent      ErrorCategory = "PERMANENT"
	CategoryBusinessRule   ErrorCategory = "BUSINESS_RULE"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
	// CategoryAmbiguous means the side effect may have happened. Never retried blindly.
	CategoryAmbiguous ErrorCategory = "AMBIGUOUS"
)

// Retryable is implemented by infrastructure errors that know whether a retry is safe.
type Retryable interface {
	IsRetryable() bool
}

// CategorizeError determines error category for retry and logging purposes
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	// Gateway outcome unknown
	if errors.Is(err, domain.ErrGatewayTransport) {
		return CategoryAmbiguous
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	if errors.Is(err, domain.ErrGatewayRejected) {
		return CategoryPermanent
	}

	if errors.Is(err, domain.ErrInvalidTransition) ||
		errors.Is(err, domain.ErrReconciliationConflict) ||
		errors.Is(err, domain.ErrReferenceMismatch) ||
		errors.Is(err, domain.ErrGatewayMismatch) {
		return CategoryBusinessRule
	}

	if errors.Is(err, domain.ErrClientNotFound) ||
		errors.Is(err, domain.ErrNoOrderFound) ||
		errors.Is(err, domain.ErrMissingReference) ||
		errors.Is(err, domain.ErrTransactionNotFound) ||
		errors.Is(err, domain.ErrUnknownGateway) ||
		errors.Is(err, domain.ErrInvalidWebhookPayload) {
		return CategoryClientError
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeInvalidInput:
			return CategoryClientError
		case ErrCodeInternal:
			return CategoryInfrastructure
		case ErrCodeTimeout:
			return CategoryTransient
		}
	}

	var r Retryable
	if errors.As(err, &r) {
		if r.IsRetryable() {
			return CategoryTransient
		}
		return CategoryPermanent
	}

	// Default: Transient (safe fallback)
	return CategoryTransient
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	switch {
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrNoOrderFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrMissingReference),
		errors.Is(err, domain.ErrInvalidWebhookPayload),
		errors.Is(err, domain.ErrUnknownGateway),
		errors.Is(err, domain.ErrReferenceMismatch):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrReconciliationConflict),
		errors.Is(err, domain.ErrDuplicateGatewayRef),
		errors.Is(err, domain.ErrGatewayMismatch):
		return http.StatusConflict

	case errors.Is(err, domain.ErrGatewayRejected):
		return http.StatusPaymentRequired

	case errors.Is(err, domain.ErrGatewayTransport):
		return http.StatusBadGateway

	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	// Default to 500
	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	if errors.Is(err, domain.ErrGatewayTransport) {
		return domain.ErrCodeGatewayTransport
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeTimeout
	}

	return ErrCodeInternal
}

// ToErrorMessage returns the caller-safe message. Wrapped causes stay in the logs.
func ToErrorMessage(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Message
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timed out"
	}

	return "An internal error occurred"
}
