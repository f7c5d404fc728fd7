package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/DanielPopoola/paygate/internal/domain"
)

// GatewayError is a non-2xx answer from a provider.
// 5xx answers unwrap to domain.ErrGatewayTransport because the provider may still have acted on the request.
type GatewayError struct {
	Gateway    string
	StatusCode int
	Message    string
	Body       []byte
}

type errorResponse struct {
	Message string `json:"message"`
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s error: %s (status: %d)", e.Gateway, e.Message, e.StatusCode)
}

func (e *GatewayError) IsRetryable() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// IsRejection reports a definitive refusal: the provider looked at the request and declined it.
func (e *GatewayError) IsRejection() bool {
	return e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError
}

func (e *GatewayError) Unwrap() error {
	if e.StatusCode >= http.StatusInternalServerError {
		return domain.ErrGatewayTransport
	}
	return nil
}

func IsGatewayError(err error) (*GatewayError, bool) {
	var gwErr *GatewayError
	ok := errors.As(err, &gwErr)
	return gwErr, ok
}

// transportError marks a failure where the outcome at the provider is unknown.
func transportError(gateway, op string, err error) error {
	return fmt.Errorf("%s %s: %w", gateway, op, errors.Join(domain.ErrGatewayTransport, err))
}
