package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/config"
	"github.com/DanielPopoola/paygate/internal/domain"
)

// RetryingGateway retries VerifyPayment, which only reads provider state.
// ProcessPayment and HandleWebhook pass straight through.
type RetryingGateway struct {
	inner      application.Gateway
	baseDelay  time.Duration
	maxRetries int
	logger     *slog.Logger
}

func NewRetryingGateway(inner application.Gateway, cfg config.RetryConfig, logger *slog.Logger) application.Gateway {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &RetryingGateway{
		inner:      inner,
		baseDelay:  cfg.BaseDelay,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

func (r *RetryingGateway) Name() string {
	return r.inner.Name()
}

func (r *RetryingGateway) ProcessPayment(ctx context.Context, req application.PaymentRequest) (*application.PaymentResult, error) {
	return r.inner.ProcessPayment(ctx, req)
}

func (r *RetryingGateway) HandleWebhook(payload []byte) (*domain.GatewayEvent, error) {
	return r.inner.HandleWebhook(payload)
}

// VerifyPayment with retry logic
func (r *RetryingGateway) VerifyPayment(ctx context.Context, transactionRef string) (*application.VerificationResult, error) {
	return retry(
		r,
		ctx,
		func(ctx context.Context) (*application.VerificationResult, error) {
			return r.inner.VerifyPayment(ctx, transactionRef)
		},
	)
}

// Generic retry helper
func retry[T any](r *RetryingGateway, ctx context.Context, operation func(ctx context.Context) (*T, error)) (*T, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := operation(ctx)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}

		if attempt < r.maxRetries-1 {
			delay := r.backoff(attempt)
			r.logger.Debug("retrying gateway call",
				"gateway", r.inner.Name(),
				"attempt", attempt+1,
				"delay", delay,
				"error", err,
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

// Helper: to check retryable errors
func isRetryable(err error) bool {
	if gwErr, ok := IsGatewayError(err); ok {
		return gwErr.IsRetryable()
	}

	if errors.Is(err, domain.ErrGatewayTransport) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	return false
}

// Backoff calculation with exponential delay and jitter
func (r *RetryingGateway) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)

	jitter := time.Duration(rand.Int64N(int64(r.baseDelay)/2 + 1))

	return base + jitter
}
