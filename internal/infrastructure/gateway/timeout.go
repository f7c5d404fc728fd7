package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/domain"
)

// TimeoutGateway bounds every outbound call made by the wrapped gateway.
type TimeoutGateway struct {
	inner   application.Gateway
	timeout time.Duration
}

// NewTimeoutGateway returns inner unchanged when timeout is not positive.
func NewTimeoutGateway(inner application.Gateway, timeout time.Duration) application.Gateway {
	if timeout <= 0 {
		return inner
	}
	return &TimeoutGateway{
		inner:   inner,
		timeout: timeout,
	}
}

func (g *TimeoutGateway) Name() string {
	return g.inner.Name()
}

func (g *TimeoutGateway) ProcessPayment(ctx context.Context, req application.PaymentRequest) (*application.PaymentResult, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	res, err := g.inner.ProcessPayment(ctx, req)
	return res, g.expired(ctx, "process payment", err)
}

func (g *TimeoutGateway) HandleWebhook(payload []byte) (*domain.GatewayEvent, error) {
	return g.inner.HandleWebhook(payload)
}

func (g *TimeoutGateway) VerifyPayment(ctx context.Context, transactionRef string) (*application.VerificationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	res, err := g.inner.VerifyPayment(ctx, transactionRef)
	return res, g.expired(ctx, "verify payment", err)
}

// expired reports a hit deadline as a transport failure: the request may have reached the provider.
func (g *TimeoutGateway) expired(ctx context.Context, op string, err error) error {
	if err == nil || errors.Is(err, domain.ErrGatewayTransport) {
		return err
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return transportError(g.inner.Name(), op, fmt.Errorf("no answer within %s: %w", g.timeout, err))
	}
	return err
}
