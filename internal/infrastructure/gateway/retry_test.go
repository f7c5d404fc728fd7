package gateway_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/application/mocks"
	"github.com/DanielPopoola/paygate/internal/application/services/testhelpers"
	"github.com/DanielPopoola/paygate/internal/config"
	"github.com/DanielPopoola/paygate/internal/domain"
	"github.com/DanielPopoola/paygate/internal/infrastructure/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRetrying(t *testing.T) (*mocks.MockGateway, application.Gateway) {
	inner := mocks.NewMockGateway(t)
	inner.EXPECT().Name().Return("paystack").Maybe()
	return inner, gateway.NewRetryingGateway(inner, config.RetryConfig{
		BaseDelay:  time.Millisecond,
		MaxRetries: 3,
	}, testhelpers.QuietLogger())
}

func TestRetryingGateway_VerifyPayment_Success(t *testing.T) {
	inner, retrying := newRetrying(t)

	expected := &application.VerificationResult{Event: domain.GatewayEvent{TransactionRef: "tx-1", Status: domain.StatusSuccess}}
	inner.EXPECT().VerifyPayment(mock.Anything, "tx-1").Return(expected, nil).Once()

	res, err := retrying.VerifyPayment(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.Equal(t, expected, res)
}

func TestRetryingGateway_VerifyPayment_RetriesOn5xx(t *testing.T) {
	inner, retrying := newRetrying(t)

	expected := &application.VerificationResult{Event: domain.GatewayEvent{TransactionRef: "tx-1"}}

	// First two calls fail with 503
	inner.EXPECT().
		VerifyPayment(mock.Anything, "tx-1").
		Return(nil, &gateway.GatewayError{Gateway: "paystack", StatusCode: 503, Message: "unavailable"}).
		Twice()

	// Third call succeeds
	inner.EXPECT().
		VerifyPayment(mock.Anything, "tx-1").
		Return(expected, nil).
		Once()

	res, err := retrying.VerifyPayment(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.Equal(t, expected, res)
}

func TestRetryingGateway_VerifyPayment_RetriesOnTransportError(t *testing.T) {
	inner, retrying := newRetrying(t)

	inner.EXPECT().
		VerifyPayment(mock.Anything, "tx-1").
		Return(nil, errors.Join(domain.ErrGatewayTransport, errors.New("connection reset"))).
		Once()
	inner.EXPECT().
		VerifyPayment(mock.Anything, "tx-1").
		Return(&application.VerificationResult{}, nil).
		Once()

	_, err := retrying.VerifyPayment(context.Background(), "tx-1")
	require.NoError(t, err)
}

func TestRetryingGateway_VerifyPayment_DoesNotRetryOn4xx(t *testing.T) {
	inner, retrying := newRetrying(t)

	expectedErr := &gateway.GatewayError{Gateway: "paystack", StatusCode: 404, Message: "not found"}

	// Should only be called once (no retry on 4xx)
	inner.EXPECT().
		VerifyPayment(mock.Anything, "tx-1").
		Return(nil, expectedErr).
		Once()

	res, err := retrying.VerifyPayment(context.Background(), "tx-1")
	require.Error(t, err)
	assert.Nil(t, res)

	gwErr, ok := gateway.IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, 404, gwErr.StatusCode)
}

func TestRetryingGateway_VerifyPayment_ExhaustsRetries(t *testing.T) {
	inner, retrying := newRetrying(t)

	// All 3 attempts fail
	inner.EXPECT().
		VerifyPayment(mock.Anything, "tx-1").
		Return(nil, &gateway.GatewayError{Gateway: "paystack", StatusCode: 500, Message: "boom"}).
		Times(3)

	res, err := retrying.VerifyPayment(context.Background(), "tx-1")
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "maximum retries exceeded")
}

func TestRetryingGateway_VerifyPayment_StopsWhenContextCancelled(t *testing.T) {
	inner, retrying := newRetrying(t)
	ctx, cancel := context.WithCancel(context.Background())

	inner.EXPECT().
		VerifyPayment(mock.Anything, "tx-1").
		RunAndReturn(func(context.Context, string) (*application.VerificationResult, error) {
			cancel()
			return nil, &gateway.GatewayError{Gateway: "paystack", StatusCode: 502}
		}).
		Once()

	_, err := retrying.VerifyPayment(ctx, "tx-1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetryingGateway_ProcessPayment_NeverRetries(t *testing.T) {
	inner, retrying := newRetrying(t)

	inner.EXPECT().
		ProcessPayment(mock.Anything, mock.Anything).
		Return(nil, errors.Join(domain.ErrGatewayTransport, errors.New("timeout"))).
		Once()

	_, err := retrying.ProcessPayment(context.Background(), application.PaymentRequest{TransactionRef: "tx-1"})
	assert.ErrorIs(t, err, domain.ErrGatewayTransport)
}
