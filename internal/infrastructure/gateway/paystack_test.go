package gateway_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DanielPopoola/paygate/internal/config"
	"github.com/DanielPopoola/paygate/internal/domain"
	"github.com/DanielPopoola/paygate/internal/infrastructure/gateway"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaystack(t *testing.T, handler http.HandlerFunc) *gateway.Paystack {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return gateway.NewPaystack(config.GatewayConfig{BaseURL: srv.URL + "/", SecretKey: "sk_test"})
}

func TestPaystack_ProcessPayment_SendsMinorUnits(t *testing.T) {
	ps := newPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"email": "a@x.com",
			"amount": 500050,
			"currency": "NGN",
			"reference": "tx-1",
			"metadata": {"full_name": "Ada Obi", "is_permanent": true}
		}`, string(body))

		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Authorization URL created",
			"data": {"authorization_url": "https://checkout.paystack.com/abc", "access_code": "abc", "reference": "tx-1"}
		}`))
	})

	req := paymentRequest()
	req.Amount = decimal.RequireFromString("5000.50")
	req.IsPermanent = true

	res, err := ps.ProcessPayment(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "abc", res.GatewayRef)
}

func TestPaystack_ProcessPayment_RoundsHalfAwayFromZero(t *testing.T) {
	var got string
	ps := newPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = string(body)
		_, _ = w.Write([]byte(`{"status": true, "data": {"access_code": "x"}}`))
	})

	req := paymentRequest()
	req.Amount = decimal.RequireFromString("10.005")

	_, err := ps.ProcessPayment(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, got, `"amount":1001`)
}

func TestPaystack_ProcessPayment_StatusFalse(t *testing.T) {
	ps := newPaystack(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
	})

	res, err := ps.ProcessPayment(context.Background(), paymentRequest())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid key", res.Message)
}

func TestPaystack_ProcessPayment_ServerError(t *testing.T) {
	ps := newPaystack(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status": false, "message": "try again"}`))
	})

	_, err := ps.ProcessPayment(context.Background(), paymentRequest())
	assert.ErrorIs(t, err, domain.ErrGatewayTransport)

	gwErr, ok := gateway.IsGatewayError(err)
	require.True(t, ok)
	assert.True(t, gwErr.IsRetryable())
}

func TestPaystack_HandleWebhook_ConvertsKobo(t *testing.T) {
	ps := gateway.NewPaystack(config.GatewayConfig{BaseURL: "http://unused"})

	event, err := ps.HandleWebhook([]byte(`{
		"event": "charge.success",
		"data": {"id": 302961, "reference": "tx-1", "amount": 500050, "currency": "ngn", "status": "success"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "tx-1", event.TransactionRef)
	assert.Equal(t, "302961", event.GatewayRef)
	assert.Equal(t, domain.StatusSuccess, event.Status)
	assert.Equal(t, "NGN", event.Currency)
	assert.True(t, decimal.RequireFromString("5000.50").Equal(event.Amount))
}

func TestPaystack_HandleWebhook_StatusMapping(t *testing.T) {
	ps := gateway.NewPaystack(config.GatewayConfig{BaseURL: "http://unused"})

	for raw, want := range map[string]domain.TransactionStatus{
		"success":   domain.StatusSuccess,
		"failed":    domain.StatusFailed,
		"abandoned": domain.StatusFailed,
		"reversed":  domain.StatusFailed,
		"ongoing":   domain.StatusPending,
	} {
		event, err := ps.HandleWebhook([]byte(`{"event":"charge.success","data":{"id":1,"reference":"r","amount":100,"status":"` + raw + `"}}`))
		require.NoError(t, err)
		assert.Equal(t, want, event.Status, raw)
	}
}

func TestPaystack_HandleWebhook_ZeroDecimalCurrency(t *testing.T) {
	ps := gateway.NewPaystack(config.GatewayConfig{BaseURL: "http://unused"})

	event, err := ps.HandleWebhook([]byte(`{"data":{"id":1,"reference":"r","amount":1500,"currency":"XOF","status":"success"}}`))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1500).Equal(event.Amount))
}

func TestPaystack_HandleWebhook_Invalid(t *testing.T) {
	ps := gateway.NewPaystack(config.GatewayConfig{BaseURL: "http://unused"})

	_, err := ps.HandleWebhook([]byte(`{"event":`))
	assert.ErrorIs(t, err, domain.ErrInvalidWebhookPayload)
}

func TestPaystack_VerifyPayment(t *testing.T) {
	ps := newPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/tx-1", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {"id": 7, "reference": "tx-1", "amount": 20000, "currency": "NGN", "status": "success"}
		}`))
	})

	res, err := ps.VerifyPayment(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, res.Event.Status)
	assert.True(t, decimal.NewFromInt(200).Equal(res.Event.Amount))
}

func TestPaystack_VerifyPayment_StatusFalse(t *testing.T) {
	ps := newPaystack(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": false, "message": "Transaction reference not found"}`))
	})

	_, err := ps.VerifyPayment(context.Background(), "tx-1")
	assert.ErrorContains(t, err, "Transaction reference not found")
}
