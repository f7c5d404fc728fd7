package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/application/services"
	"github.com/DanielPopoola/paygate/internal/application/services/testhelpers"
	"github.com/DanielPopoola/paygate/internal/domain"
	"github.com/DanielPopoola/paygate/internal/interfaces/rest/handlers"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockInitiator struct {
	initiateFn func(ctx context.Context, cmd services.InitiatePaymentCommand) (*services.InitiatePaymentResult, error)
}

func (m *mockInitiator) InitiatePayment(ctx context.Context, cmd services.InitiatePaymentCommand) (*services.InitiatePaymentResult, error) {
	return m.initiateFn(ctx, cmd)
}

type mockReconciler struct {
	webhookFn func(ctx context.Context, gatewayName string, payload []byte) (*services.ReconciliationOutcome, error)
	verifyFn  func(ctx context.Context, transactionRef string) (*services.ReconciliationOutcome, error)
}

func (m *mockReconciler) ReconcileWebhook(ctx context.Context, gatewayName string, payload []byte) (*services.ReconciliationOutcome, error) {
	return m.webhookFn(ctx, gatewayName, payload)
}

func (m *mockReconciler) VerifyTransaction(ctx context.Context, transactionRef string) (*services.ReconciliationOutcome, error) {
	return m.verifyFn(ctx, transactionRef)
}

type mockQuery struct {
	getFn func(ctx context.Context, transactionRef string) (*domain.Transaction, error)
}

func (m *mockQuery) GetTransaction(ctx context.Context, transactionRef string) (*domain.Transaction, error) {
	return m.getFn(ctx, transactionRef)
}

type mockHealth struct {
	err error
}

func (m *mockHealth) Ping(context.Context) error {
	return m.err
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func serve(t *testing.T, h *handlers.Handlers, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func newHandlers(i *mockInitiator, r *mockReconciler, q *mockQuery, hc *mockHealth) *handlers.Handlers {
	if i == nil {
		i = &mockInitiator{}
	}
	if r == nil {
		r = &mockReconciler{}
	}
	if q == nil {
		q = &mockQuery{}
	}
	if hc == nil {
		hc = &mockHealth{}
	}
	return handlers.NewHandlers(i, r, q, hc, testhelpers.QuietLogger())
}

func TestHandleInitiatePayment_Created(t *testing.T) {
	var got services.InitiatePaymentCommand
	h := newHandlers(&mockInitiator{
		initiateFn: func(_ context.Context, cmd services.InitiatePaymentCommand) (*services.InitiatePaymentResult, error) {
			got = cmd
			return &services.InitiatePaymentResult{
				TransactionRef:  "tx-1",
				Status:          domain.StatusPending,
				GatewayName:     "paystack",
				GatewayRef:      "acc_1",
				GatewayResponse: []byte(`{"status":true}`),
			}, nil
		},
	}, nil, nil, nil)

	rec, env := serve(t, h, http.MethodPost, "/v1/payments",
		`{"email":"ada@example.com","currency":"ngn","gateway":"paystack","is_permanent":true}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, services.InitiatePaymentCommand{
		ClientEmail: "ada@example.com",
		Currency:    "NGN",
		GatewayName: "paystack",
		IsPermanent: true,
	}, got)

	var data handlers.PaymentResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "tx-1", data.TransactionRef)
	assert.Equal(t, "pending", data.Status)
	assert.Equal(t, "paystack", data.Gateway)
	assert.Equal(t, "acc_1", data.GatewayRef)
	assert.JSONEq(t, `{"status":true}`, string(data.GatewayResponse))
}

func TestHandleInitiatePayment_RejectedIs402(t *testing.T) {
	h := newHandlers(&mockInitiator{
		initiateFn: func(context.Context, services.InitiatePaymentCommand) (*services.InitiatePaymentResult, error) {
			return &services.InitiatePaymentResult{
				TransactionRef: "tx-2",
				Status:         domain.StatusFailed,
				GatewayName:    "flutterwave",
				GatewayMessage: "insufficient funds",
			}, nil
		},
	}, nil, nil, nil)

	rec, env := serve(t, h, http.MethodPost, "/v1/payments", `{"email":"ada@example.com","currency":"NGN"}`)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domain.ErrCodeGatewayRejected, env.Error.Code)
	assert.Contains(t, env.Error.Message, "insufficient funds")
	assert.Equal(t, "tx-2", env.Error.Details["transaction_ref"])
}

func TestHandleInitiatePayment_Validation(t *testing.T) {
	h := newHandlers(&mockInitiator{
		initiateFn: func(context.Context, services.InitiatePaymentCommand) (*services.InitiatePaymentResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}, nil, nil, nil)

	for name, body := range map[string]string{
		"malformed json":   `{"email":`,
		"missing email":    `{"currency":"NGN"}`,
		"bad email":        `{"email":"not-an-email","currency":"NGN"}`,
		"missing currency": `{"email":"ada@example.com"}`,
		"long currency":    `{"email":"ada@example.com","currency":"NAIRA"}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec, env := serve(t, h, http.MethodPost, "/v1/payments", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, application.ErrCodeInvalidInput, env.Error.Code)
		})
	}
}

func TestHandleInitiatePayment_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
		ref    string
	}{
		{"unknown client", domain.NewClientNotFoundError("ada@example.com"), http.StatusNotFound, domain.ErrCodeClientNotFound, ""},
		{"no order", domain.NewNoOrderFoundError(1), http.StatusNotFound, domain.ErrCodeNoOrderFound, ""},
		{"unknown gateway", domain.NewUnknownGatewayError("stripe"), http.StatusBadRequest, domain.ErrCodeUnknownGateway, ""},
		{"transport", application.NewGatewayTransportError("tx-3", errors.New("dial tcp: refused")), http.StatusBadGateway, domain.ErrCodeGatewayTransport, "tx-3"},
		{"internal", errors.New("connection pool exhausted"), http.StatusInternalServerError, application.ErrCodeInternal, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlers(&mockInitiator{
				initiateFn: func(context.Context, services.InitiatePaymentCommand) (*services.InitiatePaymentResult, error) {
					return nil, tt.err
				},
			}, nil, nil, nil)

			rec, env := serve(t, h, http.MethodPost, "/v1/payments", `{"email":"ada@example.com","currency":"NGN"}`)

			assert.Equal(t, tt.status, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.NotContains(t, env.Error.Message, "dial tcp")
			assert.NotContains(t, env.Error.Message, "connection pool")
			if tt.ref != "" {
				assert.Equal(t, tt.ref, env.Error.Details["transaction_ref"])
			}
		})
	}
}

func TestHandleWebhook(t *testing.T) {
	var gotGateway, gotPayload string
	h := newHandlers(nil, &mockReconciler{
		webhookFn: func(_ context.Context, gatewayName string, payload []byte) (*services.ReconciliationOutcome, error) {
			gotGateway, gotPayload = gatewayName, string(payload)
			return &services.ReconciliationOutcome{
				TransactionRef: "tx-1",
				PreviousStatus: domain.StatusPending,
				Status:         domain.StatusSuccess,
				Updated:        true,
			}, nil
		},
	}, nil, nil)

	payload := `{"event":"charge.success","data":{"reference":"tx-1"}}`
	rec, env := serve(t, h, http.MethodPost, "/v1/webhooks/paystack", payload)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "paystack", gotGateway)
	assert.Equal(t, payload, gotPayload)

	var data handlers.ReconciliationResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, handlers.ReconciliationResponse{
		TransactionRef: "tx-1",
		PreviousStatus: "pending",
		Status:         "success",
		Updated:        true,
	}, data)
}

func TestHandleWebhook_ConflictIsReportedNotFailed(t *testing.T) {
	h := newHandlers(nil, &mockReconciler{
		webhookFn: func(context.Context, string, []byte) (*services.ReconciliationOutcome, error) {
			return &services.ReconciliationOutcome{
				TransactionRef: "tx-1",
				PreviousStatus: domain.StatusSuccess,
				Status:         domain.StatusFailed,
				Updated:        true,
				Conflict:       true,
				NeedsReview:    true,
			}, nil
		},
	}, nil, nil)

	rec, env := serve(t, h, http.MethodPost, "/v1/webhooks/flutterwave", `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var data handlers.ReconciliationResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Conflict)
	assert.True(t, data.Flagged)
}

func TestHandleWebhook_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unknown gateway", domain.NewUnknownGatewayError("stripe"), http.StatusBadRequest, domain.ErrCodeUnknownGateway},
		{"bad payload", domain.NewInvalidWebhookPayloadError("paystack", errors.New("eof")), http.StatusBadRequest, domain.ErrCodeInvalidWebhookPayload},
		{"missing reference", domain.NewMissingReferenceError(), http.StatusBadRequest, domain.ErrCodeMissingReference},
		{"unknown transaction", domain.NewTransactionNotFoundError("tx-x"), http.StatusNotFound, domain.ErrCodeTransactionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlers(nil, &mockReconciler{
				webhookFn: func(context.Context, string, []byte) (*services.ReconciliationOutcome, error) {
					return nil, tt.err
				},
			}, nil, nil)

			rec, env := serve(t, h, http.MethodPost, "/v1/webhooks/paystack", `{}`)
			assert.Equal(t, tt.status, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestHandleWebhook_PayloadTooLarge(t *testing.T) {
	h := newHandlers(nil, &mockReconciler{
		webhookFn: func(context.Context, string, []byte) (*services.ReconciliationOutcome, error) {
			t.Fatal("reconciler must not be called")
			return nil, nil
		},
	}, nil, nil)

	rec, env := serve(t, h, http.MethodPost, "/v1/webhooks/paystack", strings.Repeat("a", 1<<20+1))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, application.ErrCodeInvalidInput, env.Error.Code)
}

func TestHandleGetTransaction(t *testing.T) {
	ref := "gw-9"
	reason := domain.ReviewReasonAmountMismatch
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	h := newHandlers(nil, nil, &mockQuery{
		getFn: func(_ context.Context, transactionRef string) (*domain.Transaction, error) {
			if transactionRef != "tx-1" {
				return nil, domain.NewTransactionNotFoundError(transactionRef)
			}
			return &domain.Transaction{
				TransactionRef: "tx-1",
				ClientID:       4,
				OrderID:        9,
				Amount:         decimal.RequireFromString("2500.5"),
				Currency:       "NGN",
				Status:         domain.StatusSuccess,
				GatewayName:    "paystack",
				GatewayRef:     &ref,
				NeedsReview:    true,
				ReviewReason:   &reason,
				CreatedAt:      created,
				UpdatedAt:      created,
			}, nil
		},
	}, nil)

	rec, env := serve(t, h, http.MethodGet, "/v1/transactions/tx-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var data handlers.TransactionResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "2500.50", data.Amount)
	assert.Equal(t, "success", data.Status)
	assert.Equal(t, "gw-9", data.GatewayRef)
	assert.True(t, data.NeedsReview)
	assert.Equal(t, domain.ReviewReasonAmountMismatch, data.ReviewReason)
	assert.True(t, created.Equal(data.CreatedAt))

	rec, env = serve(t, h, http.MethodGet, "/v1/transactions/tx-unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domain.ErrCodeTransactionNotFound, env.Error.Code)
}

func TestHandleVerifyTransaction(t *testing.T) {
	h := newHandlers(nil, &mockReconciler{
		verifyFn: func(_ context.Context, transactionRef string) (*services.ReconciliationOutcome, error) {
			if transactionRef == "tx-down" {
				return nil, application.NewVerificationFailedError(transactionRef, errors.New("503"))
			}
			return &services.ReconciliationOutcome{
				TransactionRef: transactionRef,
				PreviousStatus: domain.StatusPending,
				Status:         domain.StatusFailed,
				Updated:        true,
			}, nil
		},
	}, nil, nil)

	rec, env := serve(t, h, http.MethodPost, "/v1/transactions/tx-1/verify", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var data handlers.ReconciliationResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "failed", data.Status)

	rec, env = serve(t, h, http.MethodPost, "/v1/transactions/tx-down/verify", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, application.ErrCodeVerificationFailed, env.Error.Code)
	assert.Equal(t, "tx-down", env.Error.Details["transaction_ref"])
}

func TestHandleHealth(t *testing.T) {
	rec, env := serve(t, newHandlers(nil, nil, nil, &mockHealth{}), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))

	rec, env = serve(t, newHandlers(nil, nil, nil, &mockHealth{err: errors.New("refused")}), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "UNAVAILABLE", env.Error.Code)
}
