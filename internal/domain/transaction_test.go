package domain_test

import (
	"testing"

	"github.com/DanielPopoola/paygate/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient() *domain.Client {
	return &domain.Client{ID: 7, Email: "a@x.com", FullName: "Ada Obi"}
}

func testOrder() *domain.Order {
	return &domain.Order{ID: 11, ClientID: 7, TotalAmount: decimal.RequireFromString("5000.00")}
}

func createTestTransaction(t *testing.T) *domain.Transaction {
	t.Helper()
	txn, err := domain.NewTransaction("ref-123", testClient(), testOrder(), "NGN", "flutterwave")
	require.NoError(t, err)
	return txn
}

func createTerminalTransaction(t *testing.T, status domain.TransactionStatus) *domain.Transaction {
	t.Helper()
	txn := createTestTransaction(t)
	_, err := txn.Reconcile(domain.GatewayEvent{TransactionRef: txn.TransactionRef, Status: status})
	require.NoError(t, err)
	return txn
}

func TestNewTransaction(t *testing.T) {
	t.Run("creates pending transaction from the order", func(t *testing.T) {
		txn := createTestTransaction(t)

		assert.Equal(t, "ref-123", txn.TransactionRef)
		assert.Equal(t, int64(7), txn.ClientID)
		assert.Equal(t, int64(11), txn.OrderID)
		assert.True(t, decimal.RequireFromString("5000").Equal(txn.Amount))
		assert.Equal(t, "NGN", txn.Currency)
		assert.Equal(t, domain.StatusPending, txn.Status)
		assert.Equal(t, "flutterwave", txn.GatewayName)
		assert.Nil(t, txn.GatewayRef)
		assert.NotZero(t, txn.CreatedAt)
	})

	t.Run("normalizes currency case", func(t *testing.T) {
		txn, err := domain.NewTransaction("ref-1", testClient(), testOrder(), "ngn", "paystack")

		require.NoError(t, err)
		assert.Equal(t, "NGN", txn.Currency)
	})

	t.Run("rejects empty reference", func(t *testing.T) {
		_, err := domain.NewTransaction("", testClient(), testOrder(), "NGN", "flutterwave")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "transaction reference is required")
	})

	t.Run("rejects order of another client", func(t *testing.T) {
		order := testOrder()
		order.ClientID = 99

		_, err := domain.NewTransaction("ref-1", testClient(), order, "NGN", "flutterwave")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "order does not belong to client")
	})

	t.Run("rejects zero order total", func(t *testing.T) {
		order := testOrder()
		order.TotalAmount = decimal.Zero

		_, err := domain.NewTransaction("ref-1", testClient(), order, "NGN", "flutterwave")

		assert.Error(t, err)
	})
}

func TestTransaction_StateTransitions(t *testing.T) {
	t.Run("pending -> success", func(t *testing.T) {
		txn := createTerminalTransaction(t, domain.StatusSuccess)

		assert.Equal(t, domain.StatusSuccess, txn.Status)
		assert.True(t, txn.IsTerminal())
	})

	t.Run("pending -> failed", func(t *testing.T) {
		txn := createTestTransaction(t)

		require.NoError(t, txn.MarkFailed())
		assert.Equal(t, domain.StatusFailed, txn.Status)
	})

	t.Run("success cannot move to failed", func(t *testing.T) {
		txn := createTerminalTransaction(t, domain.StatusSuccess)

		err := txn.MarkFailed()

		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidTransition))
	})

	t.Run("failed cannot be failed again", func(t *testing.T) {
		txn := createTerminalTransaction(t, domain.StatusFailed)

		assert.ErrorIs(t, txn.MarkFailed(), domain.ErrInvalidTransition)
	})
}

func TestTransaction_ApplyGatewayResponse(t *testing.T) {
	t.Run("accepted stays pending and attaches reference", func(t *testing.T) {
		txn := createTestTransaction(t)

		changed, err := txn.ApplyGatewayResponse(true, "G1")

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, domain.StatusPending, txn.Status)
		require.NotNil(t, txn.GatewayRef)
		assert.Equal(t, "G1", *txn.GatewayRef)
	})

	t.Run("rejected fails the transaction", func(t *testing.T) {
		txn := createTestTransaction(t)

		changed, err := txn.ApplyGatewayResponse(false, "")

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, domain.StatusFailed, txn.Status)
		assert.Nil(t, txn.GatewayRef)
	})

	t.Run("keeps status already set by webhook", func(t *testing.T) {
		txn := createTerminalTransaction(t, domain.StatusSuccess)

		changed, err := txn.ApplyGatewayResponse(false, "G1")

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, domain.StatusSuccess, txn.Status)
	})

	t.Run("does not replace webhook gateway reference", func(t *testing.T) {
		txn := createTestTransaction(t)
		ref := "FLW-1"
		txn.GatewayRef = &ref

		changed, err := txn.ApplyGatewayResponse(true, "G1")

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, "FLW-1", *txn.GatewayRef)
	})
}

func TestTransaction_Reconcile(t *testing.T) {
	successEvent := domain.GatewayEvent{
		TransactionRef: "ref-123",
		GatewayRef:     "G1",
		Status:         domain.StatusSuccess,
		Amount:         decimal.RequireFromString("5000.00"),
	}

	t.Run("pending -> success applies status and reference", func(t *testing.T) {
		txn := createTestTransaction(t)

		result, err := txn.Reconcile(successEvent)

		require.NoError(t, err)
		assert.True(t, result.Changed)
		assert.False(t, result.Duplicate)
		assert.False(t, result.AmountMismatch)
		assert.Equal(t, domain.StatusPending, result.PreviousStatus)
		assert.Equal(t, domain.StatusSuccess, txn.Status)
		assert.Equal(t, "G1", *txn.GatewayRef)
		assert.False(t, txn.NeedsReview)
	})

	t.Run("same terminal status is a duplicate", func(t *testing.T) {
		txn := createTestTransaction(t)
		_, err := txn.Reconcile(successEvent)
		require.NoError(t, err)

		result, err := txn.Reconcile(successEvent)

		require.NoError(t, err)
		assert.True(t, result.Duplicate)
		assert.False(t, result.Changed)
		assert.Equal(t, domain.StatusSuccess, txn.Status)
	})

	t.Run("different terminal status is a flagged conflict", func(t *testing.T) {
		txn := createTerminalTransaction(t, domain.StatusSuccess)
		event := successEvent
		event.Status = domain.StatusFailed

		result, err := txn.Reconcile(event)

		require.NoError(t, err)
		assert.True(t, result.Conflict)
		assert.True(t, result.Changed)
		assert.Equal(t, domain.StatusFailed, txn.Status)
		assert.True(t, txn.NeedsReview)
		require.NotNil(t, txn.ReviewReason)
		assert.Equal(t, domain.ReviewReasonConflict, *txn.ReviewReason)
	})

	t.Run("pending event does not reopen a terminal transaction", func(t *testing.T) {
		txn := createTerminalTransaction(t, domain.StatusFailed)
		event := successEvent
		event.Status = domain.StatusPending

		result, err := txn.Reconcile(event)

		require.NoError(t, err)
		assert.False(t, result.Changed)
		assert.Equal(t, domain.StatusFailed, txn.Status)
	})

	t.Run("different amount overwrites and flags", func(t *testing.T) {
		txn := createTestTransaction(t)
		event := successEvent
		event.Amount = decimal.RequireFromString("4999.50")

		result, err := txn.Reconcile(event)

		require.NoError(t, err)
		assert.True(t, result.AmountMismatch)
		assert.True(t, decimal.RequireFromString("4999.50").Equal(txn.Amount))
		assert.True(t, txn.NeedsReview)
		assert.Equal(t, domain.ReviewReasonAmountMismatch, *txn.ReviewReason)
	})

	t.Run("zero amount leaves stored amount", func(t *testing.T) {
		txn := createTestTransaction(t)
		event := successEvent
		event.Amount = decimal.Zero

		result, err := txn.Reconcile(event)

		require.NoError(t, err)
		assert.False(t, result.AmountMismatch)
		assert.True(t, decimal.RequireFromString("5000").Equal(txn.Amount))
	})

	t.Run("missing reference", func(t *testing.T) {
		txn := createTestTransaction(t)

		_, err := txn.Reconcile(domain.GatewayEvent{Status: domain.StatusSuccess})

		assert.ErrorIs(t, err, domain.ErrMissingReference)
		assert.Equal(t, domain.StatusPending, txn.Status)
	})

	t.Run("event for another reference", func(t *testing.T) {
		txn := createTestTransaction(t)
		event := successEvent
		event.TransactionRef = "ref-other"

		_, err := txn.Reconcile(event)

		assert.ErrorIs(t, err, domain.ErrReferenceMismatch)
	})
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.TransactionStatus
		wantErr  bool
	}{
		{"pending", domain.StatusPending, false},
		{"SUCCESS", domain.StatusSuccess, false},
		{"failed", domain.StatusFailed, false},
		{"refunded", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, err := domain.ParseStatus(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}
