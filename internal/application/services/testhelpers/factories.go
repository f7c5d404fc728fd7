package testhelpers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DanielPopoola/paygate/internal/infrastructure/persistence/postgres"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// SeedClient inserts a client with a random email and returns its id and email.
func SeedClient(t *testing.T, ctx context.Context, db *postgres.DB, fullName string) (int64, string) {
	t.Helper()

	email := fmt.Sprintf("client-%s@example.com", uuid.New().String()[:8])

	var id int64
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO clients (email, full_name) VALUES ($1, $2) RETURNING id`,
		email, fullName,
	).Scan(&id)
	require.NoError(t, err)

	return id, email
}

// SeedOrder inserts an order created at the given time. A nil total stores NULL.
func SeedOrder(t *testing.T, ctx context.Context, db *postgres.DB, clientID int64, total *decimal.Decimal, createdAt time.Time) int64 {
	t.Helper()

	var amount *string
	if total != nil {
		s := total.String()
		amount = &s
	}

	var id int64
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO orders (client_id, total_amount, created_at) VALUES ($1, $2::numeric, $3) RETURNING id`,
		clientID, amount, createdAt,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

// AgeTransaction moves a transaction's updated_at into the past.
func AgeTransaction(t *testing.T, ctx context.Context, db *postgres.DB, transactionRef string, age time.Duration) {
	t.Helper()

	_, err := db.Pool.Exec(ctx,
		`UPDATE payment_transactions SET updated_at = $2 WHERE transaction_ref = $1`,
		transactionRef, time.Now().Add(-age),
	)
	require.NoError(t, err)
}

func Amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
