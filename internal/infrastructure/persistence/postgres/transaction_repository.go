package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `
	id, transaction_ref, client_id, order_id, amount::text, currency, status,
	gateway_name, gateway_ref, needs_review, review_reason, created_at, updated_at`

type TransactionRepository struct {
	pool *pgxpool.Pool
	q    Executor
	inTx bool
}

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{
		pool: db.Pool,
		q:    db.Pool,
	}
}

var _ application.TransactionRepository = (*TransactionRepository)(nil)

// GetClientByEmail looks a client up by email, ignoring case.
func (r *TransactionRepository) GetClientByEmail(ctx context.Context, email string) (*domain.Client, error) {
	query := `
		SELECT id, email, full_name
		FROM clients
		WHERE LOWER(email) = LOWER($1)
		ORDER BY id
		LIMIT 1
	`

	var m ClientModel
	err := r.q.QueryRow(ctx, query, strings.TrimSpace(email)).Scan(&m.ID, &m.Email, &m.FullName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewClientNotFoundError(email)
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return toDomainClient(m), nil
}

// GetLatestOrderAndAmountForClient returns the most recently created order for a client.
// An order without a total counts as no order.
func (r *TransactionRepository) GetLatestOrderAndAmountForClient(ctx context.Context, clientID int64) (*domain.Order, error) {
	query := `
		SELECT id, client_id, total_amount::text
		FROM orders
		WHERE client_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var m OrderModel
	err := r.q.QueryRow(ctx, query, clientID).Scan(&m.ID, &m.ClientID, &m.TotalAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNoOrderFoundError(clientID)
		}
		return nil, fmt.Errorf("failed to get latest order: %w", err)
	}

	order, err := toDomainOrder(m)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NewNoOrderFoundError(clientID)
	}

	return order, nil
}

func (r *TransactionRepository) CreatePaymentTransaction(ctx context.Context, txn *domain.Transaction) error {
	query := `
		INSERT INTO payment_transactions (
			transaction_ref, client_id, order_id, amount, currency, status,
			gateway_name, gateway_ref, needs_review, review_reason, created_at, updated_at
		) VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := r.q.QueryRow(ctx, query,
		txn.TransactionRef,
		txn.ClientID,
		txn.OrderID,
		txn.Amount.String(),
		txn.Currency,
		string(txn.Status),
		txn.GatewayName,
		txn.GatewayRef,
		txn.NeedsReview,
		txn.ReviewReason,
		txn.CreatedAt,
		txn.UpdatedAt,
	).Scan(&txn.ID)
	if err != nil {
		if IsUniqueViolation(err) && txn.GatewayRef != nil && strings.Contains(violatedConstraint(err), "gateway_ref") {
			return domain.NewDuplicateGatewayRefError(*txn.GatewayRef)
		}
		return fmt.Errorf("failed to create payment transaction: %w", err)
	}

	return nil
}

// UpdatePaymentTransaction applies a partial update. Fields left nil in the patch keep their stored value.
func (r *TransactionRepository) UpdatePaymentTransaction(
	ctx context.Context,
	transactionRef string,
	patch application.TransactionPatch,
) (*domain.Transaction, error) {
	if patch.IsEmpty() {
		return r.GetTransactionByReference(ctx, transactionRef)
	}

	query := `
		UPDATE payment_transactions SET
			status        = COALESCE($2, status),
			gateway_ref   = COALESCE($3, gateway_ref),
			amount        = COALESCE($4::numeric, amount),
			needs_review  = COALESCE($5, needs_review),
			review_reason = COALESCE($6, review_reason),
			updated_at    = NOW()
		WHERE transaction_ref = $1
		RETURNING ` + transactionColumns

	var status, amount *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}
	if patch.Amount != nil {
		a := patch.Amount.String()
		amount = &a
	}

	row := r.q.QueryRow(ctx, query,
		transactionRef,
		status,
		patch.GatewayRef,
		amount,
		patch.NeedsReview,
		patch.ReviewReason,
	)

	txn, err := scanTransaction(row, transactionRef)
	if err != nil {
		if IsUniqueViolation(err) && patch.GatewayRef != nil {
			return nil, domain.NewDuplicateGatewayRefError(*patch.GatewayRef)
		}
		return nil, err
	}
	return txn, nil
}

func (r *TransactionRepository) GetTransactionByReference(ctx context.Context, transactionRef string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM payment_transactions WHERE transaction_ref = $1`

	return scanTransaction(r.q.QueryRow(ctx, query, transactionRef), transactionRef)
}

// GetTransactionByReferenceForUpdate locks the row until the surrounding transaction ends.
// Outside WithTx the lock is released as soon as the statement completes.
func (r *TransactionRepository) GetTransactionByReferenceForUpdate(ctx context.Context, transactionRef string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM payment_transactions WHERE transaction_ref = $1 FOR UPDATE`

	return scanTransaction(r.q.QueryRow(ctx, query, transactionRef), transactionRef)
}

// FindStalePending returns pending transactions last touched more than olderThan ago, oldest first.
func (r *TransactionRepository) FindStalePending(ctx context.Context, olderThan time.Duration, limit int) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM payment_transactions
		WHERE status = 'pending'
		  AND updated_at < $1
		ORDER BY updated_at ASC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, time.Now().Add(-olderThan), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale pending transactions: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Transaction, error) {
		m, err := scanTransactionModel(row)
		if err != nil {
			return nil, err
		}
		return toDomainTransaction(m)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan stale pending transactions: %w", err)
	}

	return results, nil
}

// WithTx runs fn with a repository bound to a single database transaction.
// Nested calls reuse the outer transaction.
func (r *TransactionRepository) WithTx(ctx context.Context, fn func(application.TransactionRepository) error) error {
	if r.inTx {
		return fn(r)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	txRepo := &TransactionRepository{
		pool: r.pool,
		q:    tx,
		inTx: true,
	}

	if err := fn(txRepo); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func scanTransactionModel(row pgx.Row) (TransactionModel, error) {
	var m TransactionModel
	err := row.Scan(
		&m.ID, &m.TransactionRef, &m.ClientID, &m.OrderID, &m.Amount, &m.Currency, &m.Status,
		&m.GatewayName, &m.GatewayRef, &m.NeedsReview, &m.ReviewReason, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func scanTransaction(row pgx.Row, transactionRef string) (*domain.Transaction, error) {
	m, err := scanTransactionModel(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewTransactionNotFoundError(transactionRef)
		}
		if IsUniqueViolation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}
	return toDomainTransaction(m)
}
