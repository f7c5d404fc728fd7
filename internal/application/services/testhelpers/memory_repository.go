package testhelpers

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/domain"
	"github.com/shopspring/decimal"
)

type memoryOrder struct {
	order     domain.Order
	hasTotal  bool
	createdAt time.Time
}

// MemoryRepository is an in-process TransactionRepository for service tests.
// WithTx holds a single mutex for its whole duration, which serializes reconciliations the way row locks do.
type MemoryRepository struct {
	txMu sync.Mutex
	mu   sync.Mutex

	clients      []domain.Client
	orders       []memoryOrder
	transactions map[string]*domain.Transaction
	nextID       int64

	// CreateErr and UpdateErr, when set, are returned by the matching method.
	CreateErr error
	UpdateErr error

	Updates int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		transactions: make(map[string]*domain.Transaction),
	}
}

var _ application.TransactionRepository = (*MemoryRepository)(nil)

func (m *MemoryRepository) AddClient(email, fullName string) *domain.Client {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	c := domain.Client{ID: m.nextID, Email: email, FullName: fullName}
	m.clients = append(m.clients, c)
	return &c
}

// AddOrder records an order. An empty total stores an order without an amount.
func (m *MemoryRepository) AddOrder(clientID int64, total string, createdAt time.Time) *domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	o := memoryOrder{
		order:     domain.Order{ID: m.nextID, ClientID: clientID},
		createdAt: createdAt,
	}
	if total != "" {
		o.order.TotalAmount = decimal.RequireFromString(total)
		o.hasTotal = true
	}
	m.orders = append(m.orders, o)
	return &o.order
}

// Transaction returns a copy of the stored transaction, or nil.
func (m *MemoryRepository) Transaction(ref string) *domain.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()

	txn, ok := m.transactions[ref]
	if !ok {
		return nil
	}
	cp := *txn
	return &cp
}

func (m *MemoryRepository) Transactions() []*domain.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Transaction, 0, len(m.transactions))
	for _, txn := range m.transactions {
		cp := *txn
		out = append(out, &cp)
	}
	return out
}

// SetUpdatedAt backdates a transaction so it looks stale.
func (m *MemoryRepository) SetUpdatedAt(ref string, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if txn, ok := m.transactions[ref]; ok {
		txn.UpdatedAt = at
	}
}

func (m *MemoryRepository) GetClientByEmail(_ context.Context, email string) (*domain.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.clients {
		if strings.EqualFold(c.Email, strings.TrimSpace(email)) {
			cp := c
			return &cp, nil
		}
	}
	return nil, domain.NewClientNotFoundError(email)
}

func (m *MemoryRepository) GetLatestOrderAndAmountForClient(_ context.Context, clientID int64) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var latest *memoryOrder
	for i := range m.orders {
		o := &m.orders[i]
		if o.order.ClientID != clientID {
			continue
		}
		if latest == nil || o.createdAt.After(latest.createdAt) ||
			(o.createdAt.Equal(latest.createdAt) && o.order.ID > latest.order.ID) {
			latest = o
		}
	}
	if latest == nil || !latest.hasTotal {
		return nil, domain.NewNoOrderFoundError(clientID)
	}
	cp := latest.order
	return &cp, nil
}

func (m *MemoryRepository) CreatePaymentTransaction(_ context.Context, txn *domain.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateErr != nil {
		return m.CreateErr
	}
	if txn.GatewayRef != nil && m.gatewayRefTaken(*txn.GatewayRef, "") {
		return domain.NewDuplicateGatewayRefError(*txn.GatewayRef)
	}

	m.nextID++
	txn.ID = m.nextID
	cp := *txn
	m.transactions[txn.TransactionRef] = &cp
	return nil
}

func (m *MemoryRepository) UpdatePaymentTransaction(
	_ context.Context,
	ref string,
	patch application.TransactionPatch,
) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}

	txn, ok := m.transactions[ref]
	if !ok {
		return nil, domain.NewTransactionNotFoundError(ref)
	}
	if patch.IsEmpty() {
		cp := *txn
		return &cp, nil
	}

	if patch.GatewayRef != nil && m.gatewayRefTaken(*patch.GatewayRef, ref) {
		return nil, domain.NewDuplicateGatewayRefError(*patch.GatewayRef)
	}

	if patch.Status != nil {
		txn.Status = *patch.Status
	}
	if patch.GatewayRef != nil {
		gatewayRef := *patch.GatewayRef
		txn.GatewayRef = &gatewayRef
	}
	if patch.Amount != nil {
		txn.Amount = *patch.Amount
	}
	if patch.NeedsReview != nil {
		txn.NeedsReview = *patch.NeedsReview
	}
	if patch.ReviewReason != nil {
		reason := *patch.ReviewReason
		txn.ReviewReason = &reason
	}
	txn.UpdatedAt = time.Now().UTC()
	m.Updates++

	cp := *txn
	return &cp, nil
}

func (m *MemoryRepository) GetTransactionByReference(_ context.Context, ref string) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	txn, ok := m.transactions[ref]
	if !ok {
		return nil, domain.NewTransactionNotFoundError(ref)
	}
	cp := *txn
	return &cp, nil
}

func (m *MemoryRepository) GetTransactionByReferenceForUpdate(ctx context.Context, ref string) (*domain.Transaction, error) {
	return m.GetTransactionByReference(ctx, ref)
}

func (m *MemoryRepository) FindStalePending(_ context.Context, olderThan time.Duration, limit int) ([]*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	var out []*domain.Transaction
	for _, txn := range m.transactions {
		if txn.Status == domain.StatusPending && txn.UpdatedAt.Before(cutoff) {
			cp := *txn
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *domain.Transaction) int {
		return a.UpdatedAt.Compare(b.UpdatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryRepository) WithTx(_ context.Context, fn func(application.TransactionRepository) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	return fn(&memoryTx{MemoryRepository: m})
}

func (m *MemoryRepository) gatewayRefTaken(gatewayRef, exceptRef string) bool {
	for ref, txn := range m.transactions {
		if ref != exceptRef && txn.GatewayRef != nil && *txn.GatewayRef == gatewayRef {
			return true
		}
	}
	return false
}

// memoryTx is the repository handed to WithTx callbacks; nested WithTx calls reuse the held lock.
type memoryTx struct {
	*MemoryRepository
}

func (tx *memoryTx) WithTx(_ context.Context, fn func(application.TransactionRepository) error) error {
	return fn(tx)
}
