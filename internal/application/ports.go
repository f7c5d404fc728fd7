package application

import (
	"context"
	"time"

	"github.com/DanielPopoola/paygate/internal/domain"
	"github.com/shopspring/decimal"
)

// Gateway is the port for one payment provider.
type Gateway interface {
	Name() string
	// ProcessPayment makes exactly one outbound call. Transport failures are returned as errors,
	// confirmed rejections as a result with Success=false.
	ProcessPayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error)
	// HandleWebhook normalizes a provider payload. It performs no I/O.
	HandleWebhook(payload []byte) (*domain.GatewayEvent, error)
	VerifyPayment(ctx context.Context, transactionRef string) (*VerificationResult, error)
}

// GatewaySelector picks the adapter for a request.
type GatewaySelector interface {
	SelectGateway(criteria SelectionCriteria) (Gateway, error)
	Get(name string) (Gateway, error)
}

// TransactionRepository is the port for persistence.
type TransactionRepository interface {
	GetClientByEmail(ctx context.Context, email string) (*domain.Client, error)
	GetLatestOrderAndAmountForClient(ctx context.Context, clientID int64) (*domain.Order, error)
	CreatePaymentTransaction(ctx context.Context, txn *domain.Transaction) error
	UpdatePaymentTransaction(ctx context.Context, transactionRef string, patch TransactionPatch) (*domain.Transaction, error)
	GetTransactionByReference(ctx context.Context, transactionRef string) (*domain.Transaction, error)
	GetTransactionByReferenceForUpdate(ctx context.Context, transactionRef string) (*domain.Transaction, error)
	FindStalePending(ctx context.Context, olderThan time.Duration, limit int) ([]*domain.Transaction, error)
	WithTx(ctx context.Context, fn func(TransactionRepository) error) error
}

// DeliveryGuard remembers webhook deliveries that were already reconciled.
type DeliveryGuard interface {
	Seen(ctx context.Context, key string) (bool, error)
	Remember(ctx context.Context, key string) error
}

type SelectionCriteria struct {
	GatewayName string
	Currency    string
}

type PaymentRequest struct {
	TransactionRef string
	Amount         decimal.Decimal
	Currency       string
	ClientEmail    string
	ClientName     string
	IsPermanent    bool
}

type PaymentResult struct {
	Success     bool
	GatewayRef  string
	Message     string
	RawResponse []byte
}

type VerificationResult struct {
	Event       domain.GatewayEvent
	RawResponse []byte
}

// TransactionPatch is a partial update. Nil fields are left unchanged.
type TransactionPatch struct {
	Status       *domain.TransactionStatus
	GatewayRef   *string
	Amount       *decimal.Decimal
	NeedsReview  *bool
	ReviewReason *string
}

func (p TransactionPatch) IsEmpty() bool {
	return p.Status == nil && p.GatewayRef == nil && p.Amount == nil &&
		p.NeedsReview == nil && p.ReviewReason == nil
}

// PatchFrom builds the patch that moves before's persisted fields to after's.
func PatchFrom(before, after *domain.Transaction) TransactionPatch {
	var patch TransactionPatch
	if before.Status != after.Status {
		status := after.Status
		patch.Status = &status
	}
	if after.GatewayRef != nil && (before.GatewayRef == nil || *before.GatewayRef != *after.GatewayRef) {
		ref := *after.GatewayRef
		patch.GatewayRef = &ref
	}
	if !before.Amount.Equal(after.Amount) {
		amount := after.Amount
		patch.Amount = &amount
	}
	if before.NeedsReview != after.NeedsReview {
		flag := after.NeedsReview
		patch.NeedsReview = &flag
	}
	if after.ReviewReason != nil && before.ReviewReason == nil {
		reason := *after.ReviewReason
		patch.ReviewReason = &reason
	}
	return patch
}
