package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/paygate/internal/application/services"
	"github.com/DanielPopoola/paygate/internal/domain"
	"github.com/go-playground/validator"
	"github.com/oapi-codegen/runtime"
)

type PaymentInitiator interface {
	InitiatePayment(ctx context.Context, cmd services.InitiatePaymentCommand) (*services.InitiatePaymentResult, error)
}

type Reconciler interface {
	ReconcileWebhook(ctx context.Context, gatewayName string, payload []byte) (*services.ReconciliationOutcome, error)
	VerifyTransaction(ctx context.Context, transactionRef string) (*services.ReconciliationOutcome, error)
}

type TransactionQuery interface {
	GetTransaction(ctx context.Context, transactionRef string) (*domain.Transaction, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

// maxWebhookBody bounds provider payloads read into memory.
const maxWebhookBody = 1 << 20

type Handlers struct {
	initiator  PaymentInitiator
	reconciler Reconciler
	query      TransactionQuery
	health     HealthChecker
	validate   *validator.Validate
	logger     *slog.Logger
}

func NewHandlers(
	initiator PaymentInitiator,
	reconciler Reconciler,
	query TransactionQuery,
	health HealthChecker,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		initiator:  initiator,
		reconciler: reconciler,
		query:      query,
		health:     health,
		validate:   validator.New(),
		logger:     logger,
	}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/payments", h.HandleInitiatePayment)
	mux.HandleFunc("POST /v1/webhooks/{gateway}", h.HandleWebhook)
	mux.HandleFunc("GET /v1/transactions/{transactionRef}", h.HandleGetTransaction)
	mux.HandleFunc("POST /v1/transactions/{transactionRef}/verify", h.HandleVerifyTransaction)
	mux.HandleFunc("GET /healthz", h.HandleHealth)
}

// pathParam binds a simple-style path segment.
func pathParam(r *http.Request, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, r.PathValue(name), &value, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	return value, err
}
