package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/config"
	"github.com/DanielPopoola/paygate/internal/domain"
	"github.com/goccy/go-json"
)

const PaystackName = "paystack"

// Paystack talks to the Paystack transaction API, which counts amounts in minor units (kobo for NGN).
type Paystack struct {
	client *httpClient
}

func NewPaystack(cfg config.GatewayConfig, opts ...Option) *Paystack {
	return &Paystack{
		client: newHTTPClient(PaystackName, cfg.BaseURL, cfg.SecretKey, opts...),
	}
}

var _ application.Gateway = (*Paystack)(nil)

func (p *Paystack) Name() string {
	return PaystackName
}

func (p *Paystack) ProcessPayment(ctx context.Context, req application.PaymentRequest) (*application.PaymentResult, error) {
	endpoint := fmt.Sprintf("%s/transaction/initialize", p.client.baseURL)

	body := paystackInitializeRequest{
		Email:     req.ClientEmail,
		Amount:    domain.MajorToMinor(req.Amount, req.Currency),
		Currency:  req.Currency,
		Reference: req.TransactionRef,
		Metadata: paystackMetadata{
			FullName:    req.ClientName,
			IsPermanent: req.IsPermanent,
		},
	}

	resp, raw, err := sendRequest[paystackInitializeRequest, paystackInitializeResponse](p.client, ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return rejectionOrError(raw, err)
	}

	result := &application.PaymentResult{
		Success:     resp.Status,
		Message:     resp.Message,
		RawResponse: raw,
	}
	if result.Success {
		result.GatewayRef = resp.Data.AccessCode
	}
	return result, nil
}

func (p *Paystack) HandleWebhook(payload []byte) (*domain.GatewayEvent, error) {
	var hook paystackWebhook
	if err := json.Unmarshal(payload, &hook); err != nil {
		return nil, domain.NewInvalidWebhookPayloadError(PaystackName, err)
	}
	if hook.Data == nil {
		return nil, domain.NewInvalidWebhookPayloadError(PaystackName, errors.New("missing data object"))
	}
	return hook.Data.toEvent(), nil
}

func (p *Paystack) VerifyPayment(ctx context.Context, transactionRef string) (*application.VerificationResult, error) {
	endpoint := fmt.Sprintf("%s/transaction/verify/%s", p.client.baseURL, url.PathEscape(transactionRef))

	resp, raw, err := sendRequest[any, paystackVerifyResponse](p.client, ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if !resp.Status || resp.Data == nil {
		return nil, fmt.Errorf("paystack verification for %s unsuccessful: %s", transactionRef, resp.Message)
	}

	return &application.VerificationResult{
		Event:       *resp.Data.toEvent(),
		RawResponse: raw,
	}, nil
}

func (t *paystackTransaction) toEvent() *domain.GatewayEvent {
	currency := strings.ToUpper(t.Currency)
	return &domain.GatewayEvent{
		TransactionRef: t.Reference,
		GatewayRef:     t.ID.String(),
		Status:         normalizeStatus(t.Status, paystackSuccess, paystackFailed),
		Amount:         domain.MinorToMajor(t.Amount, currency),
		Currency:       currency,
	}
}
