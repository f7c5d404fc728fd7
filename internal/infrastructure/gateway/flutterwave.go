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

const FlutterwaveName = "flutterwave"

// Flutterwave charges clients through FlutterWave bank transfers. Amounts travel in major units.
type Flutterwave struct {
	client *httpClient
}

func NewFlutterwave(cfg config.GatewayConfig, opts ...Option) *Flutterwave {
	return &Flutterwave{
		client: newHTTPClient(FlutterwaveName, cfg.BaseURL, cfg.SecretKey, opts...),
	}
}

var _ application.Gateway = (*Flutterwave)(nil)

func (f *Flutterwave) Name() string {
	return FlutterwaveName
}

func (f *Flutterwave) ProcessPayment(ctx context.Context, req application.PaymentRequest) (*application.PaymentResult, error) {
	endpoint := fmt.Sprintf("%s/v3/charges?type=bank_transfer", f.client.baseURL)

	body := flutterwaveChargeRequest{
		Amount:      json.Number(req.Amount.StringFixed(domain.CurrencyExponent(req.Currency))),
		Email:       req.ClientEmail,
		Currency:    req.Currency,
		TxRef:       req.TransactionRef,
		FullName:    req.ClientName,
		IsPermanent: req.IsPermanent,
	}

	resp, raw, err := sendRequest[flutterwaveChargeRequest, flutterwaveChargeResponse](f.client, ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return rejectionOrError(raw, err)
	}

	result := &application.PaymentResult{
		Success:     resp.Status == "success",
		Message:     resp.Message,
		RawResponse: raw,
	}
	if result.Success {
		result.GatewayRef = resp.Meta.Authorization.TransferReference
	}
	return result, nil
}

func (f *Flutterwave) HandleWebhook(payload []byte) (*domain.GatewayEvent, error) {
	var hook flutterwaveWebhook
	if err := json.Unmarshal(payload, &hook); err != nil {
		return nil, domain.NewInvalidWebhookPayloadError(FlutterwaveName, err)
	}
	if hook.Data == nil {
		return nil, domain.NewInvalidWebhookPayloadError(FlutterwaveName, errors.New("missing data object"))
	}
	return hook.Data.toEvent(), nil
}

func (f *Flutterwave) VerifyPayment(ctx context.Context, transactionRef string) (*application.VerificationResult, error) {
	endpoint := fmt.Sprintf("%s/v3/transactions/verify_by_reference?tx_ref=%s", f.client.baseURL, url.QueryEscape(transactionRef))

	resp, raw, err := sendRequest[any, flutterwaveVerifyResponse](f.client, ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if resp.Status != "success" || resp.Data == nil {
		return nil, fmt.Errorf("flutterwave verification for %s unsuccessful: %s", transactionRef, resp.Message)
	}

	return &application.VerificationResult{
		Event:       *resp.Data.toEvent(),
		RawResponse: raw,
	}, nil
}

func (t *flutterwaveTransaction) toEvent() *domain.GatewayEvent {
	gatewayRef := t.FlwRef
	if gatewayRef == "" {
		gatewayRef = t.ID.String()
	}
	currency := strings.ToUpper(t.Currency)
	// amounts arrive as JSON floats
	return &domain.GatewayEvent{
		TransactionRef: t.TxRef,
		GatewayRef:     gatewayRef,
		Status:         normalizeStatus(t.Status, flutterwaveSuccess, flutterwaveFailed),
		Amount:         t.Amount.Round(domain.CurrencyExponent(currency)),
		Currency:       currency,
	}
}

// rejectionOrError turns a 4xx answer into a declined payment and passes everything else through.
func rejectionOrError(raw []byte, err error) (*application.PaymentResult, error) {
	if gwErr, ok := IsGatewayError(err); ok && gwErr.IsRejection() {
		return &application.PaymentResult{
			Success:     false,
			Message:     gwErr.Message,
			RawResponse: raw,
		}, nil
	}
	return nil, err
}
