package gateway

import (
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// FlutterWave

type flutterwaveChargeRequest struct {
	Amount      json.Number `json:"amount"`
	Email       string      `json:"email"`
	Currency    string      `json:"currency"`
	TxRef       string      `json:"tx_ref"`
	FullName    string      `json:"fullname"`
	IsPermanent bool        `json:"is_permanent"`
}

type flutterwaveChargeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Meta    struct {
		Authorization struct {
			TransferReference string `json:"transfer_reference"`
			TransferAccount   string `json:"transfer_account"`
			TransferBank      string `json:"transfer_bank"`
			Mode              string `json:"mode"`
		} `json:"authorization"`
	} `json:"meta"`
}

// flutterwaveTransaction is the data object shared by webhooks and verification responses.
type flutterwaveTransaction struct {
	ID       json.Number     `json:"id"`
	TxRef    string          `json:"tx_ref"`
	FlwRef   string          `json:"flw_ref"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Status   string          `json:"status"`
}

type flutterwaveWebhook struct {
	Event string                  `json:"event"`
	Data  *flutterwaveTransaction `json:"data"`
}

type flutterwaveVerifyResponse struct {
	Status  string                  `json:"status"`
	Message string                  `json:"message"`
	Data    *flutterwaveTransaction `json:"data"`
}

// Paystack

type paystackMetadata struct {
	FullName    string `json:"full_name"`
	IsPermanent bool   `json:"is_permanent"`
}

type paystackInitializeRequest struct {
	Email     string           `json:"email"`
	Amount    int64            `json:"amount"`
	Currency  string           `json:"currency"`
	Reference string           `json:"reference"`
	Metadata  paystackMetadata `json:"metadata"`
}

type paystackInitializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// paystackTransaction is the data object shared by webhooks and verification responses. Amount is in minor units.
type paystackTransaction struct {
	ID        json.Number `json:"id"`
	Reference string      `json:"reference"`
	Amount    int64       `json:"amount"`
	Currency  string      `json:"currency"`
	Status    string      `json:"status"`
}

type paystackWebhook struct {
	Event string               `json:"event"`
	Data  *paystackTransaction `json:"data"`
}

type paystackVerifyResponse struct {
	Status  bool                 `json:"status"`
	Message string               `json:"message"`
	Data    *paystackTransaction `json:"data"`
}
