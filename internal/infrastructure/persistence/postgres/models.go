package postgres

import (
	"time"
)

// Numeric columns travel as text so no precision is lost between NUMERIC and decimal.Decimal.

type ClientModel struct {
	ID       int64
	Email    string
	FullName string
}

type OrderModel struct {
	ID          int64
	ClientID    int64
	TotalAmount *string
}

type TransactionModel struct {
	ID             int64
	TransactionRef string
	ClientID       int64
	OrderID        int64
	Amount         string
	Currency       string
	Status         string
	GatewayName    string
	GatewayRef     *string
	NeedsReview    bool
	ReviewReason   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
