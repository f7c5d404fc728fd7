package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Client is the paying customer, looked up by email.
type Client struct {
	ID       int64
	Email    string
	FullName string
}

// Order is the client's latest order. Only its total is used when charging.
type Order struct {
	ID          int64
	ClientID    int64
	TotalAmount decimal.Decimal
}

type Money struct {
	Amount   decimal.Decimal
	Currency string
}

func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errors.New("amount cannot be negative")
	}
	if amount.IsZero() {
		return Money{}, errors.New("amount must be greater than zero")
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return Money{}, errors.New("currency must be a three letter ISO code")
	}
	return Money{
		Amount:   amount.Round(CurrencyExponent(currency)),
		Currency: currency,
	}, nil
}

// currencies whose smallest unit is the major unit
var zeroDecimalCurrencies = map[string]bool{
	"BIF": true, "CLP": true, "DJF": true, "GNF": true, "JPY": true, "KMF": true,
	"KRW": true, "MGA": true, "PYG": true, "RWF": true, "UGX": true, "VND": true,
	"VUV": true, "XAF": true, "XOF": true, "XPF": true,
}

// CurrencyExponent returns the number of decimal places between the minor and major unit.
func CurrencyExponent(currency string) int32 {
	if zeroDecimalCurrencies[strings.ToUpper(currency)] {
		return 0
	}
	return 2
}

// MinorToMajor converts an integer minor-unit amount (kobo, cents) to major units. The conversion is exact.
func MinorToMajor(minor int64, currency string) decimal.Decimal {
	return decimal.New(minor, -CurrencyExponent(currency))
}

// MajorToMinor converts a major-unit amount to integer minor units, rounding half away from zero
// at the currency's exponent.
func MajorToMinor(amount decimal.Decimal, currency string) int64 {
	exp := CurrencyExponent(currency)
	return amount.Round(exp).Shift(exp).IntPart()
}
