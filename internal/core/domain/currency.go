package domain

import "github.com/shopspring/decimal"

// Currency represents a registered currency in the domain.
// ExchangeRate is the currency's value relative to the reference unit (USD is
// seeded at 1.0); it is informational and not reconciled against ledger prices.
type Currency struct {
	CurrencyID   int64           `json:"currencyID"`
	Name         string          `json:"name"`   // e.g., "US Dollar"
	Symbol       string          `json:"symbol"` // e.g., "$"
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	Timestamps
}
