package models

import "github.com/shopspring/decimal"

// Currency represents a row of the currencies table.
// Note: ExchangeRate should use a precise decimal type like github.com/shopspring/decimal
type Currency struct {
	CurrencyID   int64           `json:"currencyID"`   // Primary Key
	Name         string          `json:"name"`         // e.g., "US Dollar"
	Symbol       string          `json:"symbol"`       // e.g., "$"
	ExchangeRate decimal.Decimal `json:"exchangeRate"` // Rate relative to the reference unit
	Timestamps
}
