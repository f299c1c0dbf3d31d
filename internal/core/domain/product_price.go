package domain

import "github.com/shopspring/decimal"

// ProductPrice is a ledger entry storing a product's price in one currency.
// At most one entry exists per (product, currency) pair; entries are never
// updated in place and are removed when the owning product is deleted.
type ProductPrice struct {
	ProductPriceID int64           `json:"productPriceID"`
	ProductID      int64           `json:"productID"`
	CurrencyID     int64           `json:"currencyID"`
	Price          decimal.Decimal `json:"price"`
	Currency       *Currency       `json:"currency,omitempty"`
	Timestamps
}

// ConvertedPrice is an informational re-expression of a product's base price
// in another currency, computed from the stored reference rates.
type ConvertedPrice struct {
	Currency Currency        `json:"currency"`
	Price    decimal.Decimal `json:"price"`
}
