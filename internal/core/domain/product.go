package domain

import "github.com/shopspring/decimal"

// Product represents a product with its canonical price in a base currency.
// Currency is the resolved base currency when the product was loaded with it.
type Product struct {
	ProductID         int64            `json:"productID"`
	Name              string           `json:"name"` // unique across products, case-sensitive
	Description       *string          `json:"description,omitempty"`
	Price             decimal.Decimal  `json:"price"`
	CurrencyID        int64            `json:"currencyID"`
	TaxCost           *decimal.Decimal `json:"taxCost,omitempty"`
	ManufacturingCost *decimal.Decimal `json:"manufacturingCost,omitempty"`
	Currency          *Currency        `json:"currency,omitempty"`
	Timestamps
}
