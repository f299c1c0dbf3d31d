package models

import "github.com/shopspring/decimal"

// Product represents a row of the products table.
type Product struct {
	ProductID         int64            `json:"productID"` // Primary Key
	Name              string           `json:"name"`      // Unique
	Description       *string          `json:"description"`
	Price             decimal.Decimal  `json:"price"`
	CurrencyID        int64            `json:"currencyID"` // FK -> Currency.currencyID
	TaxCost           *decimal.Decimal `json:"taxCost"`
	ManufacturingCost *decimal.Decimal `json:"manufacturingCost"`
	Timestamps
}
