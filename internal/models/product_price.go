package models

import "github.com/shopspring/decimal"

// ProductPrice represents a row of the product_prices table.
// Unique on (product_id, currency_id); rows cascade-delete with the product.
type ProductPrice struct {
	ProductPriceID int64           `json:"productPriceID"` // Primary Key
	ProductID      int64           `json:"productID"`      // FK -> Product.productID
	CurrencyID     int64           `json:"currencyID"`     // FK -> Currency.currencyID
	Price          decimal.Decimal `json:"price"`
	Timestamps
}
