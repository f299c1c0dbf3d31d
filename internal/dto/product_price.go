package dto

import (
	"time"

	"github.com/pricehub/product_pricing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddPriceRequest defines the data needed to add a ledger price to a product.
// The price must be strictly positive; the service enforces the range.
type AddPriceRequest struct {
	CurrencyID int64           `json:"currencyID" binding:"required,gt=0"`
	Price      decimal.Decimal `json:"price" binding:"required"`
}

// ProductPriceResponse defines the data returned for a price ledger entry.
type ProductPriceResponse struct {
	ProductPriceID int64             `json:"productPriceID"`
	ProductID      int64             `json:"productID"`
	CurrencyID     int64             `json:"currencyID"`
	Price          decimal.Decimal   `json:"price"`
	Currency       *CurrencyResponse `json:"currency,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// ConvertedPriceResponse is an informational conversion of the base price.
type ConvertedPriceResponse struct {
	Currency CurrencyResponse `json:"currency"`
	Price    decimal.Decimal  `json:"price"`
}

// ToProductPriceResponse converts a domain.ProductPrice to ProductPriceResponse DTO
func ToProductPriceResponse(p *domain.ProductPrice) ProductPriceResponse {
	resp := ProductPriceResponse{
		ProductPriceID: p.ProductPriceID,
		ProductID:      p.ProductID,
		CurrencyID:     p.CurrencyID,
		Price:          p.Price,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.Currency != nil {
		curr := ToCurrencyResponse(p.Currency)
		resp.Currency = &curr
	}
	return resp
}

// ToListProductPriceResponse converts a slice of ledger entries to response DTOs
func ToListProductPriceResponse(prices []domain.ProductPrice) []ProductPriceResponse {
	res := make([]ProductPriceResponse, len(prices))
	for i := range prices {
		res[i] = ToProductPriceResponse(&prices[i])
	}
	return res
}

// ToListConvertedPriceResponse converts computed conversions to response DTOs
func ToListConvertedPriceResponse(conversions []domain.ConvertedPrice) []ConvertedPriceResponse {
	res := make([]ConvertedPriceResponse, len(conversions))
	for i, conv := range conversions {
		res[i] = ConvertedPriceResponse{
			Currency: ToCurrencyResponse(&conv.Currency),
			Price:    conv.Price,
		}
	}
	return res
}
