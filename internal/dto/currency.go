package dto

import (
	"time"

	"github.com/pricehub/product_pricing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID   int64           `json:"currencyID"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID:   curr.CurrencyID,
		Name:         curr.Name,
		Symbol:       curr.Symbol,
		ExchangeRate: curr.ExchangeRate,
		CreatedAt:    curr.CreatedAt,
		UpdatedAt:    curr.UpdatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain Currencies to response DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
