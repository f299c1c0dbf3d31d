package services

import (
	"context"

	"github.com/pricehub/product_pricing_app/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for the currency registry.
// The registry is read-only from the API's perspective; seeding is an
// administrative concern handled outside the service.
type CurrencyReaderSvc interface {
	// GetCurrencyByID retrieves a specific currency by its id.
	GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)

	// ListCurrencies retrieves all registered currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}
