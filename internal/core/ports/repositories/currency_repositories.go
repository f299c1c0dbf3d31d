package repositories

import (
	"context"

	"github.com/pricehub/product_pricing_app/internal/core/domain"
)

// CurrencyReader defines read operations for the currency registry.
type CurrencyReader interface {
	// FindCurrencyByID retrieves a specific currency by its id.
	FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)

	// CurrencyExists reports whether a currency with the given id is registered.
	CurrencyExists(ctx context.Context, currencyID int64) (bool, error)

	// ListCurrencies retrieves all registered currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for the currency registry.
// Seeding is an administrative concern; the API itself never writes currencies.
type CurrencyWriter interface {
	// SaveCurrency persists a currency (upsert on name+symbol).
	SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
