package services

import (
	"context"
	"fmt"

	"github.com/pricehub/product_pricing_app/internal/core/domain"
	portsrepo "github.com/pricehub/product_pricing_app/internal/core/ports/repositories"
)

// CurrencyService exposes read access to the currency registry.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyReader
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyReader) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

// GetCurrencyByID retrieves a specific currency by its id.
func (s *CurrencyService) GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %d in service: %w", currencyID, err)
	}
	return currency, nil
}

// ListCurrencies retrieves all registered currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
