package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pricehub/product_pricing_app/internal/apperrors"
	"github.com/pricehub/product_pricing_app/internal/core/domain"
	portsrepo "github.com/pricehub/product_pricing_app/internal/core/ports/repositories"
	portssvc "github.com/pricehub/product_pricing_app/internal/core/ports/services"
	"github.com/pricehub/product_pricing_app/internal/dto"
	"github.com/shopspring/decimal"
)

// convertedPriceScale matches the numeric scale of the ledger price columns.
const convertedPriceScale = 4

// PricingService orchestrates the product lifecycle and the price ledger.
// It is the only component that touches more than one store per operation and
// holds no state between calls, so it is safe for concurrent use. Cross-store
// consistency for concurrent price inserts is delegated to the composite
// uniqueness constraint at the storage layer, not to in-process locking.
type PricingService struct {
	productRepo  portsrepo.ProductRepositoryFacade
	priceRepo    portsrepo.ProductPriceRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
}

// NewPricingService creates a new PricingService.
func NewPricingService(
	productRepo portsrepo.ProductRepositoryFacade,
	priceRepo portsrepo.ProductPriceRepositoryFacade,
	currencyRepo portsrepo.CurrencyReader,
) *PricingService {
	return &PricingService{
		productRepo:  productRepo,
		priceRepo:    priceRepo,
		currencyRepo: currencyRepo,
	}
}

// ListProducts retrieves one page of products, newest id first by default.
func (s *PricingService) ListProducts(ctx context.Context, pageSize, pageNumber int, order string) (*portssvc.ProductPage, error) {
	if pageSize < 1 {
		pageSize = 1
	}
	if pageNumber < 1 {
		pageNumber = 1
	}
	if order != "asc" {
		order = "desc"
	}
	offset := (pageNumber - 1) * pageSize

	products, total, err := s.productRepo.ListProducts(ctx, pageSize, offset, order)
	if err != nil {
		return nil, fmt.Errorf("failed to list products in service: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return &portssvc.ProductPage{Products: products, Total: total}, nil
}

// GetProduct retrieves a product with its resolved base currency.
func (s *PricingService) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d in service: %w", productID, err)
	}
	return product, nil
}

// CreateProduct validates the request, verifies the base currency reference
// and persists the product. Name uniqueness is enforced by the product store.
func (s *PricingService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	if req.Price.IsNegative() {
		return nil, apperrors.NewValidationError("price cannot be negative")
	}
	if req.TaxCost != nil && req.TaxCost.IsNegative() {
		return nil, apperrors.NewValidationError("tax cost cannot be negative")
	}
	if req.ManufacturingCost != nil && req.ManufacturingCost.IsNegative() {
		return nil, apperrors.NewValidationError("manufacturing cost cannot be negative")
	}

	currency, err := s.currencyRepo.FindCurrencyByID(ctx, req.CurrencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %d", apperrors.ErrInvalidReference, req.CurrencyID)
		}
		return nil, fmt.Errorf("failed to validate currency %d: %w", req.CurrencyID, err)
	}

	now := time.Now()
	product := domain.Product{
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		CurrencyID:        req.CurrencyID,
		TaxCost:           req.TaxCost,
		ManufacturingCost: req.ManufacturingCost,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	created, err := s.productRepo.SaveProduct(ctx, product)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateName) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create product in service: %w", err)
	}
	created.Currency = currency
	return created, nil
}

// UpdateProduct applies a partial update: only supplied fields change.
// The product must exist before any field is validated.
func (s *PricingService) UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest) (*domain.Product, error) {
	existing, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %d for update: %w", productID, err)
	}

	if req.Price != nil && req.Price.IsNegative() {
		return nil, apperrors.NewValidationError("price cannot be negative")
	}
	if req.TaxCost != nil && req.TaxCost.IsNegative() {
		return nil, apperrors.NewValidationError("tax cost cannot be negative")
	}
	if req.ManufacturingCost != nil && req.ManufacturingCost.IsNegative() {
		return nil, apperrors.NewValidationError("manufacturing cost cannot be negative")
	}
	if req.Name != nil && *req.Name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}

	if req.CurrencyID != nil && *req.CurrencyID != existing.CurrencyID {
		if _, err := s.currencyRepo.FindCurrencyByID(ctx, *req.CurrencyID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: currency %d", apperrors.ErrInvalidReference, *req.CurrencyID)
			}
			return nil, fmt.Errorf("failed to validate currency %d: %w", *req.CurrencyID, err)
		}
	}

	changes := portsrepo.ProductChanges{
		Name:              req.Name,
		Price:             req.Price,
		CurrencyID:        req.CurrencyID,
		TaxCost:           req.TaxCost,
		ManufacturingCost: req.ManufacturingCost,
	}
	if req.Description != nil {
		changes.Description = req.Description
		changes.DescriptionSet = true
	}
	if changes.IsEmpty() {
		return existing, nil
	}

	updated, err := s.productRepo.UpdateProduct(ctx, productID, changes)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateName) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update product %d in service: %w", productID, err)
	}
	return updated, nil
}

// DeleteProduct removes a product together with its price ledger entries.
func (s *PricingService) DeleteProduct(ctx context.Context, productID int64) error {
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete product %d in service: %w", productID, err)
	}
	return nil
}

// GetPrices retrieves the price ledger of a product with resolved currencies.
func (s *PricingService) GetPrices(ctx context.Context, productID int64) ([]domain.ProductPrice, error) {
	if _, err := s.productRepo.FindProductByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("failed to find product %d for price listing: %w", productID, err)
	}

	prices, err := s.priceRepo.ListPricesForProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for product %d: %w", productID, err)
	}
	if prices == nil {
		prices = []domain.ProductPrice{}
	}
	return prices, nil
}

// AddPrice inserts a ledger entry for (product, currency). The checks run in
// a fixed order so exactly one error is reported deterministically when
// several conditions fail at once: product existence, price validity,
// currency existence, duplicate entry. The duplicate check itself is the
// storage-level uniqueness constraint, which also decides concurrent inserts
// for the same pair: one wins, the other observes ErrDuplicatePrice.
func (s *PricingService) AddPrice(ctx context.Context, productID int64, req dto.AddPriceRequest) (*domain.ProductPrice, error) {
	if _, err := s.productRepo.FindProductByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("failed to find product %d for price insert: %w", productID, err)
	}

	if req.Price.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("price must be greater than zero")
	}

	exists, err := s.currencyRepo.CurrencyExists(ctx, req.CurrencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to check currency %d: %w", req.CurrencyID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: currency %d", apperrors.ErrInvalidReference, req.CurrencyID)
	}

	now := time.Now()
	entry := domain.ProductPrice{
		ProductID:  productID,
		CurrencyID: req.CurrencyID,
		Price:      req.Price,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	created, err := s.priceRepo.SavePrice(ctx, entry)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicatePrice) || errors.Is(err, apperrors.ErrInvalidReference) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save price for product %d: %w", productID, err)
	}
	return created, nil
}

// ConvertedPrices re-expresses the base price in every other registered
// currency through the reference rates: price / rate(base) * rate(target).
// Informational only; ledger entries are not reconciled against it.
func (s *PricingService) ConvertedPrices(ctx context.Context, productID int64) ([]domain.ConvertedPrice, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %d for conversion: %w", productID, err)
	}
	if product.Currency == nil || product.Currency.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewAppError(500, "base currency has no usable exchange rate", nil)
	}

	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies for conversion: %w", err)
	}

	referencePrice := product.Price.Div(product.Currency.ExchangeRate)
	conversions := make([]domain.ConvertedPrice, 0, len(currencies))
	for _, currency := range currencies {
		if currency.CurrencyID == product.CurrencyID {
			continue
		}
		conversions = append(conversions, domain.ConvertedPrice{
			Currency: currency,
			Price:    referencePrice.Mul(currency.ExchangeRate).Round(convertedPriceScale),
		})
	}
	return conversions, nil
}
