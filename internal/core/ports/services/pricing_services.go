package services

import (
	"context"

	"github.com/pricehub/product_pricing_app/internal/core/domain"
	"github.com/pricehub/product_pricing_app/internal/dto"
)

// ProductPage is one page of products plus the total count across all pages.
type ProductPage struct {
	Products []domain.Product
	Total    int64
}

// PricingReaderSvc defines read operations over products and their prices.
type PricingReaderSvc interface {
	// ListProducts retrieves one page of products with resolved base
	// currencies. order is "asc" or "desc" by product id, default desc.
	ListProducts(ctx context.Context, pageSize, pageNumber int, order string) (*ProductPage, error)

	// GetProduct retrieves a single product by id.
	GetProduct(ctx context.Context, productID int64) (*domain.Product, error)

	// GetPrices retrieves the price ledger entries of a product.
	GetPrices(ctx context.Context, productID int64) ([]domain.ProductPrice, error)

	// ConvertedPrices re-expresses the product's base price in every
	// registered currency using the stored reference rates. Informational
	// only; not reconciled with ledger entries.
	ConvertedPrices(ctx context.Context, productID int64) ([]domain.ConvertedPrice, error)
}

// PricingWriterSvc defines the product lifecycle and ledger write operations.
type PricingWriterSvc interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)

	// UpdateProduct applies a partial update to an existing product.
	UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest) (*domain.Product, error)

	// DeleteProduct removes a product and all its ledger entries.
	DeleteProduct(ctx context.Context, productID int64) error

	// AddPrice inserts a price ledger entry for a product.
	AddPrice(ctx context.Context, productID int64, req dto.AddPriceRequest) (*domain.ProductPrice, error)
}

// PricingSvcFacade combines all pricing-related service interfaces
type PricingSvcFacade interface {
	PricingReaderSvc
	PricingWriterSvc
}
