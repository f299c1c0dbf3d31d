package repositories

import (
	"context"

	"github.com/pricehub/product_pricing_app/internal/core/domain"
)

// ProductPriceReader defines read operations for the price ledger.
type ProductPriceReader interface {
	// ListPricesForProduct retrieves all ledger entries for a product with
	// their currencies resolved. Product existence is the caller's concern.
	ListPricesForProduct(ctx context.Context, productID int64) ([]domain.ProductPrice, error)
}

// ProductPriceWriter defines write operations for the price ledger.
type ProductPriceWriter interface {
	// SavePrice inserts a new ledger entry. The (product, currency) uniqueness
	// constraint decides races between concurrent inserts: exactly one wins,
	// the rest get ErrDuplicatePrice.
	SavePrice(ctx context.Context, price domain.ProductPrice) (*domain.ProductPrice, error)
}

// ProductPriceRepositoryFacade combines all price-ledger repository interfaces
type ProductPriceRepositoryFacade interface {
	ProductPriceReader
	ProductPriceWriter
}
