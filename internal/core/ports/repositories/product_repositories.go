package repositories

import (
	"context"

	"github.com/pricehub/product_pricing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductChanges carries the fields of a partial product update.
// Nil fields are left untouched; DescriptionSet distinguishes clearing the
// description from not touching it.
type ProductChanges struct {
	Name              *string
	Description       *string
	DescriptionSet    bool
	Price             *decimal.Decimal
	CurrencyID        *int64
	TaxCost           *decimal.Decimal
	ManufacturingCost *decimal.Decimal
}

// IsEmpty reports whether the update would change nothing.
func (c ProductChanges) IsEmpty() bool {
	return c.Name == nil && !c.DescriptionSet && c.Price == nil &&
		c.CurrencyID == nil && c.TaxCost == nil && c.ManufacturingCost == nil
}

// ProductReader defines read operations for the product store.
type ProductReader interface {
	// FindProductByID retrieves a product with its resolved base currency.
	FindProductByID(ctx context.Context, productID int64) (*domain.Product, error)

	// ListProducts retrieves one page of products (resolved base currency
	// included) plus the total product count. order is "asc" or "desc" by id.
	ListProducts(ctx context.Context, limit, offset int, order string) ([]domain.Product, int64, error)
}

// ProductWriter defines write operations for the product store.
type ProductWriter interface {
	// SaveProduct inserts a new product and returns it with its assigned id.
	SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error)

	// UpdateProduct applies a partial update and returns the updated product.
	UpdateProduct(ctx context.Context, productID int64, changes ProductChanges) (*domain.Product, error)

	// DeleteProduct removes a product and all its price ledger entries.
	DeleteProduct(ctx context.Context, productID int64) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}

// ProductRepositoryWithTx extends ProductRepositoryFacade with transaction capabilities
type ProductRepositoryWithTx interface {
	ProductRepositoryFacade
	TransactionManager
}
