package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/pricehub/product_pricing_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql repositories against one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     newPgxCurrencyRepository(dbPool),
		ProductRepo:      newPgxProductRepository(dbPool),
		ProductPriceRepo: newPgxProductPriceRepository(dbPool),
	}
}
