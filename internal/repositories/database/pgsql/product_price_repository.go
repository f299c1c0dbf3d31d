package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pricehub/product_pricing_app/internal/apperrors"
	"github.com/pricehub/product_pricing_app/internal/core/domain"
	portsrepo "github.com/pricehub/product_pricing_app/internal/core/ports/repositories"
	"github.com/pricehub/product_pricing_app/internal/models"
	"github.com/pricehub/product_pricing_app/internal/utils/mapping"
)

type PgxProductPriceRepository struct {
	BaseRepository
}

// newPgxProductPriceRepository creates a new repository for price ledger data.
func newPgxProductPriceRepository(pool *pgxpool.Pool) portsrepo.ProductPriceRepositoryFacade {
	return &PgxProductPriceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProductPriceRepositoryFacade = (*PgxProductPriceRepository)(nil)

// ListPricesForProduct retrieves all ledger entries of a product with their
// currencies resolved.
func (r *PgxProductPriceRepository) ListPricesForProduct(ctx context.Context, productID int64) ([]domain.ProductPrice, error) {
	query := `
		SELECT pp.product_price_id, pp.product_id, pp.currency_id, pp.price, pp.created_at, pp.updated_at,
			c.currency_id, c.name, c.symbol, c.exchange_rate, c.created_at, c.updated_at
		FROM product_prices pp
		JOIN currencies c ON c.currency_id = pp.currency_id
		WHERE pp.product_id = $1
		ORDER BY pp.product_price_id;
	`
	rows, err := r.Pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query prices for product %d: %w", productID, err)
	}
	defer rows.Close()

	prices := []domain.ProductPrice{}
	for rows.Next() {
		var modelPrice models.ProductPrice
		var modelCurr models.Currency
		err := rows.Scan(
			&modelPrice.ProductPriceID,
			&modelPrice.ProductID,
			&modelPrice.CurrencyID,
			&modelPrice.Price,
			&modelPrice.CreatedAt,
			&modelPrice.UpdatedAt,
			&modelCurr.CurrencyID,
			&modelCurr.Name,
			&modelCurr.Symbol,
			&modelCurr.ExchangeRate,
			&modelCurr.CreatedAt,
			&modelCurr.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product price: %w", err)
		}
		domainPrice := mapping.ToDomainProductPrice(modelPrice)
		domainCurr := mapping.ToDomainCurrency(modelCurr)
		domainPrice.Currency = &domainCurr
		prices = append(prices, domainPrice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product prices: %w", err)
	}

	return prices, nil
}

// SavePrice inserts a new ledger entry. The composite unique index on
// (product_id, currency_id) is the atomic check-and-insert: when two
// concurrent inserts target the same pair, the database commits exactly one
// and the other surfaces ErrDuplicatePrice here.
func (r *PgxProductPriceRepository) SavePrice(ctx context.Context, price domain.ProductPrice) (*domain.ProductPrice, error) {
	modelPrice := mapping.ToModelProductPrice(price)

	query := `
		INSERT INTO product_prices (product_id, currency_id, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING product_price_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		modelPrice.ProductID,
		modelPrice.CurrencyID,
		modelPrice.Price,
		modelPrice.CreatedAt,
		modelPrice.UpdatedAt,
	).Scan(&modelPrice.ProductPriceID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return nil, fmt.Errorf("%w: product %d, currency %d",
					apperrors.ErrDuplicatePrice, modelPrice.ProductID, modelPrice.CurrencyID)
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return nil, fmt.Errorf("%w: product %d or currency %d",
					apperrors.ErrInvalidReference, modelPrice.ProductID, modelPrice.CurrencyID)
			}
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewAppError(500, "insert returned no id", err)
		}
		return nil, fmt.Errorf("failed to save price for product %d: %w", modelPrice.ProductID, err)
	}

	domainPrice := mapping.ToDomainProductPrice(modelPrice)
	return &domainPrice, nil
}
