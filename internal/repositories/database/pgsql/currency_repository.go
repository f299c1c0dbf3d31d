package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pricehub/product_pricing_app/internal/apperrors"
	"github.com/pricehub/product_pricing_app/internal/core/domain"
	portsrepo "github.com/pricehub/product_pricing_app/internal/core/ports/repositories"
	"github.com/pricehub/product_pricing_app/internal/models"
	"github.com/pricehub/product_pricing_app/internal/utils/mapping"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts or updates a currency (used by administrative seeding).
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (name, symbol, exchange_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name, symbol) DO UPDATE SET
			exchange_rate = EXCLUDED.exchange_rate,
			updated_at = EXCLUDED.updated_at
		RETURNING currency_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		modelCurr.Name,
		modelCurr.Symbol,
		modelCurr.ExchangeRate,
		modelCurr.CreatedAt,
		modelCurr.UpdatedAt,
	).Scan(&modelCurr.CurrencyID)

	if err != nil {
		return nil, fmt.Errorf("failed to save currency %q: %w", modelCurr.Name, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// FindCurrencyByID retrieves a currency by its id.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	query := `
		SELECT currency_id, name, symbol, exchange_rate, created_at, updated_at
		FROM currencies
		WHERE currency_id = $1;
	`
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, currencyID).Scan(
		&modelCurr.CurrencyID,
		&modelCurr.Name,
		&modelCurr.Symbol,
		&modelCurr.ExchangeRate,
		&modelCurr.CreatedAt,
		&modelCurr.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by id %d: %w", currencyID, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// CurrencyExists reports whether a currency with the given id is registered.
func (r *PgxCurrencyRepository) CurrencyExists(ctx context.Context, currencyID int64) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM currencies WHERE currency_id = $1);`,
		currencyID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check currency %d: %w", currencyID, err)
	}
	return exists, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT currency_id, name, symbol, exchange_rate, created_at, updated_at
		FROM currencies
		ORDER BY currency_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.CurrencyID,
			&currency.Name,
			&currency.Symbol,
			&currency.ExchangeRate,
			&currency.CreatedAt,
			&currency.UpdatedAt,
		)
		return currency, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Currency{}, nil
		}
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
