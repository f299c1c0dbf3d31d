package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pricehub/product_pricing_app/internal/apperrors"
	"github.com/pricehub/product_pricing_app/internal/core/domain"
	portsrepo "github.com/pricehub/product_pricing_app/internal/core/ports/repositories"
	"github.com/pricehub/product_pricing_app/internal/models"
	"github.com/pricehub/product_pricing_app/internal/utils/mapping"
)

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for product data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryWithTx {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProductRepositoryWithTx = (*PgxProductRepository)(nil)

const productWithCurrencyColumns = `
	p.product_id, p.name, p.description, p.price, p.currency_id, p.tax_cost, p.manufacturing_cost, p.created_at, p.updated_at,
	c.currency_id, c.name, c.symbol, c.exchange_rate, c.created_at, c.updated_at
`

// scanProductWithCurrency scans one joined products+currencies row.
func scanProductWithCurrency(row pgx.Row) (*domain.Product, error) {
	var modelProd models.Product
	var modelCurr models.Currency
	err := row.Scan(
		&modelProd.ProductID,
		&modelProd.Name,
		&modelProd.Description,
		&modelProd.Price,
		&modelProd.CurrencyID,
		&modelProd.TaxCost,
		&modelProd.ManufacturingCost,
		&modelProd.CreatedAt,
		&modelProd.UpdatedAt,
		&modelCurr.CurrencyID,
		&modelCurr.Name,
		&modelCurr.Symbol,
		&modelCurr.ExchangeRate,
		&modelCurr.CreatedAt,
		&modelCurr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	domainProd := mapping.ToDomainProduct(modelProd)
	domainCurr := mapping.ToDomainCurrency(modelCurr)
	domainProd.Currency = &domainCurr
	return &domainProd, nil
}

// SaveProduct inserts a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	modelProd := mapping.ToModelProduct(product)

	query := `
		INSERT INTO products (name, description, price, currency_id, tax_cost, manufacturing_cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING product_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		modelProd.Name,
		modelProd.Description,
		modelProd.Price,
		modelProd.CurrencyID,
		modelProd.TaxCost,
		modelProd.ManufacturingCost,
		modelProd.CreatedAt,
		modelProd.UpdatedAt,
	).Scan(&modelProd.ProductID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return nil, fmt.Errorf("%w: %q", apperrors.ErrDuplicateName, modelProd.Name)
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return nil, fmt.Errorf("%w: currency %d", apperrors.ErrInvalidReference, modelProd.CurrencyID)
			}
		}
		return nil, fmt.Errorf("failed to save product %q: %w", modelProd.Name, err)
	}

	domainProd := mapping.ToDomainProduct(modelProd)
	return &domainProd, nil
}

// FindProductByID retrieves a product with its base currency resolved.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	query := `
		SELECT ` + productWithCurrencyColumns + `
		FROM products p
		JOIN currencies c ON c.currency_id = p.currency_id
		WHERE p.product_id = $1;
	`
	product, err := scanProductWithCurrency(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by id %d: %w", productID, err)
	}
	return product, nil
}

// ListProducts retrieves one page of products plus the total count.
func (r *PgxProductRepository) ListProducts(ctx context.Context, limit, offset int, order string) ([]domain.Product, int64, error) {
	orderByClause := "ORDER BY p.product_id DESC"
	if order == "asc" {
		orderByClause = "ORDER BY p.product_id ASC"
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM products;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := `
		SELECT ` + productWithCurrencyColumns + `
		FROM products p
		JOIN currencies c ON c.currency_id = p.currency_id
		` + orderByClause + `
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0, limit)
	for rows.Next() {
		product, err := scanProductWithCurrency(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating products: %w", err)
	}

	return products, total, nil
}

// UpdateProduct applies a partial update built only from the supplied fields.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, productID int64, changes portsrepo.ProductChanges) (*domain.Product, error) {
	setClauses := []string{}
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, column+" = $"+strconv.Itoa(len(args)))
	}

	if changes.Name != nil {
		addSet("name", *changes.Name)
	}
	if changes.DescriptionSet {
		addSet("description", changes.Description)
	}
	if changes.Price != nil {
		addSet("price", *changes.Price)
	}
	if changes.CurrencyID != nil {
		addSet("currency_id", *changes.CurrencyID)
	}
	if changes.TaxCost != nil {
		addSet("tax_cost", *changes.TaxCost)
	}
	if changes.ManufacturingCost != nil {
		addSet("manufacturing_cost", *changes.ManufacturingCost)
	}
	addSet("updated_at", time.Now())

	args = append(args, productID)
	query := "UPDATE products SET " + strings.Join(setClauses, ", ") +
		" WHERE product_id = $" + strconv.Itoa(len(args)) + ";"

	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return nil, fmt.Errorf("%w", apperrors.ErrDuplicateName)
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return nil, fmt.Errorf("%w: currency", apperrors.ErrInvalidReference)
			}
		}
		return nil, fmt.Errorf("failed to update product %d: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	return r.FindProductByID(ctx, productID)
}

// DeleteProduct removes a product and its price ledger entries in one
// transaction. The FK also cascades; the explicit delete keeps the ownership
// rule visible and the operation atomic regardless of schema drift.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM product_prices WHERE product_id = $1;`, productID); err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewAppError(500, "failed to delete product prices", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewAppError(500, "failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		_ = r.Rollback(ctx, tx)
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
