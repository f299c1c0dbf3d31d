package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pricehub/product_pricing_app/internal/core/domain"
	"github.com/pricehub/product_pricing_app/internal/platform/config"
	"github.com/pricehub/product_pricing_app/internal/repositories/database/pgsql"
	"github.com/pricehub/product_pricing_app/pkg/database"
)

// Seeds the currency registry. Currency creation is an administrative
// concern; the API itself never writes currencies. Safe to re-run: the
// repository upserts on (name, symbol).
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)

	// Rates are relative to the reference unit; US dollar is the reference.
	now := time.Now()
	currencies := []domain.Currency{
		{Name: "US Dollar", Symbol: "$", ExchangeRate: decimal.RequireFromString("1.000000")},
		{Name: "Euro", Symbol: "€", ExchangeRate: decimal.RequireFromString("0.930000")},
		{Name: "Chilean Peso", Symbol: "CLP$", ExchangeRate: decimal.RequireFromString("950.500000")},
		{Name: "Mexican Peso", Symbol: "MX$", ExchangeRate: decimal.RequireFromString("17.200000")},
		{Name: "Pound Sterling", Symbol: "£", ExchangeRate: decimal.RequireFromString("0.790000")},
	}

	for _, currency := range currencies {
		currency.CreatedAt = now
		currency.UpdatedAt = now
		saved, err := repos.CurrencyRepo.SaveCurrency(ctx, currency)
		if err != nil {
			logger.Error("Failed to seed currency",
				slog.String("name", currency.Name), slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Seeded currency",
			slog.Int64("currency_id", saved.CurrencyID),
			slog.String("name", saved.Name),
			slog.String("rate", saved.ExchangeRate.String()),
		)
	}

	logger.Info("Currency seeding complete", slog.Int("count", len(currencies)))
}
