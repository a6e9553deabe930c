// cmd/seeder/main.go
//
// Seeds the product catalog and an initial exchange rate snapshot so a fresh
// environment can ring up sales immediately. Products come either from the
// built-in starter set or from a JSON file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sengdao/minipos-be/internal/adapters/db"
	"github.com/sengdao/minipos-be/internal/core/domain"
	"github.com/sengdao/minipos-be/internal/pkg/config"
	"github.com/sengdao/minipos-be/internal/pkg/logger"
)

type seedProduct struct {
	Barcode     string          `json:"barcode"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	Quantity    int             `json:"quantity"`
	QuantityMin int             `json:"quantity_min"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	RetailPrice decimal.Decimal `json:"retail_price"`
}

func main() {
	var (
		productsFile = flag.String("products", "", "path to a JSON file of products (defaults to the built-in starter set)")
		usdRate      = flag.String("usd-rate", "23000", "LAK per USD for the initial rate snapshot")
		thbRate      = flag.String("thb-rate", "626", "LAK per THB for the initial rate snapshot")
		skipRate     = flag.Bool("skip-rate", false, "do not capture an initial exchange rate snapshot")
		migrate      = flag.Bool("migrate", true, "run migrations before seeding")
	)
	flag.Parse()

	slogger := logger.SetupLogger("info", "text")

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if *migrate {
		migrationConfig := &db.MigrationConfig{
			DatabaseURL: cfg.GetDatabaseURL(),
			SourcePath:  cfg.Database.MigrationPath,
			TableName:   "schema_migrations",
			SchemaName:  "public",
		}
		if err := db.RunMigrationsWithRetry(ctx, migrationConfig, slogger, 3); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
		// Seeding is a short, mostly sequential run
		MaxConnections:    5,
		MinConnections:    1,
		MaxConnLifetime:   cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:   cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod: cfg.Database.HealthCheckPeriod,
		ConnectTimeout:    cfg.Database.ConnectTimeout,
	}, slogger)
	if err != nil {
		slogger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	products, err := loadProducts(*productsFile)
	if err != nil {
		slogger.Error("failed to load products", slog.String("error", err.Error()))
		os.Exit(1)
	}

	productRepo := db.NewProductRepository(database, slogger)

	seeded := 0
	for _, p := range products {
		product := &domain.Product{
			Barcode:     p.Barcode,
			Name:        p.Name,
			Unit:        p.Unit,
			Quantity:    p.Quantity,
			QuantityMin: p.QuantityMin,
			CostPrice:   p.CostPrice,
			RetailPrice: p.RetailPrice,
			Status:      domain.ProductAvailable,
		}
		if err := product.Validate(); err != nil {
			slogger.Warn("skipping invalid product",
				slog.String("barcode", p.Barcode),
				slog.String("error", err.Error()))
			continue
		}
		if err := productRepo.Save(ctx, product); err != nil {
			slogger.Error("failed to save product",
				slog.String("barcode", p.Barcode),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		seeded++
	}

	slogger.Info("product catalog seeded",
		slog.Int("products", seeded),
		slog.Int("skipped", len(products)-seeded))

	if !*skipRate {
		if err := seedExchangeRate(ctx, database, slogger, *usdRate, *thbRate); err != nil {
			slogger.Error("failed to seed exchange rate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}

func loadProducts(path string) ([]seedProduct, error) {
	if path == "" {
		return starterProducts(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read products file: %w", err)
	}

	var products []seedProduct
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse products file: %w", err)
	}
	return products, nil
}

func seedExchangeRate(ctx context.Context, database *db.Database, slogger *slog.Logger, usd, thb string) error {
	usdRate, err := decimal.NewFromString(usd)
	if err != nil {
		return fmt.Errorf("invalid usd rate %q: %w", usd, err)
	}
	thbRate, err := decimal.NewFromString(thb)
	if err != nil {
		return fmt.Errorf("invalid thb rate %q: %w", thb, err)
	}

	rateRepo := db.NewExchangeRateRepository(database, slogger)

	// An existing snapshot wins; seeding never overrides captured rates.
	latest, err := rateRepo.Latest(ctx)
	if err != nil {
		return err
	}
	if latest != nil {
		slogger.Info("exchange rate snapshot already present",
			slog.Int64("rate_id", latest.ID))
		return nil
	}

	rate := &domain.ExchangeRate{UsdRate: usdRate, ThbRate: thbRate}
	if err := rateRepo.Save(ctx, rate); err != nil {
		return err
	}

	slogger.Info("initial exchange rate captured",
		slog.Int64("rate_id", rate.ID),
		slog.String("usd_rate", rate.UsdRate.String()),
		slog.String("thb_rate", rate.ThbRate.String()))
	return nil
}

// starterProducts is a small catalog typical of a Lao minimart, prices in LAK.
func starterProducts() []seedProduct {
	return []seedProduct{
		{Barcode: "8851234567890", Name: "Drinking Water 600ml", Unit: "bottle", Quantity: 200, QuantityMin: 24, CostPrice: decimal.NewFromInt(3000), RetailPrice: decimal.NewFromInt(5000)},
		{Barcode: "8850123456789", Name: "Instant Noodles Pork", Unit: "pack", Quantity: 150, QuantityMin: 30, CostPrice: decimal.NewFromInt(4500), RetailPrice: decimal.NewFromInt(7000)},
		{Barcode: "8858891302011", Name: "Beerlao Lager 640ml", Unit: "bottle", Quantity: 96, QuantityMin: 12, CostPrice: decimal.NewFromInt(12000), RetailPrice: decimal.NewFromInt(15000)},
		{Barcode: "8850999320113", Name: "Soda Water 325ml", Unit: "can", Quantity: 120, QuantityMin: 24, CostPrice: decimal.NewFromInt(5000), RetailPrice: decimal.NewFromInt(8000)},
		{Barcode: "8852018101222", Name: "Sticky Rice 1kg", Unit: "bag", Quantity: 80, QuantityMin: 10, CostPrice: decimal.NewFromInt(15000), RetailPrice: decimal.NewFromInt(22000)},
		{Barcode: "8850250031332", Name: "Fish Sauce 700ml", Unit: "bottle", Quantity: 40, QuantityMin: 6, CostPrice: decimal.NewFromInt(18000), RetailPrice: decimal.NewFromInt(25000)},
		{Barcode: "8851932111014", Name: "Laundry Powder 900g", Unit: "bag", Quantity: 60, QuantityMin: 10, CostPrice: decimal.NewFromInt(20000), RetailPrice: decimal.NewFromInt(28000)},
		{Barcode: "8850328001566", Name: "Canned Fish in Tomato", Unit: "can", Quantity: 100, QuantityMin: 20, CostPrice: decimal.NewFromInt(9000), RetailPrice: decimal.NewFromInt(13000)},
		{Barcode: "8851019110128", Name: "UHT Milk 225ml", Unit: "box", Quantity: 140, QuantityMin: 24, CostPrice: decimal.NewFromInt(6000), RetailPrice: decimal.NewFromInt(9000)},
		{Barcode: "8850086801174", Name: "Green Tea 500ml", Unit: "bottle", Quantity: 90, QuantityMin: 12, CostPrice: decimal.NewFromInt(8000), RetailPrice: decimal.NewFromInt(12000)},
	}
}
