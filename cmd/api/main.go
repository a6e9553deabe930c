// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/sengdao/minipos-be/internal/adapters/db"
	redis_a "github.com/sengdao/minipos-be/internal/adapters/redis_adapter"
	"github.com/sengdao/minipos-be/internal/core/ports"
	"github.com/sengdao/minipos-be/internal/core/services"
	"github.com/sengdao/minipos-be/internal/handlers"
	"github.com/sengdao/minipos-be/internal/handlers/middleware"
	"github.com/sengdao/minipos-be/internal/pkg/config"
	"github.com/sengdao/minipos-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting point of sale transaction core",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	if cfg.App.Environment != "production" {
		if err := runMigrations(ctx, cfg, slogger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			// Keep serving in development, the schema may already be current
		}
	}

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
		)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database        ports.Database
	redisClient     *redis.Client
	redisCache      ports.CacheRepository
	asynqClient     *asynq.Client
	asynqInspector  *asynq.Inspector
	checkoutService ports.CheckoutService
	checkoutHandler *handlers.CheckoutHandler
	catalogHandler  *handlers.CatalogHandler
	healthHandler   *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, slogger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	slogger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, slogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	slogger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:            fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		PoolTimeout:     cfg.Redis.PoolTimeout,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient

	deps.redisCache = redis_a.NewCache(redisClient, cfg.Redis.TTL, slogger)

	slogger.Info("initializing Asynq client")

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}

	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)

	// Repositories
	productRepo := db.NewProductRepository(database, slogger)
	saleRepo := db.NewSaleRepository(database, slogger)
	rateRepo := db.NewExchangeRateRepository(database, slogger)

	// Services
	deps.checkoutService = services.NewCheckoutService(
		productRepo,
		saleRepo,
		rateRepo,
		deps.redisCache,
		deps.asynqClient,
		services.CheckoutOptions{
			DefaultUsdRate: cfg.Checkout.DefaultUsdRate,
			DefaultThbRate: cfg.Checkout.DefaultThbRate,
		},
		slogger,
	)

	// Handlers
	deps.checkoutHandler = handlers.NewCheckoutHandler(deps.checkoutService, slogger)
	deps.catalogHandler = handlers.NewCatalogHandler(productRepo, rateRepo, deps.redisCache, slogger)
	deps.healthHandler = handlers.NewHealthHandler(
		database,
		redisClient,
		deps.asynqInspector,
		cfg,
		slogger,
	)

	slogger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, slogger *slog.Logger) *http.Server {
	mux := http.NewServeMux()

	var handler http.Handler = mux

	// Apply middleware in reverse order (innermost first)
	if cfg.App.Environment != "test" {
		handler = middleware.RequestID(handler)
		handler = middleware.Logger(slogger)(handler)
		handler = middleware.Recovery(slogger)(handler)
	}

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	registerRoutes(mux, deps, cfg)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(slogger.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, cfg *config.Config) {
	apiV1 := "/api/v1"

	// Health and readiness endpoints
	mux.HandleFunc("GET /health", deps.healthHandler.Health)
	mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
	mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)

	// Cart and checkout endpoints, keyed by session
	mux.HandleFunc("POST "+apiV1+"/sessions/{session}/cart", deps.checkoutHandler.AddToCart)
	mux.HandleFunc("GET "+apiV1+"/sessions/{session}/cart", deps.checkoutHandler.GetCart)
	mux.HandleFunc("DELETE "+apiV1+"/sessions/{session}/cart", deps.checkoutHandler.ClearCart)
	mux.HandleFunc("DELETE "+apiV1+"/sessions/{session}/cart/{barcode}", deps.checkoutHandler.RemoveFromCart)
	mux.HandleFunc("GET "+apiV1+"/sessions/{session}/totals", deps.checkoutHandler.GetTotals)
	mux.HandleFunc("POST "+apiV1+"/sessions/{session}/checkout", deps.checkoutHandler.Checkout)

	// Catalog endpoints
	mux.HandleFunc("GET "+apiV1+"/products", deps.catalogHandler.ListProducts)
	mux.HandleFunc("GET "+apiV1+"/products/{barcode}", deps.catalogHandler.GetProduct)

	// Exchange rate endpoints
	mux.HandleFunc("GET "+apiV1+"/exchange-rates/latest", deps.catalogHandler.GetLatestRate)
	mux.HandleFunc("POST "+apiV1+"/exchange-rates", deps.catalogHandler.SaveRate)

	// pprof endpoints (development only)
	if cfg.Server.EnablePprof && cfg.IsDevelopment() {
		mux.HandleFunc("GET /debug/pprof/", http.HandlerFunc(http.DefaultServeMux.ServeHTTP))
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, slogger *slog.Logger) error {
	slogger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, slogger, 3)
}
