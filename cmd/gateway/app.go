package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/application/services"
	"github.com/DanielPopoola/paygate/internal/config"
	"github.com/DanielPopoola/paygate/internal/infrastructure/cache"
	"github.com/DanielPopoola/paygate/internal/infrastructure/gateway"
	"github.com/DanielPopoola/paygate/internal/infrastructure/persistence/postgres"
	"github.com/redis/go-redis/v9"
)

// app holds the wired components shared by the serve and sweep commands.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *postgres.DB
	redis  *redis.Client
	repo   *postgres.TransactionRepository
	engine *services.PaymentEngine
	query  *services.QueryService
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func newApp(ctx context.Context) (*app, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}

	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	a := &app{
		cfg:    cfg,
		logger: logger,
		db:     db,
		repo:   postgres.NewTransactionRepository(db),
	}

	weights, err := services.ParseWeights(cfg.Routing.Weights)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("invalid routing weights: %w", err)
	}

	registry, err := services.NewGatewayRegistry(
		cfg.Routing.Strategy,
		cfg.Routing.DefaultGateway,
		weights,
		gateway.NewFromConfig(cfg.Gateways, cfg.Retry, logger),
	)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to build gateway registry: %w", err)
	}

	var guard application.DeliveryGuard
	if cfg.Redis.Enabled() {
		client, err := cache.NewRedisClient(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Warn("webhook delivery guard starts without a reachable redis", "error", err)
		}
		a.redis = client
		guard = cache.NewRedisDeliveryGuard(client, cfg.Redis.DedupTTL)
	}

	a.engine = services.NewPaymentEngine(a.repo, registry, guard, logger)
	a.query = services.NewQueryService(a.repo)

	logger.Info("payment engine ready",
		"gateways", registry.Names(),
		"strategy", cfg.Routing.Strategy,
		"delivery_guard", guard != nil,
	)
	return a, nil
}

func (a *app) close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("failed to close redis client", "error", err)
		}
	}
	a.db.Close()
}
