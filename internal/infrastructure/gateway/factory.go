package gateway

import (
	"log/slog"

	"github.com/DanielPopoola/paygate/internal/application"
	"github.com/DanielPopoola/paygate/internal/config"
)

// NewFromConfig builds every enabled provider. Each one is bounded by its own timeout and, for
// verification calls, wrapped in retries.
func NewFromConfig(cfg config.GatewaysConfig, retryCfg config.RetryConfig, logger *slog.Logger, opts ...Option) []application.Gateway {
	var gateways []application.Gateway

	if cfg.Flutterwave.Enabled() {
		gateways = append(gateways, decorate(NewFlutterwave(cfg.Flutterwave, opts...), cfg.Flutterwave, retryCfg, logger))
	}
	if cfg.Paystack.Enabled() {
		gateways = append(gateways, decorate(NewPaystack(cfg.Paystack, opts...), cfg.Paystack, retryCfg, logger))
	}

	return gateways
}

func decorate(g application.Gateway, cfg config.GatewayConfig, retryCfg config.RetryConfig, logger *slog.Logger) application.Gateway {
	logger.Info("gateway registered", "gateway", g.Name(), "base_url", cfg.BaseURL, "timeout", cfg.Timeout)
	return NewRetryingGateway(NewTimeoutGateway(g, cfg.Timeout), retryCfg, logger)
}
