package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

// ConfigFileEnv names an optional YAML file loaded before the environment.
const ConfigFileEnv = "GATEWAY_CONFIG_FILE"

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Logger   LoggerConfig   `koanf:"logger"`
	Gateways GatewaysConfig `koanf:"gateways"`
	Routing  RoutingConfig  `koanf:"routing"`
	Retry    RetryConfig    `koanf:"retry"`
	Worker   WorkerConfig   `koanf:"worker"`
	Redis    RedisConfig    `koanf:"redis"`
}

type WorkerConfig struct {
	Interval      time.Duration `koanf:"interval" validate:"required"`
	BatchSize     int           `koanf:"batch_size" validate:"required,min=1"`
	StaleAfter    time.Duration `koanf:"stale_after" validate:"required"`
	RatePerSecond float64       `koanf:"rate_per_second" validate:"min=0"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

// GatewayConfig holds one provider's credentials. A provider without a base URL is not registered.
type GatewayConfig struct {
	BaseURL   string        `koanf:"base_url" validate:"omitempty,url"`
	SecretKey string        `koanf:"secret_key"`
	Timeout   time.Duration `koanf:"timeout"`
}

func (g GatewayConfig) Enabled() bool {
	return g.BaseURL != ""
}

type GatewaysConfig struct {
	Flutterwave GatewayConfig `koanf:"flutterwave"`
	Paystack    GatewayConfig `koanf:"paystack"`
}

type RoutingConfig struct {
	Strategy       string `koanf:"strategy" validate:"omitempty,oneof=explicit round_robin weighted"`
	DefaultGateway string `koanf:"default_gateway"`
	// Weights is "flutterwave:70,paystack:30".
	Weights string `koanf:"weights"`
}

type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay"`
	MaxRetries int           `koanf:"max_retries" validate:"min=0"`
}

type RedisConfig struct {
	Addr     string        `koanf:"addr"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"`
	DedupTTL time.Duration `koanf:"dedup_ttl"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=json text"`
}

func defaults() map[string]any {
	return map[string]any{
		"primary.env":                  "development",
		"server.port":                  "8080",
		"server.read_timeout":          "10s",
		"server.write_timeout":         "30s",
		"server.idle_timeout":          "60s",
		"server.request_timeout":       "30s",
		"database.ssl_mode":            "disable",
		"database.max_open_conns":      25,
		"database.max_idle_conns":      5,
		"database.conn_max_lifetime":   "1h",
		"database.conn_max_idle_time":  "30m",
		"logger.level":                 "info",
		"logger.format":                "json",
		"routing.strategy":             "explicit",
		"retry.base_delay":             "500ms",
		"retry.max_retries":            3,
		"worker.interval":              "1m",
		"worker.batch_size":            50,
		"worker.stale_after":           "15m",
		"worker.rate_per_second":       5,
		"redis.dedup_ttl":              "24h",
		"gateways.flutterwave.timeout": "15s",
		"gateways.paystack.timeout":    "15s",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load defaults", "error", err)
		return nil, err
	}

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			logger.Error("failed to load config file", "path", path, "error", err)
			return nil, err
		}
	}

	err := k.Load(env.Provider("GATEWAY_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "GATEWAY_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	if err := mainConfig.Validate(); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// Validate checks struct tags and the rules that span sections.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	if !c.Gateways.Flutterwave.Enabled() && !c.Gateways.Paystack.Enabled() {
		return errors.New("at least one gateway must have a base_url")
	}

	for name, g := range map[string]GatewayConfig{
		"flutterwave": c.Gateways.Flutterwave,
		"paystack":    c.Gateways.Paystack,
	} {
		if g.Enabled() && g.SecretKey == "" {
			return fmt.Errorf("gateways.%s.secret_key is required when base_url is set", name)
		}
	}

	return nil
}

// NewLogger builds the process logger from the level and format settings.
func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(c.Format) == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
