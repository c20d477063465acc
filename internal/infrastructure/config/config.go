package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreBolt     = "bolt"
)

// Config is the full service configuration, read from the environment (and
// from .env through godotenv/autoload in cmd/api).
type Config struct {
	AppEnv        string   `env:"APP_ENV" envDefault:"development"`
	Port          string   `env:"PORT" envDefault:"8080"`
	PublicBaseURL string   `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:3000"`
	CORSOrigins   []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`

	Store    StoreConfig
	Gift     GiftConfig
	Jobs     JobsConfig
	Payments PaymentsConfig
	Redis    RedisConfig
	Log      LogConfig
	Otel     OtelConfig
}

type StoreConfig struct {
	Driver             string `env:"STORE_DRIVER" envDefault:"dynamodb"`
	BoltPath           string `env:"BOLT_PATH" envDefault:"gifts.db"`
	ContributionsTable string `env:"CONTRIBUTIONS_TABLE" envDefault:"contributions"`
	OrdersTable        string `env:"ORDERS_TABLE" envDefault:"gift_orders"`
	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`
}

type GiftConfig struct {
	MaxParticipants int           `env:"GIFT_MAX_PARTICIPANTS" envDefault:"3"`
	DefaultDeadline time.Duration `env:"GIFT_DEFAULT_DEADLINE" envDefault:"72h"`
	MaxAttempts     int           `env:"GIFT_MAX_ATTEMPTS" envDefault:"5"`
	Currency        string        `env:"GIFT_CURRENCY" envDefault:"BRL"`
}

type JobsConfig struct {
	ReaperEnabled         bool          `env:"REAPER_ENABLED" envDefault:"true"`
	ReaperInterval        time.Duration `env:"REAPER_INTERVAL" envDefault:"1m"`
	DispatchRetryInterval time.Duration `env:"DISPATCH_RETRY_INTERVAL" envDefault:"30s"`
	DispatchRetryGrace    time.Duration `env:"DISPATCH_RETRY_GRACE" envDefault:"30s"`
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	Mock                   bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
}

// RedisConfig enables the Redis Streams notification publisher when Addr is set.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	Stream   string `env:"REDIS_NOTIFICATION_STREAM" envDefault:"gift:notifications"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT"`
}

type OtelConfig struct {
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"false"`
	Exporter    string `env:"OTEL_EXPORTER" envDefault:"stdout"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"gift-contribution"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.Store.Driver {
	case StoreDynamoDB, StoreBolt:
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreDynamoDB, StoreBolt, c.Store.Driver))
	}
	if c.Gift.MaxParticipants < 0 {
		errs = append(errs, errors.New("GIFT_MAX_PARTICIPANTS must not be negative"))
	}
	if c.Gift.MaxAttempts < 1 {
		errs = append(errs, errors.New("GIFT_MAX_ATTEMPTS must be at least 1"))
	}
	if c.Gift.DefaultDeadline <= 0 {
		errs = append(errs, errors.New("GIFT_DEFAULT_DEADLINE must be positive"))
	}
	if c.Jobs.ReaperInterval <= 0 || c.Jobs.DispatchRetryInterval <= 0 {
		errs = append(errs, errors.New("scheduler intervals must be positive"))
	}
	if !c.Payments.Mock && c.Payments.MercadoPagoAccessToken == "" && c.IsProduction() {
		errs = append(errs, errors.New("MERCADOPAGO_ACCESS_TOKEN is required in production unless PAYMENT_GATEWAY_MOCK=true"))
	}
	switch c.Otel.Exporter {
	case "stdout", "otlp":
	default:
		errs = append(errs, fmt.Errorf("OTEL_EXPORTER must be stdout or otlp, got %q", c.Otel.Exporter))
	}
	return errors.Join(errs...)
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// PaymentsMocked reports whether checkout links should be synthesized locally.
func (c Config) PaymentsMocked() bool {
	return c.Payments.Mock || c.Payments.MercadoPagoAccessToken == ""
}
