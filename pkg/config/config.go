package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	JWT          JWTConfig
	Backend      BackendConfig
	Shipping     ShippingConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Backend.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Shipping.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPORI_APP_ENV" required:"true"`
	Port         string `envconfig:"SHOPORI_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SHOPORI_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPORI_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// DBConfig points at the on-device SQLite file that backs the cart and the
// cached buyer profile. The store is local to one buyer device; there is no
// remote database.
type DBConfig struct {
	Path        string        `envconfig:"SHOPORI_DB_PATH" required:"true"`
	BusyTimeout time.Duration `envconfig:"SHOPORI_DB_BUSY_TIMEOUT" default:"5s"`
}

// DSN renders the sqlite connection string. WAL keeps a second tab or process
// sharing the file on last-write-wins instead of erroring out.
func (db DBConfig) DSN() string {
	q := url.Values{}
	q.Set("_busy_timeout", fmt.Sprintf("%d", db.BusyTimeout.Milliseconds()))
	q.Set("_journal_mode", "WAL")
	q.Set("_foreign_keys", "on")
	return fmt.Sprintf("file:%s?%s", db.Path, q.Encode())
}

type JWTConfig struct {
	Secret            string `envconfig:"SHOPORI_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"SHOPORI_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"SHOPORI_JWT_EXPIRATION_MINUTES" default:"1440"`
}

// BackendConfig describes the remote storefront API this service loads
// product detail from and submits orders to.
type BackendConfig struct {
	BaseURL string        `envconfig:"SHOPORI_BACKEND_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"SHOPORI_BACKEND_TIMEOUT" default:"15s"`
}

func (b BackendConfig) validate() error {
	u, err := url.Parse(b.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid backend base url %q: %w", b.BaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend base url %q must be absolute", b.BaseURL)
	}
	return nil
}

// ShippingConfig holds the two-tier city lookup: the primary city ships at a
// lower cost, every other city pays the flat rate.
type ShippingConfig struct {
	PrimaryCity string          `envconfig:"SHOPORI_SHIPPING_PRIMARY_CITY" default:"Dhaka"`
	PrimaryCost decimal.Decimal `envconfig:"SHOPORI_SHIPPING_PRIMARY_COST" default:"60"`
	OtherCost   decimal.Decimal `envconfig:"SHOPORI_SHIPPING_OTHER_COST" default:"120"`
}

func (s ShippingConfig) validate() error {
	if strings.TrimSpace(s.PrimaryCity) == "" {
		return fmt.Errorf("shipping primary city is required")
	}
	if s.PrimaryCost.IsNegative() || s.OtherCost.IsNegative() {
		return fmt.Errorf("shipping costs must be non-negative")
	}
	return nil
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SHOPORI_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SHOPORI_AUTO_MIGRATE" default:"false"`
}
