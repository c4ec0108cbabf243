package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "NE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Auth         AuthConfig
	SMTP         SMTPConfig
	Orders       OrdersConfig
	Site         SiteConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(cfg.FeatureFlags.UseSQLite); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"NE_APP_ENV" default:"dev"`
	Port         string `envconfig:"NE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"NE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"NE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN        string `envconfig:"NE_DB_DSN"`
	SQLitePath string `envconfig:"NE_DB_SQLITE_PATH" default:"data/namma.db"`

	MaxOpenConns    int           `envconfig:"NE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"NE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"NE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"NE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) validate(useSQLite bool) error {
	if useSQLite {
		if db.SQLitePath == "" {
			return fmt.Errorf("NE_DB_SQLITE_PATH is required when NE_USE_SQLITE is set")
		}
		return nil
	}
	if db.DSN == "" {
		return fmt.Errorf("NE_DB_DSN is required")
	}
	return nil
}

type RedisConfig struct {
	// URL is optional; when empty the order idempotency guard is disabled.
	URL          string        `envconfig:"NE_REDIS_URL"`
	PoolSize     int           `envconfig:"NE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"NE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"NE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"NE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"NE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"NE_JWT_SECRET" default:"namma-dev-secret"`
	Issuer            string `envconfig:"NE_JWT_ISSUER" default:"namma-elampillai"`
	ExpirationMinutes int    `envconfig:"NE_JWT_EXPIRATION_MINUTES" default:"720"`
}

// Expiration returns the session token lifetime.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// AuthConfig carries the portal gate credentials. The shared password scheme is
// deliberately weak: it reproduces the storefront's capability gate, not a real
// authentication system.
type AuthConfig struct {
	AdminEmail     string `envconfig:"NE_ADMIN_EMAIL" default:"admin@nammaelampillai.com"`
	SharedPassword string `envconfig:"NE_PORTAL_PASSWORD" default:"partner2025!"`
}

type SMTPConfig struct {
	Host     string `envconfig:"NE_SMTP_HOST" default:"smtp.gmail.com"`
	Port     int    `envconfig:"NE_SMTP_PORT" default:"587"`
	User     string `envconfig:"NE_SMTP_USER"`
	Password string `envconfig:"NE_SMTP_PASSWORD"`
	FromName string `envconfig:"NE_SMTP_FROM_NAME" default:"Namma Elampillai Admin"`
}

// HasCredentials reports whether real sends are possible. Without credentials
// the dispatcher simulates delivery instead of failing.
func (s SMTPConfig) HasCredentials() bool {
	return s.User != "" && s.Password != ""
}

type OrdersConfig struct {
	FallbackPath string `envconfig:"NE_ORDERS_FALLBACK_PATH" default:"data/offline_orders.json"`
}

type SiteConfig struct {
	PublicBaseURL string `envconfig:"NE_PUBLIC_BASE_URL" default:"https://namma-elampillai.vercel.app"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"NE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"NE_AUTO_MIGRATE" default:"false"`
}
