package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	Redis     RedisConfig
	Session   SessionConfig
	Cart      CartConfig
	RateLimit RateLimitConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PANIER_APP_ENV" required:"true"`
	Port         string `envconfig:"PANIER_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"PANIER_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"PANIER_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"PANIER_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// RedisConfig is optional; without a URL or address preferences stay in memory.
type RedisConfig struct {
	URL          string        `envconfig:"PANIER_REDIS_URL"`
	Address      string        `envconfig:"PANIER_REDIS_ADDR"`
	Password     string        `envconfig:"PANIER_REDIS_PASSWORD"`
	DB           int           `envconfig:"PANIER_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PANIER_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PANIER_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PANIER_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PANIER_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PANIER_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type SessionConfig struct {
	Secret string        `envconfig:"PANIER_SESSION_SECRET" required:"true"`
	Issuer string        `envconfig:"PANIER_SESSION_ISSUER" default:"panier"`
	TTL    time.Duration `envconfig:"PANIER_SESSION_TTL" default:"24h"`
}

type CartConfig struct {
	IdleTTL         time.Duration `envconfig:"PANIER_CART_IDLE_TTL" default:"30m"`
	CleanupInterval time.Duration `envconfig:"PANIER_CART_CLEANUP_INTERVAL" default:"5m"`
	CurrencySuffix  string        `envconfig:"PANIER_CART_CURRENCY_SUFFIX" default:"€"`
}

type RateLimitConfig struct {
	RPS           float64       `envconfig:"PANIER_RATE_LIMIT_RPS" default:"20"`
	Burst         int           `envconfig:"PANIER_RATE_LIMIT_BURST" default:"40"`
	CleanupPeriod time.Duration `envconfig:"PANIER_RATE_LIMIT_CLEANUP_PERIOD" default:"1m"`
	ClientTTL     time.Duration `envconfig:"PANIER_RATE_LIMIT_CLIENT_TTL" default:"3m"`
	// TrustProxyHeaders keys clients on X-Forwarded-For / X-Real-IP. Enable only behind a
	// proxy that overwrites those headers; otherwise clients can pick their own bucket.
	TrustProxyHeaders bool `envconfig:"PANIER_RATE_LIMIT_TRUST_PROXY_HEADERS" default:"false"`
}

func (c *Config) validate() error {
	if c.Session.TTL <= 0 {
		return fmt.Errorf("%s must be positive", EnvSessionTTL)
	}
	if c.Cart.IdleTTL <= 0 {
		return fmt.Errorf("%s must be positive", EnvCartIdleTTL)
	}
	if c.Session.TTL < c.Cart.IdleTTL {
		return fmt.Errorf("session ttl (%s) must not be shorter than cart idle ttl (%s)", c.Session.TTL, c.Cart.IdleTTL)
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("%s and %s must be positive", EnvRateLimitRPS, EnvRateLimitBurst)
	}
	return nil
}
