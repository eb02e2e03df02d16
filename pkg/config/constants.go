package config

// EnvPrefix is passed to envconfig; every field overrides its key explicitly.
const EnvPrefix = "PANIER"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv       = "PANIER_APP_ENV"
	EnvPort         = "PANIER_APP_PORT"
	EnvLogLevel     = "PANIER_LOG_LEVEL"
	EnvLogFormat    = "PANIER_LOG_FORMAT"
	EnvLogWarnStack = "PANIER_LOG_WARN_STACK"

	EnvRedisURL  = "PANIER_REDIS_URL"
	EnvRedisAddr = "PANIER_REDIS_ADDR"

	EnvSessionSecret = "PANIER_SESSION_SECRET"
	EnvSessionIssuer = "PANIER_SESSION_ISSUER"
	EnvSessionTTL    = "PANIER_SESSION_TTL"

	EnvCartIdleTTL         = "PANIER_CART_IDLE_TTL"
	EnvCartCleanupInterval = "PANIER_CART_CLEANUP_INTERVAL"
	EnvCartCurrencySuffix  = "PANIER_CART_CURRENCY_SUFFIX"

	EnvRateLimitRPS               = "PANIER_RATE_LIMIT_RPS"
	EnvRateLimitBurst             = "PANIER_RATE_LIMIT_BURST"
	EnvRateLimitTrustProxyHeaders = "PANIER_RATE_LIMIT_TRUST_PROXY_HEADERS"
)
