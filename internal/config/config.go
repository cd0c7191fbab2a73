package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName      string
	AppEnv       string
	AppURL       string
	Port         string
	SupportEmail string
	ContentPath  string

	// Storage: "memory" keeps everything in-process, "sql" uses DB_DRIVER
	StorageDriver string
	DBDriver      string
	DBConnection  string
	SeedOnStart   bool

	// Browse: include unpublished items when no category filter is given
	BrowseIncludeUnpublished bool

	// Security
	JWTSecret string
	JWTExpiry time.Duration

	// Email
	EmailFrom    string
	ResendAPIKey string

	// Payment: "none", "stripe" or "polar"
	PaymentProvider string
	// Payment - Stripe
	StripeSecretKey string
	StripeCurrency  string
	// Payment - Polar
	PolarAPIKey            string
	PolarSandboxMode       bool
	PolarProductIDMonthly  string
	PolarProductIDAnnually string
	PolarProductIDLifetime string

	// Observability (optional)
	SentryDSN string

	// Media storage (S3-compatible, optional: uploads are disabled without it)
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3Endpoint      string
	S3PresignExpiry time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:      envString("APP_NAME", "MediaVault"),
		AppEnv:       envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:       envString("APP_URL", "http://localhost:8090"),
		Port:         envString("PORT", "8090"),
		SupportEmail: envString("SUPPORT_EMAIL", "hello@example.com"),
		ContentPath:  envString("CONTENT_PATH", "content"),

		// Storage
		StorageDriver: envString("STORAGE_DRIVER", "memory"),
		DBDriver:      envString("DB_DRIVER", "sqlite"),
		DBConnection:  envString("DB_CONNECTION", "./data/mediavault.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"),
		SeedOnStart:   envBool("SEED_ON_START", true),

		BrowseIncludeUnpublished: envBool("BROWSE_INCLUDE_UNPUBLISHED", true),

		// Security
		JWTSecret: envRequired("JWT_SECRET"),
		JWTExpiry: envDuration("JWT_EXPIRY", 168*time.Hour), // 7 days

		// Email (RESEND_API_KEY optional in development, required in production)
		EmailFrom:    envString("EMAIL_FROM", "noreply@example.com"),
		ResendAPIKey: envString("RESEND_API_KEY", ""),

		// Payment
		PaymentProvider:        envString("PAYMENT_PROVIDER", "none"),
		StripeSecretKey:        envString("STRIPE_SECRET_KEY", ""),
		StripeCurrency:         envString("STRIPE_CURRENCY", "usd"),
		PolarAPIKey:            envString("POLAR_API_KEY", ""),
		PolarSandboxMode:       envBool("POLAR_SANDBOX_MODE", envString("APP_ENV", "development") == "development"),
		PolarProductIDMonthly:  envString("POLAR_PRODUCT_ID_MONTHLY", ""),
		PolarProductIDAnnually: envString("POLAR_PRODUCT_ID_ANNUALLY", ""),
		PolarProductIDLifetime: envString("POLAR_PRODUCT_ID_LIFETIME", ""),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Media storage
		S3Region:        envString("S3_REGION", ""),
		S3Bucket:        envString("S3_BUCKET", ""),
		S3AccessKey:     envString("S3_ACCESS_KEY", ""),
		S3SecretKey:     envString("S3_SECRET_KEY", ""),
		S3Endpoint:      envString("S3_ENDPOINT", ""),                    // Optional: for non-AWS providers
		S3PresignExpiry: envDuration("S3_PRESIGN_EXPIRY", 168*time.Hour), // Default: 7 days
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures all required services are configured for production deployments.
func validateProduction(cfg *Config) {
	if cfg.ResendAPIKey == "" {
		slog.Error("production deployment requires RESEND_API_KEY",
			"hint", "set APP_ENV=development for local testing with email log mode")
		os.Exit(1)
	}
	if cfg.StorageDriver == "memory" {
		slog.Warn("production deployment is using the in-memory store, data is lost on restart")
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) UsesSQL() bool {
	return c.StorageDriver == "sql"
}

// S3Configured reports whether media uploads can be enabled.
func (c *Config) S3Configured() bool {
	return c.S3Region != "" && c.S3Bucket != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

// Sanitized returns a copy of the config with only public/safe fields.
// All secrets, credentials, and sensitive data are excluded.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:      c.AppName,
		AppEnv:       c.AppEnv,
		AppURL:       c.AppURL,
		Port:         c.Port,
		SupportEmail: c.SupportEmail,

		StorageDriver:            c.StorageDriver,
		BrowseIncludeUnpublished: c.BrowseIncludeUnpublished,

		EmailFrom:       c.EmailFrom,
		PaymentProvider: c.PaymentProvider,

		S3Endpoint: c.S3Endpoint,
	}
}
