package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress  string
	DatabaseURI string
	Environment string
	FrontendURL string

	JWTSecret     string
	TokenStrategy string
	TokenTTL      time.Duration

	RazorpayKeyID         string
	RazorpayKeySecret     string
	RazorpayAPIURL        string
	PaymentLink           string
	StatusCallbackEnabled bool

	MediaBucket    string
	MediaRegion    string
	MediaEndpoint  string
	MediaAccessKey string
	MediaSecretKey string
	MediaPublicURL string
	MediaFolder    string

	RateLimitRPM    int
	ShutdownTimeout time.Duration
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	TokenStrategyJWT  = "jwt"
	TokenStrategyHMAC = "hmac"

	// DefaultJWTSecret is only fit for local development.
	DefaultJWTSecret = "change-me-in-production"
)

const (
	defaultPort            = "5000"
	defaultEnvironment     = EnvDevelopment
	defaultFrontendURL     = "https://ecomlite.vercel.app"
	defaultTokenStrategy   = TokenStrategyJWT
	defaultTokenTTL        = 30 * 24 * time.Hour
	defaultRazorpayAPIURL  = "https://api.razorpay.com"
	defaultMediaRegion     = "us-east-1"
	defaultMediaFolder     = "ecomlite"
	defaultRateLimitRPM    = 120
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from .env, environment variables and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	runAddress := getString(lookup, "RUN_ADDRESS", "")
	if runAddress == "" {
		runAddress = ":" + getString(lookup, "PORT", defaultPort)
	}

	cfg := &Config{
		RunAddress:  runAddress,
		DatabaseURI: getString(lookup, "DATABASE_URI", ""),
		Environment: getString(lookup, "APP_ENV", defaultEnvironment),
		FrontendURL: getString(lookup, "FRONTEND_URL", defaultFrontendURL),

		JWTSecret:     getString(lookup, "JWT_SECRET", DefaultJWTSecret),
		TokenStrategy: getString(lookup, "AUTH_TOKEN_STRATEGY", defaultTokenStrategy),
		TokenTTL:      getDuration(lookup, "AUTH_TOKEN_TTL", defaultTokenTTL),

		RazorpayKeyID:         getString(lookup, "RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret:     getString(lookup, "RAZORPAY_KEY_SECRET", ""),
		RazorpayAPIURL:        getString(lookup, "RAZORPAY_API_URL", defaultRazorpayAPIURL),
		PaymentLink:           getString(lookup, "PAYMENT_LINK", ""),
		StatusCallbackEnabled: getBool(lookup, "PAYMENT_STATUS_CALLBACK", true),

		MediaBucket:    getString(lookup, "MEDIA_BUCKET", ""),
		MediaRegion:    getString(lookup, "MEDIA_REGION", defaultMediaRegion),
		MediaEndpoint:  getString(lookup, "MEDIA_ENDPOINT", ""),
		MediaAccessKey: getString(lookup, "MEDIA_ACCESS_KEY", ""),
		MediaSecretKey: getString(lookup, "MEDIA_SECRET_KEY", ""),
		MediaPublicURL: getString(lookup, "MEDIA_PUBLIC_URL", ""),
		MediaFolder:    getString(lookup, "MEDIA_FOLDER", defaultMediaFolder),

		RateLimitRPM:    getInt(lookup, "RATE_LIMIT_RPM", defaultRateLimitRPM),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("ecomlite", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.Environment, "env", cfg.Environment, "Runtime environment (development|production)")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.TokenStrategy, "token-strategy", cfg.TokenStrategy, "Auth token strategy (jwt|hmac)")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Auth token lifetime")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.RateLimitRPM, "rate-limit", cfg.RateLimitRPM, "Requests per minute per client on auth routes")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	cfg.TokenStrategy = strings.ToLower(strings.TrimSpace(cfg.TokenStrategy))
	switch cfg.TokenStrategy {
	case TokenStrategyJWT, TokenStrategyHMAC:
	default:
		return nil, fmt.Errorf("unknown token strategy %q", cfg.TokenStrategy)
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.MediaFolder == "" {
		cfg.MediaFolder = defaultMediaFolder
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

// IsProduction reports whether error details must be hidden from clients.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvProduction)
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
