package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort              = ":8080"
	defaultGraceWindow       = 60 * time.Second
	defaultSweepInterval     = time.Minute
	defaultBoostDurationDays = 7
	defaultBoostPriceUSD     = 0.50
	defaultExchangeRateKHR   = 4100.0
)

// Config holds every externally supplied knob the core consumes. It is
// loaded once at startup and passed to components explicitly; nothing reads
// the environment after Load returns.
type Config struct {
	Port        string
	Environment string // "development" or "production"
	DatabaseURL string // empty means the in-memory store

	WebhookSecret     string
	SkipSignature     bool // honored only when Environment is "development"
	SessionJWTSecret  string
	BidGraceWindow    time.Duration
	SweepInterval     time.Duration
	BoostDurationDays int
	BoostPriceUSD     float64 // price per day of promotion
	ExchangeRateKHR   float64 // KHR per USD, supplied by the payment provider
}

// Load reads configuration from the environment. The only fatal condition is
// a missing webhook secret outside development: signature verification must
// be unconditional in production.
func Load() (Config, error) {
	cfg := Config{
		Port:              getPort(),
		Environment:       envOr("APP_ENV", "production"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		WebhookSecret:     os.Getenv("BAKONG_WEBHOOK_SECRET"),
		SessionJWTSecret:  os.Getenv("SESSION_JWT_SECRET"),
		BidGraceWindow:    durationOr("BID_GRACE_WINDOW_SECONDS", defaultGraceWindow),
		SweepInterval:     durationOr("SWEEP_INTERVAL_SECONDS", defaultSweepInterval),
		BoostDurationDays: intOr("BOOST_DURATION_DAYS", defaultBoostDurationDays),
		BoostPriceUSD:     floatOr("BOOST_PRICE_USD_PER_DAY", defaultBoostPriceUSD),
		ExchangeRateKHR:   floatOr("KHR_EXCHANGE_RATE", defaultExchangeRateKHR),
	}

	if cfg.Environment == "development" {
		cfg.SkipSignature = os.Getenv("BAKONG_SKIP_SIGNATURE") == "true"
	}

	if cfg.WebhookSecret == "" && !cfg.SkipSignature {
		return Config{}, fmt.Errorf("config: BAKONG_WEBHOOK_SECRET is required in %s", cfg.Environment)
	}
	if cfg.BoostDurationDays <= 0 {
		return Config{}, fmt.Errorf("config: BOOST_DURATION_DAYS must be positive")
	}

	return cfg, nil
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return defaultPort
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func floatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return fallback
}
