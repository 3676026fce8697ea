package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	AppEnv  string

	SessionSecret string
	SessionTTL    time.Duration

	DefaultAdminUsername string
	DefaultAdminPassword string

	InvoiceEngine   string
	WkhtmltopdfPath string
	InvoiceTimeout  time.Duration

	StrictStatusTransitions bool
}

const (
	EngineBuiltin     = "builtin"
	EngineWkhtmltopdf = "wkhtmltopdf"
)

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:              getEnv("APP_PORT", "5000"),
		AppEnv:               getEnv("APP_ENV", "development"),
		SessionSecret:        getEnv("SESSION_SECRET", "canteen_secret_key"),
		DefaultAdminUsername: getEnv("DEFAULT_ADMIN_USERNAME", "admin"),
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", "admin123"),
		InvoiceEngine:        getEnv("INVOICE_ENGINE", EngineBuiltin),
		WkhtmltopdfPath:      getEnv("WKHTMLTOPDF_PATH", "wkhtmltopdf"),
	}

	var err error
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.InvoiceTimeout, err = getDuration("INVOICE_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.StrictStatusTransitions, err = getBool("STRICT_STATUS_TRANSITIONS", false); err != nil {
		return nil, err
	}

	switch cfg.InvoiceEngine {
	case EngineBuiltin, EngineWkhtmltopdf:
	default:
		return nil, fmt.Errorf("INVOICE_ENGINE: unknown engine %q", cfg.InvoiceEngine)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, v)
	}
	return d, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
