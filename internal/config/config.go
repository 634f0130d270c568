package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/noah-isme/toko-billing/internal/pricing"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv     string `validate:"required"`
	DataDir    string `validate:"required"`
	OutputFile string

	TaxRate       float64 `validate:"gte=0,lte=1"`
	ShippingLimit float64 `validate:"gte=0"`
	LoyaltyRatio  float64 `validate:"gte=0"`
	MaxDiscount   float64 `validate:"gte=0"`

	LogFormat        string `validate:"oneof=json console text"`
	LogLevel         string `validate:"required"`
	MetricsNamespace string `validate:"required"`
	MetricsTextfile  string

	TracingEnabled       bool
	OTLPEndpoint         string
	TracingSamplingRatio float64 `validate:"gte=0,lte=1"`
}

var validate = validator.New()

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	defaults := pricing.DefaultPolicy()
	cfg := &Config{
		AppEnv:     valueOrDefault(k.String("APP_ENV"), "development"),
		DataDir:    valueOrDefault(k.String("REPORT_DATA_DIR"), "data"),
		OutputFile: strings.TrimSpace(k.String("REPORT_OUTPUT_FILE")),

		TaxRate:       parseFloat(k.String("PRICING_TAX_RATE"), defaults.TaxRate),
		ShippingLimit: parseFloat(k.String("PRICING_SHIPPING_LIMIT"), defaults.ShippingLimit),
		LoyaltyRatio:  parseFloat(k.String("PRICING_LOYALTY_RATIO"), defaults.LoyaltyRatio),
		MaxDiscount:   parseFloat(k.String("PRICING_MAX_DISCOUNT"), defaults.MaxDiscount),

		LogFormat:        strings.ToLower(valueOrDefault(k.String("OBS_LOG_FORMAT"), "console")),
		LogLevel:         valueOrDefault(k.String("OBS_LOG_LEVEL"), "info"),
		MetricsNamespace: valueOrDefault(k.String("OBS_METRICS_NAMESPACE"), "billing"),
		MetricsTextfile:  strings.TrimSpace(k.String("OBS_METRICS_TEXTFILE")),

		TracingEnabled:       parseBool(k.String("OBS_ENABLE_TRACING")),
		OTLPEndpoint:         strings.TrimSpace(k.String("OBS_OTLP_ENDPOINT")),
		TracingSamplingRatio: parseFloat(k.String("OBS_TRACING_SAMPLING_RATIO"), 1.0),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Policy returns the pricing rates configured for the run.
func (c *Config) Policy() pricing.Policy {
	return pricing.Policy{
		TaxRate:       c.TaxRate,
		ShippingLimit: c.ShippingLimit,
		LoyaltyRatio:  c.LoyaltyRatio,
		MaxDiscount:   c.MaxDiscount,
	}
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func parseFloat(value string, fallback float64) float64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return fallback
	}
	return f
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// MustLoad behaves like Load but panics on error. Useful for tests and command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
