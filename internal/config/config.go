package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	// Azure service principal credentials. All four are required; a run must
	// fail before any resource is created when one is missing or malformed.
	ClientID       string `validate:"required,uuid"`
	ClientSecret   string `validate:"required"`
	TenantID       string `validate:"required,uuid"`
	SubscriptionID string `validate:"required,uuid"`

	Region          string `validate:"required"`
	TemporalAddress string
	LogLevel        string
	// MetricsAddr enables the Prometheus endpoint when non-empty.
	MetricsAddr string
	// CertDir is where the generated certificate bundle is written.
	CertDir string `validate:"required,dir"`
}

func Load() (*Config, error) {
	cfg := &Config{
		ClientID:        getEnv("AZURE_CLIENT_ID", ""),
		ClientSecret:    getEnv("AZURE_CLIENT_SECRET", ""),
		TenantID:        getEnv("AZURE_TENANT_ID", ""),
		SubscriptionID:  getEnv("AZURE_SUBSCRIPTION_ID", ""),
		Region:          getEnv("AZURE_REGION", "westus"),
		TemporalAddress: getEnv("TEMPORAL_ADDRESS", "localhost:7233"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		MetricsAddr:     getEnv("METRICS_ADDR", ""),
		CertDir:         getEnv("CERT_DIR", os.TempDir()),
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
