package logging

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/edvin/appenv/internal/config"
)

// NewLogger creates a structured zerolog.Logger with context fields from the
// config. Non-empty fields are added automatically.
func NewLogger(cfg *config.Config) zerolog.Logger {
	ctx := zerolog.New(os.Stdout).With().Timestamp().Str("service", "provisioner")

	if cfg.Region != "" {
		ctx = ctx.Str("region", cfg.Region)
	}
	if cfg.SubscriptionID != "" {
		ctx = ctx.Str("subscription", cfg.SubscriptionID)
	}

	logger := ctx.Logger()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return logger.Level(level)
}
