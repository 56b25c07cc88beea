// Package logger builds the zerolog loggers used across the service,
// including the adapter that routes gorm's SQL logging through zerolog.
package logger

import (
	"io"
	"os"
	"time"

	"invoice-dashboard-backend/internal/config"

	"github.com/rs/zerolog"
)

// New returns the application logger writing to stdout.
func New(cfg config.LoggingConfig, env string) zerolog.Logger {
	return NewWithWriter(os.Stdout, cfg, env)
}

// NewWithWriter is New with an explicit destination. Console output is used
// when asked for and on developer machines.
func NewWithWriter(w io.Writer, cfg config.LoggingConfig, env string) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" || env == "local" || env == "development" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: w != os.Stdout}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("env", env).
		Logger()
}
