// Package logging provides structured logging for bookshelf using zerolog.
// Terminals get human-readable console output; pipes and files get JSON.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Str("title", "Dune").Msg("Book added")
//
//	ctx := logging.WithLibrary(context.Background(), "library.json")
//	logging.FromContext(ctx).Debug().Msg("Loading catalog")
package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger is the process-wide logger used when none is injected.
var defaultLogger zerolog.Logger

func init() {
	defaultLogger = NewLoggerFromConfig(configFromEnv())
}

// configFromEnv applies LOG_LEVEL, LOG_FORMAT and LOG_OUTPUT over the
// defaults. DEBUG=1 is honoured when LOG_LEVEL is unset.
func configFromEnv() *Config {
	cfg := DefaultConfig()

	switch level := os.Getenv("LOG_LEVEL"); {
	case level != "":
		cfg.Level = level
	case os.Getenv("DEBUG") != "":
		cfg.Level = "debug"
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	if output := os.Getenv("LOG_OUTPUT"); output != "" {
		cfg.Output = output
	}

	return cfg
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the default logger, including zerolog's global one.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// Error starts a new error level event on the default logger.
func Error() *zerolog.Event {
	return defaultLogger.Error()
}
