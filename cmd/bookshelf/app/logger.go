package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/pkg/logging"
)

// NewLogger builds the CLI logger. The level is resolved in this order:
// --log-level, -q/-v, LOG_LEVEL (or log_level in the config file), info.
func NewLogger(config *Config) zerolog.Logger {
	level := determineLogLevel(config)

	return logging.NewLoggerFromConfig(&logging.Config{
		Level:     level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		NoColor:   config.NoColor,
		AddCaller: level == zerolog.LevelDebugValue || level == zerolog.LevelTraceValue,
	})
}

func determineLogLevel(config *Config) string {
	switch {
	case config.LogLevel != "":
		level, ok := validateLogLevel(config.LogLevel)
		if !ok {
			fmt.Fprintf(os.Stderr, "Warning: invalid log level %q, using %q\n", config.LogLevel, level)
		}
		return level
	case config.Verbose && config.Quiet:
		fmt.Fprintf(os.Stderr, "Warning: both --verbose and --quiet specified, using --quiet\n")
		return zerolog.LevelWarnValue
	case config.Quiet:
		return zerolog.LevelWarnValue
	case config.Verbose:
		return zerolog.LevelDebugValue
	case config.EnvLogLevel != "":
		level, _ := validateLogLevel(config.EnvLogLevel)
		return level
	default:
		return zerolog.LevelInfoValue
	}
}

// validateLogLevel returns level if the CLI accepts it, otherwise info.
func validateLogLevel(level string) (string, bool) {
	switch level {
	case zerolog.LevelTraceValue, zerolog.LevelDebugValue, zerolog.LevelInfoValue,
		zerolog.LevelWarnValue, zerolog.LevelErrorValue:
		return level, true
	default:
		return zerolog.LevelInfoValue, false
	}
}
