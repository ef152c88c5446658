package logging

import (
	stderrors "errors"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/pkg/constants"
)

// Config holds logger configuration options
type Config struct {
	// Level is the minimum log level to output
	Level string

	// Format is the output format (json, console, auto)
	Format string

	// Output is where to write logs (stderr, stdout, discard, or file path)
	Output string

	// TimeFormat for timestamps (kitchen, rfc3339, unix)
	TimeFormat string

	// NoColor disables color output in console mode
	NoColor bool

	// AddCaller includes file:line in log output
	AddCaller bool
}

var (
	// stderr receives "stderr" output and the fallback when a log file
	// cannot be opened.
	stderr io.Writer = os.Stderr

	filesMu sync.Mutex
	files   = map[string]*os.File{}
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     "auto",
		Output:     "stderr",
		TimeFormat: "kitchen",
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
}

// NewLoggerFromConfig creates a new logger from configuration
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	writer, openErr := getWriter(cfg)
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	if cfg.AddCaller || level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	if openErr != nil {
		logger.Warn().Err(openErr).Str("output", cfg.Output).Msg("Cannot open log output, logging to stderr")
	}

	return logger
}

// Configure updates the default logger with the given configuration
func Configure(cfg *Config) {
	SetDefault(NewLoggerFromConfig(cfg))
}

// getWriter creates the appropriate writer based on configuration. When a
// log file cannot be opened it falls back to stderr and returns the error.
func getWriter(cfg *Config) (io.Writer, error) {
	var output io.Writer
	var openErr error
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		output = os.Stdout
	case "", "stderr":
		output = stderr
	case "discard", "none":
		output = io.Discard
	default:
		file, err := openFile(cfg.Output)
		if err != nil {
			output, openErr = stderr, err
		} else {
			output = file
		}
	}

	format := strings.ToLower(cfg.Format)
	if format == "" || format == "auto" {
		format = "json"
		if f, ok := output.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			format = "console"
		}
	}

	switch format {
	case "console", "pretty":
		return zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: parseTimeFormat(cfg.TimeFormat),
			NoColor:    cfg.NoColor,
		}, openErr
	default:
		return output, openErr
	}
}

// openFile opens path for appending. Loggers built for the same path share
// one handle until Close.
func openFile(path string) (*os.File, error) {
	filesMu.Lock()
	defer filesMu.Unlock()

	if f, ok := files[path]; ok {
		return f, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return nil, err
	}
	files[path] = f
	return f, nil
}

// Close closes every log file opened by NewLoggerFromConfig. Loggers still
// writing to those files fail silently afterwards.
func Close() error {
	filesMu.Lock()
	defer filesMu.Unlock()

	var errs []error
	for path, f := range files {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(files, path)
	}
	return stderrors.Join(errs...)
}

// parseLevel parses a log level string
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "warning":
		return zerolog.WarnLevel
	case "none", "off":
		return zerolog.Disabled
	}
	if l, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil && level != "" {
		return l
	}
	return zerolog.InfoLevel
}

// parseTimeFormat parses time format configuration
func parseTimeFormat(format string) string {
	switch strings.ToLower(format) {
	case "rfc3339":
		return time.RFC3339
	case "unix", "epoch":
		return ""
	case "stamp":
		return time.Stamp
	default:
		return time.Kitchen
	}
}
