package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	original := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logging.SetDefault(logger)

	logging.Default().Info().Msg("info message")
	logging.Error().Msg("error message")

	assert.Contains(t, buf.String(), "info message")
	assert.Contains(t, buf.String(), "error message")
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithLibrary(ctx, "library.json")
	ctx = logging.WithBook(ctx, "Dune")
	ctx = logging.WithOperation(ctx, "remove")

	logging.FromContext(ctx).Info().Msg("test message")

	testLogger.AssertContains(t, `"library":"library.json"`)
	testLogger.AssertContains(t, `"title":"Dune"`)
	testLogger.AssertContains(t, `"operation":"remove"`)
	testLogger.AssertContains(t, "test message")
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	//nolint:staticcheck // nil context is tolerated on purpose
	assert.Same(t, logging.Default(), logging.FromContext(nil))
}

func TestConfiguration(t *testing.T) {
	oldLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(oldLevel) })

	tests := []struct {
		name    string
		config  *logging.Config
		want    string
		notWant string
	}{
		{
			name:   "debug level",
			config: &logging.Config{Level: "debug", Format: "json", Output: "discard"},
			want:   `"level":"debug"`,
		},
		{
			name:    "error level only",
			config:  &logging.Config{Level: "error", Format: "json", Output: "discard"},
			want:    `"level":"error"`,
			notWant: `"level":"info"`,
		},
		{
			name:   "warning alias",
			config: &logging.Config{Level: "warning", Format: "json", Output: "discard"},
			want:   `"level":"warn"`,
		},
		{
			name:   "invalid level falls back to info",
			config: &logging.Config{Level: "loud", Format: "json", Output: "discard"},
			want:   `"level":"info"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := logging.NewLoggerFromConfig(tt.config).Output(buf)

			logger.Debug().Msg("debug")
			logger.Info().Msg("info")
			logger.Warn().Msg("warn")
			logger.Error().Msg("error")

			assert.Contains(t, buf.String(), tt.want)
			if tt.notWant != "" {
				assert.NotContains(t, buf.String(), tt.notWant)
			}
		})
	}
}

func TestTestLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	tl.Logger.Info().Str("title", "Dune").Msg("Book added")
	tl.Logger.Error().Int("removed", 2).Msg("Book removed")

	tl.AssertContains(t, "Book added")
	require.Len(t, tl.Entries(), 2)

	entry, ok := tl.Find("Book removed")
	require.True(t, ok)
	assert.Equal(t, "error", entry["level"])
	assert.EqualValues(t, 2, entry["removed"])

	_, ok = tl.Find("missing")
	assert.False(t, ok)
}
