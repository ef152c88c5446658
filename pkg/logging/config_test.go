package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "1")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_OUTPUT", "discard")

	cfg := configFromEnv()
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "discard", cfg.Output)

	t.Setenv("LOG_LEVEL", "error")
	assert.Equal(t, "error", configFromEnv().Level)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, parseLevel("WARNING"))
	assert.Equal(t, zerolog.Disabled, parseLevel("off"))
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("loud"))
}

func TestNewLoggerFromConfig_FileOutput(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })
	path := filepath.Join(t.TempDir(), "bookshelf.log")

	first := NewLoggerFromConfig(&Config{Level: "info", Format: "json", Output: path})
	second := NewLoggerFromConfig(&Config{Level: "info", Format: "json", Output: path})
	first.Info().Msg("first")
	second.Info().Msg("second")

	filesMu.Lock()
	assert.Len(t, files, 1)
	filesMu.Unlock()

	require.NoError(t, Close())
	require.NoError(t, Close())

	filesMu.Lock()
	assert.Empty(t, files)
	filesMu.Unlock()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"first"`)
	assert.Contains(t, string(data), `"message":"second"`)
}

func TestNewLoggerFromConfig_UnopenableOutputWarns(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })
	var buf bytes.Buffer
	original := stderr
	stderr = &buf
	t.Cleanup(func() { stderr = original })

	path := filepath.Join(t.TempDir(), "missing", "bookshelf.log")
	logger := NewLoggerFromConfig(&Config{Level: "info", Format: "json", Output: path})
	logger.Info().Msg("still logged")

	assert.Contains(t, buf.String(), "Cannot open log output")
	assert.Contains(t, buf.String(), path)
	assert.Contains(t, buf.String(), "still logged")
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
