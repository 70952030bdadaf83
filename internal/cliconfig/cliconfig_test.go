package cliconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safeweb-dev/go-safe-web-output/encoder"
	"github.com/safeweb-dev/go-safe-web-output/internal/logging"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "safeencode.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "HtmlContent", cfg.Context)
	assert.Equal(t, ModeEncode, cfg.Mode)
	assert.True(t, cfg.TrailingNewline)
}

func TestLoad(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := writeConfig(t, `
context = "JSONValue"
mode = "filter"
log_level = "debug"
trailing_newline = false
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "JSONValue", cfg.Context)
		assert.Equal(t, ModeFilter, cfg.Mode)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.False(t, cfg.TrailingNewline)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, `context = "UriComponent"`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "UriComponent", cfg.Context)
		assert.Equal(t, ModeEncode, cfg.Mode)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		require.Error(t, err)

		var loadErr *LoadError
		assert.ErrorAs(t, err, &loadErr)
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeConfig(t, `context = [broken`)
		_, err := Load(path)

		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, path, loadErr.Path)
	})
}

func TestValidate(t *testing.T) {
	t.Run("bad mode", func(t *testing.T) {
		cfg := Default()
		cfg.Mode = "transcode"
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidMode)
	})

	t.Run("bad context", func(t *testing.T) {
		cfg := Default()
		cfg.Context = "HtmlBody"
		assert.ErrorIs(t, cfg.Validate(), encoder.ErrUnknownContext)
	})

	t.Run("bad level", func(t *testing.T) {
		cfg := Default()
		cfg.LogLevel = "chatty"
		assert.ErrorIs(t, cfg.Validate(), logging.ErrInvalidLogLevel)
	})

	t.Run("bad value surfaces through Load", func(t *testing.T) {
		path := writeConfig(t, `mode = "transcode"`)
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidMode)
	})
}
