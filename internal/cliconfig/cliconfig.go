// Package cliconfig loads TOML defaults for the safeencode command. Flags
// override anything loaded here; the file only moves per-user defaults out
// of shell aliases.
package cliconfig

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/safeweb-dev/go-safe-web-output/encoder"
	"github.com/safeweb-dev/go-safe-web-output/internal/logging"
)

// Transformation modes accepted in configuration and on the command line.
const (
	ModeEncode = "encode"
	ModeFilter = "filter"
)

// ErrInvalidMode is returned for modes other than encode and filter.
var ErrInvalidMode = errors.New("mode must be \"encode\" or \"filter\"")

// LoadError reports a configuration file that could not be read or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading config %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Config holds the tool defaults.
type Config struct {
	// Context is the canonical output context name.
	Context string `toml:"context"`

	// Mode selects encoding or filtering.
	Mode string `toml:"mode"`

	// LogLevel names the slog level for diagnostics.
	LogLevel string `toml:"log_level"`

	// TrailingNewline appends a newline after the transformed output.
	TrailingNewline bool `toml:"trailing_newline"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Context:         encoder.HTMLContent.String(),
		Mode:            ModeEncode,
		LogLevel:        "info",
		TrailingNewline: true,
	}
}

// Load reads and validates a TOML config file. Fields absent from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	cfg := Default()
	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return cfg, nil
}

// Validate checks that every field names a known value.
func (c *Config) Validate() error {
	if c.Mode != ModeEncode && c.Mode != ModeFilter {
		return fmt.Errorf("%w: got %q", ErrInvalidMode, c.Mode)
	}
	if _, err := encoder.ParseContext(c.Context); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
