// Package logging owns structured-log setup for the command-line tools:
// level parsing, handler construction and per-run identifiers. Library
// packages never log; everything here serves the cmd/ binaries.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/oklog/ulid/v2"
)

// ErrInvalidLogLevel is returned for level names other than
// debug, info, warn and error.
var ErrInvalidLogLevel = errors.New("invalid log level")

// GenerateRunID returns a ULID identifying one invocation. ULIDs sort by
// creation time, which keeps aggregated logs in run order.
func GenerateRunID() string {
	return ulid.Make().String()
}

// ParseLevel maps a level name (case-insensitive) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, name)
	}
}

// Setup installs a text handler writing to w as the default slog logger.
// Every record carries the run ID.
func Setup(w io.Writer, levelName, runID string) error {
	level, err := ParseLevel(levelName)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With(slog.String("run_id", runID))
	slog.SetDefault(logger)
	return nil
}
