// Package terminal detects whether the current process talks to an
// interactive terminal and whether colored output should be used. The
// answer combines explicit flags, conventional environment variables and
// file-descriptor inspection, in that priority order.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars are environment variables whose presence marks a CI system.
var ciEnvVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"JENKINS_URL",
	"BUILDKITE",
	"TF_BUILD",
}

// Options force capability answers from the command line. The zero value
// defers everything to environment and terminal detection.
type Options struct {
	// ForceColor enables color regardless of environment.
	ForceColor bool

	// NoColor disables color regardless of environment. Wins over
	// ForceColor when both are set.
	NoColor bool

	// ForceNonInteractive treats the process as non-interactive.
	ForceNonInteractive bool
}

// Capabilities answers interactivity and color questions for one process.
type Capabilities interface {
	IsInteractive() bool
	SupportsColor() bool
}

type capabilities struct {
	options Options
}

// NewCapabilities creates a Capabilities instance with the given options.
func NewCapabilities(options Options) Capabilities {
	return &capabilities{options: options}
}

// IsInteractive reports whether the process should behave interactively:
// not forced off, not under CI, and with stdout and stderr on a terminal.
func (c *capabilities) IsInteractive() bool {
	if c.options.ForceNonInteractive {
		return false
	}
	if IsCIEnvironment() {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// SupportsColor reports whether output should be colored. Priority:
// command-line options, then CLICOLOR_FORCE, then NO_COLOR, then CLICOLOR
// combined with interactive detection.
func (c *capabilities) SupportsColor() bool {
	if c.options.NoColor {
		return false
	}
	if c.options.ForceColor {
		return true
	}
	if isTruthy(os.Getenv("CLICOLOR_FORCE")) {
		return true
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	if !c.IsInteractive() {
		return false
	}
	if cliColor, set := os.LookupEnv("CLICOLOR"); set {
		return isTruthy(cliColor)
	}
	return true
}

// IsCIEnvironment reports whether a known CI marker variable is set. The
// generic CI variable must additionally be truthy, since some shells export
// CI=false.
func IsCIEnvironment() bool {
	for _, name := range ciEnvVars {
		value, set := os.LookupEnv(name)
		if !set || value == "" {
			continue
		}
		if name == "CI" {
			return isTruthy(value)
		}
		return true
	}
	return false
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
