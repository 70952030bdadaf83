// Package main provides the safeencode command, the command-line face of
// the output transformation library. It reads text from a file, argument or
// stdin, encodes or filters it for a named output context, and writes the
// result to a file or stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/safeweb-dev/go-safe-web-output/encoder"
	"github.com/safeweb-dev/go-safe-web-output/internal/cliconfig"
	"github.com/safeweb-dev/go-safe-web-output/internal/color"
	"github.com/safeweb-dev/go-safe-web-output/internal/logging"
	"github.com/safeweb-dev/go-safe-web-output/internal/terminal"
)

const outFilePerm = 0o600

// ErrTooManyArguments is returned when more than one literal input is given.
var ErrTooManyArguments = errors.New("at most one literal input argument is accepted")

var (
	configPath  = flag.String("config", "", "path to TOML config file with defaults")
	contextName = flag.String("context", "", "output context name (see -list)")
	mode        = flag.String("mode", "", "transformation mode: encode or filter")
	logLevel    = flag.String("log-level", "", "log level (debug, info, warn, error)")
	listFlag    = flag.Bool("list", false, "list known output contexts and exit")
	inFile      = flag.String("in", "", "read input from file instead of stdin")
	outFile     = flag.String("out", "", "write output to file instead of stdout")
	noNewline   = flag.Bool("n", false, "do not append a trailing newline")
	forceColor  = flag.Bool("force-color", false, "force colored -list output")
	noColor     = flag.Bool("no-color", false, "disable colored -list output")
)

func main() {
	runID := logging.GenerateRunID()
	if err := run(runID); err != nil {
		fmt.Fprintf(os.Stderr, "safeencode: %v\n", err)
		os.Exit(1)
	}
}

func run(runID string) error {
	flag.Parse()

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	if err := logging.Setup(os.Stderr, cfg.LogLevel, runID); err != nil {
		return err
	}

	if *listFlag {
		printContexts(os.Stdout)
		return nil
	}

	context, err := encoder.ParseContext(cfg.Context)
	if err != nil {
		return err
	}

	input, err := readInput()
	if err != nil {
		return err
	}

	output, closeOutput, err := openOutput()
	if err != nil {
		return err
	}
	defer closeOutput()

	if cfg.Mode == cliconfig.ModeEncode {
		err = encoder.EncodeTo(context, input, output)
	} else {
		err = encoder.FilterTo(context, input, output)
	}
	if err != nil {
		return err
	}
	if cfg.TrailingNewline {
		if _, err := io.WriteString(output, "\n"); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	slog.Debug("transformation complete",
		"context", context.String(),
		"mode", cfg.Mode,
		"input_bytes", len(input))
	return nil
}

// resolveConfig merges built-in defaults, the optional config file and
// command-line flags, in increasing priority.
func resolveConfig() (*cliconfig.Config, error) {
	cfg := cliconfig.Default()
	if *configPath != "" {
		loaded, err := cliconfig.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if *contextName != "" {
		cfg.Context = *contextName
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *noNewline {
		cfg.TrailingNewline = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readInput takes the first available source: the -in file, a literal
// argument, or stdin.
func readInput() (string, error) {
	if *inFile != "" {
		content, err := os.ReadFile(*inFile)
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return string(content), nil
	}

	args := flag.Args()
	switch len(args) {
	case 0:
	case 1:
		return args[0], nil
	default:
		return "", ErrTooManyArguments
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(content), nil
}

func openOutput() (io.Writer, func(), error) {
	if *outFile == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.OpenFile(*outFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outFilePerm)
	if err != nil {
		return nil, nil, fmt.Errorf("opening output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// printContexts writes the known context names, grouped visually when the
// terminal supports color.
func printContexts(w io.Writer) {
	caps := terminal.NewCapabilities(terminal.Options{
		ForceColor: *forceColor,
		NoColor:    *noColor,
	})
	colored := caps.SupportsColor()

	for _, c := range encoder.Contexts() {
		name := c.String()
		family := contextFamily(name)
		fmt.Fprintf(w, "%s\t%s\n",
			color.Maybe(colored, color.Cyan, name),
			color.Maybe(colored, color.Gray, family))
	}
}

func contextFamily(name string) string {
	switch {
	case strings.HasPrefix(name, "Html"):
		return "HTML"
	case strings.HasPrefix(name, "Xml"), name == "CDATAContent":
		return "XML"
	case strings.HasPrefix(name, "JavaScript"):
		return "JavaScript"
	case strings.HasPrefix(name, "JSON"):
		return "JSON"
	case strings.HasPrefix(name, "Uri"):
		return "URI"
	default:
		return ""
	}
}
