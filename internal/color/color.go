// Package color wraps text in ANSI escape sequences for terminal output.
// Callers decide separately whether color is appropriate; Maybe gates a
// color on that decision so call sites stay single-line.
package color

// ANSI escape sequences
const (
	reset = "\033[0m"

	redCode    = "\033[31m"
	greenCode  = "\033[32m"
	yellowCode = "\033[33m"
	cyanCode   = "\033[36m"
	grayCode   = "\033[90m"
	boldCode   = "\033[1m"
)

// Color wraps text with one ANSI attribute.
type Color func(text string) string

func newColor(code string) Color {
	return func(text string) string {
		return code + text + reset
	}
}

// Predefined colors
var (
	Red    = newColor(redCode)
	Green  = newColor(greenCode)
	Yellow = newColor(yellowCode)
	Cyan   = newColor(cyanCode)
	Gray   = newColor(grayCode)
	Bold   = newColor(boldCode)
)

// Maybe applies c to text when enabled, otherwise returns text unchanged.
func Maybe(enabled bool, c Color, text string) string {
	if !enabled {
		return text
	}
	return c(text)
}
