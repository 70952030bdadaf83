package encoder

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"
)

// ErrNilWriter is returned by the streaming forms when the destination
// writer is nil.
var ErrNilWriter = errors.New("writer must not be nil")

// WriteError wraps a failure reported by the caller-supplied writer. The
// transformation itself is pure and cannot fail; any error surfaced by the
// streaming forms other than ErrNilWriter is a WriteError.
type WriteError struct {
	Context Context
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s output: %v", e.Context, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Encode rewrites input so it is safe to place literally in the given
// output context. Every input character keeps its meaning; unsafe ones are
// replaced by escaped equivalents, so the output may be longer than the
// input. Encode is a total function and never fails.
func Encode(c Context, input string) string {
	var sb strings.Builder
	sb.Grow(len(input) * 3)
	// strings.Builder never returns a write error
	_ = c.manipulator().encodeTo(input, &sb)
	return sb.String()
}

// EncodeTo is the streaming form of Encode. Nothing is written for an
// empty input. A nil writer yields ErrNilWriter; a failed write yields a
// WriteError wrapping the writer's error.
func EncodeTo(c Context, input string, w io.Writer) error {
	if w == nil {
		return ErrNilWriter
	}
	if err := c.manipulator().encodeTo(input, w); err != nil {
		return &WriteError{Context: c, Err: err}
	}
	return nil
}

// Filter removes every character of input that Encode would have had to
// alter for the given context. The result is always a subsequence of the
// input: characters are only dropped, never reordered or substituted.
func Filter(c Context, input string) string {
	var sb strings.Builder
	sb.Grow(len(input))
	_ = c.manipulator().filterTo(input, &sb)
	return sb.String()
}

// FilterTo is the streaming form of Filter, with the same writer contract
// as EncodeTo.
func FilterTo(c Context, input string, w io.Writer) error {
	if w == nil {
		return ErrNilWriter
	}
	if err := c.manipulator().filterTo(input, w); err != nil {
		return &WriteError{Context: c, Err: err}
	}
	return nil
}

func (c Context) manipulator() manipulator {
	if c < 0 || int(c) >= numContexts {
		// Unknown contexts get the most restrictive policy rather than a
		// partial function; ParseContext is the validating entry point.
		return unitManipulator{uriStrictRules}
	}
	return manipulators[c]
}

// manipulator is the internal transformation contract. Implementations
// must be stateless; per-call state lives on the stack of these methods.
type manipulator interface {
	encodeTo(input string, w io.Writer) error
	filterTo(input string, w io.Writer) error
}

// unitManipulator applies a rule set one UTF-16 code unit at a time. It
// covers every context except CDATA, which needs lookahead.
type unitManipulator struct {
	rules *ruleSet
}

func (m unitManipulator) encodeTo(input string, w io.Writer) error {
	sink := newUnitSink(w)
	for _, u := range utf16.Encode([]rune(input)) {
		rep, same := m.rules.correctUnit(u)
		if same {
			sink.appendUnit(u)
		} else {
			sink.appendASCII(rep)
		}
		if err := sink.maybeFlush(); err != nil {
			return err
		}
	}
	return sink.flush()
}

func (m unitManipulator) filterTo(input string, w io.Writer) error {
	sink := newUnitSink(w)
	for _, u := range utf16.Encode([]rune(input)) {
		// A unit survives filtering exactly when encoding would leave it
		// unchanged; the filter decision is fully derived from the encode
		// decision function.
		if _, same := m.rules.correctUnit(u); same {
			sink.appendUnit(u)
		}
		if err := sink.maybeFlush(); err != nil {
			return err
		}
	}
	return sink.flush()
}

// flushThreshold is the buffered unit count above which the sink writes
// out to the underlying writer.
const flushThreshold = 2048

// unitSink accumulates UTF-16 code units and periodically flushes them to
// an io.Writer as UTF-8 text. Buffering by unit, not by byte, lets a
// surrogate pair that passed through as two independent units be
// reassembled before it is written. State is local to one call.
type unitSink struct {
	w     io.Writer
	units []uint16
}

func newUnitSink(w io.Writer) *unitSink {
	return &unitSink{w: w}
}

func (s *unitSink) appendUnit(u uint16) {
	s.units = append(s.units, u)
}

// appendASCII appends a replacement string. Replacements produced by the
// classification engine are always ASCII.
func (s *unitSink) appendASCII(rep string) {
	for i := 0; i < len(rep); i++ {
		s.units = append(s.units, uint16(rep[i]))
	}
}

// maybeFlush writes buffered units once the buffer is large enough,
// holding back a trailing high surrogate so a pair is never split across
// two decode calls.
func (s *unitSink) maybeFlush() error {
	if len(s.units) < flushThreshold {
		return nil
	}
	n := len(s.units)
	if last := s.units[n-1]; last >= 0xD800 && last <= 0xDBFF {
		n--
	}
	if n == 0 {
		return nil
	}
	if err := s.writeUnits(s.units[:n]); err != nil {
		return err
	}
	s.units = append(s.units[:0], s.units[n:]...)
	return nil
}

// flush writes any remaining buffered units.
func (s *unitSink) flush() error {
	if len(s.units) == 0 {
		return nil
	}
	err := s.writeUnits(s.units)
	s.units = s.units[:0]
	return err
}

func (s *unitSink) writeUnits(units []uint16) error {
	_, err := io.WriteString(s.w, string(utf16.Decode(units)))
	return err
}
