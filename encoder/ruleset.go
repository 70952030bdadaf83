package encoder

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// unitSet is a set of UTF-16 code units. Sets are built once during package
// initialization and never mutated afterwards.
type unitSet map[uint16]struct{}

func newUnitSet(units ...uint16) unitSet {
	s := make(unitSet, len(units))
	for _, u := range units {
		s[u] = struct{}{}
	}
	return s
}

// union returns a new set containing the receiver plus the given units.
func (s unitSet) union(units ...uint16) unitSet {
	merged := make(unitSet, len(s)+len(units))
	for u := range s {
		merged[u] = struct{}{}
	}
	for _, u := range units {
		merged[u] = struct{}{}
	}
	return merged
}

func (s unitSet) contains(u uint16) bool {
	_, ok := s[u]
	return ok
}

// controlPolicy selects how a rule set treats code units inside its
// context-specific illegal control ranges.
type controlPolicy int8

const (
	// controlNone leaves control characters to the numeric fallback.
	controlNone controlPolicy = iota
	// controlReplace substitutes the Unicode replacement entity for units
	// in 0x00-0x1F and 0x7F-0x9F (HTML contexts).
	controlReplace
	// controlDrop removes units in 0x00-0x1F, 0x7F-0x84, 0x86-0x9F and
	// 0xFDD0-0xFDDF entirely (XML contexts).
	controlDrop
)

// fallbackPolicy selects the numeric encoding used for code units that no
// earlier classification step claimed.
type fallbackPolicy int8

const (
	// fallbackHTMLHex emits &#x<hex>; with unpadded lowercase hex.
	fallbackHTMLHex fallbackPolicy = iota
	// fallbackJSHex emits \x with two lowercase hex digits. Only units
	// below 0x80 ever reach this fallback; higher units pass through via
	// the threshold rule.
	fallbackJSHex
	// fallbackJSONHex emits \u with four lowercase hex digits.
	fallbackJSONHex
	// fallbackPercent emits the UTF-8 bytes of the unit, each as % plus
	// two lowercase hex digits.
	fallbackPercent
)

// replacementEntity is substituted for illegal HTML control characters.
const replacementEntity = "&#xfffd;"

// ruleSet is the full character policy for one output context: which units
// are immune, which are backslash-escaped, which map to entities, how
// control characters are handled and which numeric fallback applies.
// Rule sets are immutable and safe for unsynchronized concurrent use.
type ruleSet struct {
	immune   unitSet
	escape   unitSet
	entities map[uint16]string
	control  controlPolicy
	fallback fallbackPolicy

	// passAbove is the exclusive threshold above which unclassified units
	// pass through unchanged. Zero disables the threshold (URI contexts
	// percent-encode all non-immune units).
	passAbove uint16
}

// correctUnit is the single-character decision function shared by every
// per-context rule set. It reports whether the unit survives unchanged
// (same == true) or, if not, the replacement string to emit instead. The
// replacement is always non-nil ASCII text, possibly empty (dropped unit).
//
// The step order is a security property: the escape set is consulted
// before the immune set so that a unit present in both (the JavaScript
// HTML variant lists '-' and '/' in each) is escaped, never passed.
func (rs *ruleSet) correctUnit(u uint16) (replacement string, same bool) {
	if isASCIIAlphaNum(u) {
		return "", true
	}
	if rs.escape.contains(u) {
		return slashEscape(u), false
	}
	if rs.immune.contains(u) {
		return "", true
	}
	if ent, ok := rs.entities[u]; ok {
		return ent, false
	}
	switch rs.control {
	case controlReplace:
		if u <= 0x1F || (u >= 0x7F && u <= 0x9F) {
			return replacementEntity, false
		}
	case controlDrop:
		if isXMLIllegal(u) {
			return "", false
		}
	case controlNone:
	}
	if rs.passAbove > 0 && u > rs.passAbove {
		return "", true
	}
	switch rs.fallback {
	case fallbackJSHex:
		return `\x` + hexPadded(u, 2), false
	case fallbackJSONHex:
		return `\u` + hexPadded(u, 4), false
	case fallbackPercent:
		return percentEncode(u), false
	default:
		return "&#x" + strconv.FormatUint(uint64(u), 16) + ";", false
	}
}

// isASCIIAlphaNum reports whether the unit is an ASCII letter or digit.
func isASCIIAlphaNum(u uint16) bool {
	return (u >= 'a' && u <= 'z') || (u >= 'A' && u <= 'Z') || (u >= '0' && u <= '9')
}

// isXMLIllegal reports whether the unit falls in one of the control ranges
// the XML specification recommends removing. NEL (0x85) stays legal.
func isXMLIllegal(u uint16) bool {
	return u <= 0x1F ||
		(u >= 0x7F && u <= 0x84) ||
		(u >= 0x86 && u <= 0x9F) ||
		(u >= 0xFDD0 && u <= 0xFDDF)
}

// slashEscape backslash-escapes a unit from an escape set. The whitespace
// controls use their short named forms; everything else gets a plain
// backslash prefix (yielding \\, \", \/ and so on).
func slashEscape(u uint16) string {
	switch u {
	case '\b':
		return `\b`
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\f':
		return `\f`
	case '\r':
		return `\r`
	default:
		return `\` + string(rune(u))
	}
}

// hexPadded formats the unit as lowercase hex, zero-padded to width digits.
func hexPadded(u uint16, width int) string {
	h := strconv.FormatUint(uint64(u), 16)
	if pad := width - len(h); pad > 0 {
		h = "0000"[:pad] + h
	}
	return h
}

const lowerhex = "0123456789abcdef"

// percentEncode encodes the UTF-8 bytes of the unit byte-by-byte as
// %-prefixed lowercase hex pairs. An unpaired surrogate half has no UTF-8
// form and is encoded as the replacement character.
func percentEncode(u uint16) string {
	r := rune(u)
	if r >= 0xD800 && r <= 0xDFFF {
		r = utf8.RuneError
	}
	var raw [utf8.UTFMax]byte
	n := utf8.EncodeRune(raw[:], r)

	var sb strings.Builder
	sb.Grow(n * 3)
	for _, b := range raw[:n] {
		sb.WriteByte('%')
		sb.WriteByte(lowerhex[b>>4])
		sb.WriteByte(lowerhex[b&0xF])
	}
	return sb.String()
}
