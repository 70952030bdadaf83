package encoder

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allRuleSets pairs every single-character context with its rule set for
// white-box sweeps. CDATA is excluded: it is not a per-unit classifier.
var allRuleSets = map[Context]*ruleSet{
	HTMLContent:                htmlContentRules,
	HTMLInSingleQuoteAttribute: htmlSingleQuoteRules,
	HTMLInDoubleQuoteAttribute: htmlDoubleQuoteRules,
	HTMLUnquotedAttribute:      htmlUnquotedRules,
	JavaScriptInHTML:           jsHTMLRules,
	JavaScriptInAttribute:      jsOtherRules,
	JavaScriptInBlock:          jsOtherRules,
	JavaScriptInSource:         jsOtherRules,
	JSONValue:                  jsonValueRules,
	URIComponent:               uriLenientRules,
	URIComponentStrict:         uriStrictRules,
	XMLContent:                 xmlContentRules,
	XMLInSingleQuoteAttribute:  xmlSingleQuoteRules,
	XMLInDoubleQuoteAttribute:  xmlDoubleQuoteRules,
	XMLCommentContent:          xmlCommentRules,
}

// Classification must be a total function: every 16-bit code unit has a
// defined result under every rule set, and a replacement never silently
// equals the unit it replaces.
func TestClassificationTotality(t *testing.T) {
	for ctx, rs := range allRuleSets {
		t.Run(ctx.String(), func(t *testing.T) {
			for u := 0; u <= 0xFFFF; u++ {
				rep, same := rs.correctUnit(uint16(u))
				if same {
					continue
				}
				if len(rep) == 1 && rep[0] == byte(u) {
					t.Fatalf("unit %#04x replaced by itself without being marked same", u)
				}
				for i := 0; i < len(rep); i++ {
					assert.Less(t, rep[i], byte(0x80), "replacement for %#04x must be ASCII", u)
				}
			}
		})
	}
}

// Every character in a context's immune set must encode to itself.
func TestImmuneSetFixedPoints(t *testing.T) {
	for ctx, rs := range allRuleSets {
		t.Run(ctx.String(), func(t *testing.T) {
			for u := range rs.immune {
				if rs.escape.contains(u) {
					// escape wins over immune (JavaScript HTML variant)
					continue
				}
				_, same := rs.correctUnit(u)
				assert.True(t, same, "immune unit %#04x must survive unchanged", u)
			}
		})
	}
}

// Surrogate halves must never reach a control-character or entity branch:
// they either pass through (markup and script contexts) or hit the numeric
// fallback (URI contexts). A surrogate landing anywhere else would corrupt
// the pair it belongs to.
func TestSurrogateHalvesClassification(t *testing.T) {
	for ctx, rs := range allRuleSets {
		t.Run(ctx.String(), func(t *testing.T) {
			for u := uint32(0xD800); u <= 0xDFFF; u++ {
				rep, same := rs.correctUnit(uint16(u))
				if rs.fallback == fallbackPercent {
					require.False(t, same, "URI contexts must not pass surrogates raw")
					assert.Equal(t, "%ef%bf%bd", rep, "unit %#04x", u)
				} else {
					assert.True(t, same, "unit %#04x must pass through", u)
				}
			}
		})
	}
}

func TestSlashEscape(t *testing.T) {
	testCases := []struct {
		unit     uint16
		expected string
	}{
		{'\b', `\b`},
		{'\t', `\t`},
		{'\n', `\n`},
		{'\f', `\f`},
		{'\r', `\r`},
		{'\\', `\\`},
		{'"', `\"`},
		{'/', `\/`},
		{'-', `\-`},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, slashEscape(tc.unit))
		})
	}
}

func TestPercentEncode(t *testing.T) {
	testCases := []struct {
		unit     uint16
		expected string
	}{
		{'@', "%40"},
		{' ', "%20"},
		{0x7F, "%7f"},
		{0xE9, "%c3%a9"},
		{0x2222, "%e2%88%a2"},
		{0xD83D, "%ef%bf%bd"}, // unpaired high surrogate
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, percentEncode(tc.unit))
		})
	}
}

func TestHexPadded(t *testing.T) {
	assert.Equal(t, "01", hexPadded(0x1, 2))
	assert.Equal(t, "7f", hexPadded(0x7F, 2))
	assert.Equal(t, "0085", hexPadded(0x85, 4))
	assert.Equal(t, "2222", hexPadded(0x2222, 4))
}

func TestIsASCIIAlphaNum(t *testing.T) {
	for _, u := range []uint16{'a', 'z', 'A', 'Z', '0', '9'} {
		assert.True(t, isASCIIAlphaNum(u), "unit %q", u)
	}
	// Unicode letters are not alphanumeric for classification purposes;
	// they are handled by the threshold or fallback rules.
	for _, u := range []uint16{'_', ' ', 0xE9, 0xAA, '@'} {
		assert.False(t, isASCIIAlphaNum(u), "unit %#04x", u)
	}
}

func BenchmarkEncodeHTMLContent(b *testing.B) {
	input := `The "quick" <brown> fox & friends jumped over the lazy dog's fence`
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Encode(HTMLContent, input)
	}
}

func BenchmarkFilterJSONValue(b *testing.B) {
	input := fmt.Sprintf(`{"key": "value with \ and %c"}`, rune(0x2222))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Filter(JSONValue, input)
	}
}
