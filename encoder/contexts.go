package encoder

import (
	"errors"
	"fmt"
)

// Context names an output context with a fixed character policy. The zero
// value is CDATAContent; use ParseContext to map user-supplied names.
type Context int

// All supported output contexts.
const (
	CDATAContent Context = iota
	HTMLContent
	HTMLInSingleQuoteAttribute
	HTMLInDoubleQuoteAttribute
	HTMLUnquotedAttribute
	JavaScriptInHTML
	JavaScriptInAttribute
	JavaScriptInBlock
	JavaScriptInSource
	JSONValue
	URIComponent
	URIComponentStrict
	XMLContent
	XMLInSingleQuoteAttribute
	XMLInDoubleQuoteAttribute
	XMLCommentContent

	numContexts int = iota
)

var contextNames = [numContexts]string{
	CDATAContent:               "CDATAContent",
	HTMLContent:                "HtmlContent",
	HTMLInSingleQuoteAttribute: "HtmlInSingleQuoteAttribute",
	HTMLInDoubleQuoteAttribute: "HtmlInDoubleQuoteAttribute",
	HTMLUnquotedAttribute:      "HtmlUnquotedAttribute",
	JavaScriptInHTML:           "JavaScriptInHTML",
	JavaScriptInAttribute:      "JavaScriptInAttribute",
	JavaScriptInBlock:          "JavaScriptInBlock",
	JavaScriptInSource:         "JavaScriptInSource",
	JSONValue:                  "JSONValue",
	URIComponent:               "UriComponent",
	URIComponentStrict:         "UriComponentStrict",
	XMLContent:                 "XmlContent",
	XMLInSingleQuoteAttribute:  "XmlInSingleQuoteAttribute",
	XMLInDoubleQuoteAttribute:  "XmlInDoubleQuoteAttribute",
	XMLCommentContent:          "XmlCommentContent",
}

// String returns the canonical context name.
func (c Context) String() string {
	if c < 0 || int(c) >= numContexts {
		return fmt.Sprintf("Context(%d)", int(c))
	}
	return contextNames[c]
}

// ErrUnknownContext is returned by ParseContext for an unrecognized name.
var ErrUnknownContext = errors.New("unknown output context")

// ParseContext maps a canonical context name (case-sensitive) to its
// Context value.
func ParseContext(name string) (Context, error) {
	for i, n := range contextNames {
		if n == name {
			return Context(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownContext, name)
}

// Contexts returns all supported contexts in declaration order.
func Contexts() []Context {
	all := make([]Context, numContexts)
	for i := range all {
		all[i] = Context(i)
	}
	return all
}

// Base character sets shared by the context families. The specialized rule
// sets below extend these; none of them are modified after initialization.
var (
	htmlBaseImmune = newUnitSet(
		'!', '#', '$', '%', '^', '(', ')', '*', '+', ',', '-', '.', '/',
		':', ';', '=', '?', '@', '[', '\\', ']', '_', '{', '|', '}', '~',
	)

	xmlBaseImmune = newUnitSet(',', ';', ':', '.', '_', ' ', '\t', '\n', '\r')

	jsBaseImmune = newUnitSet(
		'~', '!', '@', '#', '%', '^', '*', '(', ')', '_', '+', '=', '|',
		'[', ']', ':', ';', '<', '>', '?', ',', '.', '-', '/', ' ',
	)

	jsBaseEscape = newUnitSet('\b', '\t', '\n', '\f', '\r', '\\')

	uriBaseImmune = newUnitSet('-', '_', '.', '~')

	htmlEntities = map[uint16]string{
		'"':  "&quot;",
		'&':  "&amp;",
		'<':  "&lt;",
		'>':  "&gt;",
		0xA0: "&nbsp;",
	}

	xmlEntities = map[uint16]string{
		'"':  "&quot;",
		'&':  "&amp;",
		'\'': "&apos;",
		'<':  "&lt;",
		'>':  "&gt;",
	}
)

func htmlRules(immune unitSet) *ruleSet {
	return &ruleSet{
		immune:    immune,
		entities:  htmlEntities,
		control:   controlReplace,
		fallback:  fallbackHTMLHex,
		passAbove: 0x9F,
	}
}

func xmlRules(immune unitSet) *ruleSet {
	return &ruleSet{
		immune:    immune,
		entities:  xmlEntities,
		control:   controlDrop,
		fallback:  fallbackHTMLHex,
		passAbove: 0x9F,
	}
}

func jsRules(immune, escape unitSet) *ruleSet {
	return &ruleSet{
		immune:    immune,
		escape:    escape,
		control:   controlNone,
		fallback:  fallbackJSHex,
		passAbove: 0x7F,
	}
}

func uriRules(immune unitSet) *ruleSet {
	return &ruleSet{
		immune:   immune,
		control:  controlNone,
		fallback: fallbackPercent,
	}
}

// Per-context rule sets. Whitespace is immune in HTML content and quoted
// attributes but never in the unquoted variant; XML attribute contexts add
// only the opposite quote character; the JavaScript HTML variant moves '-'
// and '/' into the escape set to defuse </script> and HTML comment
// sequences inside inline scripts.
var (
	htmlContentRules     = htmlRules(htmlBaseImmune.union('\t', '\n', '\r', ' '))
	htmlSingleQuoteRules = htmlRules(htmlBaseImmune.union('"', '\t', '\n', '\r', ' '))
	htmlDoubleQuoteRules = htmlRules(htmlBaseImmune.union('\'', '\t', '\n', '\r', ' '))
	htmlUnquotedRules    = htmlRules(htmlBaseImmune)

	xmlContentRules     = xmlRules(xmlBaseImmune)
	xmlSingleQuoteRules = xmlRules(xmlBaseImmune.union('"'))
	xmlDoubleQuoteRules = xmlRules(xmlBaseImmune.union('\''))
	xmlCommentRules     = xmlRules(xmlBaseImmune.union(
		'"', '\'', '<', '!', '>', '#', '$', '%', '^', '*', '+', '/',
		'=', '?', '@', '[', '\\', ']', '{', '|', '}', '~',
	))

	jsHTMLRules  = jsRules(jsBaseImmune, jsBaseEscape.union('-', '/'))
	jsOtherRules = jsRules(jsBaseImmune, jsBaseEscape)

	jsonValueRules = &ruleSet{
		escape:    newUnitSet('\b', '\t', '\n', '\f', '\r', '"', '\\', '/'),
		control:   controlNone,
		fallback:  fallbackJSONHex,
		passAbove: 0x9F,
	}

	uriLenientRules = uriRules(uriBaseImmune.union('!', '*', '\'', '(', ')'))
	uriStrictRules  = uriRules(uriBaseImmune)
)

// manipulators maps every context to its transformation implementation.
// All single-character contexts share the rule-set engine; CDATA needs
// multi-character lookahead and has its own scanner.
var manipulators = [numContexts]manipulator{
	CDATAContent:               cdataManipulator{},
	HTMLContent:                unitManipulator{htmlContentRules},
	HTMLInSingleQuoteAttribute: unitManipulator{htmlSingleQuoteRules},
	HTMLInDoubleQuoteAttribute: unitManipulator{htmlDoubleQuoteRules},
	HTMLUnquotedAttribute:      unitManipulator{htmlUnquotedRules},
	JavaScriptInHTML:           unitManipulator{jsHTMLRules},
	JavaScriptInAttribute:      unitManipulator{jsOtherRules},
	JavaScriptInBlock:          unitManipulator{jsOtherRules},
	JavaScriptInSource:         unitManipulator{jsOtherRules},
	JSONValue:                  unitManipulator{jsonValueRules},
	URIComponent:               unitManipulator{uriLenientRules},
	URIComponentStrict:         unitManipulator{uriStrictRules},
	XMLContent:                 unitManipulator{xmlContentRules},
	XMLInSingleQuoteAttribute:  unitManipulator{xmlSingleQuoteRules},
	XMLInDoubleQuoteAttribute:  unitManipulator{xmlDoubleQuoteRules},
	XMLCommentContent:          unitManipulator{xmlCommentRules},
}
