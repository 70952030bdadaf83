package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The fixed-context wrappers must agree with the dispatching forms.
func TestWrappersMatchDispatch(t *testing.T) {
	const input = `<a href="x">'hi' & ]]> bye</a>`

	encodeWrappers := map[Context]func(string) string{
		CDATAContent:               EncodeCDATAContent,
		HTMLContent:                EncodeHTMLContent,
		HTMLInSingleQuoteAttribute: EncodeHTMLInSingleQuoteAttribute,
		HTMLInDoubleQuoteAttribute: EncodeHTMLInDoubleQuoteAttribute,
		HTMLUnquotedAttribute:      EncodeHTMLUnquotedAttribute,
		JavaScriptInHTML:           EncodeJavaScriptInHTML,
		JavaScriptInAttribute:      EncodeJavaScriptInAttribute,
		JavaScriptInBlock:          EncodeJavaScriptInBlock,
		JavaScriptInSource:         EncodeJavaScriptInSource,
		JSONValue:                  EncodeJSONValue,
		URIComponent:               EncodeURIComponent,
		URIComponentStrict:         EncodeURIComponentStrict,
		XMLContent:                 EncodeXMLContent,
		XMLInSingleQuoteAttribute:  EncodeXMLInSingleQuoteAttribute,
		XMLInDoubleQuoteAttribute:  EncodeXMLInDoubleQuoteAttribute,
		XMLCommentContent:          EncodeXMLCommentContent,
	}
	filterWrappers := map[Context]func(string) string{
		CDATAContent:               FilterCDATAContent,
		HTMLContent:                FilterHTMLContent,
		HTMLInSingleQuoteAttribute: FilterHTMLInSingleQuoteAttribute,
		HTMLInDoubleQuoteAttribute: FilterHTMLInDoubleQuoteAttribute,
		HTMLUnquotedAttribute:      FilterHTMLUnquotedAttribute,
		JavaScriptInHTML:           FilterJavaScriptInHTML,
		JavaScriptInAttribute:      FilterJavaScriptInAttribute,
		JavaScriptInBlock:          FilterJavaScriptInBlock,
		JavaScriptInSource:         FilterJavaScriptInSource,
		JSONValue:                  FilterJSONValue,
		URIComponent:               FilterURIComponent,
		URIComponentStrict:         FilterURIComponentStrict,
		XMLContent:                 FilterXMLContent,
		XMLInSingleQuoteAttribute:  FilterXMLInSingleQuoteAttribute,
		XMLInDoubleQuoteAttribute:  FilterXMLInDoubleQuoteAttribute,
		XMLCommentContent:          FilterXMLCommentContent,
	}

	for _, c := range Contexts() {
		t.Run(c.String(), func(t *testing.T) {
			assert.Equal(t, Encode(c, input), encodeWrappers[c](input))
			assert.Equal(t, Filter(c, input), filterWrappers[c](input))
		})
	}
}
