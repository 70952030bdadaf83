package encoder

// Per-context convenience wrappers. Each pair is exactly Encode/Filter with
// the context fixed, for call sites that deal with a single context and do
// not want to thread a Context value around.

// EncodeCDATAContent encodes for the CDATAContent context.
func EncodeCDATAContent(input string) string { return Encode(CDATAContent, input) }

// FilterCDATAContent filters for the CDATAContent context.
func FilterCDATAContent(input string) string { return Filter(CDATAContent, input) }

// EncodeHTMLContent encodes for the HtmlContent context.
func EncodeHTMLContent(input string) string { return Encode(HTMLContent, input) }

// FilterHTMLContent filters for the HtmlContent context.
func FilterHTMLContent(input string) string { return Filter(HTMLContent, input) }

// EncodeHTMLInSingleQuoteAttribute encodes for the HtmlInSingleQuoteAttribute context.
func EncodeHTMLInSingleQuoteAttribute(input string) string {
	return Encode(HTMLInSingleQuoteAttribute, input)
}

// FilterHTMLInSingleQuoteAttribute filters for the HtmlInSingleQuoteAttribute context.
func FilterHTMLInSingleQuoteAttribute(input string) string {
	return Filter(HTMLInSingleQuoteAttribute, input)
}

// EncodeHTMLInDoubleQuoteAttribute encodes for the HtmlInDoubleQuoteAttribute context.
func EncodeHTMLInDoubleQuoteAttribute(input string) string {
	return Encode(HTMLInDoubleQuoteAttribute, input)
}

// FilterHTMLInDoubleQuoteAttribute filters for the HtmlInDoubleQuoteAttribute context.
func FilterHTMLInDoubleQuoteAttribute(input string) string {
	return Filter(HTMLInDoubleQuoteAttribute, input)
}

// EncodeHTMLUnquotedAttribute encodes for the HtmlUnquotedAttribute context.
func EncodeHTMLUnquotedAttribute(input string) string {
	return Encode(HTMLUnquotedAttribute, input)
}

// FilterHTMLUnquotedAttribute filters for the HtmlUnquotedAttribute context.
func FilterHTMLUnquotedAttribute(input string) string {
	return Filter(HTMLUnquotedAttribute, input)
}

// EncodeJavaScriptInHTML encodes for the JavaScriptInHTML context.
func EncodeJavaScriptInHTML(input string) string { return Encode(JavaScriptInHTML, input) }

// FilterJavaScriptInHTML filters for the JavaScriptInHTML context.
func FilterJavaScriptInHTML(input string) string { return Filter(JavaScriptInHTML, input) }

// EncodeJavaScriptInAttribute encodes for the JavaScriptInAttribute context.
func EncodeJavaScriptInAttribute(input string) string { return Encode(JavaScriptInAttribute, input) }

// FilterJavaScriptInAttribute filters for the JavaScriptInAttribute context.
func FilterJavaScriptInAttribute(input string) string { return Filter(JavaScriptInAttribute, input) }

// EncodeJavaScriptInBlock encodes for the JavaScriptInBlock context.
func EncodeJavaScriptInBlock(input string) string { return Encode(JavaScriptInBlock, input) }

// FilterJavaScriptInBlock filters for the JavaScriptInBlock context.
func FilterJavaScriptInBlock(input string) string { return Filter(JavaScriptInBlock, input) }

// EncodeJavaScriptInSource encodes for the JavaScriptInSource context.
func EncodeJavaScriptInSource(input string) string { return Encode(JavaScriptInSource, input) }

// FilterJavaScriptInSource filters for the JavaScriptInSource context.
func FilterJavaScriptInSource(input string) string { return Filter(JavaScriptInSource, input) }

// EncodeJSONValue encodes for the JSONValue context.
func EncodeJSONValue(input string) string { return Encode(JSONValue, input) }

// FilterJSONValue filters for the JSONValue context.
func FilterJSONValue(input string) string { return Filter(JSONValue, input) }

// EncodeURIComponent encodes for the UriComponent context.
func EncodeURIComponent(input string) string { return Encode(URIComponent, input) }

// FilterURIComponent filters for the UriComponent context.
func FilterURIComponent(input string) string { return Filter(URIComponent, input) }

// EncodeURIComponentStrict encodes for the UriComponentStrict context.
func EncodeURIComponentStrict(input string) string { return Encode(URIComponentStrict, input) }

// FilterURIComponentStrict filters for the UriComponentStrict context.
func FilterURIComponentStrict(input string) string { return Filter(URIComponentStrict, input) }

// EncodeXMLContent encodes for the XmlContent context.
func EncodeXMLContent(input string) string { return Encode(XMLContent, input) }

// FilterXMLContent filters for the XmlContent context.
func FilterXMLContent(input string) string { return Filter(XMLContent, input) }

// EncodeXMLInSingleQuoteAttribute encodes for the XmlInSingleQuoteAttribute context.
func EncodeXMLInSingleQuoteAttribute(input string) string {
	return Encode(XMLInSingleQuoteAttribute, input)
}

// FilterXMLInSingleQuoteAttribute filters for the XmlInSingleQuoteAttribute context.
func FilterXMLInSingleQuoteAttribute(input string) string {
	return Filter(XMLInSingleQuoteAttribute, input)
}

// EncodeXMLInDoubleQuoteAttribute encodes for the XmlInDoubleQuoteAttribute context.
func EncodeXMLInDoubleQuoteAttribute(input string) string {
	return Encode(XMLInDoubleQuoteAttribute, input)
}

// FilterXMLInDoubleQuoteAttribute filters for the XmlInDoubleQuoteAttribute context.
func FilterXMLInDoubleQuoteAttribute(input string) string {
	return Filter(XMLInDoubleQuoteAttribute, input)
}

// EncodeXMLCommentContent encodes for the XmlCommentContent context.
func EncodeXMLCommentContent(input string) string { return Encode(XMLCommentContent, input) }

// FilterXMLCommentContent filters for the XmlCommentContent context.
func FilterXMLCommentContent(input string) string { return Filter(XMLCommentContent, input) }
