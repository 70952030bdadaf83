// Package encoder transforms untrusted strings for safe inclusion in a
// specific output context: HTML bodies and attributes, XML content,
// attributes and comments, CDATA sections, JavaScript and JSON literals,
// and URI components.
//
// Every context supports two operations. Encode rewrites dangerous
// characters into an escaped form that preserves their meaning (output may
// grow). Filter removes every character that could not be represented
// without alteration (output is always a subsequence of the input). Both
// come in a string-returning form and a streaming form that writes to an
// io.Writer.
//
// The engine operates on UTF-16 code units, not code points. Supplementary
// plane characters are processed as two surrogate units; in the markup and
// script contexts both halves fall above every control-character range and
// pass through unchanged, so surrogate pairs survive encoding intact. The
// URI contexts are the exception: they percent-encode every non-immune
// unit, and a surrogate half on its own has no UTF-8 form, so each half
// becomes the percent-encoded replacement character. This per-unit model is
// a compatibility invariant and must not be "fixed" to code-point
// iteration.
//
// All rule sets are immutable after package initialization and safe for
// concurrent use. The transformation itself cannot fail; the streaming
// forms return an error only for a nil writer or a failed write.
package encoder
