package encoder

import (
	"io"
	"unicode/utf16"
)

// cdataEncodedEnd replaces a "]]>" terminator when encoding. It closes the
// CDATA section after "]]", then reopens a new section whose first
// character is the ">", so no complete terminator survives inside any
// single CDATA run.
const cdataEncodedEnd = "]]>]]<![CDATA[>"

// cdataManipulator neutralizes the 3-character CDATA terminator "]]>".
// Unlike the rule-set contexts it must look across runs of ']' characters,
// so it is a small scanner rather than a per-unit classifier. Control
// characters illegal in XML content are removed, mirroring the XML rules,
// except tab, LF and CR which are legal inside CDATA.
type cdataManipulator struct{}

func (cdataManipulator) encodeTo(input string, w io.Writer) error {
	return cdataScan(input, w, false)
}

func (cdataManipulator) filterTo(input string, w io.Writer) error {
	return cdataScan(input, w, true)
}

func cdataScan(input string, w io.Writer, filter bool) error {
	// Illegal controls are removed before terminator scanning, never
	// during it. Dropping one mid-scan could join a ']' run with a later
	// '>' and synthesize a terminator the scanner already passed over.
	raw := utf16.Encode([]rune(input))
	units := make([]uint16, 0, len(raw))
	for _, u := range raw {
		if !isCDATAIllegal(u) {
			units = append(units, u)
		}
	}
	sink := newUnitSink(w)

	for i := 0; i < len(units); i++ {
		u := units[i]
		if u == ']' {
			// Count the run of consecutive ']' units. The lookahead is
			// bounded by the run length; no backtracking happens.
			j := i
			for j < len(units) && units[j] == ']' {
				j++
			}
			run := j - i
			if run >= 2 && j < len(units) && units[j] == '>' {
				// Only the final two ']' plus the '>' form the match;
				// any earlier ']' in the run are literal content.
				for k := 0; k < run-2; k++ {
					sink.appendUnit(']')
				}
				if !filter {
					sink.appendASCII(cdataEncodedEnd)
				}
				i = j // skip the '>' as well
			} else {
				// A run of ']' not followed by '>' is harmless: emit the
				// buffered units verbatim and resume after the run.
				for k := 0; k < run; k++ {
					sink.appendUnit(']')
				}
				i = j - 1
			}
		} else {
			sink.appendUnit(u)
		}
		if err := sink.maybeFlush(); err != nil {
			return err
		}
	}
	return sink.flush()
}

// isCDATAIllegal reports whether the unit is a control character removed
// from CDATA content in both encode and filter modes.
func isCDATAIllegal(u uint16) bool {
	if u == '\t' || u == '\n' || u == '\r' {
		return false
	}
	return isXMLIllegal(u)
}
