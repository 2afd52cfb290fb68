package numparse

import (
	"strings"
	"unicode"
)

// StripNonGraphic returns a copy of s with every non-graphic rune
// (whitespace, controls, invalid encodings) removed. Useful for
// compacting user-supplied text such as argv values before parsing.
func StripNonGraphic(s string) string {
	return strings.Map(func(r rune) rune {
		if !unicode.IsGraphic(r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
