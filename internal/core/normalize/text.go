// Package normalize maps the heterogeneous JSON returned by the postings
// endpoints into canonical posting records. It never fails: unexpected input
// degrades to empty results.
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// control characters other than tab and newline are dropped before composing
var textChain = sync.Pool{
	New: func() any {
		return transform.Chain(
			runes.Remove(runes.Predicate(func(r rune) bool {
				return unicode.IsControl(r) && r != '\n' && r != '\t'
			})),
			norm.NFC,
		)
	},
}

// Text repairs UTF-8, strips control characters and composes to NFC so that
// decomposed Hangul from upstream compares equal to typed input
func Text(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToValidUTF8(s, "")
	if isPlainASCII(s) {
		return s
	}
	tr := textChain.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	textChain.Put(tr)
	if err != nil {
		return s
	}
	return out
}

func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 || (c < 0x20 && c != '\n' && c != '\t') || c == 0x7F {
			return false
		}
	}
	return true
}
