// Package normalize folds feedback text into a matching key.
// Pipeline order
// 1 Sanitize control characters and invalid UTF-8
// 2 Unicode NFKD decomposition so accents become separate marks
// 3 Case folding
// 4 Remove combining marks and format characters (zero-widths)
// 5 Width fold fullwidth to ASCII and recompose (NFC)
// 6 Collapse whitespace runs to single spaces and trim
//
// The folded form is only ever compared with other folded strings; it is never displayed
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// transformer chains are stateful, so each caller borrows one from the pool
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
			norm.NFC,
		)
	},
}

// Fold returns the matching key for s. Fold is idempotent and safe for concurrent use
func Fold(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// x/text only fails on malformed input, which Sanitize already removed
		out = strings.ToLower(s)
	}
	return collapseSpaces(out)
}

// Contains reports whether needle occurs in haystack after folding both
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}

// collapseSpaces converts every whitespace run to one ASCII space and trims the edges
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte(' ')
			pending = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
