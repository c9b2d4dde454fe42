// Package textfeat extracts surface features from feedback text: punctuation, shouting,
// list structure and lexicon hits. It is the injected signal behind micro-insight
// predicates and highlight scorers; it does not classify sentiment
package textfeat

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"insighthub/internal/core/lexicon"
	"insighthub/internal/core/normalize"
)

// Features are the counts extracted from one text
type Features struct {
	Runes        int
	Words        int
	Exclamations int
	Questions    int
	UpperWords   int
	ListMarkers  int
	Intensity    int
	Urgency      int
	Actionable   int
}

// UpperRatio is the share of shouted words, 0 for empty text
func (f Features) UpperRatio() float64 {
	if f.Words == 0 {
		return 0
	}
	return float64(f.UpperWords) / float64(f.Words)
}

// Hits returns the lexicon count for one kind
func (f Features) Hits(k lexicon.Kind) int {
	switch k {
	case lexicon.KindIntensity:
		return f.Intensity
	case lexicon.KindUrgency:
		return f.Urgency
	case lexicon.KindActionable:
		return f.Actionable
	}
	return 0
}

// "1) item" or "2. item" after a separator, "- item", "* item" or "• item" at line start
var listMarker = regexp.MustCompile(`(?m)(?:^[ \t]*[-*•][ \t]+\S|(?:^|[\s(:;,])\d{1,2}[).][ \t]+\S)`)

// Extractor is immutable after construction and safe for concurrent use
type Extractor struct {
	pack  *lexicon.Pack
	ac    *automaton
	kinds []lexicon.Kind // pattern id -> kind
}

// New builds an Extractor over a compiled lexicon
func New(p *lexicon.Pack) *Extractor {
	x := &Extractor{pack: p, ac: newAutomaton()}
	for _, t := range p.Terms {
		if id := x.ac.add(t.Text); id >= 0 {
			x.kinds = append(x.kinds, t.Kind)
		}
	}
	x.ac.build()
	return x
}

var (
	defOnce sync.Once
	defX    *Extractor
)

// Default returns the Extractor over the embedded lexicon, built once per process.
// Extractors are read-only after New and safe for concurrent use
func Default() *Extractor {
	defOnce.Do(func() { defX = New(lexicon.MustDefault()) })
	return defX
}

// Pack returns the lexicon the extractor was built from
func (x *Extractor) Pack() *lexicon.Pack { return x.pack }

// Extract computes the features of one text
func (x *Extractor) Extract(text string) Features {
	var f Features
	if text == "" {
		return f
	}
	text = normalize.Sanitize(text)

	f.Runes = utf8.RuneCountInString(text)
	f.Exclamations = strings.Count(text, "!")
	f.Questions = strings.Count(text, "?")
	f.ListMarkers = len(listMarker.FindAllStringIndex(text, -1))

	for _, w := range words(text) {
		f.Words++
		if isShouted(w) && !x.pack.IsAcronym(normalize.Fold(w)) {
			f.UpperWords++
		}
	}

	folded := normalize.Fold(text)
	lastEnd := -1
	x.ac.scan(folded, func(start, end, id int) bool {
		if start < lastEnd || !onBoundary(folded, start, end) {
			return true
		}
		lastEnd = end
		switch x.kinds[id] {
		case lexicon.KindIntensity:
			f.Intensity++
		case lexicon.KindUrgency:
			f.Urgency++
		case lexicon.KindActionable:
			f.Actionable++
		}
		return true
	})
	return f
}
