// Package lexicon loads the embedded text-feature lexicon (lexicon.json).
// Terms are folded with normalize.Fold so they compare directly against folded comment text
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"insighthub/internal/core/normalize"
)

//go:embed lexicon.json
var embedded []byte

// Kind classifies a lexicon term
type Kind string

const (
	// KindIntensity marks emotionally loaded words
	KindIntensity Kind = "intensity"
	// KindUrgency marks words that signal time pressure
	KindUrgency Kind = "urgency"
	// KindActionable marks suggestion and request verbs
	KindActionable Kind = "actionable"
)

// Kinds lists every term kind in a stable order
var Kinds = []Kind{KindIntensity, KindUrgency, KindActionable}

type rawMood struct {
	Label       string `json:"label"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

type rawPack struct {
	Version  int                 `json:"version"`
	Meta     map[string]any      `json:"meta"`
	Terms    map[string][]string `json:"terms"`
	Acronyms []string            `json:"acronyms"`
	Moods    []rawMood           `json:"moods"`
}

// Term is one folded lexicon entry
type Term struct {
	Text string
	Kind Kind
}

// Mood is one label of the mood taxonomy
type Mood struct {
	Label       string `json:"label"`
	Emoji       string `json:"emoji,omitempty"`
	Description string `json:"description,omitempty"`
}

// Pack is a compiled lexicon
type Pack struct {
	Version int
	Meta    map[string]any

	// Terms is sorted by (Kind, Text) and deduplicated
	Terms []Term

	// Acronyms are folded all-caps tokens that do not count as shouting
	Acronyms map[string]struct{}

	// Moods is the default mood taxonomy in file order
	Moods []Mood
}

// Load parses and compiles the embedded lexicon.json
func Load() (*Pack, error) { return Parse(embedded) }

var (
	defOnce sync.Once
	defPack *Pack
	defErr  error
)

// Default returns the embedded pack, compiled once per process
func Default() (*Pack, error) {
	defOnce.Do(func() { defPack, defErr = Load() })
	return defPack, defErr
}

// MustDefault is Default for package initialization paths; a broken embedded file is a build defect
func MustDefault() *Pack {
	p, err := Default()
	if err != nil {
		panic(err)
	}
	return p
}

// Parse compiles a lexicon document
func Parse(doc []byte) (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(doc, &rp); err != nil {
		return nil, fmt.Errorf("lexicon: parse: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("lexicon: unsupported version %d (want 1)", rp.Version)
	}

	p := &Pack{
		Version:  rp.Version,
		Meta:     rp.Meta,
		Acronyms: make(map[string]struct{}, len(rp.Acronyms)),
	}

	seen := make(map[Term]struct{}, 64)
	for key, list := range rp.Terms {
		k := Kind(key)
		if !k.valid() {
			return nil, fmt.Errorf("lexicon: unknown term kind %q", key)
		}
		for _, raw := range list {
			txt := normalize.Fold(raw)
			if txt == "" {
				continue
			}
			t := Term{Text: txt, Kind: k}
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			p.Terms = append(p.Terms, t)
		}
	}

	for _, a := range rp.Acronyms {
		if f := normalize.Fold(a); f != "" {
			p.Acronyms[f] = struct{}{}
		}
	}

	labels := make(map[string]struct{}, len(rp.Moods))
	for _, m := range rp.Moods {
		label := normalize.Fold(m.Label)
		if label == "" {
			return nil, fmt.Errorf("lexicon: mood with empty label")
		}
		if _, dup := labels[label]; dup {
			return nil, fmt.Errorf("lexicon: duplicate mood %q", label)
		}
		labels[label] = struct{}{}
		p.Moods = append(p.Moods, Mood{Label: label, Emoji: m.Emoji, Description: m.Description})
	}

	// deterministic iteration for tests/debug
	sort.Slice(p.Terms, func(i, j int) bool {
		if p.Terms[i].Kind != p.Terms[j].Kind {
			return p.Terms[i].Kind < p.Terms[j].Kind
		}
		return p.Terms[i].Text < p.Terms[j].Text
	})

	return p, nil
}

// TermsOf returns the folded texts of one kind
func (p *Pack) TermsOf(k Kind) []string {
	var out []string
	for _, t := range p.Terms {
		if t.Kind == k {
			out = append(out, t.Text)
		}
	}
	return out
}

// IsAcronym reports whether the folded token is a known acronym
func (p *Pack) IsAcronym(folded string) bool {
	_, ok := p.Acronyms[folded]
	return ok
}

func (k Kind) valid() bool {
	for _, x := range Kinds {
		if x == k {
			return true
		}
	}
	return false
}
