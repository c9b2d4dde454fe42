// Package highlight promotes comments into attention categories. Each category has a
// pluggable Scorer; Select runs one pass over a comment sequence and picks one winner per
// category
package highlight

import (
	"math"
	"sort"
	"time"

	"insighthub/internal/core/feedback"
	"insighthub/internal/core/textfeat"
)

// Category names a highlight card
type Category string

const (
	// Passionate rewards emphasis: exclamations, shouting, intensity words
	Passionate Category = "passionate"
	// Constructive rewards structured suggestions
	Constructive Category = "constructive"
	// HiddenGem rewards long, older comments that got little attention
	HiddenGem Category = "hidden-gem"
	// Trending rewards comments in the largest recent keyword cluster
	Trending Category = "trending"
)

// Categories is the default pass order
var Categories = []Category{Passionate, Constructive, HiddenGem, Trending}

// DefaultWindow is the trending look-back before the snapshot time
const DefaultWindow = 24 * time.Hour

// Candidate is one comment offered to a scorer
type Candidate struct {
	Comment  feedback.Comment
	Features textfeat.Features
	// Index is the position in the input sequence
	Index int
}

// Result is a scorer verdict. Score is clamped to [0,100]
type Result struct {
	Score  float64
	Reason string
}

// Scorer rates one candidate for one category. ok=false means the comment does not qualify
type Scorer interface {
	Score(ctx *Context, c Candidate) (r Result, ok bool)
}

// ScorerFunc adapts a function to Scorer
type ScorerFunc func(ctx *Context, c Candidate) (Result, bool)

// Score calls f
func (f ScorerFunc) Score(ctx *Context, c Candidate) (Result, bool) { return f(ctx, c) }

// Highlight is a comment promoted to a category
type Highlight struct {
	CommentID string    `json:"comment_id"`
	Category  Category  `json:"category"`
	Score     int       `json:"score"`
	Reason    string    `json:"reason"`
	Summary   string    `json:"summary"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Options tunes a selection pass
type Options struct {
	// Exclusive skips comments that already won an earlier category in the same pass
	Exclusive bool
	// Categories sets the pass order; nil uses Categories
	Categories []Category
	// Scorers overrides per-category scorers; missing entries use the defaults
	Scorers map[Category]Scorer
}

// DefaultOptions selects every category exclusively with the default scorers
func DefaultOptions() Options { return Options{Exclusive: true} }

// Select scores every comment for every category and returns one winner per category in
// pass order. Ties go to the earliest comment. Categories with no qualifying comment are
// left out, so empty input gives an empty list
func Select(comments []feedback.Comment, ctx Context, opt Options) []Highlight {
	out := []Highlight{}
	if len(comments) == 0 {
		return out
	}
	cx := ctx.prepare(comments)
	cands := cx.candidates()

	cats := opt.Categories
	if cats == nil {
		cats = Categories
	}
	taken := make(map[int]bool, len(cats))

	for _, cat := range cats {
		ranked := rank(cx, cands, opt.scorer(cat))
		for _, r := range ranked {
			if opt.Exclusive && taken[r.index] {
				continue
			}
			taken[r.index] = true
			c := comments[r.index]
			out = append(out, Highlight{
				CommentID: c.ID,
				Category:  cat,
				Score:     int(math.Round(r.Score)),
				Reason:    r.Reason,
				Summary:   c.Headline(),
				Author:    c.Author,
				CreatedAt: c.CreatedAt,
			})
			break
		}
	}
	return out
}

// Ranked is one scored comment of a category ranking
type Ranked struct {
	Result
	CommentID string
	index     int
}

// Rank returns every qualifying comment for one category, best first, ties by input order
func Rank(comments []feedback.Comment, ctx Context, cat Category, opt Options) []Ranked {
	if len(comments) == 0 {
		return nil
	}
	cx := ctx.prepare(comments)
	return rank(cx, cx.candidates(), opt.scorer(cat))
}

func rank(cx *Context, cands []Candidate, s Scorer) []Ranked {
	if s == nil {
		return nil
	}
	var out []Ranked
	for _, c := range cands {
		r, ok := s.Score(cx, c)
		if !ok || math.IsNaN(r.Score) {
			continue
		}
		r.Score = clamp(r.Score)
		if r.Score <= 0 {
			continue
		}
		out = append(out, Ranked{Result: r, CommentID: c.Comment.ID, index: c.Index})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func (o Options) scorer(cat Category) Scorer {
	if s, ok := o.Scorers[cat]; ok {
		return s
	}
	return Defaults()[cat]
}

func clamp(v float64) float64 { return math.Max(0, math.Min(100, v)) }
