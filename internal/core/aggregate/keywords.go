package aggregate

import (
	"math"
	"sort"

	"insighthub/internal/core/feedback"
	"insighthub/internal/core/normalize"
)

// Keyword is one row of the keyword table
type Keyword struct {
	Text      string             `json:"text"`
	Frequency int                `json:"frequency"`
	Sentiment feedback.Sentiment `json:"sentiment"`
	// X and Y place the keyword in a [0,100] square; a pure function of rank and table size
	X float64 `json:"x"`
	Y float64 `json:"y"`
	// Weight is Frequency relative to the most frequent keyword, in (0,1]
	Weight float64 `json:"weight"`

	key      string
	comments []int
}

// Key is the folded form comments are matched by. Rows built outside Keywords fold Text
func (k Keyword) Key() string {
	if k.key == "" {
		return KeyOf(k.Text)
	}
	return k.key
}

// Comments returns the input indexes of the distinct comments mentioning the keyword;
// nil for rows built outside Keywords
func (k Keyword) Comments() []int { return append([]int(nil), k.comments...) }

// members is Comments, rebuilt from comments when the row was not built by Keywords
func (k Keyword) members(comments []feedback.Comment) []int {
	if k.comments != nil {
		return k.comments
	}
	key := k.Key()
	var out []int
	for i, c := range comments {
		if Mentions(c, key) {
			out = append(out, i)
		}
	}
	return out
}

// KeyOf folds a keyword for matching
func KeyOf(s string) string { return normalize.Fold(s) }

// Keywords aggregates the precomputed per-comment keyword lists. Frequency counts every
// mention. The dominant sentiment is the plurality over distinct comments; any tie is
// neutral. Rows are ordered by frequency, then first appearance
func Keywords(comments []feedback.Comment) []Keyword {
	type acc struct {
		kw    Keyword
		first int
		votes map[feedback.Sentiment]int
	}
	byKey := map[string]*acc{}
	var order []*acc

	for i, c := range comments {
		for _, raw := range c.Keywords {
			key := KeyOf(raw)
			if key == "" {
				continue
			}
			a, ok := byKey[key]
			if !ok {
				a = &acc{kw: Keyword{Text: raw, key: key}, first: len(order), votes: map[feedback.Sentiment]int{}}
				byKey[key] = a
				order = append(order, a)
			}
			a.kw.Frequency++
			if n := len(a.kw.comments); n == 0 || a.kw.comments[n-1] != i {
				a.kw.comments = append(a.kw.comments, i)
				a.votes[c.Sentiment]++
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].kw.Frequency != order[j].kw.Frequency {
			return order[i].kw.Frequency > order[j].kw.Frequency
		}
		return order[i].first < order[j].first
	})

	out := make([]Keyword, len(order))
	maxFreq := 0
	if len(order) > 0 {
		maxFreq = order[0].kw.Frequency
	}
	for rank, a := range order {
		kw := a.kw
		kw.Sentiment = dominant(a.votes)
		kw.X, kw.Y = Layout(rank, len(order))
		kw.Weight = float64(kw.Frequency) / float64(maxFreq)
		out[rank] = kw
	}
	return out
}

func dominant(votes map[feedback.Sentiment]int) feedback.Sentiment {
	best, top, tied := feedback.Neutral, -1, false
	for _, s := range feedback.Sentiments {
		switch n := votes[s]; {
		case n > top:
			best, top, tied = s, n, false
		case n == top:
			tied = true
		}
	}
	if tied {
		return feedback.Neutral
	}
	return best
}

const goldenAngle = 2.399963229728653 // pi * (3 - sqrt(5))

// Layout places rank on a golden-angle spiral around (50,50) with radius below 40, so
// higher-ranked keywords sit near the centre. Coordinates are rounded to hundredths
func Layout(rank, n int) (x, y float64) {
	if n <= 0 || rank < 0 || rank >= n {
		return 50, 50
	}
	r := 40 * math.Sqrt((float64(rank)+0.5)/float64(n))
	theta := float64(rank) * goldenAngle
	return round2(50 + r*math.Cos(theta)), round2(50 + r*math.Sin(theta))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// Mentions reports whether c lists the keyword with the given folded key
func Mentions(c feedback.Comment, key string) bool {
	for _, k := range c.Keywords {
		if KeyOf(k) == key {
			return true
		}
	}
	return false
}
