package highlight

import (
	"time"

	"insighthub/internal/core/aggregate"
	"insighthub/internal/core/feedback"
	"insighthub/internal/core/textfeat"
)

// Context carries the pass-wide inputs scorers read. Zero fields get defaults when a
// pass starts: the default extractor, DefaultWindow, a keyword table built from the
// comments, and the newest comment time as TakenAt. An injected keyword table is matched
// against comment keywords by Keyword.Key, so rows only need Text in rank order
type Context struct {
	TakenAt   time.Time
	Window    time.Duration
	Keywords  []aggregate.Keyword
	Extractor *textfeat.Extractor

	comments []feedback.Comment
	topKey   []int // comment index -> keyword table rank, -1 when none
	cluster  []int // comment index -> recent comments sharing its top keyword
}

func (ctx Context) prepare(comments []feedback.Comment) *Context {
	cx := ctx
	cx.comments = comments
	if cx.Extractor == nil {
		cx.Extractor = textfeat.Default()
	}
	if cx.Window <= 0 {
		cx.Window = DefaultWindow
	}
	if len(cx.Keywords) == 0 {
		cx.Keywords = aggregate.Keywords(comments)
	}
	if cx.TakenAt.IsZero() {
		for _, c := range comments {
			if c.CreatedAt.After(cx.TakenAt) {
				cx.TakenAt = c.CreatedAt
			}
		}
	}

	rankOf := make(map[string]int, len(cx.Keywords))
	for r, k := range cx.Keywords {
		if key := k.Key(); key != "" {
			if _, dup := rankOf[key]; !dup {
				rankOf[key] = r
			}
		}
	}
	cx.topKey = make([]int, len(comments))
	for i, c := range comments {
		cx.topKey[i] = -1
		for _, raw := range c.Keywords {
			r, ok := rankOf[aggregate.KeyOf(raw)]
			if ok && (cx.topKey[i] == -1 || r < cx.topKey[i]) {
				cx.topKey[i] = r
			}
		}
	}

	sizes := map[int]int{}
	for i, c := range comments {
		if cx.topKey[i] >= 0 && cx.Recent(c) {
			sizes[cx.topKey[i]]++
		}
	}
	cx.cluster = make([]int, len(comments))
	for i, c := range comments {
		if cx.topKey[i] >= 0 && cx.Recent(c) {
			cx.cluster[i] = sizes[cx.topKey[i]]
		}
	}
	return &cx
}

func (cx *Context) candidates() []Candidate {
	out := make([]Candidate, len(cx.comments))
	for i, c := range cx.comments {
		out[i] = Candidate{Comment: c, Features: cx.Extractor.Extract(c.FullText), Index: i}
	}
	return out
}

// Recent reports whether c was created within Window before TakenAt, inclusive
func (cx *Context) Recent(c feedback.Comment) bool {
	if c.CreatedAt.IsZero() || c.CreatedAt.After(cx.TakenAt) {
		return false
	}
	return !c.CreatedAt.Before(cx.TakenAt.Add(-cx.Window))
}

// Age is TakenAt minus the comment time, 0 when unknown or in the future
func (cx *Context) Age(c feedback.Comment) time.Duration {
	if c.CreatedAt.IsZero() || c.CreatedAt.After(cx.TakenAt) {
		return 0
	}
	return cx.TakenAt.Sub(c.CreatedAt)
}

// TopKeyword is the most frequent table keyword the comment at index i lists
func (cx *Context) TopKeyword(i int) (aggregate.Keyword, bool) {
	if i < 0 || i >= len(cx.topKey) || cx.topKey[i] < 0 {
		return aggregate.Keyword{}, false
	}
	return cx.Keywords[cx.topKey[i]], true
}

// Cluster is the number of recent comments sharing the top keyword of the comment at
// index i, itself included; 0 when that comment is not recent
func (cx *Context) Cluster(i int) int {
	if i < 0 || i >= len(cx.cluster) {
		return 0
	}
	return cx.cluster[i]
}

// RecentCount is the number of comments inside the window
func (cx *Context) RecentCount() int {
	n := 0
	for _, c := range cx.comments {
		if cx.Recent(c) {
			n++
		}
	}
	return n
}
