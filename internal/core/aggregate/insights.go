package aggregate

import (
	"insighthub/internal/core/feedback"
	"insighthub/internal/core/textfeat"
)

// InsightType names a top-insight card
type InsightType string

const (
	// Praised is the most frequent positive keyword
	Praised InsightType = "praised"
	// Criticized is the most frequent negative keyword
	Criticized InsightType = "criticized"
	// Suggested is the keyword most mentioned by constructive comments
	Suggested InsightType = "suggested"
)

// Insight is one top-insight card
type Insight struct {
	Type     InsightType `json:"type"`
	Keyword  string      `json:"keyword"`
	Count    int         `json:"count"`
	Examples []string    `json:"examples"`
}

// TopInsights picks at most one keyword per card from a keyword table over the same
// comments. Rows not built by Keywords are matched against the comments by Key. A keyword
// is used by one card only; cards with no candidate are omitted
func TopInsights(comments []feedback.Comment, table []Keyword, constructive textfeat.Predicate) []Insight {
	var out []Insight
	used := map[string]bool{}

	for _, want := range []struct {
		t InsightType
		s feedback.Sentiment
	}{{Praised, feedback.Positive}, {Criticized, feedback.Negative}} {
		for _, kw := range table {
			if kw.Sentiment != want.s || used[kw.Key()] {
				continue
			}
			used[kw.Key()] = true
			out = append(out, Insight{
				Type:     want.t,
				Keyword:  kw.Text,
				Count:    kw.Frequency,
				Examples: examples(comments, kw.members(comments), func(c feedback.Comment) bool { return c.Sentiment == want.s }),
			})
			break
		}
	}

	var (
		best        *Keyword
		bestMembers []int
		bestCount   int
	)
	for i := range table {
		kw := &table[i]
		if used[kw.Key()] {
			continue
		}
		members := kw.members(comments)
		n := 0
		for _, ci := range members {
			if ci < len(comments) && constructive.Test(comments[ci].FullText) {
				n++
			}
		}
		if n > bestCount {
			best, bestMembers, bestCount = kw, members, n
		}
	}
	if best != nil {
		out = append(out, Insight{
			Type:     Suggested,
			Keyword:  best.Text,
			Count:    bestCount,
			Examples: examples(comments, bestMembers, func(c feedback.Comment) bool { return constructive.Test(c.FullText) }),
		})
	}
	return out
}

func examples(comments []feedback.Comment, idx []int, keep func(feedback.Comment) bool) []string {
	out := []string{}
	for _, i := range idx {
		if len(out) == MaxExamples {
			break
		}
		if i < len(comments) && keep(comments[i]) {
			out = append(out, comments[i].Headline())
		}
	}
	return out
}
