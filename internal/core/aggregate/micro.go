package aggregate

import (
	"math"

	"insighthub/internal/core/feedback"
	"insighthub/internal/core/textfeat"
)

// DetailBaseline is the average length, in runes, that reads as full detail depth
const DetailBaseline = 500

// MicroInsights are scalar counts over one comment sequence
type MicroInsights struct {
	TotalComments   int     `json:"total_comments"`
	AverageLength   float64 `json:"average_length"`
	PassionateCount int     `json:"passionate_count"`
	QuestionCount   int     `json:"question_count"`
	UrgentCount     int     `json:"urgent_count"`
	DetailDepth     int     `json:"detail_depth"`
}

// Micro counts comments accepted by each injected predicate. A nil predicate counts
// nothing. baseline <= 0 uses DetailBaseline
func Micro(comments []feedback.Comment, p textfeat.Predicates, baseline int) MicroInsights {
	m := MicroInsights{TotalComments: len(comments)}
	if len(comments) == 0 {
		return m
	}
	if baseline <= 0 {
		baseline = DetailBaseline
	}

	runes := 0
	for _, c := range comments {
		runes += c.Length()
		if p.Passionate.Test(c.FullText) {
			m.PassionateCount++
		}
		if p.Question.Test(c.FullText) {
			m.QuestionCount++
		}
		if p.Urgent.Test(c.FullText) {
			m.UrgentCount++
		}
	}
	m.AverageLength = float64(runes) / float64(len(comments))
	m.DetailDepth = min(100, int(math.Round(m.AverageLength/float64(baseline)*100)))
	return m
}

// Share is n as a percentage of all comments
func (m MicroInsights) Share(n int) int { return Percent(n, m.TotalComments) }
