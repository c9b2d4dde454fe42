// Package aggregate derives dashboard metrics from a comment sequence. Every function is
// pure over its inputs and total over validated comments; empty input yields zero values
package aggregate

import (
	"math"

	"insighthub/internal/core/feedback"
)

// Bucket is the count of one sentiment
type Bucket struct {
	Sentiment  feedback.Sentiment `json:"sentiment"`
	Count      int                `json:"count"`
	Percentage int                `json:"percentage"`
}

// Distribution always holds three buckets in the order positive, neutral, negative
type Distribution struct {
	Total   int      `json:"total"`
	Buckets []Bucket `json:"buckets"`
}

// Percent returns round(100*n/total), 0 when total is 0
func Percent(n, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(n) / float64(total)))
}

// Sentiments counts comments per sentiment
func Sentiments(comments []feedback.Comment) Distribution {
	counts := make(map[feedback.Sentiment]int, len(feedback.Sentiments))
	for _, c := range comments {
		counts[c.Sentiment]++
	}
	d := Distribution{Total: len(comments), Buckets: make([]Bucket, 0, len(feedback.Sentiments))}
	for _, s := range feedback.Sentiments {
		n := counts[s]
		d.Buckets = append(d.Buckets, Bucket{Sentiment: s, Count: n, Percentage: Percent(n, d.Total)})
	}
	return d
}

// Of returns the bucket for s
func (d Distribution) Of(s feedback.Sentiment) Bucket {
	for _, b := range d.Buckets {
		if b.Sentiment == s {
			return b
		}
	}
	return Bucket{Sentiment: s}
}

// Ratio is positive:negative; ok is false when there are no negative comments
func (d Distribution) Ratio() (ratio float64, ok bool) {
	neg := d.Of(feedback.Negative).Count
	if neg == 0 {
		return 0, false
	}
	return float64(d.Of(feedback.Positive).Count) / float64(neg), true
}

// Climate bands a thermometer reading
type Climate string

const (
	// ClimatePositive is a score above 70
	ClimatePositive Climate = "positive-climate"
	// ClimateBalanced is a score above 40
	ClimateBalanced Climate = "balanced"
	// ClimateCritical is anything lower
	ClimateCritical Climate = "critical"
)

// Reading is the blended sentiment score in [0,100]
type Reading struct {
	Score   float64 `json:"score"`
	Climate Climate `json:"climate"`
}

// Thermometer blends bucket percentages: (pos% - neg% + 100) / 2. Empty input reads 50
func Thermometer(d Distribution) Reading {
	score := float64(d.Of(feedback.Positive).Percentage-d.Of(feedback.Negative).Percentage+100) / 2
	r := Reading{Score: score}
	switch {
	case score > 70:
		r.Climate = ClimatePositive
	case score > 40:
		r.Climate = ClimateBalanced
	default:
		r.Climate = ClimateCritical
	}
	return r
}
