// Package feedback holds the ingested comment model and the immutable snapshot the
// aggregation passes read from
package feedback

import (
	"strings"
	"time"
	"unicode/utf8"

	perr "insighthub/internal/platform/errors"
)

// Sentiment is the precomputed polarity tag of a comment
type Sentiment string

const (
	// Positive marks supportive feedback
	Positive Sentiment = "positive"
	// Neutral marks balanced or informational feedback
	Neutral Sentiment = "neutral"
	// Negative marks critical feedback
	Negative Sentiment = "negative"
)

// Sentiments lists every tag in bucket order
var Sentiments = []Sentiment{Positive, Neutral, Negative}

// ParseSentiment accepts exactly one of the three tags; nothing is coerced
func ParseSentiment(s string) (Sentiment, error) {
	v := Sentiment(s)
	if !v.Valid() {
		return "", perr.WithField(perr.InvalidArgf("unknown sentiment %q", s), "sentiment")
	}
	return v, nil
}

// Valid reports whether s is one of the three tags
func (s Sentiment) Valid() bool {
	switch s {
	case Positive, Neutral, Negative:
		return true
	}
	return false
}

func (s Sentiment) String() string { return string(s) }

// Comment is one piece of consultation feedback. Mood, Views and Keywords are produced
// upstream and may be empty
type Comment struct {
	ID        string    `json:"id" validate:"notblank"`
	FullText  string    `json:"full_text" validate:"notblank"`
	Summary   string    `json:"summary"`
	Sentiment Sentiment `json:"sentiment" validate:"sentiment"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	Mood      string    `json:"mood,omitempty"`
	Views     int       `json:"views" validate:"min=0"`
	Keywords  []string  `json:"keywords,omitempty" validate:"dive,notblank"`
}

// Headline is the summary, or the start of the full text when no summary was provided
func (c Comment) Headline() string {
	if s := strings.TrimSpace(c.Summary); s != "" {
		return s
	}
	const limit = 80
	if utf8.RuneCountInString(c.FullText) <= limit {
		return c.FullText
	}
	r := []rune(c.FullText)
	return strings.TrimSpace(string(r[:limit])) + "…"
}

// Length is the rune length of the full text
func (c Comment) Length() int { return utf8.RuneCountInString(c.FullText) }

// clone deep-copies the keyword slice
func (c Comment) clone() Comment {
	if c.Keywords != nil {
		c.Keywords = append([]string(nil), c.Keywords...)
	}
	return c
}
