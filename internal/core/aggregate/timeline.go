package aggregate

import (
	"sort"
	"time"

	"insighthub/internal/core/feedback"
)

// Day is the per-sentiment count of one calendar day
type Day struct {
	Date     time.Time `json:"date"`
	Label    string    `json:"label"`
	Positive int       `json:"positive"`
	Neutral  int       `json:"neutral"`
	Negative int       `json:"negative"`
}

// Total is the number of comments on the day
func (d Day) Total() int { return d.Positive + d.Neutral + d.Negative }

// Timeline buckets comments by calendar day in loc (UTC when nil), ascending. Comments
// without a creation time are left out. Days without comments are not emitted
func Timeline(comments []feedback.Comment, loc *time.Location) []Day {
	if loc == nil {
		loc = time.UTC
	}
	byDay := map[time.Time]*Day{}
	for _, c := range comments {
		if c.CreatedAt.IsZero() {
			continue
		}
		t := c.CreatedAt.In(loc)
		date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		d, ok := byDay[date]
		if !ok {
			d = &Day{Date: date, Label: date.Format("Mon")}
			byDay[date] = d
		}
		switch c.Sentiment {
		case feedback.Positive:
			d.Positive++
		case feedback.Neutral:
			d.Neutral++
		case feedback.Negative:
			d.Negative++
		}
	}

	out := make([]Day, 0, len(byDay))
	for _, d := range byDay {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
