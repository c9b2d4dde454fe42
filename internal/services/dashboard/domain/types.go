// Package domain defines the types and ports of the dashboard service
package domain

import (
	"time"

	"insighthub/internal/core/aggregate"
	"insighthub/internal/core/feedback"
	"insighthub/internal/core/filter"
	"insighthub/internal/core/highlight"
)

// SnapshotInfo describes the snapshot currently served
type SnapshotInfo struct {
	ID       string    `json:"id"`
	TakenAt  time.Time `json:"taken_at"`
	Comments int       `json:"comments"`
}

// Overview is the result of one full aggregation pass over one snapshot.
// Metrics and highlights cover the whole snapshot; Comments holds the filtered subset
type Overview struct {
	Snapshot    SnapshotInfo    `json:"snapshot"`
	GeneratedAt time.Time       `json:"generated_at"`
	Criteria    filter.Criteria `json:"criteria"`

	Distribution aggregate.Distribution `json:"distribution"`
	// Ratio is positive:negative, nil without negative comments
	Ratio       *float64                   `json:"ratio"`
	Thermometer aggregate.Reading          `json:"thermometer"`
	Moods       aggregate.MoodDistribution `json:"moods"`
	Keywords    []aggregate.Keyword        `json:"keywords"`
	Micro       aggregate.MicroInsights    `json:"micro"`
	Timeline    []aggregate.Day            `json:"timeline"`
	Insights    []aggregate.Insight        `json:"insights"`
	Highlights  []highlight.Highlight      `json:"highlights"`

	Comments []feedback.Comment `json:"comments"`
}
