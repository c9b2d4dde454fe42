// Package sample embeds the legislation consultation comments used by the report CLI
// demo mode and by tests across the core packages
package sample

import (
	"bytes"
	_ "embed"
	"time"

	"insighthub/internal/core/feedback"
)

var (
	//go:embed sample.json
	base []byte

	//go:embed extended.json
	extended []byte
)

// Comments returns the eight base comments, ids "1" to "8", with ages resolved against now
func Comments(now time.Time) []feedback.Comment {
	return mustDecode(base, now)
}

// Extended returns the base comments followed by four longer showcase comments, ids "9"
// to "12", written to exercise every highlight category
func Extended(now time.Time) []feedback.Comment {
	return append(Comments(now), mustDecode(extended, now)...)
}

// Snapshot builds a validated snapshot of the base comments taken at now
func Snapshot(now time.Time) *feedback.Snapshot {
	s, err := feedback.NewSnapshot(Comments(now), now)
	if err != nil {
		panic(err)
	}
	return s
}

// an embedded file that does not decode is a build defect
func mustDecode(doc []byte, now time.Time) []feedback.Comment {
	out, err := feedback.Decode(bytes.NewReader(doc), now)
	if err != nil {
		panic(err)
	}
	return out
}
