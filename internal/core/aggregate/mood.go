package aggregate

import (
	"insighthub/internal/core/feedback"
	"insighthub/internal/core/lexicon"
	"insighthub/internal/core/normalize"
)

// MaxExamples caps the example summaries attached to a mood or insight
const MaxExamples = 2

// MoodBucket counts comments carrying one taxonomy label
type MoodBucket struct {
	lexicon.Mood
	Count      int      `json:"count"`
	Percentage int      `json:"percentage"`
	Examples   []string `json:"examples"`
}

// MoodDistribution has one bucket per taxonomy label, in taxonomy order.
// Percentages are over all comments so unlabeled ones lower every share
type MoodDistribution struct {
	Total     int          `json:"total"`
	Buckets   []MoodBucket `json:"buckets"`
	Unlabeled int          `json:"unlabeled"`
}

// Moods groups comments by their precomputed mood label. Labels compare folded; a label
// outside the taxonomy counts as unlabeled
func Moods(comments []feedback.Comment, taxonomy []lexicon.Mood) MoodDistribution {
	md := MoodDistribution{Total: len(comments), Buckets: make([]MoodBucket, len(taxonomy))}
	index := make(map[string]int, len(taxonomy))
	for i, m := range taxonomy {
		md.Buckets[i] = MoodBucket{Mood: m, Examples: []string{}}
		index[normalize.Fold(m.Label)] = i
	}

	for _, c := range comments {
		i, ok := index[normalize.Fold(c.Mood)]
		if !ok {
			md.Unlabeled++
			continue
		}
		b := &md.Buckets[i]
		b.Count++
		if len(b.Examples) < MaxExamples {
			b.Examples = append(b.Examples, c.Headline())
		}
	}
	for i := range md.Buckets {
		md.Buckets[i].Percentage = Percent(md.Buckets[i].Count, md.Total)
	}
	return md
}
