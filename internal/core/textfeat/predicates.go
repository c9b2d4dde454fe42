package textfeat

// Predicate classifies one comment text
type Predicate func(text string) bool

// Predicates are the swappable classifiers behind micro-insight counts
type Predicates struct {
	Passionate   Predicate
	Question     Predicate
	Urgent       Predicate
	Constructive Predicate
}

// DefaultPredicates derives every predicate from one extractor.
// passionate: any '!', any shouted word, or two intensity hits.
// constructive: a list marker or two actionable hits
func DefaultPredicates(x *Extractor) Predicates {
	return Predicates{
		Passionate: func(s string) bool {
			f := x.Extract(s)
			return f.Exclamations > 0 || f.UpperWords > 0 || f.Intensity >= 2
		},
		Question: func(s string) bool { return x.Extract(s).Questions > 0 },
		Urgent:   func(s string) bool { return x.Extract(s).Urgency > 0 },
		Constructive: func(s string) bool {
			f := x.Extract(s)
			return f.ListMarkers > 0 || f.Actionable >= 2
		},
	}
}

// Test reports p(s), treating a nil predicate as always false
func (p Predicate) Test(s string) bool {
	return p != nil && p(s)
}
