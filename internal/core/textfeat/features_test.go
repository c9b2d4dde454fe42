package textfeat

import (
	"sync"
	"testing"

	"insighthub/internal/core/lexicon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_Table(t *testing.T) {
	x := Default()

	cases := []struct {
		name string
		in   string
		want Features
	}{
		{
			name: "empty",
			in:   "",
			want: Features{},
		},
		{
			name: "actionable and urgency with prefix terms",
			in:   "We should urgently add a phased rollout!!",
			want: Features{Runes: 41, Words: 7, Exclamations: 2, Urgency: 1, Actionable: 3},
		},
		{
			name: "acronyms are not shouting",
			in:   "GDPR is a MAJOR issue for the IT team",
			want: Features{Runes: 37, Words: 9, UpperWords: 1},
		},
		{
			name: "intensity",
			in:   "I absolutely love it",
			want: Features{Runes: 20, Words: 4, Intensity: 2},
		},
		{
			name: "inflection is a distinct term",
			in:   "this needs work?",
			want: Features{Runes: 16, Words: 3, Questions: 1, Actionable: 1},
		},
		{
			name: "multi word term counted once",
			in:   "fix it as soon as possible",
			want: Features{Runes: 26, Words: 6, Urgency: 1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, x.Extract(tc.in))
		})
	}
}

func TestExtract_ListMarkers(t *testing.T) {
	x := Default()

	assert.Equal(t, 2, x.Extract("Proposals: 1) fund ramps 2) caption videos").ListMarkers)
	assert.Equal(t, 3, x.Extract("Ideas:\n- one\n* two\n• three").ListMarkers)
	assert.Equal(t, 0, x.Extract("costs - and benefits in 2024. Then more").ListMarkers)
}

func TestExtract_WordBoundaries(t *testing.T) {
	x := Default()

	// "add" inside "address" and "must" inside "mustard" are not hits
	f := x.Extract("address the mustard")
	assert.Zero(t, f.Actionable)

	// punctuation and hyphens separate words
	f = x.Extract("time-sensitive, URGENT.")
	assert.Equal(t, 2, f.Urgency)
	assert.Equal(t, 1, f.UpperWords)
}

func TestExtract_FoldsBeforeMatching(t *testing.T) {
	x := Default()
	f := x.Extract("Ｕｒｇｅｎｔ: Thrilled!")
	assert.Equal(t, 1, f.Urgency)
	assert.Equal(t, 1, f.Intensity)
}

func TestUpperRatioAndHits(t *testing.T) {
	assert.Zero(t, Features{}.UpperRatio())
	f := Features{Words: 4, UpperWords: 1, Intensity: 2, Urgency: 1, Actionable: 3}
	assert.InDelta(t, 0.25, f.UpperRatio(), 1e-9)
	assert.Equal(t, 2, f.Hits("intensity"))
	assert.Equal(t, 1, f.Hits("urgency"))
	assert.Equal(t, 3, f.Hits("actionable"))
	assert.Zero(t, f.Hits("other"))
}

func TestDefaultPredicates(t *testing.T) {
	p := DefaultPredicates(Default())

	assert.True(t, p.Passionate.Test("This is great!"))
	assert.True(t, p.Passionate.Test("this is NOT fine"))
	assert.True(t, p.Passionate.Test("absolutely terrible draft"))
	assert.False(t, p.Passionate.Test("A measured and calm view."))

	assert.True(t, p.Question.Test("Will it apply to charities?"))
	assert.False(t, p.Question.Test("It applies to charities."))

	assert.True(t, p.Urgent.Test("Please act immediately"))
	assert.False(t, p.Urgent.Test("No rush here"))

	assert.True(t, p.Constructive.Test("We should consider a pilot"))
	assert.True(t, p.Constructive.Test("Options:\n- pilot first"))
	assert.False(t, p.Constructive.Test("We should wait"))

	var none Predicate
	assert.False(t, none.Test("anything!"))
}

func TestAutomaton_FindsOverlapping(t *testing.T) {
	a := newAutomaton()
	require.Equal(t, 0, a.add("he"))
	require.Equal(t, 1, a.add("she"))
	require.Equal(t, 2, a.add("hers"))
	require.Equal(t, -1, a.add(""))
	a.build()

	type hit struct{ start, end, id int }
	var got []hit
	a.scan("ushers", func(s, e, id int) bool {
		got = append(got, hit{s, e, id})
		return true
	})
	assert.Equal(t, []hit{{1, 4, 1}, {2, 4, 0}, {2, 6, 2}}, got)

	n := 0
	a.scan("ushers", func(int, int, int) bool { n++; return false })
	assert.Equal(t, 1, n)
}

func TestDefault_BuiltOnce(t *testing.T) {
	x := Default()
	assert.Same(t, x, Default())
	assert.Same(t, lexicon.MustDefault(), x.Pack())

	var wg sync.WaitGroup
	got := make([]*Extractor, 8)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = Default()
		}()
	}
	wg.Wait()
	for _, g := range got {
		assert.Same(t, x, g)
	}
}
