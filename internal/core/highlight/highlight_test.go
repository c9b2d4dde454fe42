package highlight

import (
	"testing"
	"time"

	"insighthub/internal/core/aggregate"
	"insighthub/internal/core/feedback"
	"insighthub/internal/core/sample"
	kit "insighthub/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type winner struct {
	cat   Category
	id    string
	score int
}

func winners(hs []Highlight) []winner {
	out := make([]winner, len(hs))
	for i, h := range hs {
		out[i] = winner{h.Category, h.CommentID, h.Score}
	}
	return out
}

func TestSelect_SampleExclusive(t *testing.T) {
	got := Select(sample.Comments(kit.Epoch), Context{TakenAt: kit.Epoch}, DefaultOptions())
	assert.Equal(t, []winner{
		{Passionate, "1", 10},
		{Constructive, "7", 41},
		{HiddenGem, "8", 17},
		{Trending, "6", 27},
	}, winners(got))

	assert.Equal(t, "High emotional intensity: 1 intensity word", got[0].Reason)
	assert.Equal(t, "Need clearer accessibility requirements", got[1].Summary)
	assert.Equal(t, "Maria Gonzalez", got[1].Author)
	assert.Equal(t, `Part of an emerging trend: 2 comments about "digital transformation" in the past 24 hours`, got[3].Reason)
}

func TestSelect_SampleIndependent(t *testing.T) {
	got := Select(sample.Comments(kit.Epoch), Context{TakenAt: kit.Epoch}, Options{})
	assert.Equal(t, []winner{
		{Passionate, "1", 10},
		{Constructive, "7", 41},
		{HiddenGem, "7", 23},
		{Trending, "1", 45},
	}, winners(got))
}

func TestSelect_Extended(t *testing.T) {
	got := Select(sample.Extended(kit.Epoch), Context{TakenAt: kit.Epoch}, DefaultOptions())
	require.Len(t, got, 4)
	assert.Equal(t, []winner{
		{Passionate, "9", 75},
		{Constructive, "10", 98},
		{HiddenGem, "11", 67},
		{Trending, "1", 54},
	}, winners(got))

	assert.Equal(t, "High emotional intensity: 4 exclamation marks, 1 all-caps word and 3 intensity words", got[0].Reason)
	assert.Equal(t, "Detailed comment (443 characters) with 12 views, posted 2 days ago", got[2].Reason)

	seen := map[string]bool{}
	for _, h := range got {
		assert.False(t, seen[h.CommentID], "comment %s won twice", h.CommentID)
		seen[h.CommentID] = true
		assert.GreaterOrEqual(t, h.Score, 0)
		assert.LessOrEqual(t, h.Score, 100)
	}
}

func TestSelect_Deterministic(t *testing.T) {
	in := sample.Extended(kit.Epoch)
	ctx := Context{TakenAt: kit.Epoch, Keywords: aggregate.Keywords(in)}
	a := Select(in, ctx, DefaultOptions())
	b := Select(in, ctx, DefaultOptions())
	assert.Equal(t, a, b)
}

func TestSelect_Empty(t *testing.T) {
	got := Select(nil, Context{}, DefaultOptions())
	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.Nil(t, Rank(nil, Context{}, Passionate, Options{}))
}

func TestSelect_TiesGoToEarliest(t *testing.T) {
	flat := ScorerFunc(func(*Context, Candidate) (Result, bool) { return Result{Score: 50, Reason: "flat"}, true })
	opt := Options{
		Exclusive:  true,
		Categories: []Category{Passionate, Constructive},
		Scorers:    map[Category]Scorer{Passionate: flat, Constructive: flat},
	}
	got := Select(sample.Comments(kit.Epoch), Context{TakenAt: kit.Epoch}, opt)
	assert.Equal(t, []winner{{Passionate, "1", 50}, {Constructive, "2", 50}}, winners(got))
}

func TestSelect_CustomScorerIsClamped(t *testing.T) {
	loud := ScorerFunc(func(_ *Context, c Candidate) (Result, bool) {
		return Result{Score: 150, Reason: "loud"}, c.Comment.ID == "3"
	})
	opt := Options{Categories: []Category{Trending}, Scorers: map[Category]Scorer{Trending: loud}}
	got := Select(sample.Comments(kit.Epoch), Context{TakenAt: kit.Epoch}, opt)
	assert.Equal(t, []winner{{Trending, "3", 100}}, winners(got))
}

func TestSelect_NoQualifyingComment(t *testing.T) {
	in := []feedback.Comment{{ID: "1", FullText: "fine", Sentiment: feedback.Neutral, Views: 1000}}
	got := Select(in, Context{}, DefaultOptions())
	// only hidden-gem accepts a plain short comment
	assert.Equal(t, []Category{HiddenGem}, func() []Category {
		var out []Category
		for _, h := range got {
			out = append(out, h.Category)
		}
		return out
	}())
}

func TestRank(t *testing.T) {
	r := Rank(sample.Comments(kit.Epoch), Context{TakenAt: kit.Epoch}, Passionate, Options{})
	require.Len(t, r, 4)
	assert.Equal(t, []string{"1", "2", "4", "5"}, []string{r[0].CommentID, r[1].CommentID, r[2].CommentID, r[3].CommentID})
}

func TestRank_TrendingWithCallerKeywordTable(t *testing.T) {
	in := []feedback.Comment{
		{ID: "a", FullText: "Worried about privacy", Sentiment: feedback.Negative,
			CreatedAt: kit.Epoch.Add(-time.Hour), Keywords: []string{"Privacy"}},
		{ID: "b", FullText: "Privacy rules need work", Sentiment: feedback.Negative,
			CreatedAt: kit.Epoch.Add(-2 * time.Hour), Keywords: []string{"privacy"}},
	}
	ids := func(rs []Ranked) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.CommentID
		}
		return out
	}

	computed := Rank(in, Context{TakenAt: kit.Epoch}, Trending, Options{})
	require.Len(t, computed, 2)

	table := []aggregate.Keyword{{Text: "privacy", Frequency: 2}}
	got := Rank(in, Context{TakenAt: kit.Epoch, Keywords: table}, Trending, Options{})
	require.Len(t, got, 2)
	assert.Equal(t, ids(computed), ids(got))
	assert.Equal(t, computed[0].Score, got[0].Score)
	assert.Equal(t, `Part of an emerging trend: 2 comments about "privacy" in the past 24 hours`, got[0].Reason)

	// an empty table falls back to the computed one
	empty := Rank(in, Context{TakenAt: kit.Epoch, Keywords: []aggregate.Keyword{}}, Trending, Options{})
	assert.Equal(t, ids(computed), ids(empty))
}

func TestContext(t *testing.T) {
	in := sample.Comments(kit.Epoch)
	cx := Context{TakenAt: kit.Epoch}.prepare(in)

	assert.Equal(t, DefaultWindow, cx.Window)
	assert.Equal(t, 6, cx.RecentCount())
	assert.True(t, cx.Recent(in[5]))
	assert.False(t, cx.Recent(in[6]))

	kw, ok := cx.TopKeyword(5)
	require.True(t, ok)
	assert.Equal(t, "digital transformation", kw.Text)
	assert.Equal(t, 2, cx.Cluster(5))
	assert.Equal(t, 1, cx.Cluster(1))
	assert.Zero(t, cx.Cluster(6))
	assert.Zero(t, cx.Cluster(99))

	_, ok = cx.TopKeyword(-1)
	assert.False(t, ok)

	// without TakenAt the newest comment sets the clock
	cx = Context{}.prepare(in)
	assert.Equal(t, in[0].CreatedAt, cx.TakenAt)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "1 view", plural(1, "view"))
	assert.Equal(t, "0 views", plural(0, "view"))
	assert.Equal(t, "none", list("0 a", "0 b"))
	assert.Equal(t, "1 a", list("1 a", "0 b"))
	assert.Equal(t, "1 a and 2 bs", list("1 a", "2 bs"))
	assert.Equal(t, "3 hours", since(3*3600e9))
	assert.Equal(t, "2 days", since(50*3600e9))
}
