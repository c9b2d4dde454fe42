package highlight

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Defaults returns a fresh map of the built-in scorers
func Defaults() map[Category]Scorer {
	return map[Category]Scorer{
		Passionate:   ScorerFunc(passionate),
		Constructive: ScorerFunc(constructive),
		HiddenGem:    ScorerFunc(hiddenGem),
		Trending:     ScorerFunc(trending),
	}
}

// passionate: up to 40 for exclamations, 30 for shouted words, 30 for intensity words
func passionate(_ *Context, c Candidate) (Result, bool) {
	f := c.Features
	e := float64(min(f.Exclamations, 4)) * 10
	u := math.Min(f.UpperRatio()*200, 30)
	i := float64(min(f.Intensity, 3)) * 10
	if e+u+i == 0 {
		return Result{}, false
	}
	return Result{
		Score: e + u + i,
		Reason: "High emotional intensity: " + list(
			plural(f.Exclamations, "exclamation mark"),
			plural(f.UpperWords, "all-caps word"),
			plural(f.Intensity, "intensity word"),
		),
	}, true
}

// constructive: up to 48 for list items, 32 for actionable verbs, 20 for length
func constructive(_ *Context, c Candidate) (Result, bool) {
	f := c.Features
	l := float64(min(f.ListMarkers, 4)) * 12
	a := float64(min(f.Actionable, 4)) * 8
	if l+a == 0 {
		return Result{}, false
	}
	n := math.Min(float64(f.Runes)/400, 1) * 20
	return Result{
		Score: l + a + n,
		Reason: "Specific, actionable suggestions: " + list(
			plural(f.ListMarkers, "list item"),
			plural(f.Actionable, "actionable verb"),
			plural(f.Runes, "character"),
		),
	}, true
}

// hiddenGem: length share of 400 runes, damped by views and lifted by age up to three days
func hiddenGem(ctx *Context, c Candidate) (Result, bool) {
	f := c.Features
	if f.Runes == 0 {
		return Result{}, false
	}
	length := math.Min(float64(f.Runes)/400, 1)
	attention := 1 / (1 + float64(max(c.Comment.Views, 0))/50)
	age := ctx.Age(c.Comment)
	lift := 0.5 + 0.5*math.Min(float64(age)/float64(72*time.Hour), 1)
	return Result{
		Score: 100 * length * attention * lift,
		Reason: fmt.Sprintf("Detailed comment (%s) with %s, posted %s ago",
			plural(f.Runes, "character"), plural(c.Comment.Views, "view"), since(age)),
	}, true
}

// trending: up to 80 for the cluster's share of recent comments, 20 for freshness.
// A cluster of one is not a trend
func trending(ctx *Context, c Candidate) (Result, bool) {
	size := ctx.Cluster(c.Index)
	kw, ok := ctx.TopKeyword(c.Index)
	if !ok || size < 2 {
		return Result{}, false
	}
	share := float64(size) / float64(max(ctx.RecentCount(), 1))
	fresh := 1 - math.Min(float64(ctx.Age(c.Comment))/float64(ctx.Window), 1)
	return Result{
		Score: 80*share + 20*fresh,
		Reason: fmt.Sprintf("Part of an emerging trend: %s about %q in the past %s",
			plural(size, "comment"), kw.Text, since(ctx.Window)),
	}, true
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// list joins the parts that do not start with "0 "
func list(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if !strings.HasPrefix(p, "0 ") {
			kept = append(kept, p)
		}
	}
	switch len(kept) {
	case 0:
		return "none"
	case 1:
		return kept[0]
	}
	return strings.Join(kept[:len(kept)-1], ", ") + " and " + kept[len(kept)-1]
}

// since renders d as whole days, or whole hours under two days
func since(d time.Duration) string {
	if d >= 48*time.Hour {
		return plural(int(d/(24*time.Hour)), "day")
	}
	return plural(int(d/time.Hour), "hour")
}
