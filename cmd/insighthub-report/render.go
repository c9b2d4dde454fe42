package main

import (
	"fmt"
	"io"
	"strings"

	"insighthub/internal/core/feedback"
	"insighthub/internal/services/dashboard/domain"

	"github.com/fatih/color"
)

type palette struct {
	head, dim, pos, neu, neg *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		head: color.New(color.FgCyan, color.Bold),
		dim:  color.New(color.Faint),
		pos:  color.New(color.FgGreen),
		neu:  color.New(color.FgYellow),
		neg:  color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.head, p.dim, p.pos, p.neu, p.neg} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) of(s feedback.Sentiment) *color.Color {
	switch s {
	case feedback.Positive:
		return p.pos
	case feedback.Negative:
		return p.neg
	}
	return p.neu
}

// bar draws one block per five percent
func bar(pct int) string { return strings.Repeat("█", max(pct, 0)/5) }

func renderConsole(w io.Writer, ov domain.Overview, colored bool) error {
	p := newPalette(colored)
	var b strings.Builder

	section := func(title string) { b.WriteString("\n" + p.head.Sprint(title) + "\n") }

	fmt.Fprintf(&b, "%s  snapshot %s  taken %s  %d comments\n",
		p.head.Sprint("insighthub report"), ov.Snapshot.ID, ov.Snapshot.TakenAt.Format("2006-01-02 15:04 MST"), ov.Snapshot.Comments)

	section("Sentiment")
	for _, bk := range ov.Distribution.Buckets {
		c := p.of(bk.Sentiment)
		fmt.Fprintf(&b, "  %-9s %4d %4d%%  %s\n", bk.Sentiment, bk.Count, bk.Percentage, c.Sprint(bar(bk.Percentage)))
	}
	ratio := "n/a"
	if ov.Ratio != nil {
		ratio = fmt.Sprintf("%.2f", *ov.Ratio)
	}
	fmt.Fprintf(&b, "  thermometer %.0f° %s, positive:negative %s\n", ov.Thermometer.Score, ov.Thermometer.Climate, ratio)

	section("Moods")
	for _, m := range ov.Moods.Buckets {
		fmt.Fprintf(&b, "  %s %-11s %3d %4d%%", m.Emoji, m.Label, m.Count, m.Percentage)
		if len(m.Examples) > 0 {
			b.WriteString("  " + p.dim.Sprint(strings.Join(m.Examples, "; ")))
		}
		b.WriteString("\n")
	}
	if ov.Moods.Unlabeled > 0 {
		fmt.Fprintf(&b, "  unlabeled %d\n", ov.Moods.Unlabeled)
	}

	section("Keywords")
	for _, k := range ov.Keywords {
		fmt.Fprintf(&b, "  %-24s x%-3d %s  (%.0f,%.0f)\n", k.Text, k.Frequency, p.of(k.Sentiment).Sprint(k.Sentiment), k.X, k.Y)
	}

	section("Micro-insights")
	m := ov.Micro
	fmt.Fprintf(&b, "  avg length %.0f chars, detail depth %d%%\n", m.AverageLength, m.DetailDepth)
	fmt.Fprintf(&b, "  passionate %d (%d%%), questions %d (%d%%), urgent %d (%d%%)\n",
		m.PassionateCount, m.Share(m.PassionateCount), m.QuestionCount, m.Share(m.QuestionCount), m.UrgentCount, m.Share(m.UrgentCount))

	section("Timeline")
	for _, d := range ov.Timeline {
		fmt.Fprintf(&b, "  %s %s  %s %s %s\n", d.Label, d.Date.Format("2006-01-02"),
			p.pos.Sprintf("+%d", d.Positive), p.neu.Sprintf("=%d", d.Neutral), p.neg.Sprintf("-%d", d.Negative))
	}

	section("Top insights")
	for _, in := range ov.Insights {
		fmt.Fprintf(&b, "  %-10s %q x%d\n", in.Type, in.Keyword, in.Count)
		for _, ex := range in.Examples {
			b.WriteString("    " + p.dim.Sprint(ex) + "\n")
		}
	}

	section("Highlights")
	for _, h := range ov.Highlights {
		fmt.Fprintf(&b, "  %-12s #%s %3d  %s\n    %s\n", h.Category, h.CommentID, h.Score, h.Summary, p.dim.Sprint(h.Reason))
	}

	label := "all"
	if !ov.Criteria.IsZero() {
		var parts []string
		if ov.Criteria.Sentiment != "" {
			parts = append(parts, "sentiment="+string(ov.Criteria.Sentiment))
		}
		if ov.Criteria.Keyword != "" {
			parts = append(parts, fmt.Sprintf("keyword=%q", ov.Criteria.Keyword))
		}
		label = strings.Join(parts, " ")
	}
	section(fmt.Sprintf("Comments (%s, %d shown)", label, len(ov.Comments)))
	if len(ov.Comments) == 0 {
		b.WriteString("  no comments match\n")
	}
	for _, c := range ov.Comments {
		fmt.Fprintf(&b, "  #%-3s %s %-18s %s\n", c.ID, p.of(c.Sentiment).Sprintf("%-8s", c.Sentiment), c.Author, c.Headline())
	}

	_, err := io.WriteString(w, b.String())
	return err
}
