package module

import (
	"strings"
	"time"

	"insighthub/internal/core/aggregate"
	"insighthub/internal/core/highlight"
	"insighthub/internal/platform/config"
	perr "insighthub/internal/platform/errors"
)

// Options holds configuration settings for the dashboard module
type Options struct {
	TrendWindow    time.Duration
	Exclusive      bool
	DetailBaseline int
	Zone           *time.Location
	Categories     []highlight.Category
	Moods          []string
}

// FromConfig reads configuration settings from the config.Conf. An unknown highlight
// category is an invalid argument naming the env key
func FromConfig(cfg config.Conf) (Options, error) {
	df := cfg.Prefix("CORE_INSIGHT_")

	var cats []highlight.Category
	for _, c := range df.MayCSV("CATEGORIES", nil) {
		cat := highlight.Category(strings.ToLower(c))
		if !known(cat) {
			return Options{}, perr.WithField(perr.InvalidArgf("unknown highlight category %q", c), "CORE_INSIGHT_CATEGORIES")
		}
		cats = append(cats, cat)
	}
	return Options{
		TrendWindow:    df.MayDuration("TREND_WINDOW", highlight.DefaultWindow),
		Exclusive:      df.MayBool("EXCLUSIVE_HIGHLIGHTS", true),
		DetailBaseline: df.MayInt("DETAIL_BASELINE", aggregate.DetailBaseline),
		Zone:           df.MayLocation("TIMELINE_ZONE", time.UTC),
		Categories:     cats,
		Moods:          df.MayCSV("MOODS", nil),
	}, nil
}

func known(c highlight.Category) bool {
	for _, k := range highlight.Categories {
		if k == c {
			return true
		}
	}
	return false
}
