// Package service implements the dashboard service
package service

import (
	"context"
	"sync/atomic"
	"time"

	"insighthub/internal/core/aggregate"
	"insighthub/internal/core/feedback"
	"insighthub/internal/core/filter"
	"insighthub/internal/core/highlight"
	"insighthub/internal/core/lexicon"
	"insighthub/internal/core/textfeat"
	perr "insighthub/internal/platform/errors"
	"insighthub/internal/platform/logger"
	"insighthub/internal/services/dashboard/domain"

	"github.com/jonboulle/clockwork"
)

// Config for the dashboard service
type Config struct {
	TrendWindow    time.Duration
	Exclusive      bool
	DetailBaseline int
	Zone           *time.Location
	Categories     []highlight.Category
	Moods          []lexicon.Mood
}

// Service implements domain.OverviewPort and domain.RefreshPort
type Service struct {
	Clock clockwork.Clock
	Cfg   Config

	ext   *textfeat.Extractor
	preds textfeat.Predicates
	cur   atomic.Pointer[feedback.Snapshot]
}

// New constructs a new dashboard service over a compiled lexicon
func New(clock clockwork.Clock, pack *lexicon.Pack, cfg Config) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if cfg.TrendWindow <= 0 {
		cfg.TrendWindow = highlight.DefaultWindow
	}
	if cfg.DetailBaseline <= 0 {
		cfg.DetailBaseline = aggregate.DetailBaseline
	}
	if cfg.Zone == nil {
		cfg.Zone = time.UTC
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = highlight.Categories
	}
	if cfg.Moods == nil {
		cfg.Moods = pack.Moods
	}
	ext := textfeat.New(pack)
	return &Service{
		Clock: clock,
		Cfg:   cfg,
		ext:   ext,
		preds: textfeat.DefaultPredicates(ext),
	}
}

// Refresh builds a snapshot stamped with the service clock and swaps it in
func (s *Service) Refresh(ctx context.Context, comments []feedback.Comment) (domain.SnapshotInfo, error) {
	if err := ctx.Err(); err != nil {
		return domain.SnapshotInfo{}, err
	}
	snap, err := feedback.NewSnapshot(comments, s.Clock.Now())
	if err != nil {
		logger.C(ctx).Warn().Err(err).Int("comments", len(comments)).Msg("dashboard: refresh rejected")
		return domain.SnapshotInfo{}, perr.WithOp(err, "dashboard.refresh")
	}
	prev := s.cur.Swap(snap)

	ev := logger.C(logger.WithPass(ctx, snap.ID().String(), "refresh")).Info().Int("comments", snap.Len())
	if prev != nil {
		ev = ev.Str("replaced", prev.ID().String())
	}
	ev.Msg("dashboard: snapshot refreshed")
	return info(snap), nil
}

// Current describes the served snapshot
func (s *Service) Current() (domain.SnapshotInfo, bool) {
	snap := s.cur.Load()
	if snap == nil {
		return domain.SnapshotInfo{}, false
	}
	return info(snap), true
}

// Overview runs one full pass over the current snapshot
func (s *Service) Overview(ctx context.Context, c filter.Criteria) (domain.Overview, error) {
	if err := ctx.Err(); err != nil {
		return domain.Overview{}, err
	}
	snap := s.cur.Load()
	if snap == nil {
		return domain.Overview{}, perr.WithOp(perr.NotFoundf("no snapshot loaded"), "dashboard.overview")
	}
	ctx = logger.WithPass(ctx, snap.ID().String(), "overview")
	start := s.Clock.Now()

	comments := snap.Comments()
	filtered, err := filter.Apply(comments, c)
	if err != nil {
		logger.C(ctx).Debug().Err(err).Msg("dashboard: filter rejected")
		return domain.Overview{}, perr.WithOp(err, "dashboard.overview")
	}

	dist := aggregate.Sentiments(comments)
	keywords := aggregate.Keywords(comments)

	ov := domain.Overview{
		Snapshot:     info(snap),
		GeneratedAt:  start,
		Criteria:     c,
		Distribution: dist,
		Thermometer:  aggregate.Thermometer(dist),
		Moods:        aggregate.Moods(comments, s.Cfg.Moods),
		Keywords:     keywords,
		Micro:        aggregate.Micro(comments, s.preds, s.Cfg.DetailBaseline),
		Timeline:     aggregate.Timeline(comments, s.Cfg.Zone),
		Insights:     aggregate.TopInsights(comments, keywords, s.preds.Constructive),
		Highlights: highlight.Select(comments, highlight.Context{
			TakenAt:   snap.TakenAt(),
			Window:    s.Cfg.TrendWindow,
			Keywords:  keywords,
			Extractor: s.ext,
		}, highlight.Options{
			Exclusive:  s.Cfg.Exclusive,
			Categories: s.Cfg.Categories,
		}),
		Comments: filtered,
	}
	if r, ok := dist.Ratio(); ok {
		ov.Ratio = &r
	}

	logger.C(ctx).Debug().
		Int("comments", len(comments)).
		Int("matched", len(filtered)).
		Int("keywords", len(keywords)).
		Int("highlights", len(ov.Highlights)).
		Dur("took", s.Clock.Since(start)).
		Msg("dashboard: overview computed")
	return ov, nil
}

func info(s *feedback.Snapshot) domain.SnapshotInfo {
	return domain.SnapshotInfo{ID: s.ID().String(), TakenAt: s.TakenAt(), Comments: s.Len()}
}
