// Package module implements the dashboard module
package module

import (
	"insighthub/internal/core/lexicon"
	"insighthub/internal/core/normalize"
	"insighthub/internal/modkit"
	perr "insighthub/internal/platform/errors"
	"insighthub/internal/services/dashboard/domain"
	"insighthub/internal/services/dashboard/service"
)

// Ports exposed by the dashboard module
type Ports struct {
	Overview domain.OverviewPort
	Refresh  domain.RefreshPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
	svc   *service.Service
}

// New constructs the dashboard module from env config. Unknown highlight categories or
// mood labels fail with an invalid argument error
func New(deps modkit.Deps, pack *lexicon.Pack) (*Module, error) {
	deps = deps.Defaults()
	opts, err := FromConfig(deps.Cfg)
	if err != nil {
		return nil, perr.WithOp(err, "dashboard.module")
	}
	moods, err := selectMoods(pack, opts.Moods)
	if err != nil {
		return nil, perr.WithOp(err, "dashboard.module")
	}

	svc := service.New(deps.Clock, pack, service.Config{
		TrendWindow:    opts.TrendWindow,
		Exclusive:      opts.Exclusive,
		DetailBaseline: opts.DetailBaseline,
		Zone:           opts.Zone,
		Categories:     opts.Categories,
		Moods:          moods,
	})
	deps.Log.Debug().Int("categories", len(opts.Categories)).Int("moods", len(moods)).Msg("dashboard module ready")

	m := &Module{deps: deps, svc: svc}
	m.ports = Ports{
		Overview: svc,
		Refresh:  svc,
	}
	return m, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "dashboard" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Service returns the concrete service for callers that need both ports at once
func (m *Module) Service() *service.Service { return m.svc }

// selectMoods narrows the lexicon taxonomy to labels, keeping the given order
func selectMoods(pack *lexicon.Pack, labels []string) ([]lexicon.Mood, error) {
	if len(labels) == 0 {
		return pack.Moods, nil
	}
	out := make([]lexicon.Mood, 0, len(labels))
	for _, l := range labels {
		key := normalize.Fold(l)
		found := false
		for _, m := range pack.Moods {
			if m.Label == key {
				out = append(out, m)
				found = true
				break
			}
		}
		if !found {
			return nil, perr.WithField(perr.InvalidArgf("mood %q is not in the lexicon", l), "CORE_INSIGHT_MOODS")
		}
	}
	return out, nil
}
