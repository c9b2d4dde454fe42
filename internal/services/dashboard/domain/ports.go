package domain

import (
	"context"

	"insighthub/internal/core/feedback"
	"insighthub/internal/core/filter"
)

// OverviewPort runs aggregation passes over the current snapshot
type OverviewPort interface {
	Overview(ctx context.Context, c filter.Criteria) (Overview, error)
}

// RefreshPort replaces the current snapshot
type RefreshPort interface {
	// Refresh validates comments into a new snapshot and swaps it in whole.
	// Overviews computed earlier stay valid, only stale
	Refresh(ctx context.Context, comments []feedback.Comment) (SnapshotInfo, error)

	// Current describes the served snapshot; ok is false before the first refresh
	Current() (SnapshotInfo, bool)
}
