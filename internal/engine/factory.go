package engine

import (
	"time"

	"github.com/JSPierceColorado/Trade-Notify/internal/interfaces"
	"github.com/JSPierceColorado/Trade-Notify/internal/store"
)

// New builds the run pipeline over a row source and a notifier. The
// reference instant for "today" is taken once at the start of each run.
func New(cfg *store.Config, source interfaces.RowSource, notifier interfaces.Notifier, loc *time.Location) interfaces.Engine {
	return newEngine(cfg, source, notifier, loc, time.Now)
}

// NewForDay builds a pipeline pinned to a specific day instead of
// today, for re-sending or backfilling a summary.
func NewForDay(cfg *store.Config, source interfaces.RowSource, notifier interfaces.Notifier, loc *time.Location, day time.Time) interfaces.Engine {
	return newEngine(cfg, source, notifier, loc, func() time.Time { return day })
}

func newEngine(cfg *store.Config, source interfaces.RowSource, notifier interfaces.Notifier, loc *time.Location, now func() time.Time) *engine {
	return &engine{
		cfg:      cfg,
		source:   source,
		notifier: notifier,
		loc:      loc,
		now:      now,
	}
}
