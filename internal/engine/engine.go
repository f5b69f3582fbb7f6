package engine

import (
	"context"
	"math"
	"time"

	"github.com/JSPierceColorado/Trade-Notify/internal/interfaces"
	"github.com/JSPierceColorado/Trade-Notify/internal/logger"
	"github.com/JSPierceColorado/Trade-Notify/internal/store"
	"github.com/JSPierceColorado/Trade-Notify/internal/summary"
	"github.com/JSPierceColorado/Trade-Notify/internal/types"
)

// htmlBody is the placeholder body for subject-only mail. Some clients
// collapse messages with a truly empty body.
const htmlBody = "&nbsp;"

// emptyProfitBand is the half-cent band inside which a day's total
// counts as zero for skip-if-empty purposes.
const emptyProfitBand = 0.005

type engine struct {
	cfg      *store.Config
	source   interfaces.RowSource
	notifier interfaces.Notifier
	loc      *time.Location
	now      func() time.Time
}

func (e *engine) Run(ctx context.Context) (*types.RunResult, error) {
	rows, err := e.source.ReadRows(ctx)
	if err != nil {
		return nil, err
	}

	today := summary.RowsForDay(rows, e.loc, e.now())
	sum := summary.Summarize(today)
	subject := summary.Subject(sum)

	logger.Summary(ctx, sum.BoughtCount, sum.TotalProfit, subject,
		"rows_total", len(rows),
		"rows_today", len(today),
	)

	res := &types.RunResult{
		Summary: sum,
		Subject: subject,
		Rows:    len(today),
	}

	if e.cfg.SkipIfEmpty && sum.BoughtCount == 0 && math.Abs(sum.TotalProfit) < emptyProfitBand {
		logger.Info(ctx, "No buys today and no profit - skipping email")
		res.Skipped = true
		return res, nil
	}

	if err := e.notifier.Send(ctx, subject, htmlBody); err != nil {
		return nil, err
	}
	res.Sent = true

	logger.Delivery(ctx, e.cfg.Email.Provider, subject, len(e.cfg.Email.To))
	return res, nil
}
