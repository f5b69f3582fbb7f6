package sourceobs

import (
	"context"

	"github.com/JSPierceColorado/Trade-Notify/internal/interfaces"
	"github.com/JSPierceColorado/Trade-Notify/internal/logger"
	"github.com/JSPierceColorado/Trade-Notify/internal/trace"
	"github.com/JSPierceColorado/Trade-Notify/internal/types"
)

// observableRowSource wraps a RowSource with observability (logging & tracing)
type observableRowSource struct {
	source interfaces.RowSource
}

// Compile-time interface check
var _ interfaces.RowSource = (*observableRowSource)(nil)

// Wrap wraps a row source with observability middleware
func Wrap(source interfaces.RowSource) interfaces.RowSource {
	return &observableRowSource{
		source: source,
	}
}

func (ors *observableRowSource) ReadRows(ctx context.Context) ([]types.LogRow, error) {
	ctx, span := trace.StartSpan(ctx, "sheetlog.ReadRows")
	defer span.End()

	// Use DebugSkip(1) to report the actual caller, not this middleware wrapper
	logger.DebugSkip(ctx, 1, "Reading trading log rows")

	rows, err := ors.source.ReadRows(ctx)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Trading log read failed", err)
		return nil, err
	}

	if len(rows) == 0 {
		logger.WarnSkip(ctx, 1, "Trading log has no rows")
	}

	logger.InfoSkip(ctx, 1, "Trading log rows read",
		"rows", len(rows),
	)

	return rows, nil
}
