package interfaces

import (
	"context"

	"github.com/JSPierceColorado/Trade-Notify/internal/types"
)

// RowSource provides the trading-log rows for one run. Implementations
// map the header row to field names and drop blank rows.
type RowSource interface {
	ReadRows(ctx context.Context) ([]types.LogRow, error)
}
