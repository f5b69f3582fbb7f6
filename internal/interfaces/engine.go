package interfaces

import (
	"context"

	"github.com/JSPierceColorado/Trade-Notify/internal/types"
)

type Engine interface {
	Run(ctx context.Context) (*types.RunResult, error)
}
