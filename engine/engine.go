package engine

import (
	"context"

	"quoridor/experiments/metrics"
)

const MaxMoves = 500

type Engine interface {
	// Run plays a game till there's a winner or a max number of moves is reached
	Run(ctx context.Context) (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

var _ Engine = (*LocalEngine)(nil)
