package agent

import (
	"context"

	"quoridor/game"
	"quoridor/searcher"
)

type Agent interface {
	// FindMove returns the move to play from state and the metrics of the
	// search behind it, if the agent searches at all.
	FindMove(ctx context.Context, state *game.State) (game.Move, searcher.SearchMetric, error)
}
