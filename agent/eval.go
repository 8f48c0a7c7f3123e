package agent

import (
	"context"

	"quoridor/game"
	"quoridor/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns an agent that plays the searched move with the
// best win rate.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(ctx context.Context, state *game.State) (game.Move, searcher.SearchMetric, error) {
	result, err := a.mcts.Search(ctx, state)
	return result.Move, result.Metric, err
}
