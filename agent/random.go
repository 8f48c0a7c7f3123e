package agent

import (
	"context"
	"fmt"

	"quoridor/game"
	"quoridor/searcher"
	"quoridor/utils"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(_ context.Context, state *game.State) (game.Move, searcher.SearchMetric, error) {
	if state.IsOver() {
		return game.Move{}, searcher.SearchMetric{}, fmt.Errorf("random: %w", game.ErrGameOver)
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, searcher.SearchMetric{}, searcher.ErrNoMoves
	}
	return utils.Choice(a.rng, moves), searcher.SearchMetric{}, nil
}
