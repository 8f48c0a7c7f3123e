package agent

import (
	"context"
	"fmt"

	"quoridor/game"
	"quoridor/searcher"
	"quoridor/utils"

	"golang.org/x/exp/rand"
)

type greedyAgent struct {
	rng *rand.Rand
}

// NewGreedyAgent returns an agent that always steps its pawn to a destination
// leaving it closest to its goal row. It never places walls.
func NewGreedyAgent(seed uint64) Agent {
	return &greedyAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *greedyAgent) FindMove(_ context.Context, state *game.State) (game.Move, searcher.SearchMetric, error) {
	if state.IsOver() {
		return game.Move{}, searcher.SearchMetric{}, fmt.Errorf("greedy: %w", game.ErrGameOver)
	}
	destinations := state.LegalPawnDestinations()
	if len(destinations) == 0 {
		return game.Move{}, searcher.SearchMetric{}, searcher.ErrNoMoves
	}

	distances := make([]int, len(destinations))
	for i, to := range destinations {
		next := state.Clone()
		if err := next.MovePawn(to); err != nil {
			return game.Move{}, searcher.SearchMetric{}, err
		}
		distances[i] = next.ShortestDistanceToGoal(next.InactivePawn())
	}
	to := destinations[utils.Choice(a.rng, utils.ArgMins(distances))]
	return game.Move{Kind: game.PawnMoveKind, At: to}, searcher.SearchMetric{}, nil
}
