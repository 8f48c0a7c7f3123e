package agent

import (
	"context"
	"fmt"

	"quoridor/game"
	"quoridor/searcher"
	"quoridor/utils"

	"golang.org/x/exp/rand"
)

type pathAgent struct {
	rng *rand.Rand
}

// NewPathAgent returns an agent that follows a random shortest path to a
// nearest goal cell, jumping the opponent when the path runs through it.
func NewPathAgent(seed uint64) Agent {
	return &pathAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *pathAgent) FindMove(_ context.Context, state *game.State) (game.Move, searcher.SearchMetric, error) {
	if state.IsOver() {
		return game.Move{}, searcher.SearchMetric{}, fmt.Errorf("path: %w", game.ErrGameOver)
	}
	to, ok := a.next(state)
	if !ok {
		destinations := state.LegalPawnDestinations()
		if len(destinations) == 0 {
			return game.Move{}, searcher.SearchMetric{}, searcher.ErrNoMoves
		}
		to = utils.Choice(a.rng, destinations)
	}
	return game.Move{Kind: game.PawnMoveKind, At: to}, searcher.SearchMetric{}, nil
}

// next picks the second cell of a random shortest path, or a cell further
// along when the opponent stands in the way.
func (a *pathAgent) next(state *game.State) (game.Position, bool) {
	pawn := state.ActivePawn()
	dist, _ := state.ShortestDistances(pawn)
	goals := dist.Nearest(pawn.GoalRow)
	if len(goals) == 0 {
		return game.Position{}, false
	}
	paths := state.ShortestPaths(pawn, utils.Choice(a.rng, goals))
	if len(paths) == 0 || len(paths[0]) < 2 {
		return game.Position{}, false
	}

	next := utils.Choice(a.rng, paths)[1]
	if adjacent(pawn.Position, state.InactivePawn().Position) {
		if len(paths[0]) == 2 {
			// One step from goal: any reachable goal cell will do.
			for _, to := range state.LegalPawnDestinations() {
				if to.Row == pawn.GoalRow {
					return to, true
				}
			}
		} else {
			for _, path := range paths {
				if state.IsLegalPawnDestination(path[2]) {
					next = path[2]
				}
			}
		}
	}
	return next, state.IsLegalPawnDestination(next)
}

func adjacent(a, b game.Position) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}
