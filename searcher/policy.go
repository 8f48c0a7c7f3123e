package searcher

import (
	"errors"
	"fmt"

	"quoridor/game"
	"quoridor/utils"

	"golang.org/x/exp/rand"
)

// rollout plays a simulated game to its end. Pawn steps are greedy on the
// mover's own distance to goal; walls are drawn uniformly among valid slots.
type rollout struct {
	pawnMoveProbability float64
	cutoff              int
	evaluate            game.Evaluate
	distances           *game.DistanceCache
	metrics             Collector
}

// play mutates state until a pawn wins and returns the winner's index. With a
// cutoff, the game is scored by the evaluation function after that many plies.
func (r *rollout) play(state *game.State, rng *rand.Rand) int {
	for ply := 0; !state.IsOver(); ply++ {
		if r.cutoff > 0 && ply >= r.cutoff {
			return game.Leader(state, r.evaluate)
		}
		if !r.step(state, rng) {
			// A pawn with no step and no placeable wall forfeits the playout.
			return state.InactivePawn().Index
		}
	}
	r.metrics.AddFullPlayout()
	return state.Winner()
}

// step plays one move. If the drawn branch has nothing legal to offer, the
// other branch is tried before giving up.
func (r *rollout) step(state *game.State, rng *rand.Rand) bool {
	if state.ActivePawn().WallsLeft == 0 || rng.Float64() < r.pawnMoveProbability {
		return r.movePawn(state, rng) || r.placeWall(state, rng)
	}
	return r.placeWall(state, rng) || r.movePawn(state, rng)
}

// movePawn steps to a destination that minimises the mover's remaining
// distance, breaking ties at random.
func (r *rollout) movePawn(state *game.State, rng *rand.Rand) bool {
	destinations := state.LegalPawnDestinations()
	if len(destinations) == 0 {
		return false
	}
	goalRow := state.ActivePawn().GoalRow
	distances := make([]int, len(destinations))
	for i, d := range destinations {
		distances[i] = r.distances.DistanceToRow(state, d, goalRow)
	}
	to := destinations[utils.Choice(rng, utils.ArgMins(distances))]
	if err := state.MovePawn(to); err != nil {
		panic(fmt.Sprintf("rollout: generated pawn move failed: %v", err))
	}
	return true
}

// placeWall draws structurally valid slots at random, discarding those that
// would block a pawn, until one commits or none remain.
func (r *rollout) placeWall(state *game.State, rng *rand.Rand) bool {
	if state.ActivePawn().WallsLeft == 0 {
		return false
	}
	candidates := wallCandidates(state)
	for len(candidates) > 0 {
		i := rng.Intn(len(candidates))
		err := state.Apply(candidates[i])
		if err == nil {
			return true
		}
		if !errors.Is(err, game.ErrNoPath) {
			panic(fmt.Sprintf("rollout: generated wall failed: %v", err))
		}
		r.metrics.AddWallRetry()
		last := len(candidates) - 1
		candidates[i] = candidates[last]
		candidates = candidates[:last]
	}
	return false
}

func wallCandidates(state *game.State) []game.Move {
	horizontals := state.LegalWallSlots(game.Horizontal)
	verticals := state.LegalWallSlots(game.Vertical)
	moves := make([]game.Move, 0, len(horizontals)+len(verticals))
	for _, at := range horizontals {
		moves = append(moves, game.WallMove(game.Horizontal, at))
	}
	for _, at := range verticals {
		moves = append(moves, game.WallMove(game.Vertical, at))
	}
	return moves
}

// childMoves lists the moves that expansion attaches below a node.
func childMoves(state *game.State) []game.Move {
	return state.LegalMoves()
}
