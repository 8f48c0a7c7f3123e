package searcher

import (
	"context"
	"errors"

	"quoridor/game"
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const DefaultSimulations = 120000

// Chance that a rollout step moves the pawn greedily instead of trying a random wall
const DefaultPawnMoveProbability = 0.7

// ErrNoMoves is returned when a search ends without any evaluated root child,
// for example with a zero simulation budget.
var ErrNoMoves = errors.New("search produced no candidate move")

// Config is the minimal configuration accepted by ChooseMove.
type Config struct {
	SimulationBudget int
	Seed             uint64
	Goroutines       int
}

// ChooseMove runs a fixed-budget search from state and returns the root move
// with the best win rate. With a zero budget it returns ErrNoMoves.
func ChooseMove(state *game.State, config Config) (game.Move, error) {
	m := NewMCTS(config.Goroutines,
		WithSimulations(config.SimulationBudget),
		WithSeed(config.Seed),
	)
	return m.FindNextMove(context.Background(), state)
}
