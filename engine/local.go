package engine

import (
	"context"
	"fmt"
	"time"

	"quoridor/agent"
	"quoridor/experiments/metrics"
	"quoridor/game"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

// WithMaxMoves caps the number of moves before a game is abandoned.
func WithMaxMoves(n int) Option {
	return func(e *LocalEngine) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

// WithState starts the game from a given position instead of the opening.
func WithState(state *game.State) Option {
	return func(e *LocalEngine) {
		e.state = state.Clone()
	}
}

// WithObserver is called after every committed move.
func WithObserver(observe func(move game.Move, state *game.State)) Option {
	return func(e *LocalEngine) {
		e.observe = observe
	}
}

// LocalEngine runs a game between two in-process agents. Agent i plays pawn i.
type LocalEngine struct {
	state    *game.State
	agents   [2]agent.Agent
	maxMoves int
	observe  func(move game.Move, state *game.State)
}

func NewLocalEngine(agent0, agent1 agent.Agent, options ...Option) *LocalEngine {
	if agent0 == nil || agent1 == nil {
		panic("need two agents")
	}
	e := &LocalEngine{
		state:    game.NewGameState(),
		agents:   [2]agent.Agent{agent0, agent1},
		maxMoves: MaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// State returns the current position.
func (e *LocalEngine) State() *game.State {
	return e.state
}

// Run executes the game loop until a winner is found, the move cap is hit,
// or an agent fails.
func (e *LocalEngine) Run(ctx context.Context) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.state.ActiveIndex(),
		Winner:         game.NoWinner,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("pawn %d is starting", e.state.ActiveIndex())

	for step := 1; !e.state.IsOver() && step <= e.maxMoves; step++ {
		if err := ctx.Err(); err != nil {
			return game.NoWinner, e.complete(gameMetric, len(moveMetrics)), moveMetrics, err
		}
		player := e.state.ActiveIndex()

		move, searchMetric, err := e.agents[player].FindMove(ctx, e.state)
		if err != nil {
			return game.NoWinner, e.complete(gameMetric, len(moveMetrics)), moveMetrics,
				fmt.Errorf("pawn %d failed to find a move at step %d: %w", player, step, err)
		}
		if err := e.state.Apply(move); err != nil {
			return game.NoWinner, e.complete(gameMetric, len(moveMetrics)), moveMetrics,
				fmt.Errorf("pawn %d played %v at step %d: %w", player, move, step, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})
		log.Debug().Int("step", step).Int("pawn", player).Stringer("move", move).Msg("move played")

		if e.observe != nil {
			e.observe(move, e.state)
		}
	}

	gameMetric = e.complete(gameMetric, len(moveMetrics))
	if e.state.IsOver() {
		log.Info().Msgf("game ended after %d moves with winner: pawn %d", gameMetric.TotalMoves, gameMetric.Winner)
	} else {
		log.Info().Msgf("stopped after %d moves (no winner yet)", gameMetric.TotalMoves)
	}
	return gameMetric.Winner, gameMetric, moveMetrics, nil
}

func (e *LocalEngine) complete(gameMetric metrics.GameMetric, moves int) metrics.GameMetric {
	gameMetric.Winner = e.state.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = moves
	return gameMetric
}
