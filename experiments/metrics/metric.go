package metrics

import (
	"time"

	"quoridor/game"
	"quoridor/searcher"
)

type AgentKind string

const (
	MCTSAgent     AgentKind = "mcts"
	TrainingAgent AgentKind = "training"
	GreedyAgent   AgentKind = "greedy"
	PathAgent     AgentKind = "path"
	RandomAgent   AgentKind = "random"
)

// AgentConfig identifies one agent setup within an experiment.
type AgentConfig struct {
	ID          int
	Kind        AgentKind
	Goroutines  int
	Simulations int
	Duration    time.Duration
	Cutoff      int
	Evaluation  string // "distance" or "distance_walls"; used with Cutoff
	Seed        uint64
}

type MoveMetric struct {
	Step   int
	Player int // Pawn index
	Move   game.Move
	searcher.SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Pawn index
	Winner         int // Pawn index, game.NoWinner if the move cap was hit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}
