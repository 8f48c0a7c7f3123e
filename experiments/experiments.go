package experiments

import (
	"context"
	"fmt"
	"time"

	"quoridor/agent"
	"quoridor/engine"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	NumGames   = 30 // Per match up
	TimeBudget = 100 * time.Millisecond
)

// Experiment pairs agent configs into match ups. The first config of a
// match up plays pawn 0 in even games and pawn 1 in odd games.
type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
}

// Settings controls how an experiment is played and where results go.
type Settings struct {
	Dir      string // Root directory for result files
	Games    int    // Per match up
	MaxMoves int
	Parallel int // Games played at once
}

// Results holds everything an experiment recorded.
type Results struct {
	Dir   string
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

var parallelGoroutines = []int{1, 2, 4, 8, 16}

// ParallelizationExperiment pairs each parallel agent against the sequential
// baseline under the same time budget.
func ParallelizationExperiment(budget time.Duration) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.MCTSAgent, Goroutines: 1, Duration: budget}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for i, goroutines := range parallelGoroutines[1:] {
		config := metrics.AgentConfig{ID: i + 1, Kind: metrics.MCTSAgent, Goroutines: goroutines, Duration: budget}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return Experiment{Name: "parallelization", Configs: configs, MatchUps: matchUps}
}

// CutoffExperiment pairs full-playout search against searches whose rollouts
// are scored by an evaluation after a fixed depth.
func CutoffExperiment(budget time.Duration) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.MCTSAgent, Goroutines: 4, Duration: budget} // Without cutoff (full playout)
	configs := []metrics.AgentConfig{
		baseline,
		{ID: 1, Kind: metrics.MCTSAgent, Goroutines: 4, Duration: budget, Cutoff: 10, Evaluation: "distance"},
		{ID: 2, Kind: metrics.MCTSAgent, Goroutines: 4, Duration: budget, Cutoff: 30, Evaluation: "distance"},
		{ID: 3, Kind: metrics.MCTSAgent, Goroutines: 4, Duration: budget, Cutoff: 30, Evaluation: "distance_walls"},
	}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs[1:] {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return Experiment{Name: "cutoff", Configs: configs, MatchUps: matchUps}
}

// BaselineExperiment pairs a search agent against each scripted agent.
func BaselineExperiment(simulations int) Experiment {
	mcts := metrics.AgentConfig{ID: 0, Kind: metrics.MCTSAgent, Goroutines: 1, Simulations: simulations}
	configs := []metrics.AgentConfig{
		mcts,
		{ID: 1, Kind: metrics.GreedyAgent},
		{ID: 2, Kind: metrics.PathAgent},
		{ID: 3, Kind: metrics.RandomAgent},
	}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs[1:] {
		matchUps = append(matchUps, [2]metrics.AgentConfig{mcts, config})
	}
	return Experiment{Name: "baseline", Configs: configs, MatchUps: matchUps}
}

// Run plays every match up and writes the configs and records as CSV files
// under settings.Dir. Up to settings.Parallel games run at once; records keep
// game order regardless.
func Run(ctx context.Context, experiment Experiment, settings Settings) (Results, error) {
	if settings.Games <= 0 {
		settings.Games = NumGames
	}
	if settings.MaxMoves <= 0 {
		settings.MaxMoves = engine.MaxMoves
	}
	if settings.Parallel <= 0 {
		settings.Parallel = 1
	}

	type played struct {
		record metrics.GameRecord
		moves  []metrics.MoveMetric
	}
	games := make([]played, len(experiment.MatchUps)*settings.Games)

	log.Info().Msgf("starting %s experiment...", experiment.Name)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(settings.Parallel)
	for mi, matchup := range experiment.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...",
			mi+1, len(experiment.MatchUps), matchup[0], matchup[1])

		for i := 0; i < settings.Games; i++ {
			// Alternate which config moves first
			config1, config2 := matchup[0], matchup[1]
			if i%2 == 1 {
				config1, config2 = config2, config1
			}
			slot := mi*settings.Games + i
			id := slot + 1

			g.Go(func() error {
				winner, gameMetric, moveMetrics, err := runGame(ctx, config1, config2, uint64(2*id), settings.MaxMoves)
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				games[slot] = played{
					record: metrics.GameRecord{
						ID:         id,
						Agent1:     config1.ID,
						Agent2:     config2.ID,
						GameMetric: gameMetric,
					},
					moves: moveMetrics,
				}
				log.Info().Msgf("completed matchup %d of %d game %d with winner: pawn %d", mi+1, len(experiment.MatchUps), i+1, winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Results{}, err
	}

	log.Info().Msgf("completed %s experiment", experiment.Name)

	results := Results{}
	for _, p := range games {
		results.Games = append(results.Games, p.record)
		for _, mm := range p.moves {
			results.Moves = append(results.Moves, metrics.MoveRecord{
				Game:       p.record.ID,
				MoveMetric: mm,
			})
		}
	}

	dir, err := store(experiment, settings.Dir, results)
	results.Dir = dir
	return results, err
}

func store(experiment Experiment, root string, results Results) (string, error) {
	// Store experiment metadata
	writer, err := metrics.NewWriter(root, experiment.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(experiment.Configs)
	if err != nil {
		return writer.Dir(), fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteGameRecords(results.Games)
	if err != nil {
		return writer.Dir(), fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(results.Moves)
	if err != nil {
		return writer.Dir(), fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(ctx context.Context, config1, config2 metrics.AgentConfig, seed uint64, maxMoves int) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	agent1, err := CreateAgent(config1, seed)
	if err != nil {
		return game.NoWinner, metrics.GameMetric{}, nil, err
	}
	agent2, err := CreateAgent(config2, seed+1)
	if err != nil {
		return game.NoWinner, metrics.GameMetric{}, nil, err
	}
	e := engine.NewLocalEngine(agent1, agent2, engine.WithMaxMoves(maxMoves))
	return e.Run(ctx)
}

// CreateAgent builds the agent a config describes. Configs with a non-zero
// Seed ignore the fallback seed.
func CreateAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	if config.Seed != 0 {
		seed = config.Seed
	}
	switch config.Kind {
	case metrics.MCTSAgent, "":
		mcts, err := createMCTS(config, seed)
		if err != nil {
			return nil, err
		}
		return agent.NewEvaluationAgent(mcts), nil
	case metrics.TrainingAgent:
		mcts, err := createMCTS(config, seed)
		if err != nil {
			return nil, err
		}
		return agent.NewTrainingAgent(mcts, 1.0, seed), nil
	case metrics.GreedyAgent:
		return agent.NewGreedyAgent(seed), nil
	case metrics.PathAgent:
		return agent.NewPathAgent(seed), nil
	case metrics.RandomAgent:
		return agent.NewRandomAgent(seed), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

func createMCTS(config metrics.AgentConfig, seed uint64) (*searcher.MCTS, error) {
	options := []searcher.Option{searcher.WithSeed(seed)}

	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Simulations > 0 {
		options = append(options, searcher.WithSimulations(config.Simulations))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	if config.Evaluation != "" {
		evaluate, err := Evaluation(config.Evaluation)
		if err != nil {
			return nil, err
		}
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(config.Goroutines, options...), nil
}

// Evaluation resolves an evaluation function by name.
func Evaluation(name string) (game.Evaluate, error) {
	switch name {
	case "distance":
		return game.EvaluateDistance, nil
	case "distance_walls":
		return game.EvaluateDistanceAndWalls, nil
	default:
		return nil, fmt.Errorf("unknown evaluation %q", name)
	}
}
