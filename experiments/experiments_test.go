package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"quoridor/experiments/metrics"
	"quoridor/searcher"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("records every game and move", func(t *testing.T) {
		greedy := metrics.AgentConfig{ID: 1, Kind: metrics.GreedyAgent}
		path := metrics.AgentConfig{ID: 2, Kind: metrics.PathAgent}
		experiment := Experiment{
			Name:     "scripted",
			Configs:  []metrics.AgentConfig{greedy, path},
			MatchUps: [][2]metrics.AgentConfig{{greedy, path}},
		}

		results, err := Run(context.Background(), experiment, Settings{Dir: t.TempDir(), Games: 2})

		require.NoError(t, err)
		require.Len(t, results.Games, 2)
		require.Equal(t, 1, results.Games[0].Agent1, "First game starts with the first config")
		require.Equal(t, 2, results.Games[1].Agent1, "Second game swaps sides")

		total := 0
		for _, g := range results.Games {
			require.Contains(t, []int{0, 1}, g.Winner)
			total += g.TotalMoves
		}
		require.Len(t, results.Moves, total)
		require.Equal(t, 1, results.Moves[0].Game)

		for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			require.FileExists(t, filepath.Join(results.Dir, name))
		}
	})

	t.Run("parallel games keep their order", func(t *testing.T) {
		greedy := metrics.AgentConfig{ID: 1, Kind: metrics.GreedyAgent}
		random := metrics.AgentConfig{ID: 2, Kind: metrics.RandomAgent}
		path := metrics.AgentConfig{ID: 3, Kind: metrics.PathAgent}
		experiment := Experiment{
			Name:     "parallel",
			Configs:  []metrics.AgentConfig{greedy, random, path},
			MatchUps: [][2]metrics.AgentConfig{{greedy, random}, {path, greedy}},
		}

		results, err := Run(context.Background(), experiment, Settings{Dir: t.TempDir(), Games: 2, Parallel: 3, MaxMoves: 40})

		require.NoError(t, err)
		require.Len(t, results.Games, 4)
		for i, g := range results.Games {
			require.Equal(t, i+1, g.ID)
		}
		require.Equal(t, []int{1, 2, 3, 1}, []int{
			results.Games[0].Agent1, results.Games[1].Agent1, results.Games[2].Agent1, results.Games[3].Agent1,
		})
		last := 0
		for _, m := range results.Moves {
			require.GreaterOrEqual(t, m.Game, last, "Move records should follow game order")
			last = m.Game
		}
	})

	t.Run("move cap leaves games undecided", func(t *testing.T) {
		random := metrics.AgentConfig{ID: 1, Kind: metrics.RandomAgent, Seed: 3}
		experiment := Experiment{Name: "capped", Configs: []metrics.AgentConfig{random}, MatchUps: [][2]metrics.AgentConfig{{random, random}}}

		results, err := Run(context.Background(), experiment, Settings{Dir: t.TempDir(), Games: 1, MaxMoves: 2})

		require.NoError(t, err)
		require.Equal(t, 2, results.Games[0].TotalMoves)
	})

	t.Run("unknown agent kind", func(t *testing.T) {
		bad := metrics.AgentConfig{ID: 1, Kind: "oracle"}
		experiment := Experiment{Name: "bad", MatchUps: [][2]metrics.AgentConfig{{bad, bad}}}

		_, err := Run(context.Background(), experiment, Settings{Dir: t.TempDir(), Games: 1})

		require.ErrorContains(t, err, "unknown agent kind")
	})

	t.Run("unwritable directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0644))
		greedy := metrics.AgentConfig{ID: 1, Kind: metrics.GreedyAgent}
		experiment := Experiment{Name: "x", MatchUps: [][2]metrics.AgentConfig{{greedy, greedy}}}

		_, err := Run(context.Background(), experiment, Settings{Dir: file, Games: 1})

		require.Error(t, err)
	})
}

func TestCreateAgent(t *testing.T) {
	for _, kind := range []metrics.AgentKind{
		metrics.MCTSAgent, metrics.TrainingAgent, metrics.GreedyAgent, metrics.PathAgent, metrics.RandomAgent,
	} {
		t.Run(string(kind), func(t *testing.T) {
			a, err := CreateAgent(metrics.AgentConfig{Kind: kind, Goroutines: 1, Simulations: 10}, 1)

			require.NoError(t, err)
			require.NotNil(t, a)
		})
	}

	t.Run("unknown evaluation", func(t *testing.T) {
		_, err := CreateAgent(metrics.AgentConfig{Kind: metrics.MCTSAgent, Cutoff: 5, Evaluation: "material"}, 1)

		require.ErrorContains(t, err, "unknown evaluation")
	})
}

func TestExperiments(t *testing.T) {
	t.Run("match ups only use listed configs", func(t *testing.T) {
		for _, experiment := range []Experiment{
			ParallelizationExperiment(TimeBudget),
			CutoffExperiment(TimeBudget),
			BaselineExperiment(1000),
			ThroughputExperiment(TimeBudget),
		} {
			require.NotEmpty(t, experiment.MatchUps, experiment.Name)
			for _, matchUp := range experiment.MatchUps {
				require.Contains(t, experiment.Configs, matchUp[0], experiment.Name)
				require.Contains(t, experiment.Configs, matchUp[1], experiment.Name)
			}
		}
	})
}

func TestSummarizeThroughput(t *testing.T) {
	t.Run("groups by goroutines", func(t *testing.T) {
		move := func(goroutines, simulations int, d time.Duration) metrics.MoveRecord {
			return metrics.MoveRecord{MoveMetric: metrics.MoveMetric{SearchMetric: searcher.SearchMetric{
				Goroutines: goroutines, Simulations: simulations, Duration: d,
			}}}
		}

		summary := SummarizeThroughput([]metrics.MoveRecord{
			move(4, 300, time.Second),
			move(1, 100, time.Second),
			move(4, 500, time.Second),
			move(0, 0, 0),
		})

		require.Equal(t, []Throughput{
			{Goroutines: 1, Searches: 1, Simulations: 100, Duration: time.Second},
			{Goroutines: 4, Searches: 2, Simulations: 800, Duration: 2 * time.Second},
		}, summary)
		require.InDelta(t, 400.0, summary[1].PerSecond(), 1e-9)
		require.Zero(t, Throughput{}.PerSecond())
	})
}
