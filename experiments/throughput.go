package experiments

import (
	"sort"
	"time"

	"quoridor/experiments/metrics"
)

// ThroughputExperiment plays each parallel config against itself, for the
// same playing strength and similar game length.
func ThroughputExperiment(budget time.Duration) Experiment {
	configs := []metrics.AgentConfig{}
	matchUps := [][2]metrics.AgentConfig{}
	for i, goroutines := range parallelGoroutines {
		config := metrics.AgentConfig{ID: i + 1, Kind: metrics.MCTSAgent, Goroutines: goroutines, Duration: budget}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}
	return Experiment{Name: "throughput", Configs: configs, MatchUps: matchUps}
}

// Throughput aggregates searches that ran with the same number of goroutines.
type Throughput struct {
	Goroutines  int
	Searches    int
	Simulations int
	Duration    time.Duration
}

// PerSecond is the simulation rate over all aggregated searches.
func (t Throughput) PerSecond() float64 {
	if t.Duration <= 0 {
		return 0
	}
	return float64(t.Simulations) / t.Duration.Seconds()
}

// SummarizeThroughput groups searched moves by goroutine count, ascending.
// Moves from agents that do not search are skipped.
func SummarizeThroughput(records []metrics.MoveRecord) []Throughput {
	byGoroutines := map[int]*Throughput{}
	for _, record := range records {
		if record.Goroutines == 0 {
			continue
		}
		t, ok := byGoroutines[record.Goroutines]
		if !ok {
			t = &Throughput{Goroutines: record.Goroutines}
			byGoroutines[record.Goroutines] = t
		}
		t.Searches++
		t.Simulations += record.Simulations
		t.Duration += record.Duration
	}

	summary := make([]Throughput, 0, len(byGoroutines))
	for _, t := range byGoroutines {
		summary = append(summary, *t)
	}
	sort.Slice(summary, func(i, j int) bool {
		return summary[i].Goroutines < summary[j].Goroutines
	})
	return summary
}
