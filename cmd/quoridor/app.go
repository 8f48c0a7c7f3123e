package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"quoridor/agent"
	"quoridor/config"
	"quoridor/engine"
	"quoridor/experiments"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

// newApp builds the command tree. Flag defaults come from cfg, so flags
// override the environment.
func newApp(cfg config.Config, out io.Writer) *cli.Command {
	searchFlags := func() []cli.Flag {
		return []cli.Flag{
			&cli.IntFlag{Name: "simulations", Aliases: []string{"n"}, Value: cfg.Simulations, Usage: "rollouts per search"},
			&cli.DurationFlag{Name: "duration", Value: cfg.Duration, Usage: "time per search; replaces the rollout budget"},
			&cli.IntFlag{Name: "goroutines", Aliases: []string{"g"}, Value: cfg.Goroutines, Usage: "parallel rollout workers"},
			&cli.Uint64Flag{Name: "seed", Value: cfg.Seed, Usage: "random seed, 0 seeds from the clock"},
			&cli.IntFlag{Name: "cutoff", Value: cfg.Cutoff, Usage: "score rollouts after this many plies, 0 plays them out"},
		}
	}

	return &cli.Command{
		Name:   "quoridor",
		Usage:  "Quoridor rules engine and Monte Carlo tree search player",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: cfg.LogLevel.String(), Usage: "zerolog level"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(cmd.String("log-level"))
			if err != nil {
				return ctx, err
			}
			zerolog.SetGlobalLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "move",
				Usage: "search the position reached by a move list and print the chosen move",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "moves", Aliases: []string{"m"}, Usage: `moves played so far, e.g. "p:7,4 h:3,3"`},
					&cli.BoolFlag{Name: "top-first", Usage: "the row 0 pawn moves first"},
				}, searchFlags()...),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					state, err := replay(cmd.String("moves"), cmd.Bool("top-first"))
					if err != nil {
						return err
					}
					mcts := searcher.NewMCTS(cmd.Int("goroutines"), append(searchOptions(cmd), searcher.WithMetrics())...)
					result, err := mcts.Search(ctx, state)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, state)
					fmt.Fprintf(out, "move: %v\n", result.Move)
					fmt.Fprintf(out, "simulations: %d, tree size: %d, depth: %d, took %v\n",
						result.Metric.Simulations, result.Metric.TreeSize, result.Metric.MaxDepth, result.Metric.Duration)
					printPolicy(out, result.Policy, 5)
					return nil
				},
			},
			{
				Name:  "board",
				Usage: "print the position reached by a move list",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "moves", Aliases: []string{"m"}, Usage: "moves played so far"},
					&cli.BoolFlag{Name: "top-first", Usage: "the row 0 pawn moves first"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					state, err := replay(cmd.String("moves"), cmd.Bool("top-first"))
					if err != nil {
						return err
					}
					fmt.Fprintln(out, state)
					fmt.Fprintf(out, "legal moves: %d\n", len(state.LegalMoves()))
					return nil
				},
			},
			{
				Name:  "play",
				Usage: "play a game between two agents",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "agent0", Value: string(metrics.MCTSAgent), Usage: "agent for pawn 0: mcts, training, greedy, path or random"},
					&cli.StringFlag{Name: "agent1", Value: string(metrics.GreedyAgent), Usage: "agent for pawn 1"},
					&cli.IntFlag{Name: "max-moves", Value: cfg.MaxMoves, Usage: "abandon the game after this many moves"},
					&cli.BoolFlag{Name: "top-first", Usage: "the row 0 pawn moves first"},
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only print the result"},
				}, searchFlags()...),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					seed := cmd.Uint64("seed")
					if seed == 0 {
						seed = uint64(time.Now().UnixNano())
					}
					agents := [2]agent.Agent{}
					for i, name := range []string{cmd.String("agent0"), cmd.String("agent1")} {
						a, err := experiments.CreateAgent(agentConfig(cmd, metrics.AgentKind(name)), seed+uint64(i))
						if err != nil {
							return err
						}
						agents[i] = a
					}

					options := []engine.Option{engine.WithMaxMoves(cmd.Int("max-moves"))}
					if cmd.Bool("top-first") {
						options = append(options, engine.WithState(game.NewGameState(game.WithTopFirst())))
					}
					if !cmd.Bool("quiet") {
						options = append(options, engine.WithObserver(func(move game.Move, state *game.State) {
							fmt.Fprintf(out, "%v\n%v\n", move, state)
						}))
					}
					e := engine.NewLocalEngine(agents[0], agents[1], options...)

					winner, gameMetric, _, err := e.Run(ctx)
					if err != nil {
						return err
					}
					if winner == game.NoWinner {
						fmt.Fprintf(out, "no winner after %d moves\n", gameMetric.TotalMoves)
						return nil
					}
					fmt.Fprintf(out, "pawn %d wins after %d moves (%v)\n", winner, gameMetric.TotalMoves, gameMetric.Duration)
					return nil
				},
			},
			{
				Name:      "experiment",
				Usage:     "run an agent experiment and store CSV results",
				ArgsUsage: "parallelization|cutoff|baseline|throughput",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "games", Value: experiments.NumGames, Usage: "games per match up"},
					&cli.IntFlag{Name: "parallel", Value: 1, Usage: "games played at once"},
					&cli.IntFlag{Name: "max-moves", Value: cfg.MaxMoves, Usage: "abandon a game after this many moves"},
					&cli.DurationFlag{Name: "budget", Value: experiments.TimeBudget, Usage: "time per search"},
					&cli.IntFlag{Name: "simulations", Value: 2000, Usage: "rollouts per search for the baseline experiment"},
					&cli.StringFlag{Name: "dir", Value: cfg.ResultsDir, Usage: "results directory"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					experiment, err := selectExperiment(cmd.Args().First(), cmd.Duration("budget"), cmd.Int("simulations"))
					if err != nil {
						return err
					}
					results, err := experiments.Run(ctx, experiment, experiments.Settings{
						Dir:      cmd.String("dir"),
						Games:    cmd.Int("games"),
						MaxMoves: cmd.Int("max-moves"),
						Parallel: cmd.Int("parallel"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "stored %d games in %s\n", len(results.Games), results.Dir)
					if experiment.Name == "throughput" {
						for _, t := range experiments.SummarizeThroughput(results.Moves) {
							fmt.Fprintf(out, "goroutines=%d searches=%d simulations/s=%.0f\n", t.Goroutines, t.Searches, t.PerSecond())
						}
					}
					return nil
				},
			},
		},
	}
}

func replay(notation string, topFirst bool) (*game.State, error) {
	moves, err := game.ParseMoves(notation)
	if err != nil {
		return nil, err
	}
	var options []game.StateOption
	if topFirst {
		options = append(options, game.WithTopFirst())
	}
	return game.Replay(moves, options...)
}

func searchOptions(cmd *cli.Command) []searcher.Option {
	cfg := config.Config{
		Simulations: cmd.Int("simulations"),
		Duration:    cmd.Duration("duration"),
		Seed:        cmd.Uint64("seed"),
		Cutoff:      cmd.Int("cutoff"),
	}
	return cfg.SearchOptions()
}

func agentConfig(cmd *cli.Command, kind metrics.AgentKind) metrics.AgentConfig {
	config := metrics.AgentConfig{
		Kind:        kind,
		Goroutines:  cmd.Int("goroutines"),
		Simulations: cmd.Int("simulations"),
		Duration:    cmd.Duration("duration"),
		Cutoff:      cmd.Int("cutoff"),
	}
	if config.Cutoff > 0 {
		config.Evaluation = "distance"
	}
	return config
}

func selectExperiment(name string, budget time.Duration, simulations int) (experiments.Experiment, error) {
	switch name {
	case "parallelization":
		return experiments.ParallelizationExperiment(budget), nil
	case "cutoff":
		return experiments.CutoffExperiment(budget), nil
	case "baseline":
		return experiments.BaselineExperiment(simulations), nil
	case "throughput":
		return experiments.ThroughputExperiment(budget), nil
	default:
		return experiments.Experiment{}, fmt.Errorf("unknown experiment %q", name)
	}
}

// printPolicy lists the most visited root moves.
func printPolicy(out io.Writer, policy map[game.Move]float64, top int) {
	moves := make([]game.Move, 0, len(policy))
	for move := range policy {
		moves = append(moves, move)
	}
	sort.Slice(moves, func(i, j int) bool {
		if policy[moves[i]] != policy[moves[j]] {
			return policy[moves[i]] > policy[moves[j]]
		}
		return moves[i].String() < moves[j].String()
	})
	for _, move := range moves[:min(top, len(moves))] {
		fmt.Fprintf(out, "  %-8v %5.1f%%\n", move, 100*policy[move])
	}
}
