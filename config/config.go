package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"quoridor/engine"
	"quoridor/searcher"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
)

// Environment variables read by Load.
const (
	EnvSimulations = "QUORIDOR_SIMULATIONS"
	EnvGoroutines  = "QUORIDOR_GOROUTINES"
	EnvSeed        = "QUORIDOR_SEED"
	EnvDuration    = "QUORIDOR_DURATION"
	EnvCutoff      = "QUORIDOR_CUTOFF"
	EnvMaxMoves    = "QUORIDOR_MAX_MOVES"
	EnvLogLevel    = "QUORIDOR_LOG_LEVEL"
	EnvResultsDir  = "QUORIDOR_RESULTS_DIR"
)

// Config holds run settings. Command-line flags take these values as their
// defaults.
type Config struct {
	Simulations int
	Goroutines  int
	Seed        uint64 // Zero seeds from the clock
	Duration    time.Duration
	Cutoff      int
	MaxMoves    int
	LogLevel    zerolog.Level
	ResultsDir  string
}

func Default() Config {
	return Config{
		Simulations: searcher.DefaultSimulations,
		Goroutines:  1,
		MaxMoves:    engine.MaxMoves,
		LogLevel:    zerolog.InfoLevel,
		ResultsDir:  "results",
	}
}

// Load reads the given dotenv files, or .env when none are given, into the
// environment and then builds a Config from it. Missing files are skipped;
// variables already set in the environment win over file values.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from Default, overriding every variable getenv
// returns non-empty.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Default()
	var err error
	set := func(key string, parse func(string) error) {
		if err != nil {
			return
		}
		if value := getenv(key); value != "" {
			if perr := parse(value); perr != nil {
				err = fmt.Errorf("%s=%q: %w", key, value, perr)
			}
		}
	}

	set(EnvSimulations, func(v string) (err error) { c.Simulations, err = nonNegative(v); return })
	set(EnvGoroutines, func(v string) (err error) { c.Goroutines, err = nonNegative(v); return })
	set(EnvSeed, func(v string) (err error) { c.Seed, err = cast.ToUint64E(v); return })
	set(EnvDuration, func(v string) (err error) { c.Duration, err = cast.ToDurationE(v); return })
	set(EnvCutoff, func(v string) (err error) { c.Cutoff, err = nonNegative(v); return })
	set(EnvMaxMoves, func(v string) (err error) { c.MaxMoves, err = nonNegative(v); return })
	set(EnvLogLevel, func(v string) (err error) { c.LogLevel, err = zerolog.ParseLevel(v); return })
	set(EnvResultsDir, func(v string) error { c.ResultsDir = v; return nil })

	return c, err
}

func nonNegative(v string) (int, error) {
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return n, nil
}

// SearchOptions turns the search settings into MCTS options. A duration
// replaces the simulation budget.
func (c Config) SearchOptions() []searcher.Option {
	options := []searcher.Option{searcher.WithSimulations(c.Simulations)}
	if c.Duration > 0 {
		options = append(options, searcher.WithDuration(c.Duration))
	}
	if c.Seed != 0 {
		options = append(options, searcher.WithSeed(c.Seed))
	}
	if c.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(c.Cutoff))
	}
	return options
}
