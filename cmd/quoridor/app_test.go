package main

import (
	"bytes"
	"context"
	"testing"

	"quoridor/config"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(config.Default(), &out).Run(context.Background(), append([]string{"quoridor"}, args...))
	return out.String(), err
}

func TestApp(t *testing.T) {
	t.Run("board prints the replayed position", func(t *testing.T) {
		out, err := run(t, "board", "--moves", "p:7,4 h:3,3")

		require.NoError(t, err)
		require.Contains(t, out, "turn 2")
		require.Contains(t, out, "legal moves:")
	})

	t.Run("move searches the position", func(t *testing.T) {
		out, err := run(t, "move", "--moves", "p:7,4", "-n", "100", "--seed", "1")

		require.NoError(t, err)
		require.Contains(t, out, "move: ")
		require.Contains(t, out, "simulations: 100")
	})

	t.Run("invalid move list", func(t *testing.T) {
		_, err := run(t, "board", "--moves", "p:4,4")

		require.Error(t, err)
	})

	t.Run("play between scripted agents", func(t *testing.T) {
		out, err := run(t, "play", "--agent0", "greedy", "--agent1", "greedy", "--quiet", "--seed", "1")

		require.NoError(t, err)
		require.Contains(t, out, "pawn 1 wins after 14 moves")
	})

	t.Run("play respects the move cap", func(t *testing.T) {
		out, err := run(t, "play", "--agent0", "random", "--agent1", "path", "--max-moves", "2", "-q", "--seed", "1")

		require.NoError(t, err)
		require.Contains(t, out, "no winner after 2 moves")
	})

	t.Run("unknown agent", func(t *testing.T) {
		_, err := run(t, "play", "--agent0", "oracle")

		require.ErrorContains(t, err, "unknown agent kind")
	})

	t.Run("experiment writes results", func(t *testing.T) {
		out, err := run(t, "experiment", "--games", "1", "--simulations", "20", "--max-moves", "4",
			"--dir", t.TempDir(), "baseline")

		require.NoError(t, err)
		require.Contains(t, out, "stored 3 games")
	})

	t.Run("unknown experiment", func(t *testing.T) {
		_, err := run(t, "experiment", "--dir", t.TempDir(), "speed")

		require.ErrorContains(t, err, "unknown experiment")
	})
}
