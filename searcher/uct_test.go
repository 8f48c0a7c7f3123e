package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCT(t *testing.T) {
	t.Run("panics with zero parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCT(CSquared, 0)
		}, "Should panic when N is 0")
	})
}

func TestUCTEvaluate(t *testing.T) {
	t.Run("computing UCT value", func(t *testing.T) {
		policy := newUCT(2.0, 100)
		got := policy.evaluate(5, 10)

		expected := 5.0/10 + math.Sqrt(2.0*math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute w/n + sqrt(c^2*ln(N)/n)")
	})

	t.Run("unvisited child ranks first", func(t *testing.T) {
		policy := newUCT(2.0, 100)

		require.Equal(t, math.Inf(1), policy.evaluate(0, 0))
		require.Greater(t, policy.evaluate(0, 0), policy.evaluate(10, 10))
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		score1 := newUCT(2.0, 100).evaluate(5, 10)
		score2 := newUCT(2.0, 1000).evaluate(5, 10)

		require.Greater(t, score2, score1,
			"More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		policy := newUCT(2.0, 100)

		require.Greater(t, policy.evaluate(5, 10), policy.evaluate(5, 20),
			"More child visits should decrease exploration term")
	})

	t.Run("exploitation term increases with wins", func(t *testing.T) {
		policy := newUCT(2.0, 100)

		require.Greater(t, policy.evaluate(10, 10), policy.evaluate(5, 10),
			"More wins should increase exploitation term")
	})
}
