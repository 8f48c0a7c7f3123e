package searcher

import (
	"testing"

	"quoridor/game"

	"github.com/stretchr/testify/require"
)

func TestTreeExpand(t *testing.T) {
	t.Run("children follow their parent in the arena", func(t *testing.T) {
		tr := newTree()
		moves := []game.Move{game.PawnMove(7, 4), game.PawnMove(8, 3), game.HorizontalWall(0, 0)}

		tr.expand(root, moves)

		require.Equal(t, 4, tr.size())
		require.Equal(t, []int32{1, 2, 3}, tr.node(root).children)
		for k, c := range tr.node(root).children {
			require.Equal(t, moves[k], tr.node(c).move)
			require.Equal(t, root, tr.node(c).parent)
			require.True(t, tr.node(c).isNew())
		}
	})

	t.Run("moves are listed from the root in play order", func(t *testing.T) {
		tr := newTree()
		tr.expand(root, []game.Move{game.PawnMove(7, 4)})
		tr.expand(1, []game.Move{game.PawnMove(1, 4), game.PawnMove(0, 3)})
		tr.expand(3, []game.Move{game.VerticalWall(4, 4)})

		require.Empty(t, tr.moves(root))
		require.Equal(t, []game.Move{game.PawnMove(7, 4), game.PawnMove(0, 3), game.VerticalWall(4, 4)}, tr.moves(4))
		require.Equal(t, 3, tr.maxDepth())
	})
}

func TestTreeBackup(t *testing.T) {
	t.Run("wins alternate between levels", func(t *testing.T) {
		tr := newTree()
		tr.expand(root, []game.Move{game.PawnMove(7, 4)})
		tr.expand(1, []game.Move{game.PawnMove(1, 4)})

		// Node 2 was played by pawn 1, node 1 by pawn 0.
		tr.backup(2, 1, 1, false)
		tr.backup(2, 1, 0, false)

		require.Equal(t, 2, tr.node(2).sims)
		require.Equal(t, 1, tr.node(2).wins)
		require.Equal(t, 2, tr.node(1).sims)
		require.Equal(t, 1, tr.node(1).wins)
		require.Equal(t, 2, tr.node(root).sims)
	})

	t.Run("pending rollouts are released", func(t *testing.T) {
		tr := newTree()
		tr.expand(root, []game.Move{game.PawnMove(7, 4)})

		tr.applyLoss(1)
		require.Equal(t, 1, tr.node(1).inflight)
		require.Equal(t, 1, tr.node(root).inflight)

		tr.backup(1, 0, 0, true)
		require.Zero(t, tr.node(1).inflight)
		require.Zero(t, tr.node(root).inflight)
		require.Equal(t, 1, tr.node(1).wins)
	})
}

func TestTreeSelection(t *testing.T) {
	t.Run("descend stops at the root before expansion", func(t *testing.T) {
		require.Equal(t, root, newTree().descend())
	})

	t.Run("unvisited children are selected in order", func(t *testing.T) {
		tr := newTree()
		tr.expand(root, []game.Move{game.PawnMove(7, 4), game.PawnMove(8, 3), game.PawnMove(8, 5)})
		tr.node(root).sims = 3
		tr.node(1).sims = 1

		require.Equal(t, int32(2), tr.descend())
	})

	t.Run("in-flight rollouts steer selection away", func(t *testing.T) {
		tr := newTree()
		tr.expand(root, []game.Move{game.PawnMove(7, 4), game.PawnMove(8, 3)})
		tr.backup(1, 0, 0, false)
		tr.backup(2, 0, 0, false)

		tr.applyLoss(1)
		tr.applyLoss(1)

		require.Equal(t, int32(2), tr.selectChild(root))
	})

	t.Run("terminal nodes are not descended into", func(t *testing.T) {
		tr := newTree()
		tr.expand(root, []game.Move{game.PawnMove(7, 4)})
		tr.expand(1, []game.Move{game.PawnMove(1, 4)})
		tr.node(root).sims = 1
		tr.node(1).sims = 1
		tr.node(1).terminal = true

		require.Equal(t, int32(1), tr.descend())
	})
}

func TestTreeBestChild(t *testing.T) {
	t.Run("no sampled children", func(t *testing.T) {
		tr := newTree()
		tr.expand(root, []game.Move{game.PawnMove(7, 4)})

		_, ok := tr.bestChild(root)
		require.False(t, ok)
	})

	t.Run("highest win rate wins over most visits", func(t *testing.T) {
		tr := newTree()
		tr.expand(root, []game.Move{game.PawnMove(7, 4), game.PawnMove(8, 3), game.PawnMove(8, 5)})
		for i := 0; i < 10; i++ {
			tr.backup(1, 0, i%2, false) // 5/10
		}
		tr.backup(2, 0, 0, false) // 1/1

		best, ok := tr.bestChild(root)
		require.True(t, ok)
		require.Equal(t, int32(2), best)

		policy := tr.policy()
		require.InDelta(t, 10.0/11, policy[game.PawnMove(7, 4)], 1e-9)
		require.InDelta(t, 1.0/11, policy[game.PawnMove(8, 3)], 1e-9)
		require.Zero(t, policy[game.PawnMove(8, 5)])
	})
}
