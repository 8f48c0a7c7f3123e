package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// placePawns puts both pawns on the given cells and drops cached destinations.
func placePawns(s *State, p0, p1 Position) {
	s.board.Pawns[0].Position = p0
	s.board.Pawns[1].Position = p1
	s.nextPositionsTurn = -1
}

// forceWall commits a wall without rule checks or a turn change.
func forceWall(s *State, o Orientation, at Position) {
	s.openWays.set(o, at, false)
	s.disableWallSlots(o, at)
	s.board.Walls.grid(o)[at.Row][at.Col] = true
	s.wallKey ^= wallKey(o, at)
	s.nextPositionsTurn = -1
}

func TestNewGameState(t *testing.T) {
	t.Run("bottom pawn moves first by default", func(t *testing.T) {
		s := NewGameState()

		require.Equal(t, 0, s.ActiveIndex(), "Pawn 0 should move on turn 0")
		require.Equal(t, Pawn{Index: 0, Position: pos(8, 4), GoalRow: 0, WallsLeft: 10}, s.ActivePawn())
		require.Equal(t, Pawn{Index: 1, Position: pos(0, 4), GoalRow: 8, WallsLeft: 10}, s.InactivePawn())
		require.Equal(t, NoWinner, s.Winner(), "Fresh game should have no winner")
		require.Equal(t, 0, s.WallsPlaced())
		require.Len(t, s.LegalWallSlots(Horizontal), 64, "Every slot should be open")
		require.Len(t, s.LegalWallSlots(Vertical), 64, "Every slot should be open")
	})

	t.Run("top pawn moves first with option", func(t *testing.T) {
		s := NewGameState(WithTopFirst())

		require.Equal(t, pos(0, 4), s.ActivePawn().Position)
		require.Equal(t, 8, s.ActivePawn().GoalRow)
		require.Equal(t, pos(8, 4), s.InactivePawn().Position)
		require.Equal(t, 0, s.InactivePawn().GoalRow)
	})
}

func TestClone(t *testing.T) {
	t.Run("clone equals original", func(t *testing.T) {
		s, err := Replay([]Move{PawnMove(7, 4), HorizontalWall(3, 3), VerticalWall(5, 5)})
		require.NoError(t, err)

		clone := s.Clone()

		require.Equal(t, *s, *clone, "Clone should be structurally equal")
		require.Equal(t, s.Hash(), clone.Hash())
	})

	t.Run("mutating clone leaves original untouched", func(t *testing.T) {
		s := NewGameState()
		before := *s

		clone := s.Clone()
		require.NoError(t, clone.MovePawn(pos(7, 4)))
		require.NoError(t, clone.PlaceWall(Horizontal, pos(0, 0)))

		require.Equal(t, before, *s, "Original should not change")
		require.NotEqual(t, *s, *clone)
	})

	t.Run("mutating original leaves clone untouched", func(t *testing.T) {
		s := NewGameState()
		clone := s.Clone()
		before := *clone

		require.NoError(t, s.PlaceWall(Vertical, pos(4, 4)))

		require.Equal(t, before, *clone, "Clone should not change")
	})
}

func TestHash(t *testing.T) {
	t.Run("wall key tracks walls only", func(t *testing.T) {
		s := NewGameState()
		empty := s.WallKey()

		require.NoError(t, s.MovePawn(pos(7, 4)))
		require.Equal(t, empty, s.WallKey(), "Pawn moves should not change the wall key")

		require.NoError(t, s.PlaceWall(Horizontal, pos(2, 2)))
		require.NotEqual(t, empty, s.WallKey(), "Walls should change the wall key")
	})

	t.Run("hash distinguishes side to move", func(t *testing.T) {
		s := NewGameState()
		moved := s.Clone()
		require.NoError(t, moved.MovePawn(pos(7, 4)))

		require.NotEqual(t, s.Hash(), moved.Hash())
	})

	t.Run("same position reached by different orders hashes equal", func(t *testing.T) {
		a, err := Replay([]Move{HorizontalWall(1, 1), HorizontalWall(5, 5)})
		require.NoError(t, err)
		b, err := Replay([]Move{HorizontalWall(5, 5), HorizontalWall(1, 1)})
		require.NoError(t, err)

		require.Equal(t, a.WallKey(), b.WallKey(), "Wall layouts should match")
		require.Equal(t, a.Hash(), b.Hash(), "Transposed positions should hash equal")
	})
}

// TestRandomPlayInvariants plays seeded random games and checks the board
// invariants after every committed move.
func TestRandomPlayInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 20; game++ {
		s := NewGameState()
		for ply := 0; ply < 300 && !s.IsOver(); ply++ {
			turn := s.Turn()
			active := s.ActivePawn()
			other := s.InactivePawn()

			destinations := s.LegalPawnDestinations()
			require.NotContains(t, destinations, other.Position, "Opponent cell should never be a destination")
			dist, _ := s.ShortestDistances(active)
			for _, d := range destinations {
				require.LessOrEqual(t, dist[d.Row][d.Col], 2, "Destination should be reachable through open ways")
			}

			if active.WallsLeft > 0 && rng.Float64() < 0.3 {
				o := Orientation(rng.Intn(2))
				slots := s.LegalWallSlots(o)
				if len(slots) == 0 {
					continue
				}
				at := slots[rng.Intn(len(slots))]
				err := s.PlaceWall(o, at)
				if err != nil {
					require.ErrorIs(t, err, ErrNoPath)
					require.Equal(t, turn, s.Turn(), "Failed wall should not advance the turn")
					continue
				}
				require.Equal(t, active.WallsLeft-1, s.Pawn(active.Index).WallsLeft)
			} else {
				if len(destinations) == 0 {
					break
				}
				require.NoError(t, s.MovePawn(destinations[rng.Intn(len(destinations))]))
				require.Equal(t, active.WallsLeft, s.Pawn(active.Index).WallsLeft, "Pawn moves should not spend walls")
			}

			require.Equal(t, turn+1, s.Turn(), "Committed moves should advance the turn by one")
			require.Equal(t, 2*WallsPerPawn-s.Pawn(0).WallsLeft-s.Pawn(1).WallsLeft, s.WallsPlaced())
			require.True(t, s.HasPathToGoalRow(s.Pawn(0)), "Pawn 0 should keep a path")
			require.True(t, s.HasPathToGoalRow(s.Pawn(1)), "Pawn 1 should keep a path")
		}
	}
}
