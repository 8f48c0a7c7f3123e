package game

import "golang.org/x/exp/rand"

// StateHash identifies a position: pawns, walls, wall supplies and side to move.
type StateHash uint64

const zobristSeed = 0x9e3779b97f4a7c15

var zobrist struct {
	pawns     [2][Size][Size]uint64
	wallsLeft [2][WallsPerPawn + 1]uint64
	walls     [2][WallSlots][WallSlots]uint64
	side      uint64
}

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	next := func() uint64 {
		v := rng.Uint64()
		for v == 0 {
			v = rng.Uint64()
		}
		return v
	}
	for p := range zobrist.pawns {
		for r := range zobrist.pawns[p] {
			for c := range zobrist.pawns[p][r] {
				zobrist.pawns[p][r][c] = next()
			}
		}
		for n := range zobrist.wallsLeft[p] {
			zobrist.wallsLeft[p][n] = next()
		}
	}
	for o := range zobrist.walls {
		for r := range zobrist.walls[o] {
			for c := range zobrist.walls[o][r] {
				zobrist.walls[o][r][c] = next()
			}
		}
	}
	zobrist.side = next()
}

func wallKey(o Orientation, at Position) uint64 {
	return zobrist.walls[o][at.Row][at.Col]
}

// WallKey identifies the wall layout alone. Two states with the same key have
// the same open ways and so the same distances between any two cells.
func (s *State) WallKey() uint64 {
	return s.wallKey
}

func (s *State) Hash() StateHash {
	h := s.wallKey
	for i, p := range s.board.Pawns {
		h ^= zobrist.pawns[i][p.Position.Row][p.Position.Col]
		h ^= zobrist.wallsLeft[i][p.WallsLeft]
	}
	if s.ActiveIndex() == 1 {
		h ^= zobrist.side
	}
	return StateHash(h)
}
