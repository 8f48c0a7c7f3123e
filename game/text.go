package game

import (
	"fmt"
	"strings"
)

// String renders the board for logs. Pawns are 0 and 1, walls are '=' and '|'.
func (s *State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "turn %d, pawn %d to move, walls left %d/%d\n",
		s.turn, s.ActiveIndex(), s.board.Pawns[0].WallsLeft, s.board.Pawns[1].WallsLeft)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			b.WriteByte(s.cellRune(Position{Row: r, Col: c}))
			if c < Size-1 {
				if s.openWays.LeftRight[r][c] {
					b.WriteByte(' ')
				} else {
					b.WriteByte('|')
				}
			}
		}
		b.WriteByte('\n')
		if r == Size-1 {
			break
		}
		for c := 0; c < Size; c++ {
			if s.openWays.UpDown[r][c] {
				b.WriteByte(' ')
			} else {
				b.WriteByte('=')
			}
			if c < Size-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (s *State) cellRune(p Position) byte {
	for i, pawn := range s.board.Pawns {
		if pawn.Position == p {
			return byte('0' + i)
		}
	}
	return '.'
}
