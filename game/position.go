package game

import "fmt"

// Position is a cell on the 9x9 board. Row 0 is the top edge.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

func (p Position) Add(d Direction) Position {
	dr, dc := d.delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

func (p Position) validWallSlot() bool {
	return p.Row >= 0 && p.Row < WallSlots && p.Col >= 0 && p.Col < WallSlots
}

// Direction is one of the four orthogonal steps a pawn can take.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

var directions = [...]Direction{Up, Right, Down, Left}

func (d Direction) delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	}
	panic(fmt.Sprintf("unknown direction %d", d))
}

// laterals returns the two directions perpendicular to d, used for diagonal jumps.
func (d Direction) laterals() (Direction, Direction) {
	if d == Up || d == Down {
		return Left, Right
	}
	return Up, Down
}
