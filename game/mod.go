package game

// Board dimensions and wall supply are fixed by the rules.
const (
	Size         = 9
	WallSlots    = Size - 1
	WallsPerPawn = 10
)

// NoWinner is reported by State.Winner while the game is still running.
const NoWinner = -1

// Unreachable is the distance reported for a cell or goal row that cannot be
// reached. It is larger than any real path on the board.
const Unreachable = Size * Size

// Orientation selects one of the two wall grids.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}
