package game

// Pawn is one player's piece. Index 0 always moves on even turns.
type Pawn struct {
	Index     int
	Position  Position
	GoalRow   int
	WallsLeft int
}

// WallGrid marks wall slots by the top-left cell of the 2x2 block they split.
type WallGrid [WallSlots][WallSlots]bool

func (g *WallGrid) count() int {
	n := 0
	for r := range g {
		for c := range g[r] {
			if g[r][c] {
				n++
			}
		}
	}
	return n
}

func (g *WallGrid) positions(value bool) []Position {
	ps := make([]Position, 0, WallSlots*WallSlots)
	for r := range g {
		for c := range g[r] {
			if g[r][c] == value {
				ps = append(ps, Position{Row: r, Col: c})
			}
		}
	}
	return ps
}

// Walls holds one grid per orientation.
type Walls struct {
	Horizontal WallGrid
	Vertical   WallGrid
}

func (w *Walls) grid(o Orientation) *WallGrid {
	if o == Horizontal {
		return &w.Horizontal
	}
	return &w.Vertical
}

func (w *Walls) Has(o Orientation, at Position) bool {
	return w.grid(o)[at.Row][at.Col]
}

// Count returns the number of placed walls across both orientations.
func (w *Walls) Count() int {
	return w.Horizontal.count() + w.Vertical.count()
}

// Board is the committed physical layout: pawns and placed walls.
type Board struct {
	Pawns [2]Pawn
	Walls Walls
}

func newBoard(topFirst bool) Board {
	bottom := Pawn{Position: Position{Row: Size - 1, Col: Size / 2}, GoalRow: 0, WallsLeft: WallsPerPawn}
	top := Pawn{Position: Position{Row: 0, Col: Size / 2}, GoalRow: Size - 1, WallsLeft: WallsPerPawn}
	if topFirst {
		bottom, top = top, bottom
	}
	bottom.Index = 0
	top.Index = 1
	return Board{Pawns: [2]Pawn{bottom, top}}
}

// OpenWays records which orthogonal adjacencies are not blocked by a wall.
// UpDown[r][c] joins (r,c) and (r+1,c); LeftRight[r][c] joins (r,c) and (r,c+1).
type OpenWays struct {
	UpDown    [Size - 1][Size]bool
	LeftRight [Size][Size - 1]bool
}

func allOpen() OpenWays {
	var w OpenWays
	for r := range w.UpDown {
		for c := range w.UpDown[r] {
			w.UpDown[r][c] = true
		}
	}
	for r := range w.LeftRight {
		for c := range w.LeftRight[r] {
			w.LeftRight[r][c] = true
		}
	}
	return w
}

// IsOpen reports whether a pawn at from may step in direction d, ignoring pawns.
func (w *OpenWays) IsOpen(from Position, d Direction) bool {
	switch d {
	case Up:
		return from.Row > 0 && w.UpDown[from.Row-1][from.Col]
	case Down:
		return from.Row < Size-1 && w.UpDown[from.Row][from.Col]
	case Left:
		return from.Col > 0 && w.LeftRight[from.Row][from.Col-1]
	case Right:
		return from.Col < Size-1 && w.LeftRight[from.Row][from.Col]
	}
	panic("unknown direction")
}

// set toggles the two adjacencies a wall at (o, at) blocks.
func (w *OpenWays) set(o Orientation, at Position, open bool) {
	if o == Horizontal {
		w.UpDown[at.Row][at.Col] = open
		w.UpDown[at.Row][at.Col+1] = open
		return
	}
	w.LeftRight[at.Row][at.Col] = open
	w.LeftRight[at.Row+1][at.Col] = open
}
