package game

import (
	"fmt"
	"strconv"
	"strings"
)

// MoveKind tags which of the three mutually exclusive actions a Move carries.
// The zero value marks "no move", used only by the root of a search tree.
type MoveKind uint8

const (
	NoMove MoveKind = iota
	PawnMoveKind
	HorizontalWallKind
	VerticalWallKind
)

// Move is a pawn step to At, or a wall whose top-left slot is At.
// Moves are comparable and may be used as map keys.
type Move struct {
	Kind MoveKind
	At   Position
}

func PawnMove(row, col int) Move {
	return Move{Kind: PawnMoveKind, At: Position{Row: row, Col: col}}
}

func HorizontalWall(row, col int) Move {
	return Move{Kind: HorizontalWallKind, At: Position{Row: row, Col: col}}
}

func VerticalWall(row, col int) Move {
	return Move{Kind: VerticalWallKind, At: Position{Row: row, Col: col}}
}

// WallMove builds the wall Move for an orientation.
func WallMove(o Orientation, at Position) Move {
	if o == Horizontal {
		return Move{Kind: HorizontalWallKind, At: at}
	}
	return Move{Kind: VerticalWallKind, At: at}
}

func (m Move) IsPawnMove() bool {
	return m.Kind == PawnMoveKind
}

func (m Move) IsWall() bool {
	return m.Kind == HorizontalWallKind || m.Kind == VerticalWallKind
}

// Orientation of a wall move. Panics for pawn moves.
func (m Move) Orientation() Orientation {
	switch m.Kind {
	case HorizontalWallKind:
		return Horizontal
	case VerticalWallKind:
		return Vertical
	}
	panic(fmt.Sprintf("move %v is not a wall", m))
}

var kindPrefix = map[MoveKind]string{
	PawnMoveKind:       "p",
	HorizontalWallKind: "h",
	VerticalWallKind:   "v",
}

// String formats a move as "p:r,c", "h:r,c" or "v:r,c".
func (m Move) String() string {
	prefix, ok := kindPrefix[m.Kind]
	if !ok {
		return "none"
	}
	return prefix + ":" + m.At.String()
}

// ParseMove reads the notation produced by Move.String.
func ParseMove(s string) (Move, error) {
	kind, coords, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Move{}, fmt.Errorf("parse move %q: missing ':'", s)
	}
	rowText, colText, ok := strings.Cut(coords, ",")
	if !ok {
		return Move{}, fmt.Errorf("parse move %q: expected row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		return Move{}, fmt.Errorf("parse move %q: row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colText))
	if err != nil {
		return Move{}, fmt.Errorf("parse move %q: col: %w", s, err)
	}

	var m Move
	switch strings.ToLower(kind) {
	case "p":
		m = PawnMove(row, col)
		if !m.At.InBounds() {
			return Move{}, fmt.Errorf("parse move %q: position off the board", s)
		}
	case "h":
		m = HorizontalWall(row, col)
	case "v":
		m = VerticalWall(row, col)
	default:
		return Move{}, fmt.Errorf("parse move %q: unknown kind %q", s, kind)
	}
	if m.IsWall() && !m.At.validWallSlot() {
		return Move{}, fmt.Errorf("parse move %q: wall slot off the board", s)
	}
	return m, nil
}

// ParseMoves parses a whitespace separated move list.
func ParseMoves(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, field := range fields {
		m, err := ParseMove(field)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}
