package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove is returned for a pawn destination or wall slot that is not currently legal.
	ErrInvalidMove = errors.New("invalid move")
	// ErrNoPath is returned when a wall would cut a pawn off from its goal row.
	ErrNoPath = errors.New("wall blocks every path to a goal row")
	// ErrGameOver is returned for any move once a winner exists. It also matches ErrInvalidMove.
	ErrGameOver = fmt.Errorf("%w: game is over", ErrInvalidMove)
)
