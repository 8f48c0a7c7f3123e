package game

import "fmt"

// MovePawn moves the active pawn to a legal destination. On error the state is unchanged.
func (s *State) MovePawn(to Position) error {
	if s.IsOver() {
		return fmt.Errorf("move pawn to %v: %w", to, ErrGameOver)
	}
	if !s.IsLegalPawnDestination(to) {
		return fmt.Errorf("move pawn to %v: %w", to, ErrInvalidMove)
	}

	pawn := &s.board.Pawns[s.ActiveIndex()]
	pawn.Position = to
	if to.Row == pawn.GoalRow {
		s.winner = pawn.Index
	}
	s.advanceTurn()
	return nil
}

// PlaceWall commits a wall for the active pawn. A slot that overlaps or
// crosses a placed wall, or an empty wall supply, yields ErrInvalidMove; a
// wall that strands either pawn yields ErrNoPath. On error the state is
// unchanged.
func (s *State) PlaceWall(o Orientation, at Position) error {
	if s.IsOver() {
		return fmt.Errorf("place %v wall at %v: %w", o, at, ErrGameOver)
	}
	if !at.validWallSlot() || !s.validNextWalls.Has(o, at) {
		return fmt.Errorf("place %v wall at %v: %w", o, at, ErrInvalidMove)
	}
	pawn := &s.board.Pawns[s.ActiveIndex()]
	if pawn.WallsLeft == 0 {
		return fmt.Errorf("place %v wall at %v: no walls left: %w", o, at, ErrInvalidMove)
	}

	s.openWays.set(o, at, false)
	if !s.bothPawnsHavePaths() {
		s.openWays.set(o, at, true)
		return fmt.Errorf("place %v wall at %v: %w", o, at, ErrNoPath)
	}

	s.disableWallSlots(o, at)
	s.board.Walls.grid(o)[at.Row][at.Col] = true
	s.wallKey ^= wallKey(o, at)
	pawn.WallsLeft--
	s.advanceTurn()
	return nil
}

// disableWallSlots rules out the placed slot, the crossing slot at the same
// coordinates, and the overlapping neighbours along the wall's length.
func (s *State) disableWallSlots(o Orientation, at Position) {
	s.validNextWalls.Horizontal[at.Row][at.Col] = false
	s.validNextWalls.Vertical[at.Row][at.Col] = false

	grid := s.validNextWalls.grid(o)
	if o == Horizontal {
		if at.Col > 0 {
			grid[at.Row][at.Col-1] = false
		}
		if at.Col < WallSlots-1 {
			grid[at.Row][at.Col+1] = false
		}
		return
	}
	if at.Row > 0 {
		grid[at.Row-1][at.Col] = false
	}
	if at.Row < WallSlots-1 {
		grid[at.Row+1][at.Col] = false
	}
}

// Apply dispatches a move to MovePawn or PlaceWall.
func (s *State) Apply(m Move) error {
	switch m.Kind {
	case PawnMoveKind:
		return s.MovePawn(m.At)
	case HorizontalWallKind:
		return s.PlaceWall(Horizontal, m.At)
	case VerticalWallKind:
		return s.PlaceWall(Vertical, m.At)
	}
	panic(fmt.Sprintf("apply: move kind %d carries no payload", m.Kind))
}

// Replay builds a state by applying moves to a fresh game.
func Replay(moves []Move, options ...StateOption) (*State, error) {
	s := NewGameState(options...)
	for i, m := range moves {
		if err := s.Apply(m); err != nil {
			return nil, fmt.Errorf("replay move %d (%v): %w", i+1, m, err)
		}
	}
	return s, nil
}
