package game

// IsOpenWay reports whether a pawn at from may step in direction d as far as
// walls and board edges are concerned. Pawns are not considered.
func (s *State) IsOpenWay(from Position, d Direction) bool {
	return s.openWays.IsOpen(from, d)
}

// LegalPawnDestinations lists the cells the active pawn may move to,
// including straight and diagonal jumps over the opponent, in row-major order.
func (s *State) LegalPawnDestinations() []Position {
	grid := s.validNextPositions()
	ps := make([]Position, 0, 5)
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] {
				ps = append(ps, Position{Row: r, Col: c})
			}
		}
	}
	return ps
}

// IsLegalPawnDestination reports whether the active pawn may move to p.
func (s *State) IsLegalPawnDestination(p Position) bool {
	if !p.InBounds() {
		return false
	}
	return s.validNextPositions()[p.Row][p.Col]
}

func (s *State) validNextPositions() *[Size][Size]bool {
	if s.nextPositionsTurn == s.turn {
		return &s.nextPositions
	}
	s.nextPositions = [Size][Size]bool{}
	for _, d := range directions {
		s.markDestinationsToward(d)
	}
	s.nextPositionsTurn = s.turn
	return &s.nextPositions
}

// markDestinationsToward marks the step toward main, or the jumps that
// replace it when the opponent occupies that cell.
func (s *State) markDestinationsToward(main Direction) {
	from := s.ActivePawn().Position
	if !s.openWays.IsOpen(from, main) {
		return
	}
	step := from.Add(main)
	if step != s.InactivePawn().Position {
		s.nextPositions[step.Row][step.Col] = true
		return
	}
	if s.openWays.IsOpen(step, main) {
		jump := step.Add(main)
		s.nextPositions[jump.Row][jump.Col] = true
		return
	}
	side1, side2 := main.laterals()
	for _, side := range [...]Direction{side1, side2} {
		if s.openWays.IsOpen(step, side) {
			diagonal := step.Add(side)
			s.nextPositions[diagonal.Row][diagonal.Col] = true
		}
	}
}

// LegalWallSlots lists the slots of the given orientation that neither overlap
// nor cross a placed wall. Connectivity is not checked.
func (s *State) LegalWallSlots(o Orientation) []Position {
	return s.validNextWalls.grid(o).positions(true)
}

// LegalNonBlockingWallSlots narrows LegalWallSlots to walls that leave both
// pawns a path to their goal rows. The state is left unchanged.
func (s *State) LegalNonBlockingWallSlots(o Orientation) []Position {
	slots := s.LegalWallSlots(o)
	open := slots[:0]
	for _, at := range slots {
		if s.keepsPathsWith(o, at) {
			open = append(open, at)
		}
	}
	return open
}

// keepsPathsWith trial-places a wall in openWays, checks both pawns, and
// restores openWays before returning.
func (s *State) keepsPathsWith(o Orientation, at Position) bool {
	s.openWays.set(o, at, false)
	ok := s.bothPawnsHavePaths()
	s.openWays.set(o, at, true)
	return ok
}

// LegalMoves lists every move the active pawn may play: pawn destinations in
// row-major order, then non-blocking horizontal and vertical walls while the
// pawn has walls left. A finished game has no moves.
func (s *State) LegalMoves() []Move {
	if s.IsOver() {
		return nil
	}
	var moves []Move
	for _, to := range s.LegalPawnDestinations() {
		moves = append(moves, Move{Kind: PawnMoveKind, At: to})
	}
	if s.ActivePawn().WallsLeft > 0 {
		for _, o := range [...]Orientation{Horizontal, Vertical} {
			for _, at := range s.LegalNonBlockingWallSlots(o) {
				moves = append(moves, WallMove(o, at))
			}
		}
	}
	return moves
}
