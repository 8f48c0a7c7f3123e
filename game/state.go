package game

// State is a game in progress: the board, whose turn it is, the winner once
// decided, and caches derived from committed data.
//
// A State is not safe for concurrent use. Searches clone it per worker.
type State struct {
	board  Board
	turn   int
	winner int

	// Updated only when a wall is committed.
	openWays       OpenWays
	validNextWalls Walls
	wallKey        uint64

	// Legal destinations of the active pawn, stamped with the turn they were
	// computed for. Stale whenever nextPositionsTurn != turn.
	nextPositions     [Size][Size]bool
	nextPositionsTurn int
}

type StateOption func(*State)

// WithTopFirst starts the row 0 pawn, heading for row 8, as pawn 0 so that it
// moves first.
func WithTopFirst() StateOption {
	return func(s *State) {
		s.board = newBoard(true)
	}
}

// NewGameState returns a fresh game: pawns on opposite edges in the centre
// column, ten walls each, no walls placed.
func NewGameState(options ...StateOption) *State {
	s := &State{
		board:             newBoard(false),
		winner:            NoWinner,
		openWays:          allOpen(),
		nextPositionsTurn: -1,
	}
	for r := 0; r < WallSlots; r++ {
		for c := 0; c < WallSlots; c++ {
			s.validNextWalls.Horizontal[r][c] = true
			s.validNextWalls.Vertical[r][c] = true
		}
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Clone returns an independent deep copy. All state is held in arrays, so a
// value copy shares nothing with the original.
func (s *State) Clone() *State {
	clone := *s
	return &clone
}

func (s *State) Turn() int {
	return s.turn
}

// ActiveIndex is the index of the pawn whose turn it is.
func (s *State) ActiveIndex() int {
	return s.turn % 2
}

func (s *State) ActivePawn() Pawn {
	return s.board.Pawns[s.ActiveIndex()]
}

// InactivePawn is the pawn that moved last.
func (s *State) InactivePawn() Pawn {
	return s.board.Pawns[(s.turn+1)%2]
}

func (s *State) Pawn(index int) Pawn {
	return s.board.Pawns[index]
}

// Winner returns the index of the pawn that reached its goal row, or NoWinner.
func (s *State) Winner() int {
	return s.winner
}

func (s *State) IsOver() bool {
	return s.winner != NoWinner
}

func (s *State) Board() Board {
	return s.board
}

func (s *State) OpenWays() OpenWays {
	return s.openWays
}

func (s *State) ValidNextWalls() Walls {
	return s.validNextWalls
}

// WallsPlaced counts committed walls on the board.
func (s *State) WallsPlaced() int {
	return s.board.Walls.Count()
}

func (s *State) advanceTurn() {
	s.turn++
}
