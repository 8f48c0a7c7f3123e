package game

// Evaluate scores a running game between -1 and 1 from the active pawn's
// perspective; positive means the active pawn is ahead.
type Evaluate func(*State) float64

// EvaluateDistance compares both pawns' shortest distances to their goal rows.
func EvaluateDistance(s *State) float64 {
	own := s.ShortestDistanceToGoal(s.ActivePawn())
	other := s.ShortestDistanceToGoal(s.InactivePawn())
	if own+other == 0 {
		return 0
	}
	return float64(other-own) / float64(other+own)
}

// EvaluateDistanceAndWalls blends the distance race with the remaining wall
// supply, which is potential to lengthen the opponent's path.
func EvaluateDistanceAndWalls(s *State) float64 {
	distance := EvaluateDistance(s)
	own := s.ActivePawn().WallsLeft
	other := s.InactivePawn().WallsLeft
	walls := 0.0
	if own+other > 0 {
		walls = float64(own-other) / float64(own+other)
	}
	return (3*distance + walls) / 4
}

// Leader picks the pawn an evaluation favours, breaking ties in favour of the
// pawn to move.
func Leader(s *State, evaluate Evaluate) int {
	if s.IsOver() {
		return s.winner
	}
	if evaluate(s) >= 0 {
		return s.ActiveIndex()
	}
	return (s.ActiveIndex() + 1) % 2
}
