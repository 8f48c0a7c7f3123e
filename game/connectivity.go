package game

// HasPathToGoalRow reports whether pawn can still reach any cell of its goal
// row through open ways. The other pawn is not an obstacle.
func (s *State) HasPathToGoalRow(pawn Pawn) bool {
	start := pawn.Position
	if start.Row == pawn.GoalRow {
		return true
	}

	var visited [Size][Size]bool
	stack := make([]Position, 0, Size*Size)
	stack = append(stack, start)
	visited[start.Row][start.Col] = true
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range directions {
			if !s.openWays.IsOpen(current, d) {
				continue
			}
			next := current.Add(d)
			if visited[next.Row][next.Col] {
				continue
			}
			if next.Row == pawn.GoalRow {
				return true
			}
			visited[next.Row][next.Col] = true
			stack = append(stack, next)
		}
	}
	return false
}

func (s *State) bothPawnsHavePaths() bool {
	return s.HasPathToGoalRow(s.board.Pawns[0]) && s.HasPathToGoalRow(s.board.Pawns[1])
}
