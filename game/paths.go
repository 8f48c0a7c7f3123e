package game

// MaxPaths bounds every path enumeration.
const MaxPaths = 10000

// Distances holds BFS step counts from a start cell; Unreachable where no path exists.
type Distances [Size][Size]int

// Predecessors holds, per cell, every neighbour that lies on some shortest
// path from the start cell. Ties are kept.
type Predecessors [Size][Size][]Position

// Nearest returns the cells of row with the smallest finite distance.
func (d *Distances) Nearest(row int) []Position {
	best := Unreachable
	var cells []Position
	for c := 0; c < Size; c++ {
		switch dist := d[row][c]; {
		case dist < best:
			best = dist
			cells = []Position{{Row: row, Col: c}}
		case dist == best && dist != Unreachable:
			cells = append(cells, Position{Row: row, Col: c})
		}
	}
	return cells
}

// ShortestDistances runs a breadth-first search from pawn over open ways.
func (s *State) ShortestDistances(pawn Pawn) (Distances, Predecessors) {
	var dist Distances
	var prev Predecessors
	for r := range dist {
		for c := range dist[r] {
			dist[r][c] = Unreachable
		}
	}

	start := pawn.Position
	dist[start.Row][start.Col] = 0
	queue := make([]Position, 0, Size*Size)
	queue = append(queue, start)
	for head := 0; head < len(queue); head++ {
		current := queue[head]
		alt := dist[current.Row][current.Col] + 1
		for _, d := range directions {
			if !s.openWays.IsOpen(current, d) {
				continue
			}
			next := current.Add(d)
			switch {
			case alt < dist[next.Row][next.Col]:
				dist[next.Row][next.Col] = alt
				prev[next.Row][next.Col] = []Position{current}
				queue = append(queue, next)
			case alt == dist[next.Row][next.Col]:
				prev[next.Row][next.Col] = append(prev[next.Row][next.Col], current)
			}
		}
	}
	return dist, prev
}

// ShortestDistanceToGoal is the fewest steps pawn needs to reach its goal row.
func (s *State) ShortestDistanceToGoal(pawn Pawn) int {
	return s.DistanceToRow(pawn.Position, pawn.GoalRow)
}

// DistanceToRow is the fewest steps from a cell to any cell of row, or
// Unreachable. The search stops at the first goal cell dequeued.
func (s *State) DistanceToRow(from Position, row int) int {
	if from.Row == row {
		return 0
	}
	var dist [Size][Size]int
	var seen [Size][Size]bool
	var queue [Size * Size]Position
	queue[0] = from
	seen[from.Row][from.Col] = true
	tail := 1
	for head := 0; head < tail; head++ {
		current := queue[head]
		for _, d := range directions {
			if !s.openWays.IsOpen(current, d) {
				continue
			}
			next := current.Add(d)
			if seen[next.Row][next.Col] {
				continue
			}
			steps := dist[current.Row][current.Col] + 1
			if next.Row == row {
				return steps
			}
			seen[next.Row][next.Col] = true
			dist[next.Row][next.Col] = steps
			queue[tail] = next
			tail++
		}
	}
	return Unreachable
}

// ShortestPaths lists shortest paths from pawn to goal, both ends included,
// by reversing the predecessor sets into successor sets. At most MaxPaths
// paths are returned.
func (s *State) ShortestPaths(pawn Pawn, goal Position) [][]Position {
	dist, prev := s.ShortestDistances(pawn)
	if !goal.InBounds() || dist[goal.Row][goal.Col] == Unreachable {
		return nil
	}
	next := successors(&prev, goal)

	var paths [][]Position
	var walk func(current Position, path []Position)
	walk = func(current Position, path []Position) {
		if len(paths) >= MaxPaths {
			return
		}
		path = append(path, current)
		nexts := next[current.Row][current.Col]
		if len(nexts) == 0 {
			paths = append(paths, append([]Position(nil), path...))
			return
		}
		for _, n := range nexts {
			walk(n, path)
		}
	}
	walk(pawn.Position, make([]Position, 0, dist[goal.Row][goal.Col]+1))
	return paths
}

// successors walks back from goal through prev and records, for each cell on
// a shortest path, the cells that follow it toward goal.
func successors(prev *Predecessors, goal Position) *Predecessors {
	var next Predecessors
	var queued [Size][Size]bool
	queue := []Position{goal}
	queued[goal.Row][goal.Col] = true
	for head := 0; head < len(queue); head++ {
		current := queue[head]
		for _, p := range prev[current.Row][current.Col] {
			next[p.Row][p.Col] = append(next[p.Row][p.Col], current)
			if !queued[p.Row][p.Col] {
				queued[p.Row][p.Col] = true
				queue = append(queue, p)
			}
		}
	}
	return &next
}

// AllPathsToGoalRow enumerates simple paths from pawn to its goal row by
// depth-first search, stopping once MaxPaths paths are found.
func (s *State) AllPathsToGoalRow(pawn Pawn) [][]Position {
	var paths [][]Position
	var onPath [Size][Size]bool
	path := make([]Position, 0, Size*Size)

	var dfs func(current Position)
	dfs = func(current Position) {
		if len(paths) >= MaxPaths {
			return
		}
		path = append(path, current)
		onPath[current.Row][current.Col] = true
		defer func() {
			path = path[:len(path)-1]
			onPath[current.Row][current.Col] = false
		}()

		if current.Row == pawn.GoalRow {
			paths = append(paths, append([]Position(nil), path...))
			return
		}
		for _, d := range directions {
			if !s.openWays.IsOpen(current, d) {
				continue
			}
			next := current.Add(d)
			if !onPath[next.Row][next.Col] {
				dfs(next)
			}
		}
	}
	dfs(pawn.Position)
	return paths
}
