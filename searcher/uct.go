package searcher

import "math"

type uct struct {
	numerator float64
}

// newUCT prepares the exploration term for a parent with N visits. A parent
// must have been sampled before its children can be ranked.
func newUCT(cSquared float64, N int) uct {
	if N == 0 {
		panic("cannot compute UCT: parent has no simulations")
	}
	return uct{numerator: cSquared * math.Log(float64(N))}
}

func (u uct) evaluate(wins int, n int) float64 {
	// Prioritize unexplored nodes
	if n == 0 {
		return math.Inf(1)
	}
	// UCT = w/n + sqrt(c^2*ln(N)/n)
	return float64(wins)/float64(n) + math.Sqrt(u.numerator/float64(n))
}
