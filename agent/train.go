package agent

import (
	"context"
	"math"

	"quoridor/game"
	"quoridor/searcher"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns an agent for self-play that samples root moves by
// their visit share sharpened or flattened by temperature. Temperature 1
// samples the visit shares as they are.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		temperature = 1
	}
	return &trainingAgent{
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent) FindMove(ctx context.Context, state *game.State) (game.Move, searcher.SearchMetric, error) {
	result, err := a.mcts.Search(ctx, state)
	if err != nil {
		return game.Move{}, result.Metric, err
	}
	policy := adjustTemperature(result.Policy, a.temperature)
	move, ok := sample(policy, a.rng.Float64())
	if !ok {
		return result.Move, result.Metric, nil
	}
	return move, result.Metric, nil
}

func adjustTemperature(policy map[game.Move]float64, temperature float64) map[game.Move]float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make(map[game.Move]float64, len(policy))
	for move, share := range policy {
		prob := math.Pow(share, exponent)
		sum += prob
		adjusted[move] = prob
	}
	if sum == 0 {
		return adjusted
	}
	// Normalize
	for move := range adjusted {
		adjusted[move] /= sum
	}
	return adjusted
}

// sample walks the policy in move order until the cumulative probability
// exceeds u in [0, 1).
func sample(policy map[game.Move]float64, u float64) (game.Move, bool) {
	moves := make([]game.Move, 0, len(policy))
	for move, prob := range policy {
		if prob > 0 {
			moves = append(moves, move)
		}
	}
	if len(moves) == 0 {
		return game.Move{}, false
	}
	slices.SortFunc(moves, compareMoves)

	cumulative := 0.0
	for _, move := range moves {
		cumulative += policy[move]
		if u < cumulative {
			return move, true
		}
	}
	return moves[len(moves)-1], true // Fallback in case of rounding errors
}

func compareMoves(a, b game.Move) int {
	switch {
	case a.Kind != b.Kind:
		return int(a.Kind) - int(b.Kind)
	case a.At.Row != b.At.Row:
		return a.At.Row - b.At.Row
	default:
		return a.At.Col - b.At.Col
	}
}
