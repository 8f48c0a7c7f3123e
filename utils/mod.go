package utils

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

// ArgMins returns the indices of every minimum element, in order.
func ArgMins[T constraints.Ordered](values []T) []int {
	var indices []int
	for i, v := range values {
		switch {
		case len(indices) == 0 || v < values[indices[0]]:
			indices = append(indices[:0], i)
		case v == values[indices[0]]:
			indices = append(indices, i)
		}
	}
	return indices
}

// Choice picks a uniformly random element. Panics on an empty slice.
func Choice[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
