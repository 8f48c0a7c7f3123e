package game

import (
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// DefaultDistanceCacheSize is sized for a full search: a few thousand wall
// layouts times the cells pawns actually visit.
const DefaultDistanceCacheSize = 1 << 16

type distanceKey struct {
	walls uint64
	from  Position
	row   int
}

// DistanceCache memoizes DistanceToRow by wall layout. Distances depend only
// on open ways, so the wall key plus endpoints fully determines the answer.
// A nil *DistanceCache computes every query directly.
type DistanceCache struct {
	mux sync.Mutex
	lru *simplelru.LRU
}

func NewDistanceCache(size int) *DistanceCache {
	lru, err := simplelru.NewLRU(size, nil)
	if err != nil {
		panic(err)
	}
	return &DistanceCache{lru: lru}
}

// DistanceToRow returns s.DistanceToRow(from, row), from the cache when possible.
func (c *DistanceCache) DistanceToRow(s *State, from Position, row int) int {
	if c == nil {
		return s.DistanceToRow(from, row)
	}
	key := distanceKey{walls: s.wallKey, from: from, row: row}

	c.mux.Lock()
	if d, ok := c.lru.Get(key); ok {
		c.mux.Unlock()
		return d.(int)
	}
	c.mux.Unlock()

	d := s.DistanceToRow(from, row)

	c.mux.Lock()
	c.lru.Add(key, d)
	c.mux.Unlock()
	return d
}

// Len reports the number of cached distances.
func (c *DistanceCache) Len() int {
	if c == nil {
		return 0
	}
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.lru.Len()
}
