package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes one completed search.
type SearchMetric struct {
	Goroutines       int
	Budget           int
	Duration         time.Duration
	Simulations      int
	FullPlayouts     int
	TerminalRollouts int
	Expansions       int
	WallRetries      int
	TreeSize         int
	MaxDepth         int
}

type Collector interface {
	Start(goroutines, budget int)
	AddSimulation()
	AddFullPlayout()
	AddTerminalRollout()
	AddExpansion()
	AddWallRetry()
	Complete(treeSize, maxDepth int) SearchMetric
}

type collector struct {
	goroutines       int
	budget           int
	startTime        time.Time
	simulations      atomic.Int64
	fullPlayouts     atomic.Int64
	terminalRollouts atomic.Int64
	expansions       atomic.Int64
	wallRetries      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, budget int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.budget = budget
	m.simulations.Store(0)
	m.fullPlayouts.Store(0)
	m.terminalRollouts.Store(0)
	m.expansions.Store(0)
	m.wallRetries.Store(0)
}

func (m *collector) AddSimulation() {
	m.simulations.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddTerminalRollout() {
	m.terminalRollouts.Add(1)
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) AddWallRetry() {
	m.wallRetries.Add(1)
}

func (m *collector) Complete(treeSize, maxDepth int) SearchMetric {
	return SearchMetric{
		Goroutines:       m.goroutines,
		Budget:           m.budget,
		Duration:         time.Since(m.startTime),
		Simulations:      int(m.simulations.Load()),
		FullPlayouts:     int(m.fullPlayouts.Load()),
		TerminalRollouts: int(m.terminalRollouts.Load()),
		Expansions:       int(m.expansions.Load()),
		WallRetries:      int(m.wallRetries.Load()),
		TreeSize:         treeSize,
		MaxDepth:         maxDepth,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, budget int) {}
func (m *dummyCollector) AddSimulation()               {}
func (m *dummyCollector) AddFullPlayout()              {}
func (m *dummyCollector) AddTerminalRollout()          {}
func (m *dummyCollector) AddExpansion()                {}
func (m *dummyCollector) AddWallRetry()                {}
func (m *dummyCollector) Complete(treeSize, maxDepth int) SearchMetric {
	return SearchMetric{TreeSize: treeSize, MaxDepth: maxDepth}
}
