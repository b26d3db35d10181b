package searcher

import (
	"math"
	"sync/atomic"
	"time"
)

type Metrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64 // Search calls entered
	Leaves    int64 // Positions scored by the evaluation function
	Cutoffs   int64 // Alpha-beta prunes
	Depth     int   // Deepest fully completed iteration
	Score     float64
	TimedOut  bool
}

// Collector receives search events for a single move decision.
type Collector interface {
	Start()
	AddNode()
	AddLeaf()
	AddCutoff()
	CompleteDepth(depth int, result Result)
	TimedOut()
	Complete() Metrics
}

type collector struct {
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
	depth     atomic.Int64
	score     atomic.Uint64
	timedOut  atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) CompleteDepth(depth int, result Result) {
	m.depth.Store(int64(depth))
	m.score.Store(math.Float64bits(result.Score))
}

func (m *collector) TimedOut() {
	m.timedOut.Store(true)
}

func (m *collector) Complete() Metrics {
	return Metrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes.Load(),
		Leaves:    m.leaves.Load(),
		Cutoffs:   m.cutoffs.Load(),
		Depth:     int(m.depth.Load()),
		Score:     math.Float64frombits(m.score.Load()),
		TimedOut:  m.timedOut.Load(),
	}
}

type noCollector struct{}

func NewNoCollector() Collector {
	return &noCollector{}
}

func (m *noCollector) Start()                    {}
func (m *noCollector) AddNode()                  {}
func (m *noCollector) AddLeaf()                  {}
func (m *noCollector) AddCutoff()                {}
func (m *noCollector) CompleteDepth(int, Result) {}
func (m *noCollector) TimedOut()                 {}
func (m *noCollector) Complete() Metrics         { return Metrics{} }
