package metrics

import (
	"time"
)

// SearchMetric describes a single move search.
type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int // Boards scored by a terminal check or the heuristic
	Cutoffs  int
	Value    int
}

type MoveMetric struct {
	Step   int
	Player int // Side that moved
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector is fed by a single search at a time.
type Collector interface {
	Start(depth int)
	AddNode()
	AddCutoff()
	Complete(value int) SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     int
	cutoffs   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes = 0
	m.cutoffs = 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) Complete(value int) SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Cutoffs:  m.cutoffs,
		Value:    value,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                 {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddCutoff()                      {}
func (m *dummyCollector) Complete(value int) SearchMetric { return SearchMetric{Value: value} }
