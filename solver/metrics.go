package solver

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one minimax evaluation.
type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int // interior search nodes visited
	Leaves   int // terminal or depth-exhausted positions valued
	Prunes   int // sibling sets abandoned after an ideal value
}

// Collector gathers search counters. Implementations must be safe for
// concurrent use: parallel root evaluation shares a single collector.
type Collector interface {
	Start(depth int)
	Stop()
	AddNode()
	AddLeaf()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	duration  atomic.Int64
	nodes     atomic.Int64
	leaves    atomic.Int64
	prunes    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	c.depth = depth
	c.startTime = time.Now()
	c.duration.Store(0)
	c.nodes.Store(0)
	c.leaves.Store(0)
	c.prunes.Store(0)
}

func (c *collector) Stop() {
	c.duration.Store(int64(time.Since(c.startTime)))
}

func (c *collector) AddNode()  { c.nodes.Add(1) }
func (c *collector) AddLeaf()  { c.leaves.Add(1) }
func (c *collector) AddPrune() { c.prunes.Add(1) }

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    c.depth,
		Duration: time.Duration(c.duration.Load()),
		Nodes:    int(c.nodes.Load()),
		Leaves:   int(c.leaves.Load()),
		Prunes:   int(c.prunes.Load()),
	}
}

// dummyCollector costs nothing on the search hot path; it is the default
// when metrics were not requested.
type dummyCollector struct{}

func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(depth int)        {}
func (dummyCollector) Stop()                  {}
func (dummyCollector) AddNode()               {}
func (dummyCollector) AddLeaf()               {}
func (dummyCollector) AddPrune()              {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
