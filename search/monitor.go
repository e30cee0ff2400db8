package search

import "github.com/hirebuddy/scout/core"

// Monitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate stages during a search.
type Monitor interface {
	Start(q core.SearchQuery)
	AfterFilter(kept []*core.JobRecord)
	AfterTextMatch(kept []*core.JobRecord)
	Scored(result *core.ScoredResult)
	Finish(resp *core.SearchResponse)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ core.SearchQuery)             {}
func (n *noopMonitor) AfterFilter(_ []*core.JobRecord)      {}
func (n *noopMonitor) AfterTextMatch(_ []*core.JobRecord)   {}
func (n *noopMonitor) Scored(_ *core.ScoredResult)          {}
func (n *noopMonitor) Finish(_ *core.SearchResponse)        {}
