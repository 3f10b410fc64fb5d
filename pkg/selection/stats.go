package selection

import "github.com/knotbook/knot/pkg/graph"

// Hub rank buckets by neighbor count.
const (
	RankIsolated  = "Isolated"
	RankConnected = "Connected"
	RankHub       = "Hub"
	RankMajorHub  = "Major Hub"
)

// Stats are display-only connectivity figures for a node. They are derived
// on demand and are not part of the selection state.
type Stats struct {
	NodeID        string  `json:"nodeId"`
	NeighborCount int     `json:"neighborCount"`
	ReachablePct  float64 `json:"reachablePct"` // % of the rest of the graph one hop away
	HubRank       string  `json:"hubRank"`
}

// StatsFor computes connectivity stats for a node in g. An unknown id
// yields zero stats with the Isolated rank.
func StatsFor(g *graph.Graph, nodeID string) Stats {
	stats := Stats{NodeID: nodeID, HubRank: RankIsolated}
	if g.Get(nodeID) == nil {
		return stats
	}

	stats.NeighborCount = g.Degree(nodeID)
	if others := g.NodeCount() - 1; others > 0 {
		stats.ReachablePct = float64(stats.NeighborCount) / float64(others) * 100
	}
	stats.HubRank = hubRank(stats.NeighborCount)
	return stats
}

// hubRank buckets a neighbor count qualitatively: fewer than 1 neighbor is
// isolated, 1-2 connected, 3-4 a hub, 5 or more a major hub.
func hubRank(neighbors int) string {
	switch {
	case neighbors < 1:
		return RankIsolated
	case neighbors < 3:
		return RankConnected
	case neighbors < 5:
		return RankHub
	default:
		return RankMajorHub
	}
}

// SelectedStats returns stats for the current selection, or false when
// nothing is selected.
func (c *Controller) SelectedStats() (Stats, bool) {
	if c.state != StateSelected {
		return Stats{}, false
	}
	return StatsFor(c.graph, c.selectedID), true
}
