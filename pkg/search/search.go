// Package search provides the substring filter behind the graph search
// overlay.
package search

import (
	"strings"

	"github.com/knotbook/knot/pkg/graph"
)

// MaxResults caps how many matches a query returns.
const MaxResults = 10

// Index matches nodes by label-or-id and type. It reads the graph once at
// construction and is immutable afterward, like the graph itself.
type Index struct {
	nodes []entry
}

type entry struct {
	node  *graph.Node
	label string // lowercased display label
	typ   string // lowercased type
}

// NewIndex builds an index over g in graph iteration order.
func NewIndex(g *graph.Graph) *Index {
	idx := &Index{}
	for _, n := range g.Nodes() {
		idx.nodes = append(idx.nodes, entry{
			node:  n,
			label: strings.ToLower(n.DisplayLabel()),
			typ:   strings.ToLower(n.Type),
		})
	}
	return idx
}

// Search returns up to MaxResults nodes whose display label or type
// contains the query, case-insensitively, preserving graph iteration order.
// An empty or whitespace query matches nothing.
func (idx *Index) Search(query string) []*graph.Node {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []*graph.Node
	for _, e := range idx.nodes {
		if strings.Contains(e.label, q) || strings.Contains(e.typ, q) {
			out = append(out, e.node)
			if len(out) == MaxResults {
				break
			}
		}
	}
	return out
}
