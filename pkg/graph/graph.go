package graph

// LoadStats records what Load accepted and dropped. Dropped edges are never
// fatal; the count exists for diagnostics only.
type LoadStats struct {
	NodeCount      int `json:"nodeCount"`
	EdgeCount      int `json:"edgeCount"`
	DuplicateNodes int `json:"duplicateNodes"`
	DroppedEdges   int `json:"droppedEdges"`
}

// Graph is the validated, immutable graph produced by Load. Every retained
// edge has two resolvable endpoints. Iteration over Nodes and Edges follows
// load order, so downstream consumers (layout, search) are deterministic
// with respect to the input.
type Graph struct {
	nodes     map[string]*Node
	nodeOrder []string
	edges     []*Edge
	adjacency map[string][]*Edge
	stats     LoadStats
}

// Load validates and normalizes raw node/edge lists into a Graph.
// Nodes are deduplicated by id (last occurrence wins, keeping the first
// occurrence's position in iteration order). Edges referencing a missing
// endpoint are dropped and counted. An empty input is valid and yields an
// empty graph.
func Load(nodes []Node, edges []Edge) *Graph {
	g := &Graph{
		nodes:     make(map[string]*Node, len(nodes)),
		adjacency: make(map[string][]*Edge),
	}

	for i := range nodes {
		n := nodes[i]
		if _, seen := g.nodes[n.ID]; seen {
			g.stats.DuplicateNodes++
		} else {
			g.nodeOrder = append(g.nodeOrder, n.ID)
		}
		g.nodes[n.ID] = &n
	}

	for i := range edges {
		e := edges[i]
		if _, ok := g.nodes[e.Source]; !ok {
			g.stats.DroppedEdges++
			continue
		}
		if _, ok := g.nodes[e.Target]; !ok {
			g.stats.DroppedEdges++
			continue
		}
		g.edges = append(g.edges, &e)
		g.adjacency[e.Source] = append(g.adjacency[e.Source], &e)
		if e.Target != e.Source {
			g.adjacency[e.Target] = append(g.adjacency[e.Target], &e)
		}
	}

	g.stats.NodeCount = len(g.nodes)
	g.stats.EdgeCount = len(g.edges)
	return g
}

// LoadData is a convenience wrapper over Load for the backend's GraphData
// contract.
func LoadData(data GraphData) *Graph {
	return Load(data.Nodes, data.Edges)
}

// Get returns the node with the given id, or nil.
func (g *Graph) Get(id string) *Node {
	return g.nodes[id]
}

// Nodes returns all nodes in load order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id])
	}
	return out
}

// Edges returns all retained edges in load order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// EdgesOf returns every edge touching the given node, incoming or outgoing.
func (g *Graph) EdgesOf(id string) []*Edge {
	adj := g.adjacency[id]
	out := make([]*Edge, len(adj))
	copy(out, adj)
	return out
}

// Neighbors returns the ids of all nodes one hop from id, treating edges as
// undirected. A node is never its own neighbor, and each neighbor appears
// once regardless of parallel edges.
func (g *Graph) Neighbors(id string) []string {
	var out []string
	seen := map[string]bool{id: true}
	for _, e := range g.adjacency[id] {
		other := e.Target
		if other == id {
			other = e.Source
		}
		if !seen[other] {
			seen[other] = true
			out = append(out, other)
		}
	}
	return out
}

// Degree returns the number of distinct neighbors of id.
func (g *Graph) Degree(id string) int {
	return len(g.Neighbors(id))
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of retained edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Stats returns the load diagnostics.
func (g *Graph) Stats() LoadStats {
	return g.stats
}
