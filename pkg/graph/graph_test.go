package graph

import (
	"encoding/json"
	"testing"
)

func TestLoadEmptyGraph(t *testing.T) {
	g := Load(nil, nil)
	if g.NodeCount() != 0 {
		t.Errorf("node count = %d, want 0", g.NodeCount())
	}
	if g.EdgeCount() != 0 {
		t.Errorf("edge count = %d, want 0", g.EdgeCount())
	}
	if len(g.Nodes()) != 0 || len(g.Edges()) != 0 {
		t.Error("empty graph should iterate nothing")
	}
}

func TestLoadDropsUnresolvedEdges(t *testing.T) {
	nodes := []Node{
		{ID: "a", Type: "person"},
		{ID: "b", Type: "concept"},
	}
	edges := []Edge{
		{Source: "a", Target: "b", Relationship: "knows"},
		{Source: "a", Target: "ghost"},
		{Source: "ghost", Target: "b"},
	}

	g := Load(nodes, edges)

	if g.EdgeCount() != 1 {
		t.Fatalf("edge count = %d, want 1", g.EdgeCount())
	}
	if g.Stats().DroppedEdges != 2 {
		t.Errorf("dropped edges = %d, want 2", g.Stats().DroppedEdges)
	}

	// Every retained edge must have two resolvable endpoints.
	for _, e := range g.Edges() {
		if g.Get(e.Source) == nil || g.Get(e.Target) == nil {
			t.Errorf("edge %s->%s retained with missing endpoint", e.Source, e.Target)
		}
	}
}

func TestLoadDeduplicatesNodes(t *testing.T) {
	nodes := []Node{
		{ID: "a", Type: "person", Label: "first"},
		{ID: "b", Type: "concept"},
		{ID: "a", Type: "person", Label: "second"},
	}

	g := Load(nodes, nil)

	if g.NodeCount() != 2 {
		t.Fatalf("node count = %d, want 2", g.NodeCount())
	}
	if g.Stats().DuplicateNodes != 1 {
		t.Errorf("duplicate nodes = %d, want 1", g.Stats().DuplicateNodes)
	}

	// Last write wins.
	if got := g.Get("a").Label; got != "second" {
		t.Errorf("node a label = %q, want %q", got, "second")
	}

	// Iteration keeps the first occurrence's position.
	order := g.Nodes()
	if order[0].ID != "a" || order[1].ID != "b" {
		t.Errorf("iteration order = [%s %s], want [a b]", order[0].ID, order[1].ID)
	}
}

func TestNeighborsUndirected(t *testing.T) {
	nodes := []Node{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	edges := []Edge{
		{Source: "a", Target: "b"},
		{Source: "b", Target: "c"},
	}

	g := Load(nodes, edges)

	gotB := g.Neighbors("b")
	if len(gotB) != 2 {
		t.Fatalf("neighbors of b = %v, want 2 entries", gotB)
	}
	// Both directions resolve: a sees b via an outgoing edge, c via incoming.
	if got := g.Neighbors("a"); len(got) != 1 || got[0] != "b" {
		t.Errorf("neighbors of a = %v, want [b]", got)
	}
	if got := g.Neighbors("c"); len(got) != 1 || got[0] != "b" {
		t.Errorf("neighbors of c = %v, want [b]", got)
	}

	if g.Degree("b") != 2 {
		t.Errorf("degree of b = %d, want 2", g.Degree("b"))
	}
}

func TestNeighborsIgnoresSelfLoopsAndParallelEdges(t *testing.T) {
	nodes := []Node{{ID: "a"}, {ID: "b"}}
	edges := []Edge{
		{Source: "a", Target: "a"},
		{Source: "a", Target: "b"},
		{Source: "b", Target: "a"},
	}

	g := Load(nodes, edges)

	got := g.Neighbors("a")
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("neighbors of a = %v, want [b]", got)
	}
	// EdgesOf still reports every touching edge, self-loop included.
	if n := len(g.EdgesOf("a")); n != 3 {
		t.Errorf("edges of a = %d, want 3", n)
	}
}

func TestPropertiesPreserveOrder(t *testing.T) {
	raw := []byte(`{"zeta":1,"alpha":"x","mid":null}`)

	var p Properties
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []string{"zeta", "alpha", "mid"}
	got := p.Keys()
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys = %v, want %v", got, want)
		}
	}

	v, ok := p.Get("alpha")
	if !ok || v != "x" {
		t.Errorf("Get(alpha) = %v %v, want x true", v, ok)
	}

	// Round trip keeps order.
	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"zeta":1,"alpha":"x","mid":null}` {
		t.Errorf("round trip = %s", out)
	}
}

func TestGraphDataDecode(t *testing.T) {
	raw := []byte(`{
		"nodes": [{"id":"n1","label":"Ada","type":"Person","properties":{"born":"1815"}}],
		"edges": [{"source":"n1","target":"n1","relationship":"self"}]
	}`)

	var data GraphData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	g := LoadData(data)
	n := g.Get("n1")
	if n == nil {
		t.Fatal("node n1 missing")
	}
	if n.DisplayLabel() != "Ada" {
		t.Errorf("display label = %q, want Ada", n.DisplayLabel())
	}
	if v, ok := n.Properties.Get("born"); !ok || v != "1815" {
		t.Errorf("born = %v %v", v, ok)
	}
}

func TestDisplayLabelFallsBackToID(t *testing.T) {
	n := &Node{ID: "n42", Type: "concept"}
	if n.DisplayLabel() != "n42" {
		t.Errorf("display label = %q, want n42", n.DisplayLabel())
	}
}
