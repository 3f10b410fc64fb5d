package scene_test

import (
	"testing"

	"github.com/knotbook/knot/pkg/graph"
	"github.com/knotbook/knot/pkg/kernel/sdfx"
	"github.com/knotbook/knot/pkg/scene"
	"github.com/knotbook/knot/pkg/style"
)

func buildTestScene(t *testing.T, nodes []graph.Node, edges []graph.Edge) (*scene.Scene, *graph.Graph) {
	t.Helper()

	g := graph.Load(nodes, edges)
	positions := make(map[string]graph.Vec3)
	for i, n := range g.Nodes() {
		positions[n.ID] = graph.Vec3{X: float64(i) * 100}
	}

	s, err := scene.NewBuilder(sdfx.New()).Build(g, positions, style.NewResolver())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s, g
}

func TestBuildCreatesOneVisualPerObject(t *testing.T) {
	s, _ := buildTestScene(t,
		[]graph.Node{{ID: "a", Type: "person"}, {ID: "b", Type: "concept"}, {ID: "c"}},
		[]graph.Edge{
			{Source: "a", Target: "b"},
			{Source: "b", Target: "c"},
		},
	)

	if s.NodeCount() != 3 {
		t.Errorf("node count = %d, want 3", s.NodeCount())
	}
	if s.EdgeCount() != 2 {
		t.Errorf("edge count = %d, want 2", s.EdgeCount())
	}

	for _, vn := range s.Nodes() {
		if vn.Highlight != scene.NodeNormal {
			t.Errorf("node %s initial highlight = %v, want normal", vn.ID, vn.Highlight)
		}
		if vn.Style.Color == "" || vn.Style.Size <= 0 {
			t.Errorf("node %s missing style: %+v", vn.ID, vn.Style)
		}
	}
	for _, ve := range s.Edges() {
		if ve.Source == nil || ve.Target == nil {
			t.Fatalf("edge %s has nil endpoint reference", ve.ID)
		}
		if ve.Tube == nil || ve.Tube.IsEmpty() {
			t.Errorf("edge %s has no tube mesh", ve.ID)
		}
	}
}

func TestBuildSkipsNothingForDroppedEdges(t *testing.T) {
	// The dangling edge is dropped at load time, so the scene must not
	// see it at all.
	s, _ := buildTestScene(t,
		[]graph.Node{{ID: "a"}, {ID: "b"}},
		[]graph.Edge{
			{Source: "a", Target: "b"},
			{Source: "a", Target: "missing"},
		},
	)

	if s.EdgeCount() != 1 {
		t.Errorf("edge count = %d, want 1", s.EdgeCount())
	}
}

func TestBuildEmptyGraph(t *testing.T) {
	s, _ := buildTestScene(t, nil, nil)
	if s.NodeCount() != 0 || s.EdgeCount() != 0 {
		t.Errorf("empty graph produced %d nodes, %d edges", s.NodeCount(), s.EdgeCount())
	}
	snap := s.Snapshot()
	if len(snap.Nodes) != 0 || len(snap.Edges) != 0 {
		t.Error("empty scene snapshot not empty")
	}
}

func TestRebuildChangesSnapshotID(t *testing.T) {
	nodes := []graph.Node{{ID: "a"}}
	first, _ := buildTestScene(t, nodes, nil)
	second, _ := buildTestScene(t, nodes, nil)

	if first.SnapshotID() == second.SnapshotID() {
		t.Error("rebuild kept the same snapshot id")
	}
}

func TestResetHighlights(t *testing.T) {
	s, _ := buildTestScene(t,
		[]graph.Node{{ID: "a"}, {ID: "b"}},
		[]graph.Edge{{Source: "a", Target: "b"}},
	)

	s.Node("a").Highlight = scene.NodeSelected
	s.Node("b").Highlight = scene.NodeDimmed
	s.Edges()[0].Highlight = scene.EdgeActive

	s.ResetHighlights()

	for _, vn := range s.Nodes() {
		if vn.Highlight != scene.NodeNormal {
			t.Errorf("node %s highlight = %v after reset", vn.ID, vn.Highlight)
		}
	}
	if got := s.Edges()[0].Highlight; got != scene.EdgeNormal {
		t.Errorf("edge highlight = %v after reset", got)
	}
}

func TestSnapshotReflectsHighlightsAndStyles(t *testing.T) {
	s, _ := buildTestScene(t,
		[]graph.Node{{ID: "a", Label: "Ada", Type: "person"}, {ID: "b", Type: "concept"}},
		[]graph.Edge{{Source: "a", Target: "b", Relationship: "knows"}},
	)

	s.Node("a").Highlight = scene.NodeSelected

	snap := s.Snapshot()
	if snap.SnapshotID != s.SnapshotID() {
		t.Error("snapshot id mismatch")
	}
	if snap.Marker == nil || snap.Marker.IsEmpty() {
		t.Fatal("snapshot missing shared marker mesh")
	}

	var ada scene.NodeView
	for _, nv := range snap.Nodes {
		if nv.ID == "a" {
			ada = nv
		}
	}
	if ada.Label != "Ada" || ada.Highlight != "selected" {
		t.Errorf("ada view = %+v", ada)
	}
	if ada.HaloSize <= ada.Size {
		t.Errorf("halo %v not larger than marker %v", ada.HaloSize, ada.Size)
	}

	if snap.Edges[0].Relationship != "knows" {
		t.Errorf("edge relationship = %q", snap.Edges[0].Relationship)
	}
}

func TestHighlightsUpdateKeys(t *testing.T) {
	s, g := buildTestScene(t,
		[]graph.Node{{ID: "a"}, {ID: "b"}},
		[]graph.Edge{{Source: "a", Target: "b"}},
	)

	upd := s.Highlights()
	if len(upd.Nodes) != g.NodeCount() {
		t.Errorf("highlight nodes = %d, want %d", len(upd.Nodes), g.NodeCount())
	}
	if upd.Nodes["a"] != "normal" {
		t.Errorf("node a state = %q", upd.Nodes["a"])
	}
	if len(upd.Edges) != 1 {
		t.Errorf("highlight edges = %d, want 1", len(upd.Edges))
	}
}
