package scene

import (
	"github.com/knotbook/knot/pkg/graph"
	"github.com/knotbook/knot/pkg/kernel"
)

// NodeView is the JSON-serializable render state of one node marker.
type NodeView struct {
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	Type        string     `json:"type"`
	Color       string     `json:"color"`
	Position    graph.Vec3 `json:"position"`
	Size        float64    `json:"size"`
	HaloSize    float64    `json:"haloSize"`
	HaloOpacity float64    `json:"haloOpacity"`
	Emissive    float64    `json:"emissive"`
	Highlight   string     `json:"highlight"`
}

// EdgeView is the JSON-serializable render state of one edge tube.
type EdgeView struct {
	ID           string       `json:"id"`
	Source       string       `json:"source"`
	Target       string       `json:"target"`
	Relationship string       `json:"relationship"`
	Tube         *kernel.Mesh `json:"tube"`
	Highlight    string       `json:"highlight"`
}

// Snapshot is the complete read-only payload the render surface consumes
// after a rebuild. The renderer instances Marker per node; Tube meshes are
// per edge.
type Snapshot struct {
	SnapshotID string       `json:"snapshotId"`
	Marker     *kernel.Mesh `json:"marker"`
	Nodes      []NodeView   `json:"nodes"`
	Edges      []EdgeView   `json:"edges"`
}

// HighlightUpdate is the light per-frame payload carrying only visual-state
// changes, keyed by object id.
type HighlightUpdate struct {
	SnapshotID string            `json:"snapshotId"`
	Nodes      map[string]string `json:"nodes"`
	Edges      map[string]string `json:"edges"`
}

// Snapshot renders the scene's current state into an immutable payload.
func (s *Scene) Snapshot() Snapshot {
	snap := Snapshot{
		SnapshotID: s.snapshotID,
		Marker:     s.marker,
		Nodes:      make([]NodeView, 0, len(s.nodeOrder)),
		Edges:      make([]EdgeView, 0, len(s.edges)),
	}

	for _, vn := range s.Nodes() {
		snap.Nodes = append(snap.Nodes, NodeView{
			ID:          vn.ID,
			Label:       vn.Node.DisplayLabel(),
			Type:        vn.Node.Type,
			Color:       vn.Style.Color,
			Position:    vn.Position,
			Size:        vn.Style.Size,
			HaloSize:    vn.Style.Size * HaloScale,
			HaloOpacity: HaloOpacity,
			Emissive:    EmissiveIntensity,
			Highlight:   vn.Highlight.String(),
		})
	}

	for _, ve := range s.edges {
		snap.Edges = append(snap.Edges, EdgeView{
			ID:           ve.ID,
			Source:       ve.Source.ID,
			Target:       ve.Target.ID,
			Relationship: ve.Edge.Relationship,
			Tube:         ve.Tube,
			Highlight:    ve.Highlight.String(),
		})
	}

	return snap
}

// Highlights returns the current highlight state of every object, for
// per-frame diffs without re-shipping geometry.
func (s *Scene) Highlights() HighlightUpdate {
	upd := HighlightUpdate{
		SnapshotID: s.snapshotID,
		Nodes:      make(map[string]string, len(s.nodes)),
		Edges:      make(map[string]string, len(s.edges)),
	}
	for id, vn := range s.nodes {
		upd.Nodes[id] = vn.Highlight.String()
	}
	for _, ve := range s.edges {
		upd.Edges[ve.ID] = ve.Highlight.String()
	}
	return upd
}
