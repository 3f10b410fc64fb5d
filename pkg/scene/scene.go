// Package scene turns a validated graph plus layout positions and styles
// into renderable visual objects. Visual objects live in an arena keyed by
// id; a graph reload discards the whole arena and builds a fresh one under a
// new snapshot id, so no renderer handle survives a reload.
package scene

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/knotbook/knot/pkg/graph"
	"github.com/knotbook/knot/pkg/kernel"
	"github.com/knotbook/knot/pkg/style"
	"github.com/knotbook/knot/pkg/tessellate"
)

// Visual tuning constants.
const (
	// HaloScale is the halo marker's size relative to its node marker.
	HaloScale = 1.6

	// HaloOpacity is the halo's translucency when visible.
	HaloOpacity = 0.25

	// EmissiveIntensity is the marker's subtle self-glow.
	EmissiveIntensity = 0.35

	// TubeRadius is the edge tube's cross-section radius in world units.
	TubeRadius = 0.8
)

// NodeHighlight is the visual state of a node marker.
type NodeHighlight int

const (
	NodeNormal NodeHighlight = iota
	NodeSelected
	NodeNeighbor
	NodeDimmed
)

func (h NodeHighlight) String() string {
	switch h {
	case NodeNormal:
		return "normal"
	case NodeSelected:
		return "selected"
	case NodeNeighbor:
		return "neighbor"
	case NodeDimmed:
		return "dimmed"
	default:
		return "unknown"
	}
}

// EdgeHighlight is the visual state of an edge tube.
type EdgeHighlight int

const (
	EdgeNormal EdgeHighlight = iota
	EdgeActive
	EdgeDimmed
)

func (h EdgeHighlight) String() string {
	switch h {
	case EdgeNormal:
		return "normal"
	case EdgeActive:
		return "active"
	case EdgeDimmed:
		return "dimmed"
	default:
		return "unknown"
	}
}

// VisualNode is the renderable record for one graph node: a colored marker
// plus an enlarged translucent halo used for the selection glow.
type VisualNode struct {
	ID        string
	Node      *graph.Node
	Style     style.Spec
	Position  graph.Vec3
	Highlight NodeHighlight
}

// VisualEdge is the renderable record for one retained edge. Source and
// Target are non-owning references into the same arena.
type VisualEdge struct {
	ID        string
	Edge      *graph.Edge
	Source    *VisualNode
	Target    *VisualNode
	Tube      *kernel.Mesh
	Highlight EdgeHighlight
}

// Scene is the arena of visual objects for one graph snapshot.
type Scene struct {
	snapshotID string
	marker     *kernel.Mesh

	nodes     map[string]*VisualNode
	nodeOrder []string
	edges     []*VisualEdge
}

// Builder constructs scenes. The shared unit marker sphere is generated by
// the kernel once and reused across builds.
type Builder struct {
	kernel kernel.Kernel
	marker *kernel.Mesh
}

// NewBuilder returns a Builder backed by the given geometry kernel.
func NewBuilder(k kernel.Kernel) *Builder {
	return &Builder{kernel: k}
}

// Build creates a fresh scene for the graph. Previous scenes are simply
// dropped by the caller; nothing is pooled or reused between snapshots
// except the shared marker mesh.
func (b *Builder) Build(g *graph.Graph, positions map[string]graph.Vec3, resolver *style.Resolver) (*Scene, error) {
	if b.marker == nil {
		m, err := tessellate.MarkerSphere(b.kernel)
		if err != nil {
			return nil, err
		}
		b.marker = m
	}

	s := &Scene{
		snapshotID: uuid.NewString(),
		marker:     b.marker,
		nodes:      make(map[string]*VisualNode, g.NodeCount()),
	}

	for _, n := range g.Nodes() {
		pos, ok := positions[n.ID]
		if !ok {
			return nil, fmt.Errorf("scene: no layout position for node %q", n.ID)
		}
		s.nodes[n.ID] = &VisualNode{
			ID:        n.ID,
			Node:      n,
			Style:     resolver.Resolve(n.Type),
			Position:  pos,
			Highlight: NodeNormal,
		}
		s.nodeOrder = append(s.nodeOrder, n.ID)
	}

	for i, e := range g.Edges() {
		src := s.nodes[e.Source]
		dst := s.nodes[e.Target]
		if src == nil || dst == nil {
			// Load already dropped unresolved edges; this would be a
			// programming error, not bad input.
			return nil, fmt.Errorf("scene: edge %s->%s references missing visual node", e.Source, e.Target)
		}
		s.edges = append(s.edges, &VisualEdge{
			ID:        e.Key(i),
			Edge:      e,
			Source:    src,
			Target:    dst,
			Tube:      tessellate.Tube(src.Position, dst.Position, TubeRadius),
			Highlight: EdgeNormal,
		})
	}

	return s, nil
}

// SnapshotID identifies this scene build. It changes on every rebuild, so
// the renderer can detect that its handles are stale.
func (s *Scene) SnapshotID() string {
	return s.snapshotID
}

// Node returns the visual node for id, or nil.
func (s *Scene) Node(id string) *VisualNode {
	return s.nodes[id]
}

// Nodes returns all visual nodes in graph load order.
func (s *Scene) Nodes() []*VisualNode {
	out := make([]*VisualNode, 0, len(s.nodeOrder))
	for _, id := range s.nodeOrder {
		out = append(out, s.nodes[id])
	}
	return out
}

// Edges returns all visual edges in graph load order.
func (s *Scene) Edges() []*VisualEdge {
	out := make([]*VisualEdge, len(s.edges))
	copy(out, s.edges)
	return out
}

// NodeCount returns the number of visual nodes.
func (s *Scene) NodeCount() int {
	return len(s.nodes)
}

// EdgeCount returns the number of visual edges.
func (s *Scene) EdgeCount() int {
	return len(s.edges)
}

// ResetHighlights returns every node and edge to its baseline state.
func (s *Scene) ResetHighlights() {
	for _, vn := range s.nodes {
		vn.Highlight = NodeNormal
	}
	for _, ve := range s.edges {
		ve.Highlight = EdgeNormal
	}
}
