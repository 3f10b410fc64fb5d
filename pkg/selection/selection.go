// Package selection drives the node-selection state machine: highlight
// propagation to neighbors and touching edges, camera refocus on the
// selected node, and host callbacks.
package selection

import (
	"fmt"

	"github.com/knotbook/knot/pkg/camera"
	"github.com/knotbook/knot/pkg/graph"
	"github.com/knotbook/knot/pkg/scene"
)

// State is the selection state. Exactly one node can be selected at a time;
// neighbors are derived from adjacency, never stored.
type State int

const (
	StateIdle State = iota
	StateSelected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelected:
		return "selected"
	default:
		return "unknown"
	}
}

// Controller owns the selection state for one view.
type Controller struct {
	graph  *graph.Graph
	scene  *scene.Scene
	camera *camera.Controller

	state      State
	selectedID string

	onSelect   func(*graph.Node)
	onDeselect func()
}

// New returns a Controller over the given collaborators. Either callback
// may be nil.
func New(g *graph.Graph, s *scene.Scene, cam *camera.Controller) *Controller {
	return &Controller{graph: g, scene: s, camera: cam}
}

// OnSelect registers the host callback fired after a node is selected.
func (c *Controller) OnSelect(fn func(*graph.Node)) {
	c.onSelect = fn
}

// OnDeselect registers the host callback fired after the selection clears.
func (c *Controller) OnDeselect(fn func()) {
	c.onDeselect = fn
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// SelectedID returns the selected node id and whether one is selected.
func (c *Controller) SelectedID() (string, bool) {
	return c.selectedID, c.state == StateSelected
}

// Select makes the given node the primary selection, replacing any existing
// one. The target becomes selected, its direct neighbors become neighbors,
// everything else dims; edges touching the target become active and all
// others dim. The camera refocuses on the node and idle auto-rotation is
// suspended.
func (c *Controller) Select(nodeID string) error {
	node := c.graph.Get(nodeID)
	if node == nil {
		return fmt.Errorf("selection: unknown node %q", nodeID)
	}
	visual := c.scene.Node(nodeID)
	if visual == nil {
		return fmt.Errorf("selection: node %q has no visual object", nodeID)
	}

	neighbors := make(map[string]bool)
	for _, id := range c.graph.Neighbors(nodeID) {
		neighbors[id] = true
	}

	for _, vn := range c.scene.Nodes() {
		switch {
		case vn.ID == nodeID:
			vn.Highlight = scene.NodeSelected
		case neighbors[vn.ID]:
			vn.Highlight = scene.NodeNeighbor
		default:
			vn.Highlight = scene.NodeDimmed
		}
	}

	for _, ve := range c.scene.Edges() {
		if ve.Source.ID == nodeID || ve.Target.ID == nodeID {
			ve.Highlight = scene.EdgeActive
		} else {
			ve.Highlight = scene.EdgeDimmed
		}
	}

	c.state = StateSelected
	c.selectedID = nodeID

	c.camera.SetAutoRotate(false)
	c.camera.FocusOn(visual.Position)

	if c.onSelect != nil {
		c.onSelect(node)
	}
	return nil
}

// Deselect clears the selection, returning every visual object to its
// baseline state and resuming idle auto-rotation. Calling it with nothing
// selected is a no-op.
func (c *Controller) Deselect() {
	if c.state != StateSelected {
		return
	}

	c.scene.ResetHighlights()
	c.state = StateIdle
	c.selectedID = ""
	c.camera.SetAutoRotate(true)

	if c.onDeselect != nil {
		c.onDeselect()
	}
}
