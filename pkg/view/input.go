package view

import (
	"fmt"

	"github.com/knotbook/knot/pkg/graph"
	"github.com/knotbook/knot/pkg/selection"
)

// PointerDown forwards a pointer press to the camera controller.
func (v *GraphView) PointerDown(x, y float64, button int) {
	v.camera.PointerDown(x, y, button)
}

// PointerMove forwards pointer motion to the camera controller.
func (v *GraphView) PointerMove(x, y float64) {
	v.camera.PointerMove(x, y)
}

// PointerUp ends the current drag.
func (v *GraphView) PointerUp() {
	v.camera.PointerUp()
}

// Wheel forwards a wheel event to the camera controller.
func (v *GraphView) Wheel(deltaY float64) {
	v.camera.Wheel(deltaY)
}

// Resize updates the viewport size used for projection and input scaling.
func (v *GraphView) Resize(w, h float64) {
	v.viewportW, v.viewportH = w, h
	v.camera.Resize(w, h)
}

// Click resolves a click at viewport pixel (x, y): a hit marker becomes the
// selection, replacing any existing one; empty space clears it.
func (v *GraphView) Click(x, y float64) error {
	if v.scene == nil {
		return nil
	}

	if id, ok := v.PickNode(x, y); ok {
		return v.selection.Select(id)
	}
	v.selection.Deselect()
	return nil
}

// SetSelectedNode drives the selection programmatically: a node id selects
// it exactly as a click would, the empty string deselects. This keeps the
// externally controlled selection prop symmetric with pointer selection.
func (v *GraphView) SetSelectedNode(id string) error {
	if v.selection == nil {
		return fmt.Errorf("view: no graph loaded")
	}
	if id == "" {
		v.selection.Deselect()
		return nil
	}
	return v.selection.Select(id)
}

// SelectedNodeID returns the current selection, empty when none.
func (v *GraphView) SelectedNodeID() string {
	if v.selection == nil {
		return ""
	}
	id, _ := v.selection.SelectedID()
	return id
}

// SelectedStats returns display stats for the current selection.
func (v *GraphView) SelectedStats() (selection.Stats, bool) {
	if v.selection == nil {
		return selection.Stats{}, false
	}
	return v.selection.SelectedStats()
}

// Search returns up to search.MaxResults nodes matching the query.
func (v *GraphView) Search(query string) []*graph.Node {
	if v.index == nil {
		return nil
	}
	return v.index.Search(query)
}
