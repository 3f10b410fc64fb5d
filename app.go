package main

import (
	"context"
	"log/slog"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/knotbook/knot/pkg/graph"
	"github.com/knotbook/knot/pkg/kernel/sdfx"
	"github.com/knotbook/knot/pkg/notebook"
	"github.com/knotbook/knot/pkg/scene"
	"github.com/knotbook/knot/pkg/selection"
	"github.com/knotbook/knot/pkg/style"
	"github.com/knotbook/knot/pkg/view"
)

// Event names emitted to the frontend when the selection changes.
const (
	eventNodeSelected   = "graph:nodeSelected"
	eventNodeDeselected = "graph:nodeDeselected"
)

// App is the Wails backend. It exposes the visualization core to the
// frontend via bindings; the frontend owns the WebGL canvas and applies the
// poses, meshes, and highlight states computed here.
type App struct {
	ctx    context.Context
	view   *view.GraphView
	client *notebook.Client
	log    *slog.Logger
}

// LoadResult is returned by the graph-loading bindings. Error is a
// human-readable message; an empty string means success.
type LoadResult struct {
	Snapshot scene.Snapshot  `json:"snapshot"`
	Stats    graph.LoadStats `json:"stats"`
	Error    string          `json:"error,omitempty"`
}

// ClickResult reports what a click resolved to and the resulting highlight
// states.
type ClickResult struct {
	SelectedNodeID string                `json:"selectedNodeId"`
	Highlights     scene.HighlightUpdate `json:"highlights"`
}

// SearchResult is one search overlay row.
type SearchResult struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// selectedPayload accompanies the node-selected event.
type selectedPayload struct {
	Node  graph.Node      `json:"node"`
	Stats selection.Stats `json:"stats"`
}

// NewApp creates the App with a fresh graph view and a backend client.
func NewApp(backendURL string, resolver *style.Resolver, logger *slog.Logger) *App {
	a := &App{
		view: view.New(sdfx.New(), view.Config{
			ViewportW: 800,
			ViewportH: 600,
			Resolver:  resolver,
			Logger:    logger,
		}),
		client: notebook.NewClient(backendURL),
		log:    logger,
	}

	a.view.OnNodeSelect(func(n *graph.Node) {
		stats, _ := a.view.SelectedStats()
		a.emit(eventNodeSelected, selectedPayload{Node: *n, Stats: stats})
	})
	a.view.OnNodeDeselect(func() {
		a.emit(eventNodeDeselected, nil)
	})

	return a
}

// startup is called by Wails on app startup. The context is saved so
// selection events can reach the frontend.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// emit forwards an event to the frontend when the runtime is up.
func (a *App) emit(name string, payload any) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, name, payload)
}

// LoadGraph loads an already-fetched graph snapshot into the view and
// returns the renderable scene.
func (a *App) LoadGraph(data graph.GraphData) LoadResult {
	snap, err := a.view.LoadGraph(data)
	if err != nil {
		a.log.Error("load graph failed", "err", err)
		return LoadResult{Error: err.Error()}
	}
	return LoadResult{Snapshot: snap, Stats: a.view.Graph().Stats()}
}

// LoadNotebook fetches a notebook's graph from the backend and loads it.
func (a *App) LoadNotebook(notebookID string) LoadResult {
	data, err := a.client.FetchGraph(a.runtimeCtx(), notebookID)
	if err != nil {
		a.log.Error("fetch notebook graph failed", "notebook", notebookID, "err", err)
		return LoadResult{Error: err.Error()}
	}
	return a.LoadGraph(*data)
}

func (a *App) runtimeCtx() context.Context {
	if a.ctx != nil {
		return a.ctx
	}
	return context.Background()
}

// Frame advances the camera by dtMillis and returns the state to apply.
// Called once per animation frame by the frontend.
func (a *App) Frame(dtMillis float64) view.FrameState {
	return a.view.Frame(dtMillis / 1000)
}

// PointerDown forwards a pointer press on the canvas.
func (a *App) PointerDown(x, y float64, button int) {
	a.view.PointerDown(x, y, button)
}

// PointerMove forwards pointer motion on the canvas.
func (a *App) PointerMove(x, y float64) {
	a.view.PointerMove(x, y)
}

// PointerUp ends the current drag.
func (a *App) PointerUp() {
	a.view.PointerUp()
}

// Wheel forwards a wheel event on the canvas.
func (a *App) Wheel(deltaY float64) {
	a.view.Wheel(deltaY)
}

// Resize updates the viewport size after the canvas changes dimensions.
func (a *App) Resize(w, h float64) {
	a.view.Resize(w, h)
}

// Click resolves a click: a hit marker becomes the selection, empty space
// clears it. Selection events fire through the usual callbacks; the result
// carries the new highlight states for immediate application.
func (a *App) Click(x, y float64) ClickResult {
	if err := a.view.Click(x, y); err != nil {
		a.log.Error("click failed", "err", err)
	}
	return ClickResult{
		SelectedNodeID: a.view.SelectedNodeID(),
		Highlights:     a.view.Highlights(),
	}
}

// SelectNode drives the selection programmatically, with the same
// transition a click produces.
func (a *App) SelectNode(nodeID string) ClickResult {
	if err := a.view.SetSelectedNode(nodeID); err != nil {
		a.log.Error("select node failed", "node", nodeID, "err", err)
	}
	return ClickResult{
		SelectedNodeID: a.view.SelectedNodeID(),
		Highlights:     a.view.Highlights(),
	}
}

// ClearSelection deselects, if anything is selected.
func (a *App) ClearSelection() ClickResult {
	return a.SelectNode("")
}

// Search returns up to ten nodes matching the query for the search
// overlay.
func (a *App) Search(query string) []SearchResult {
	var out []SearchResult
	for _, n := range a.view.Search(query) {
		out = append(out, SearchResult{
			ID:    n.ID,
			Label: n.DisplayLabel(),
			Type:  n.Type,
		})
	}
	return out
}
