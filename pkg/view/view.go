// Package view wires the visualization core together: one GraphView owns a
// graph snapshot, its layout, its scene, a camera controller, and the
// selection state, and routes frame ticks and pointer input between them.
//
// The model is single-threaded and render-loop driven: the host calls
// exactly one of the event methods or Frame at a time (Wails bindings
// execute sequentially per event).
package view

import (
	"fmt"
	"log/slog"

	"github.com/knotbook/knot/pkg/camera"
	"github.com/knotbook/knot/pkg/graph"
	"github.com/knotbook/knot/pkg/kernel"
	"github.com/knotbook/knot/pkg/layout"
	"github.com/knotbook/knot/pkg/scene"
	"github.com/knotbook/knot/pkg/search"
	"github.com/knotbook/knot/pkg/selection"
	"github.com/knotbook/knot/pkg/style"
)

// Config configures a GraphView.
type Config struct {
	ViewportW float64
	ViewportH float64

	// Resolver defaults to the built-in style table when nil.
	Resolver *style.Resolver

	// LayoutOptions are passed through to the layout engine (iteration
	// count, seeded randomness).
	LayoutOptions []layout.Option

	// CameraOptions are passed through to the camera controller.
	CameraOptions []camera.Option

	// Logger defaults to slog.Default when nil.
	Logger *slog.Logger
}

// FrameState is the per-tick result the render surface applies.
type FrameState struct {
	Pose       camera.Pose `json:"pose"`
	Animating  bool        `json:"animating"`
	SnapshotID string      `json:"snapshotId"`
}

// GraphView is one interactive graph visualization.
type GraphView struct {
	builder  *scene.Builder
	engine   *layout.Engine
	resolver *style.Resolver
	camera   *camera.Controller
	log      *slog.Logger

	viewportW float64
	viewportH float64

	graph     *graph.Graph
	scene     *scene.Scene
	selection *selection.Controller
	index     *search.Index

	onSelect   func(*graph.Node)
	onDeselect func()
}

// New creates a GraphView rendering into a surface of the given size.
func New(k kernel.Kernel, cfg Config) *GraphView {
	resolver := cfg.Resolver
	if resolver == nil {
		resolver = style.NewResolver()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ViewportW <= 0 {
		cfg.ViewportW = 800
	}
	if cfg.ViewportH <= 0 {
		cfg.ViewportH = 600
	}

	return &GraphView{
		builder:   scene.NewBuilder(k),
		engine:    layout.New(cfg.LayoutOptions...),
		resolver:  resolver,
		camera:    camera.New(cfg.ViewportW, cfg.ViewportH, cfg.CameraOptions...),
		log:       logger,
		viewportW: cfg.ViewportW,
		viewportH: cfg.ViewportH,
	}
}

// OnNodeSelect registers the host callback fired when a node becomes
// selected. Survives graph reloads.
func (v *GraphView) OnNodeSelect(fn func(*graph.Node)) {
	v.onSelect = fn
	if v.selection != nil {
		v.selection.OnSelect(fn)
	}
}

// OnNodeDeselect registers the host callback fired when the selection
// clears. Survives graph reloads.
func (v *GraphView) OnNodeDeselect(fn func()) {
	v.onDeselect = fn
	if v.selection != nil {
		v.selection.OnDeselect(fn)
	}
}

// LoadGraph replaces the current snapshot wholesale: validate, lay out,
// rebuild the scene arena, reset selection, and rebuild the search index.
// The layout runs synchronously and blocks the frame loop for its duration,
// which is acceptable up to a few hundred nodes.
func (v *GraphView) LoadGraph(data graph.GraphData) (scene.Snapshot, error) {
	g := graph.LoadData(data)
	stats := g.Stats()
	v.log.Info("graph loaded",
		"nodes", stats.NodeCount,
		"edges", stats.EdgeCount,
		"duplicateNodes", stats.DuplicateNodes,
		"droppedEdges", stats.DroppedEdges,
	)

	positions := v.engine.Compute(g)

	sc, err := v.builder.Build(g, positions, v.resolver)
	if err != nil {
		return scene.Snapshot{}, fmt.Errorf("view: build scene: %w", err)
	}

	v.graph = g
	v.scene = sc
	v.index = search.NewIndex(g)
	v.selection = selection.New(g, sc, v.camera)
	if v.onSelect != nil {
		v.selection.OnSelect(v.onSelect)
	}
	if v.onDeselect != nil {
		v.selection.OnDeselect(v.onDeselect)
	}
	v.camera.SetAutoRotate(true)

	return sc.Snapshot(), nil
}

// Loaded reports whether a graph snapshot is active.
func (v *GraphView) Loaded() bool {
	return v.scene != nil
}

// Frame advances the camera by dt seconds and returns the state the
// renderer applies. It is the sole consumer of accumulated input deltas.
func (v *GraphView) Frame(dt float64) FrameState {
	v.camera.Update(dt)
	state := FrameState{
		Pose:      v.camera.Pose(),
		Animating: v.camera.Animating(),
	}
	if v.scene != nil {
		state.SnapshotID = v.scene.SnapshotID()
	}
	return state
}

// Highlights returns the scene's current highlight states for the render
// surface, or an empty update when nothing is loaded.
func (v *GraphView) Highlights() scene.HighlightUpdate {
	if v.scene == nil {
		return scene.HighlightUpdate{}
	}
	return v.scene.Highlights()
}

// Graph returns the active graph, or nil before the first load.
func (v *GraphView) Graph() *graph.Graph {
	return v.graph
}

// Camera exposes the camera controller, mainly for the host's tests.
func (v *GraphView) Camera() *camera.Controller {
	return v.camera
}

// Scene returns the active scene, or nil before the first load.
func (v *GraphView) Scene() *scene.Scene {
	return v.scene
}
