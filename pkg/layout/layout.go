// Package layout computes 3D positions for graph nodes with a two-force
// particle simulation: inverse-square repulsion between every pair of nodes
// and spring attraction along edges toward an ideal separation.
package layout

import (
	"math"
	"math/rand"
	"time"

	"github.com/knotbook/knot/pkg/graph"
)

// Simulation defaults. Tuned for graphs up to a few hundred nodes; the
// pairwise repulsion pass is O(n²) per iteration, a documented scaling limit.
const (
	DefaultIterations = 200

	// Initial placement shell radius range.
	shellRadiusMin = 150.0
	shellRadiusMax = 250.0

	repulsionStrength = 2000.0
	repulsionDamping  = 0.1

	springLength   = 80.0
	springStrength = 0.02

	// Floor applied to pairwise distances so coincident nodes never divide
	// by zero.
	distanceFloor = 1.0
)

// Engine runs the force simulation. Construct with New; the zero value is
// not usable.
type Engine struct {
	iterations int
	rng        *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithIterations overrides the number of simulation iterations.
func WithIterations(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.iterations = n
		}
	}
}

// WithRandSource injects the pseudo-random source used for initial node
// placement. Tests and the CLI pass a seeded source for reproducible
// layouts; the default source is time-seeded and layouts differ between
// runs.
func WithRandSource(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// New returns an Engine with the default simulation constants.
func New(opts ...Option) *Engine {
	e := &Engine{
		iterations: DefaultIterations,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compute runs the full simulation and returns one finite position per node
// in g. It runs synchronously; callers load a graph once and keep the
// resulting positions for the lifetime of the snapshot.
func (e *Engine) Compute(g *graph.Graph) map[string]graph.Vec3 {
	nodes := g.Nodes()
	positions := make(map[string]graph.Vec3, len(nodes))

	// Start every node on a random spherical shell. Sampling the polar
	// angle through acos(1-2u) keeps the direction uniform on the sphere,
	// avoiding axis bias and degenerate overlaps at the poles.
	for _, n := range nodes {
		radius := shellRadiusMin + e.rng.Float64()*(shellRadiusMax-shellRadiusMin)
		theta := e.rng.Float64() * 2 * math.Pi
		phi := math.Acos(1 - 2*e.rng.Float64())
		positions[n.ID] = graph.Vec3{
			X: radius * math.Sin(phi) * math.Cos(theta),
			Y: radius * math.Sin(phi) * math.Sin(theta),
			Z: radius * math.Cos(phi),
		}
	}

	edges := g.Edges()
	for iter := 0; iter < e.iterations; iter++ {
		e.applyRepulsion(nodes, positions)
		e.applyAttraction(edges, positions)
	}

	return positions
}

// applyRepulsion pushes every unordered pair of nodes apart with an
// inverse-square force, half applied to each endpoint.
func (e *Engine) applyRepulsion(nodes []*graph.Node, positions map[string]graph.Vec3) {
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := nodes[i].ID, nodes[j].ID
			delta := positions[a].Sub(positions[b])
			dist := delta.Length()
			if dist < distanceFloor {
				dist = distanceFloor
			}

			force := repulsionStrength / (dist * dist)
			push := delta.Scale(force / dist * 0.5 * repulsionDamping)

			positions[a] = positions[a].Add(push)
			positions[b] = positions[b].Sub(push)
		}
	}
}

// applyAttraction pulls edge endpoints toward the ideal spring length,
// proportional to the deviation from it.
func (e *Engine) applyAttraction(edges []*graph.Edge, positions map[string]graph.Vec3) {
	for _, edge := range edges {
		delta := positions[edge.Target].Sub(positions[edge.Source])
		dist := delta.Length()
		if dist < distanceFloor {
			dist = distanceFloor
		}

		stretch := dist - springLength
		pull := delta.Scale(stretch / dist * springStrength)

		positions[edge.Source] = positions[edge.Source].Add(pull)
		positions[edge.Target] = positions[edge.Target].Sub(pull)
	}
}
