// Package tessellate produces the triangle meshes the scene ships to the
// render surface: a shared unit marker sphere from the geometry kernel, and
// one swept tube per edge following a smooth curve between its endpoints.
package tessellate

import (
	"fmt"
	"math"

	"github.com/knotbook/knot/pkg/graph"
	"github.com/knotbook/knot/pkg/kernel"
)

// Tube sweep resolution.
const (
	tubeSegments = 20 // samples along the curve
	tubeSides    = 8  // vertices per ring

	// Fraction of the endpoint distance by which the curve midpoint is
	// lifted, giving edges a gentle arc instead of a straight bar.
	arcLift = 0.15

	// Minimum endpoint distance used in the curve math. Coincident
	// endpoints are treated as this far apart so the sweep never divides
	// by zero.
	distanceFloor = 1.0
)

// MarkerSphere returns the unit-radius sphere mesh shared by all node
// markers and halos. The renderer instances it with per-node position,
// scale, and color, so it is generated once per session.
func MarkerSphere(k kernel.Kernel) (*kernel.Mesh, error) {
	mesh, err := k.ToMesh(k.Sphere(1))
	if err != nil {
		return nil, fmt.Errorf("marker sphere: %w", err)
	}
	if mesh.IsEmpty() {
		return nil, fmt.Errorf("marker sphere: kernel produced empty mesh")
	}
	mesh.Name = "marker"
	return mesh, nil
}

// Tube sweeps a circular cross-section along a quadratic curve from one
// endpoint to the other and returns the resulting mesh. The curve's control
// point is the midpoint lifted along the world Y axis by a fraction of the
// endpoint distance.
func Tube(from, to graph.Vec3, radius float64) *kernel.Mesh {
	dist := to.Sub(from).Length()
	if dist < distanceFloor {
		dist = distanceFloor
	}

	control := from.Lerp(to, 0.5).Add(graph.Vec3{Y: arcLift * dist})

	// Sample the curve and its tangents.
	points := make([]graph.Vec3, tubeSegments+1)
	tangents := make([]graph.Vec3, tubeSegments+1)
	for i := 0; i <= tubeSegments; i++ {
		t := float64(i) / tubeSegments
		points[i] = bezierPoint(from, control, to, t)
		tangent := bezierTangent(from, control, to, t).Normalize()
		if tangent.Length() == 0 {
			// Degenerate curve (coincident endpoints): pick any axis.
			tangent = graph.Vec3{X: 1}
		}
		tangents[i] = tangent
	}

	mesh := &kernel.Mesh{Name: "tube"}

	// Build one ring of vertices per sample. The ring frame is carried
	// along the curve from an initial basis so the tube doesn't twist.
	normal := perpendicular(tangents[0])
	for i := 0; i <= tubeSegments; i++ {
		// Re-orthogonalize against the current tangent.
		binormal := tangents[i].Cross(normal).Normalize()
		normal = binormal.Cross(tangents[i]).Normalize()

		for s := 0; s < tubeSides; s++ {
			angle := 2 * math.Pi * float64(s) / tubeSides
			dir := normal.Scale(math.Cos(angle)).Add(binormal.Scale(math.Sin(angle)))
			v := points[i].Add(dir.Scale(radius))

			mesh.Vertices = append(mesh.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			mesh.Normals = append(mesh.Normals, float32(dir.X), float32(dir.Y), float32(dir.Z))
		}
	}

	// Stitch adjacent rings into quads, two triangles each.
	for i := 0; i < tubeSegments; i++ {
		ring := uint32(i * tubeSides)
		next := uint32((i + 1) * tubeSides)
		for s := 0; s < tubeSides; s++ {
			a := ring + uint32(s)
			b := ring + uint32((s+1)%tubeSides)
			c := next + uint32(s)
			d := next + uint32((s+1)%tubeSides)
			mesh.Indices = append(mesh.Indices, a, c, b, b, c, d)
		}
	}

	return mesh
}

// bezierPoint evaluates the quadratic bezier (p0, p1, p2) at t.
func bezierPoint(p0, p1, p2 graph.Vec3, t float64) graph.Vec3 {
	u := 1 - t
	return p0.Scale(u * u).Add(p1.Scale(2 * u * t)).Add(p2.Scale(t * t))
}

// bezierTangent evaluates the derivative of the quadratic bezier at t.
func bezierTangent(p0, p1, p2 graph.Vec3, t float64) graph.Vec3 {
	return p1.Sub(p0).Scale(2 * (1 - t)).Add(p2.Sub(p1).Scale(2 * t))
}

// perpendicular returns a unit vector perpendicular to v.
func perpendicular(v graph.Vec3) graph.Vec3 {
	ref := graph.Vec3{Y: 1}
	if math.Abs(v.Dot(ref)) > 0.99 {
		ref = graph.Vec3{X: 1}
	}
	return v.Cross(ref).Normalize()
}
