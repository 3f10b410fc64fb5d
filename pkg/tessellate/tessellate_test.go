package tessellate_test

import (
	"math"
	"testing"

	"github.com/knotbook/knot/pkg/graph"
	"github.com/knotbook/knot/pkg/kernel/sdfx"
	"github.com/knotbook/knot/pkg/tessellate"
)

func TestMarkerSphere(t *testing.T) {
	mesh, err := tessellate.MarkerSphere(sdfx.New())
	if err != nil {
		t.Fatalf("MarkerSphere: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("marker sphere mesh is empty")
	}
	if mesh.Name != "marker" {
		t.Errorf("mesh name = %q, want marker", mesh.Name)
	}
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Errorf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
}

func TestTubeGeometry(t *testing.T) {
	from := graph.Vec3{X: -40}
	to := graph.Vec3{X: 40}
	mesh := tessellate.Tube(from, to, 0.8)

	if mesh.IsEmpty() {
		t.Fatal("tube mesh is empty")
	}
	if mesh.Name != "tube" {
		t.Errorf("mesh name = %q, want tube", mesh.Name)
	}
	if len(mesh.Indices)%3 != 0 {
		t.Fatalf("indices length %d not a multiple of 3", len(mesh.Indices))
	}

	// Every index must reference an existing vertex.
	vertCount := uint32(mesh.VertexCount())
	for _, idx := range mesh.Indices {
		if idx >= vertCount {
			t.Fatalf("index %d out of range (%d vertices)", idx, vertCount)
		}
	}

	// All vertices finite and within a loose bound of the endpoints.
	for i := 0; i+2 < len(mesh.Vertices); i += 3 {
		for j := 0; j < 3; j++ {
			v := float64(mesh.Vertices[i+j])
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite vertex component at %d", i+j)
			}
		}
		if math.Abs(float64(mesh.Vertices[i])) > 50 {
			t.Fatalf("vertex x = %v outside expected span", mesh.Vertices[i])
		}
	}
}

func TestTubeCoincidentEndpointsFinite(t *testing.T) {
	p := graph.Vec3{X: 1, Y: 2, Z: 3}
	mesh := tessellate.Tube(p, p, 0.8)

	if mesh.IsEmpty() {
		t.Fatal("degenerate tube mesh is empty")
	}
	for i, v := range mesh.Vertices {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("non-finite vertex component at %d", i)
		}
	}
}

func TestTubeArcLiftsMidpoint(t *testing.T) {
	from := graph.Vec3{X: -50}
	to := graph.Vec3{X: 50}
	mesh := tessellate.Tube(from, to, 0.5)

	// The curve's apex sits above the chord, so some vertex must clear
	// the straight-line Y span by more than the tube radius.
	maxY := float32(0)
	for i := 1; i < len(mesh.Vertices); i += 3 {
		if mesh.Vertices[i] > maxY {
			maxY = mesh.Vertices[i]
		}
	}
	if maxY < 1 {
		t.Errorf("max Y = %v, expected arc above the chord", maxY)
	}
}
