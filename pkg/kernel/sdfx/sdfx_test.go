package sdfx

import (
	"math"
	"testing"
)

func TestSphereMesh(t *testing.T) {
	k := New()
	sphere := k.Sphere(5)
	mesh, err := k.ToMesh(sphere)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if mesh.VertexCount() == 0 {
		t.Fatal("expected non-zero vertex count")
	}
	if mesh.TriangleCount() == 0 {
		t.Fatal("expected non-zero triangle count")
	}
	// Verify vertex and index array sizes are consistent.
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != mesh.TriangleCount()*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), mesh.TriangleCount()*3)
	}
}

func TestSphereBoundingBox(t *testing.T) {
	k := New()
	s := k.Sphere(7)
	min, max := s.BoundingBox()
	for i := 0; i < 3; i++ {
		if min[i] > -7 || max[i] < 7 {
			t.Errorf("bounding box axis %d = [%v, %v], does not contain [-7, 7]", i, min[i], max[i])
		}
	}
}

func TestSphereVerticesNearSurface(t *testing.T) {
	k := New()
	const radius = 5.0
	mesh, err := k.ToMesh(k.Sphere(radius))
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}

	// Marching cubes approximates the surface; every vertex should sit
	// within a cell-size tolerance of the sphere.
	const tolerance = 1.0
	for i := 0; i+2 < len(mesh.Vertices); i += 3 {
		x := float64(mesh.Vertices[i])
		y := float64(mesh.Vertices[i+1])
		z := float64(mesh.Vertices[i+2])
		r := math.Sqrt(x*x + y*y + z*z)
		if math.Abs(r-radius) > tolerance {
			t.Fatalf("vertex %d at radius %v, want within %v of %v", i/3, r, tolerance, radius)
		}
	}
}
