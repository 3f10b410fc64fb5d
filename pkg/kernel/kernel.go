// Package kernel defines the abstract geometry kernel used to generate
// marker meshes for the scene. The abstraction keeps the SDF backend
// swappable without changing scene building.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel produces the solid primitives the scene needs and converts them to
// renderable meshes. Node markers and halos are spheres; everything else the
// scene draws (edge tubes) is swept analytically in the tessellate package.
type Kernel interface {
	// Sphere creates a sphere of the given radius centered at the origin.
	Sphere(radius float64) Solid

	// ToMesh converts a solid to a triangle mesh.
	ToMesh(s Solid) (*Mesh, error)
}
