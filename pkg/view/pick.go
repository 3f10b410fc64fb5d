package view

import (
	"math"

	"github.com/knotbook/knot/pkg/graph"
)

// PickNode casts a ray from the camera through viewport pixel (x, y) and
// returns the id of the nearest intersected node marker, if any. Marker hit
// volumes are spheres of the node's styled size.
func (v *GraphView) PickNode(x, y float64) (string, bool) {
	if v.scene == nil || v.viewportW <= 0 || v.viewportH <= 0 {
		return "", false
	}

	origin, dir := v.pickRay(x, y)

	bestID := ""
	bestT := math.Inf(1)
	for _, vn := range v.scene.Nodes() {
		if t, hit := raySphere(origin, dir, vn.Position, vn.Style.Size); hit && t < bestT {
			bestT = t
			bestID = vn.ID
		}
	}
	return bestID, bestID != ""
}

// pickRay builds the world-space ray through a viewport pixel from the
// camera's pose and field of view.
func (v *GraphView) pickRay(x, y float64) (origin, dir graph.Vec3) {
	pose := v.camera.Pose()
	origin = pose.Position

	// Pixel to normalized device coordinates, y up.
	ndcX := 2*x/v.viewportW - 1
	ndcY := 1 - 2*y/v.viewportH

	forward := pose.Target.Sub(origin).Normalize()
	right := forward.Cross(graph.Vec3{Y: 1}).Normalize()
	if right.Length() == 0 {
		// Looking straight along the vertical axis: any horizontal
		// basis works.
		right = graph.Vec3{X: 1}
	}
	up := right.Cross(forward)

	tanHalfFov := math.Tan(pose.FovY * math.Pi / 360)
	aspect := v.viewportW / v.viewportH

	dir = forward.
		Add(right.Scale(ndcX * tanHalfFov * aspect)).
		Add(up.Scale(ndcY * tanHalfFov)).
		Normalize()
	return origin, dir
}

// raySphere intersects a ray with a sphere and returns the distance to the
// nearest hit in front of the origin.
func raySphere(origin, dir, center graph.Vec3, radius float64) (float64, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	sqrtDisc := math.Sqrt(disc)
	t := -b - sqrtDisc
	if t < 0 {
		t = -b + sqrtDisc // origin inside the sphere
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
