package camera

import (
	"math"

	"github.com/knotbook/knot/pkg/graph"
)

// worldUp is the fixed vertical axis the orbit and auto-rotation revolve
// around.
var worldUp = graph.Vec3{Y: 1}

// Update advances the camera by dt seconds. It is called once per animation
// frame and is the only place pending input is consumed: rotation and pan
// deltas are applied scaled by the damping factor and decay by the
// remainder, the pending dolly scale is applied in full, angles and radius
// are clamped, and any refocus animation is advanced.
func (c *Controller) Update(dt float64) {
	if c.anim != nil {
		c.stepFocus(dt)
		return
	}

	if c.autoRotate && c.mode == ModeIdle {
		c.azimuth -= c.autoRotateSpeed * dt
	}

	// Exponential smoothing: take a damping-sized bite of the pending
	// deltas each frame and let the rest decay.
	c.azimuth += c.pendingAzimuth * c.damping
	c.polar += c.pendingPolar * c.damping
	c.target = c.target.Add(c.pendingPan.Scale(c.damping))

	c.pendingAzimuth *= 1 - c.damping
	c.pendingPolar *= 1 - c.damping
	c.pendingPan = c.pendingPan.Scale(1 - c.damping)

	c.radius *= c.pendingScale
	c.pendingScale = 1

	c.clamp()
}

// clamp keeps the spherical state inside its legal range, making extreme
// input inert rather than an error.
func (c *Controller) clamp() {
	if c.polar < polarEpsilon {
		c.polar = polarEpsilon
	}
	if c.polar > c.maxPolar {
		c.polar = c.maxPolar
	}
	if c.radius < c.minDistance {
		c.radius = c.minDistance
	}
	if c.radius > c.maxDistance {
		c.radius = c.maxDistance
	}
}

// FocusOn starts an animated refocus toward the given point. The camera
// settles at FocusDistance from it along its current view direction, and
// the look-at target lands exactly on the point. A focus started while
// another is in flight begins from the camera's current mid-animation
// state; the newest intent wins.
func (c *Controller) FocusOn(point graph.Vec3) {
	fromPos := c.Position()

	dir := fromPos.Sub(point).Normalize()
	if dir.Length() == 0 {
		dir = graph.Vec3{Z: 1}
	}

	c.anim = &focusAnim{
		fromPos:    fromPos,
		toPos:      point.Add(dir.Scale(FocusDistance)),
		fromTarget: c.target,
		toTarget:   point,
		duration:   FocusDuration,
	}

	// Drop any glide left over from a drag so the animation owns the
	// camera until it completes.
	c.pendingAzimuth = 0
	c.pendingPolar = 0
	c.pendingPan = graph.Vec3{}
	c.pendingScale = 1
}

// stepFocus advances the refocus animation. Completion snaps the target to
// the exact destination so no interpolation drift remains.
func (c *Controller) stepFocus(dt float64) {
	c.anim.elapsed += dt
	t := c.anim.elapsed / c.anim.duration
	if t >= 1 {
		c.setFromLookAt(c.anim.toPos, c.anim.toTarget)
		c.anim = nil
		return
	}

	eased := easeOutCubic(t)
	pos := c.anim.fromPos.Lerp(c.anim.toPos, eased)
	target := c.anim.fromTarget.Lerp(c.anim.toTarget, eased)
	c.setFromLookAt(pos, target)
}

// setFromLookAt rewrites the spherical state from an explicit position and
// target, then clamps.
func (c *Controller) setFromLookAt(pos, target graph.Vec3) {
	c.target = target
	offset := pos.Sub(target)

	c.radius = offset.Length()
	if c.radius == 0 {
		c.radius = c.minDistance
	}
	c.polar = math.Acos(clampUnit(offset.Y / c.radius))
	c.azimuth = math.Atan2(offset.X, offset.Z)
	c.clamp()
}

// easeOutCubic is the refocus easing curve: fast start, gentle landing.
func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// clampUnit clamps to [-1, 1] so float error never escapes acos's domain.
func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
