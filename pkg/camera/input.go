package camera

import "math"

// PointerDown begins a drag. Left drags rotate, right drags pan, middle
// drags dolly.
func (c *Controller) PointerDown(x, y float64, button int) {
	switch button {
	case ButtonLeft:
		c.mode = ModeRotating
	case ButtonRight:
		c.mode = ModePanning
	case ButtonMiddle:
		c.mode = ModeDollying
	default:
		return
	}
	c.lastX, c.lastY = x, y
}

// PointerMove accumulates drag deltas into the pending state for the
// current mode. Outside a drag it is a no-op.
func (c *Controller) PointerMove(x, y float64) {
	dx := x - c.lastX
	dy := y - c.lastY
	c.lastX, c.lastY = x, y

	switch c.mode {
	case ModeRotating:
		c.rotateBy(dx, dy)
	case ModePanning:
		c.panBy(dx, dy)
	case ModeDollying:
		// Dragging down dollies out, up dollies in, one step per pixel
		// bucket so it matches wheel behavior.
		if dy < 0 {
			c.pendingScale *= DollyScale
		} else if dy > 0 {
			c.pendingScale /= DollyScale
		}
	}
}

// PointerUp ends the current drag. Accumulated deltas keep decaying through
// subsequent Update calls, which is what gives releases their glide.
func (c *Controller) PointerUp() {
	c.mode = ModeIdle
}

// Wheel dollies one discrete step per event: in for negative deltas, out
// for positive.
func (c *Controller) Wheel(deltaY float64) {
	if deltaY < 0 {
		c.pendingScale *= DollyScale
	} else if deltaY > 0 {
		c.pendingScale /= DollyScale
	}
}

// rotateBy converts pixel deltas to pending angular deltas. A full viewport
// height of drag sweeps 2π.
func (c *Controller) rotateBy(dx, dy float64) {
	if c.viewportH <= 0 {
		return
	}
	c.pendingAzimuth -= 2 * math.Pi * dx / c.viewportH
	c.pendingPolar -= 2 * math.Pi * dy / c.viewportH
}

// panBy converts pixel deltas to a pending world-space target offset using
// the camera's right/up basis, scaled so a drag tracks the point under the
// cursor at the target's depth.
func (c *Controller) panBy(dx, dy float64) {
	if c.viewportH <= 0 {
		return
	}

	// Height of the view frustum at the target distance.
	worldPerPixel := 2 * c.radius * math.Tan(c.fovY*math.Pi/360) / c.viewportH

	forward := c.target.Sub(c.Position()).Normalize()
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward)

	offset := right.Scale(-dx * worldPerPixel).Add(up.Scale(dy * worldPerPixel))
	c.pendingPan = c.pendingPan.Add(offset)
}
