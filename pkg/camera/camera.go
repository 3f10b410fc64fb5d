// Package camera implements a damped orbital camera: spherical coordinates
// around a look-at target, pointer-driven rotate/pan/dolly with exponential
// smoothing, clamped radius and polar angle, and an eased refocus animation.
//
// The controller is a plain value owned by its view; pointer handlers mutate
// pending-delta accumulators and the per-frame Update call is the sole
// consumer of them, so no locking is needed in the single-threaded frame
// loop.
package camera

import (
	"math"

	"github.com/knotbook/knot/pkg/graph"
)

// Defaults. Distances are world units, angles radians, durations seconds.
const (
	DefaultMinDistance     = 20.0
	DefaultMaxDistance     = 800.0
	DefaultDamping         = 0.1
	DefaultFovY            = 50.0 // degrees
	DefaultAutoRotateSpeed = 0.1  // radians per second
	DefaultRadius          = 350.0

	// DollyScale is applied once per discrete wheel step.
	DollyScale = 0.95

	// FocusDuration is the refocus animation length.
	FocusDuration = 1.2

	// FocusDistance is how far from a focused node the camera settles.
	FocusDistance = 60.0

	// polarEpsilon keeps the polar angle off the poles to avoid gimbal
	// flip when reconstructing the view basis.
	polarEpsilon = 0.01
)

// Mode is the active interaction mode. One mode is active at a time; a new
// pointer-down while one is active simply replaces it.
type Mode int

const (
	ModeIdle Mode = iota
	ModeRotating
	ModePanning
	ModeDollying
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeRotating:
		return "rotating"
	case ModePanning:
		return "panning"
	case ModeDollying:
		return "dollying"
	default:
		return "unknown"
	}
}

// Pointer buttons, matching the DOM convention the render surface sends.
const (
	ButtonLeft   = 0
	ButtonMiddle = 1
	ButtonRight  = 2
)

// Pose is the JSON-serializable camera state the render surface applies
// each frame.
type Pose struct {
	Position graph.Vec3 `json:"position"`
	Target   graph.Vec3 `json:"target"`
	FovY     float64    `json:"fovY"`
}

// focusAnim is an in-flight refocus animation. A newer focus or reset
// simply replaces it; the replacement starts from the camera's current,
// possibly mid-animation, state.
type focusAnim struct {
	fromPos, toPos       graph.Vec3
	fromTarget, toTarget graph.Vec3
	elapsed, duration    float64
}

// Controller owns the camera state for one view.
type Controller struct {
	target  graph.Vec3
	radius  float64
	polar   float64 // angle from +Y
	azimuth float64 // angle around Y

	// Pending input accumulated since the last Update.
	pendingAzimuth float64
	pendingPolar   float64
	pendingPan     graph.Vec3
	pendingScale   float64 // multiplicative radius change, 1 = none

	damping     float64
	minDistance float64
	maxDistance float64
	maxPolar    float64
	fovY        float64

	viewportW float64
	viewportH float64

	mode         Mode
	lastX, lastY float64

	autoRotate      bool
	autoRotateSpeed float64

	anim *focusAnim
}

// Option configures a Controller.
type Option func(*Controller)

// WithDistanceRange sets the dolly clamp range.
func WithDistanceRange(min, max float64) Option {
	return func(c *Controller) {
		if min > 0 && max > min {
			c.minDistance, c.maxDistance = min, max
		}
	}
}

// WithDamping sets the exponential smoothing factor in (0, 1].
func WithDamping(d float64) Option {
	return func(c *Controller) {
		if d > 0 && d <= 1 {
			c.damping = d
		}
	}
}

// WithFovY sets the vertical field of view in degrees.
func WithFovY(deg float64) Option {
	return func(c *Controller) {
		if deg > 0 && deg < 180 {
			c.fovY = deg
		}
	}
}

// WithAutoRotateSpeed sets the idle auto-rotation rate in radians/second.
func WithAutoRotateSpeed(radPerSec float64) Option {
	return func(c *Controller) {
		c.autoRotateSpeed = radPerSec
	}
}

// New returns a Controller looking at the origin from the default radius,
// for a viewport of the given pixel size.
func New(viewportW, viewportH float64, opts ...Option) *Controller {
	c := &Controller{
		radius:          DefaultRadius,
		polar:           math.Pi / 3,
		pendingScale:    1,
		damping:         DefaultDamping,
		minDistance:     DefaultMinDistance,
		maxDistance:     DefaultMaxDistance,
		maxPolar:        math.Pi - polarEpsilon,
		fovY:            DefaultFovY,
		viewportW:       viewportW,
		viewportH:       viewportH,
		autoRotate:      true,
		autoRotateSpeed: DefaultAutoRotateSpeed,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode returns the active interaction mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Target returns the current look-at point.
func (c *Controller) Target() graph.Vec3 {
	return c.target
}

// Radius returns the current orbit distance.
func (c *Controller) Radius() float64 {
	return c.radius
}

// Position reconstructs the camera's world position from its spherical
// offset around the target.
func (c *Controller) Position() graph.Vec3 {
	sinPolar := math.Sin(c.polar)
	return c.target.Add(graph.Vec3{
		X: c.radius * sinPolar * math.Sin(c.azimuth),
		Y: c.radius * math.Cos(c.polar),
		Z: c.radius * sinPolar * math.Cos(c.azimuth),
	})
}

// Pose returns the render-ready camera state.
func (c *Controller) Pose() Pose {
	return Pose{Position: c.Position(), Target: c.target, FovY: c.fovY}
}

// SetAutoRotate enables or disables the idle auto-rotation. The selection
// controller suspends it while a node is selected.
func (c *Controller) SetAutoRotate(on bool) {
	c.autoRotate = on
}

// Resize updates the viewport size used for pixel-to-angle and pan
// conversions. Called synchronously from the surface's resize event.
func (c *Controller) Resize(w, h float64) {
	if w > 0 {
		c.viewportW = w
	}
	if h > 0 {
		c.viewportH = h
	}
}

// Animating reports whether a refocus animation is in flight.
func (c *Controller) Animating() bool {
	return c.anim != nil
}
