package camera

import (
	"panoview/internal/mathutil"
)

// Clamp bounds and interaction constants. Angles in degrees.
const (
	MinFOV     = 10.0
	MaxFOV     = 120.0
	DefaultFOV = 75.0
	ZoomStep   = 10.0

	MinPitch = -90.0
	MaxPitch = 90.0

	// DragSensitivity is degrees of rotation per pixel of pointer travel.
	DragSensitivity = 0.25
	// WheelStep is degrees of FOV change per wheel notch.
	WheelStep = 5.0

	nearPlane = 0.1
	farPlane  = 1000.0
)

// Camera holds the viewer orientation and zoom. Positioned at the
// origin inside the panorama sphere; only orientation changes.
//
// All fields are mutated from the frame goroutine only, so no locking.
type Camera struct {
	Yaw    float64 // degrees, 0 faces +Z, positive turns toward +X
	Pitch  float64 // degrees, clamped to [-90, 90]
	FOV    float64 // vertical field of view, degrees
	Aspect float64 // width / height
}

// New returns a camera at the default orientation.
func New(aspect float64) *Camera {
	return &Camera{FOV: DefaultFOV, Aspect: aspect}
}

// Drag applies a pointer-drag delta in pixels. Dragging right and down
// rotates the view left and up, so the scene follows the pointer.
func (c *Camera) Drag(dx, dy float64) {
	c.Yaw -= dx * DragSensitivity
	c.Pitch = mathutil.Clamp(c.Pitch-dy*DragSensitivity, MinPitch, MaxPitch)
}

// AdjustFOV changes the field of view by delta degrees, clamped.
func (c *Camera) AdjustFOV(delta float64) {
	c.FOV = mathutil.Clamp(c.FOV+delta, MinFOV, MaxFOV)
}

// ZoomIn narrows the field of view by one step.
func (c *Camera) ZoomIn() { c.AdjustFOV(-ZoomStep) }

// ZoomOut widens the field of view by one step.
func (c *Camera) ZoomOut() { c.AdjustFOV(ZoomStep) }

// Reset restores the default orientation and zoom.
func (c *Camera) Reset() {
	c.Yaw = 0
	c.Pitch = 0
	c.FOV = DefaultFOV
}

// LookAt orients the camera toward a world-space point.
func (c *Camera) LookAt(p mathutil.Vec3) {
	lon, lat := p.LonLat()
	c.Yaw = lon
	c.Pitch = mathutil.Clamp(lat, MinPitch, MaxPitch)
}

// ViewMatrix returns the world-to-camera rotation. Camera space has +Z
// forward, +Y up.
func (c *Camera) ViewMatrix() mathutil.Mat3 {
	return mathutil.Mat3Mul(
		mathutil.RotX(mathutil.Deg2Rad(c.Pitch)),
		mathutil.RotY(mathutil.Deg2Rad(-c.Yaw)),
	)
}

// Projection returns the perspective projection for the current FOV and
// aspect ratio. Derived fresh each call, so any FOV change is picked up
// on the next frame.
func (c *Camera) Projection() mathutil.Mat4 {
	return mathutil.Perspective(c.FOV, c.Aspect, nearPlane, farPlane)
}

// Forward returns the world-space view direction (unit length).
func (c *Camera) Forward() mathutil.Vec3 {
	return mathutil.FromLonLat(c.Yaw, c.Pitch, 1)
}
