package camera

import (
	"math"
	"testing"

	"panoview/internal/mathutil"
)

func TestPitchStaysClampedUnderAnyDrag(t *testing.T) {
	c := New(16.0 / 9.0)
	drags := [][2]float64{
		{0, -10000}, {0, 5000}, {300, 900}, {-50, -99999}, {0, 123456},
	}
	for _, d := range drags {
		c.Drag(d[0], d[1])
		if c.Pitch < MinPitch || c.Pitch > MaxPitch {
			t.Fatalf("pitch %v escaped [%v, %v] after drag %v", c.Pitch, MinPitch, MaxPitch, d)
		}
	}
}

func TestFOVStaysClampedUnderAnyScroll(t *testing.T) {
	c := New(1)
	for _, delta := range []float64{-500, 500, -3, 7, 1000, -1000} {
		c.AdjustFOV(delta)
		if c.FOV < MinFOV || c.FOV > MaxFOV {
			t.Fatalf("fov %v escaped [%v, %v] after delta %v", c.FOV, MinFOV, MaxFOV, delta)
		}
	}
}

func TestResetFromAnyState(t *testing.T) {
	c := New(1)
	c.Drag(1234, -777)
	c.AdjustFOV(30)
	c.Reset()
	if c.Yaw != 0 || c.Pitch != 0 || c.FOV != DefaultFOV {
		t.Errorf("after Reset: yaw=%v pitch=%v fov=%v, want 0, 0, %v", c.Yaw, c.Pitch, c.FOV, DefaultFOV)
	}
}

func TestZoomRoundTrip(t *testing.T) {
	c := New(1)
	c.ZoomIn()
	c.ZoomOut()
	if c.FOV != DefaultFOV {
		t.Errorf("zoom in + out from default: fov=%v, want %v", c.FOV, DefaultFOV)
	}

	// At a boundary the round trip does not restore the prior value.
	c.FOV = MinFOV + 5
	c.ZoomIn() // clamps to MinFOV
	c.ZoomOut()
	if c.FOV != MinFOV+ZoomStep {
		t.Errorf("clamped round trip: fov=%v, want %v", c.FOV, MinFOV+ZoomStep)
	}
}

func TestDragDirection(t *testing.T) {
	c := New(1)
	c.Drag(10, 4)
	if c.Yaw != -10*DragSensitivity {
		t.Errorf("yaw = %v, want %v", c.Yaw, -10*DragSensitivity)
	}
	if c.Pitch != -4*DragSensitivity {
		t.Errorf("pitch = %v, want %v", c.Pitch, -4*DragSensitivity)
	}
}

func TestLookAt(t *testing.T) {
	c := New(1)
	c.LookAt(mathutil.FromLonLat(30, 20, 50))
	if math.Abs(c.Yaw-30) > 1e-9 || math.Abs(c.Pitch-20) > 1e-9 {
		t.Errorf("LookAt: yaw=%v pitch=%v, want 30, 20", c.Yaw, c.Pitch)
	}
}

func TestViewMatrixBringsForwardToCenter(t *testing.T) {
	c := New(1)
	c.Yaw = 40
	c.Pitch = -25
	v := c.ViewMatrix().MulVec3(c.Forward())
	if math.Abs(v[0]) > 1e-9 || math.Abs(v[1]) > 1e-9 || math.Abs(v[2]-1) > 1e-9 {
		t.Errorf("view·forward = %v, want (0, 0, 1)", v)
	}
}
