package projector

import (
	"math"

	"panoview/internal/camera"
	"panoview/internal/mathutil"
)

// Spherical maps a position's longitude and latitude straight to a
// fraction of the canvas, ignoring the camera entirely. The result is a
// static overlay that does not track rotation, which is why the live
// viewer never uses it; the scenecheck tool uses it to summarize how a
// scene covers the panorama.
type Spherical struct{}

// Percent returns the flat placement as percentages of the canvas.
// Longitude -180 maps to 0%; +180 wraps around to the same point.
func (Spherical) Percent(lonDeg, latDeg float64) (px, py float64) {
	px = math.Mod(lonDeg+180, 360) / 360 * 100
	if px < 0 {
		px += 100
	}
	py = (90 - latDeg) / 180 * 100
	return px, py
}

// Project implements Strategy. Anchors are always visible but may land
// anywhere on the canvas regardless of where the camera points.
func (s Spherical) Project(_ *camera.Camera, pos mathutil.Vec3, width, height int) Anchor {
	lon, lat := pos.LonLat()
	px, py := s.Percent(lon, lat)
	return Anchor{
		X:       px / 100 * float64(width),
		Y:       py / 100 * float64(height),
		Visible: true,
	}
}
