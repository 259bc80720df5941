// Package projector maps fixed hotspot positions to 2D screen anchors.
//
// Two strategies exist: Perspective tracks the rotating camera and is
// what the live viewer uses; Spherical is a camera-independent flat
// mapping used for static coverage summaries.
package projector

import (
	"panoview/internal/camera"
	"panoview/internal/mathutil"
	"panoview/internal/scene"
)

// Anchor is the per-frame screen position of one hotspot.
type Anchor struct {
	X, Y    float64
	Visible bool
}

// Strategy converts a world-space position to a screen anchor for the
// given camera and canvas size.
type Strategy interface {
	Project(cam *camera.Camera, pos mathutil.Vec3, width, height int) Anchor
}

// ProjectAll projects every hotspot, reusing dst when it has capacity.
// Called every frame, so it avoids reallocating.
func ProjectAll(s Strategy, cam *camera.Camera, hotspots []scene.Hotspot, width, height int, dst []Anchor) []Anchor {
	dst = dst[:0]
	for i := range hotspots {
		dst = append(dst, s.Project(cam, hotspots[i].Position, width, height))
	}
	return dst
}
