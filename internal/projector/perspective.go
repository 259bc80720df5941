package projector

import (
	"panoview/internal/camera"
	"panoview/internal/mathutil"
)

// Perspective projects through the camera's view and projection
// matrices. Anchors follow the camera as it rotates, so this must be
// recomputed every frame.
type Perspective struct{}

// Project transforms pos into normalized device coordinates and then
// pixel space. The anchor is visible only when the point sits in front
// of the camera (positive w) with NDC depth below the far plane.
func (Perspective) Project(cam *camera.Camera, pos mathutil.Vec3, width, height int) Anchor {
	view := cam.ViewMatrix().MulVec3(pos)
	clip, w := cam.Projection().MulPointW(view)
	if w <= 0 {
		return Anchor{Visible: false}
	}

	ndc := clip.Scale(1 / w)
	return Anchor{
		X:       (ndc[0] + 1) * float64(width) / 2,
		Y:       (-ndc[1] + 1) * float64(height) / 2,
		Visible: ndc[2] < 1,
	}
}
