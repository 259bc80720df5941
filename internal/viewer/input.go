package viewer

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"panoview/internal/camera"
	"panoview/internal/overlay"
)

// dragDeadZone is the pointer travel in pixels below which a
// press-release counts as a click instead of a drag.
const dragDeadZone = 4.0

// inputState is the Idle/Dragging pointer state machine. down marks a
// held button; dragging becomes true once travel exceeds the dead zone.
type inputState struct {
	down     bool
	dragging bool
	startX   int
	startY   int
	lastX    int
	lastY    int
}

// processInput handles one frame of pointer, wheel and key input.
func (v *Viewer) processInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if v.selected >= 0 {
			v.closePanel()
			return nil
		}
		return ErrQuit
	}

	// Wheel zoom works in any state. Ebiten's wheel is positive when
	// scrolling up, which zooms in (narrower FOV). The projection is
	// rebuilt from the FOV on the next frame, so no explicit recompute.
	if _, wy := ebiten.Wheel(); wy != 0 {
		v.cam.AdjustFOV(-wy * camera.WheelStep)
	}

	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	switch {
	case pressed && !v.in.down:
		v.in.down = true
		v.in.dragging = false
		v.in.startX, v.in.startY = mx, my
		v.in.lastX, v.in.lastY = mx, my

	case pressed && v.in.down:
		if !v.in.dragging {
			dx := float64(mx - v.in.startX)
			dy := float64(my - v.in.startY)
			if math.Sqrt(dx*dx+dy*dy) > dragDeadZone {
				v.in.dragging = true
			}
		}
		if v.in.dragging {
			v.cam.Drag(float64(mx-v.in.lastX), float64(my-v.in.lastY))
		}
		v.in.lastX, v.in.lastY = mx, my

	case !pressed && v.in.down:
		if !v.in.dragging {
			v.handleClick(float64(mx), float64(my))
		}
		v.in.down = false
		v.in.dragging = false
	}

	return nil
}

// handleClick routes a click by priority: the open panel's close button
// and body first, then the zoom/reset controls, then the markers.
func (v *Viewer) handleClick(x, y float64) {
	if v.loading {
		return
	}

	if v.selected >= 0 {
		if overlay.CloseRect(v.width, v.height).Contains(x, y) {
			v.closePanel()
			return
		}
		// Clicks on the panel body do nothing; clicks elsewhere fall
		// through so another marker can take over the selection.
		if overlay.PanelRect(v.width, v.height).Contains(x, y) {
			return
		}
	}

	switch overlay.HitControl(v.width, v.height, x, y) {
	case overlay.ControlZoomIn:
		v.cam.ZoomIn()
		return
	case overlay.ControlZoomOut:
		v.cam.ZoomOut()
		return
	case overlay.ControlReset:
		v.cam.Reset()
		return
	}

	if i := overlay.HitMarker(v.anchors, x, y); i >= 0 {
		v.selectHotspot(i)
	}
}
