package overlay

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Control identifies one of the overlay buttons.
type Control int

const (
	ControlNone Control = iota
	ControlZoomIn
	ControlZoomOut
	ControlReset
)

const (
	buttonSize   = 40.0
	buttonGap    = 8.0
	buttonMargin = 16.0
)

// controlRects lays out the three buttons stacked in the bottom-right
// corner: zoom-in on top, reset at the bottom.
func controlRects(w, h int) [3]HitRect {
	x := float64(w) - buttonMargin - buttonSize
	bottom := float64(h) - buttonMargin
	var rects [3]HitRect
	for i := 0; i < 3; i++ {
		y := bottom - float64(3-i)*buttonSize - float64(2-i)*buttonGap
		rects[i] = HitRect{X: x, Y: y, Width: buttonSize, Height: buttonSize}
	}
	return rects
}

// HitControl returns which control (x, y) lands on, if any.
func HitControl(w, h int, x, y float64) Control {
	rects := controlRects(w, h)
	switch {
	case rects[0].Contains(x, y):
		return ControlZoomIn
	case rects[1].Contains(x, y):
		return ControlZoomOut
	case rects[2].Contains(x, y):
		return ControlReset
	}
	return ControlNone
}

// DrawControls renders the zoom-in, zoom-out and reset buttons.
func (o *Overlay) DrawControls(dst *ebiten.Image) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	rects := controlRects(w, h)

	for i, r := range rects {
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), colButton, false)
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, colTextDim, false)

		cx := float32(r.X + r.Width/2)
		cy := float32(r.Y + r.Height/2)
		switch i {
		case 0: // zoom in: plus
			vector.StrokeLine(dst, cx-7, cy, cx+7, cy, 2, colText, true)
			vector.StrokeLine(dst, cx, cy-7, cx, cy+7, 2, colText, true)
		case 1: // zoom out: minus
			vector.StrokeLine(dst, cx-7, cy, cx+7, cy, 2, colText, true)
		case 2: // reset: circle with a notch
			vector.StrokeCircle(dst, cx, cy, 8, 2, colText, true)
			vector.StrokeLine(dst, cx+5, cy-8, cx+10, cy-8, 2, colButton, false)
			vector.StrokeLine(dst, cx+8, cy-11, cx+8, cy-5, 2, colText, true)
		}
	}
}
