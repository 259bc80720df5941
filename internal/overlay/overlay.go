// Package overlay draws the 2D UI over the rendered panorama: hotspot
// markers, the detail panel, the zoom/reset controls and the loading
// indicator. It owns no state beyond an animation tick; what to draw is
// passed in each frame.
package overlay

import "image/color"

// Overlay tracks the animation tick that drives the marker pulse and
// the loading spinner.
type Overlay struct {
	tick int
}

func New() *Overlay {
	return &Overlay{}
}

// Tick advances the animations by one frame.
func (o *Overlay) Tick() {
	o.tick++
}

// Shared palette.
var (
	colAccent    = color.NRGBA{0x4f, 0xc3, 0xf7, 0xff}
	colAccentDim = color.NRGBA{0x4f, 0xc3, 0xf7, 0x60}
	colText      = color.NRGBA{0xf5, 0xf5, 0xf5, 0xff}
	colTextDim   = color.NRGBA{0xb0, 0xb0, 0xb0, 0xff}
	colPanel     = color.NRGBA{0x16, 0x1c, 0x24, 0xf0}
	colButton    = color.NRGBA{0x20, 0x28, 0x33, 0xd0}
	colDim       = color.NRGBA{0x00, 0x00, 0x00, 0x78}
)
