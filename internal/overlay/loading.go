package overlay

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const spinnerDots = 12

// DrawLoading renders the full-screen loading indicator: a dimmed
// backdrop, a ring of dots rotating with the tick, and a caption.
func (o *Overlay) DrawLoading(dst *ebiten.Image) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), colDim, false)

	cx := float64(w) / 2
	cy := float64(h) / 2
	head := o.tick / 4

	for i := 0; i < spinnerDots; i++ {
		ang := 2 * math.Pi * float64(i) / spinnerDots
		x := cx + 24*math.Cos(ang)
		y := cy + 24*math.Sin(ang)

		// Dots fade with distance behind the rotating head.
		age := (head - i) % spinnerDots
		if age < 0 {
			age += spinnerDots
		}
		c := colAccent
		c.A = uint8(255 * (1 - float64(age)/spinnerDots))
		vector.DrawFilledCircle(dst, float32(x), float32(y), 4, c, true)
	}

	caption := "Loading panorama..."
	drawText(dst, caption, int(cx)-textWidth(caption)/2, int(cy)+44, colText)
}
