package overlay

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"panoview/internal/scene"
)

const (
	panelWidth  = 440.0
	panelHeight = 280.0
	panelPad    = 18.0
	closeSize   = 24.0
)

// PanelRect returns the detail panel area, centered on the canvas.
func PanelRect(w, h int) HitRect {
	return HitRect{
		X:      (float64(w) - panelWidth) / 2,
		Y:      (float64(h) - panelHeight) / 2,
		Width:  panelWidth,
		Height: panelHeight,
	}
}

// CloseRect returns the close button area in the panel's top-right corner.
func CloseRect(w, h int) HitRect {
	p := PanelRect(w, h)
	return HitRect{
		X:      p.X + p.Width - closeSize - 10,
		Y:      p.Y + 10,
		Width:  closeSize,
		Height: closeSize,
	}
}

// DrawPanel renders the modal detail card for the selected hotspot on
// top of a full-screen dim layer.
func (o *Overlay) DrawPanel(dst *ebiten.Image, h scene.Hotspot) {
	w, hgt := dst.Bounds().Dx(), dst.Bounds().Dy()

	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(hgt), colDim, false)

	p := PanelRect(w, hgt)
	vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), colPanel, false)
	vector.StrokeRect(dst, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), 1, colAccent, false)

	// Close button
	c := CloseRect(w, hgt)
	vector.DrawFilledRect(dst, float32(c.X), float32(c.Y), float32(c.Width), float32(c.Height), colButton, false)
	cx := float32(c.X + c.Width/2)
	cy := float32(c.Y + c.Height/2)
	vector.StrokeLine(dst, cx-5, cy-5, cx+5, cy+5, 2, colText, true)
	vector.StrokeLine(dst, cx-5, cy+5, cx+5, cy-5, 2, colText, true)

	tx := int(p.X + panelPad)
	ty := int(p.Y + panelPad)
	drawText(dst, h.Title, tx, ty, colAccent)
	ty += lineHeight + 4
	drawText(dst, h.Description, tx, ty, colTextDim)
	ty += lineHeight + 10

	maxChars := int((p.Width - 2*panelPad) / glyphWidth)
	for _, line := range wrapText(h.Details, maxChars) {
		if ty > int(p.Y+p.Height)-lineHeight-int(panelPad) {
			break
		}
		drawText(dst, line, tx, ty, colText)
		ty += lineHeight
	}
}
