package overlay

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"panoview/internal/projector"
	"panoview/internal/scene"
)

// MarkerHitRadius is the clickable radius around a marker center.
const MarkerHitRadius = 14.0

const (
	dotRadius  = 5.0
	ringPeriod = 90 // frames per ring expansion
)

// DrawMarkers renders a pulsing dot, an expanding ring and a title
// label at every visible anchor. The selected marker is drawn slightly
// larger so the open panel has an obvious origin.
func (o *Overlay) DrawMarkers(dst *ebiten.Image, hotspots []scene.Hotspot, anchors []projector.Anchor, selected int) {
	pulse := 1 + 0.25*math.Sin(float64(o.tick)*0.1)
	ringPhase := float64(o.tick%ringPeriod) / ringPeriod

	for i := range hotspots {
		a := anchors[i]
		if !a.Visible {
			continue
		}

		x := float32(a.X)
		y := float32(a.Y)

		r := dotRadius * pulse
		if i == selected {
			r *= 1.4
		}

		// Expanding ring fades out as it grows.
		ringR := dotRadius + ringPhase*(MarkerHitRadius+6)
		ringCol := colAccentDim
		ringCol.A = uint8(float64(ringCol.A) * (1 - ringPhase))
		vector.StrokeCircle(dst, x, y, float32(ringR), 2, ringCol, true)

		vector.DrawFilledCircle(dst, x, y, float32(r), colAccent, true)

		label := hotspots[i].Title
		drawText(dst, label, int(a.X)-textWidth(label)/2, int(a.Y)+int(MarkerHitRadius)+6, colText)
	}
}

// HitMarker returns the index of the topmost visible marker under
// (x, y), or -1. Later hotspots draw on top, so they are tested first.
func HitMarker(anchors []projector.Anchor, x, y float64) int {
	for i := len(anchors) - 1; i >= 0; i-- {
		a := anchors[i]
		if !a.Visible {
			continue
		}
		c := HitCircle{CenterX: a.X, CenterY: a.Y, Radius: MarkerHitRadius}
		if c.Contains(x, y) {
			return i
		}
	}
	return -1
}
