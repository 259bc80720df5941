package pano

import (
	"image"
	"image/color"
	"testing"

	"panoview/internal/camera"
)

// halfTexture is 8x2: the left half red, the right half blue. Wide
// enough that bilinear lookups near the half centers stay solid.
func halfTexture() *image.NRGBA {
	tex := image.NewNRGBA(image.Rect(0, 0, 8, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 8; x++ {
			c := color.NRGBA{R: 0xFF, A: 0xFF}
			if x >= 4 {
				c = color.NRGBA{B: 0xFF, A: 0xFF}
			}
			tex.SetNRGBA(x, y, c)
		}
	}
	return tex
}

func TestRenderWithoutTextureFillsFallback(t *testing.T) {
	fallback := color.NRGBA{R: 0x10, G: 0x14, B: 0x18, A: 0xFF}
	r := New(fallback)
	f := NewFrame(16, 8)
	cam := camera.New(2)

	r.Render(cam, f)

	for _, p := range []struct{ x, y int }{{0, 0}, {15, 7}, {8, 4}} {
		r, g, b, a := f.At(p.x, p.y)
		if r != fallback.R || g != fallback.G || b != fallback.B || a != fallback.A {
			t.Errorf("pixel (%d, %d) = (%d, %d, %d, %d), want fallback %v", p.x, p.y, r, g, b, a, fallback)
		}
	}
}

func TestRenderCenterPixelFollowsYaw(t *testing.T) {
	r := New(color.NRGBA{A: 0xFF})
	r.SetTexture(halfTexture())

	// Odd frame size puts the center pixel's ray exactly on the view
	// axis.
	f := NewFrame(31, 31)
	cam := camera.New(1)

	// Yaw 90 looks at lon 90, u = 0.75, inside the blue half.
	cam.Yaw = 90
	r.Render(cam, f)
	if cr, _, cb, _ := f.At(15, 15); cb < 0xF0 || cr > 0x0F {
		t.Errorf("looking at lon 90: center pixel r=%#x b=%#x, want blue", cr, cb)
	}

	// Yaw -90 looks at lon -90, u = 0.25, inside the red half.
	cam.Yaw = -90
	r.Render(cam, f)
	if cr, _, cb, _ := f.At(15, 15); cr < 0xF0 || cb > 0x0F {
		t.Errorf("looking at lon -90: center pixel r=%#x b=%#x, want red", cr, cb)
	}
}

func TestRenderIsOpaque(t *testing.T) {
	r := New(color.NRGBA{A: 0xFF})
	r.SetTexture(halfTexture())
	f := NewFrame(9, 9)
	cam := camera.New(1)
	cam.Pitch = 45

	r.Render(cam, f)

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if a := f.Pix[(y*f.Width+x)*4+3]; a != 0xFF {
				t.Fatalf("pixel (%d, %d) alpha = %#x, want 0xFF", x, y, a)
			}
		}
	}
}

func TestSampleWrapsU(t *testing.T) {
	tex := halfTexture()

	r1, _, b1, _ := Sample(tex, 0.25, 0.5)
	r2, _, b2, _ := Sample(tex, 1.25, 0.5)
	if r1 != r2 || b1 != b2 {
		t.Errorf("u and u+1 sample differently: (%d, %d) vs (%d, %d)", r1, b1, r2, b2)
	}

	r3, _, b3, _ := Sample(tex, -0.75, 0.5)
	if r3 != r1 || b3 != b1 {
		t.Errorf("negative u does not wrap: (%d, %d) vs (%d, %d)", r3, b3, r1, b1)
	}
}

func TestSampleClampsV(t *testing.T) {
	tex := halfTexture()

	for _, v := range []float64{-0.5, 0, 1, 1.5} {
		r, _, _, a := Sample(tex, 0.25, v)
		if r != 0xFF || a != 0xFF {
			t.Errorf("Sample(0.25, %v) = r=%#x a=%#x, want solid red", v, r, a)
		}
	}
}

func TestSampleBlendsAtBoundary(t *testing.T) {
	// u = 0.5 lands between texel 3 (red) and texel 4 (blue) with
	// equal weights.
	r, _, b, _ := Sample(halfTexture(), 0.5, 0.5)
	if r < 0x70 || r > 0x90 || b < 0x70 || b > 0x90 {
		t.Errorf("boundary sample r=%#x b=%#x, want an even red/blue mix", r, b)
	}
}
