package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDownsampleResizes(t *testing.T) {
	c := color.NRGBA{R: 0x80, G: 0x40, B: 0x20, A: 0xFF}
	out := Downsample(solid(64, 64, c), 16, 16)

	if b := out.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("bounds %v, want 16x16", b)
	}
	// A solid image stays solid through the filter.
	if got := out.NRGBAAt(8, 8); got != c {
		t.Errorf("center pixel %v, want %v", got, c)
	}
}

func TestDownsamplePassthroughWhenSmallEnough(t *testing.T) {
	src := solid(16, 16, color.NRGBA{R: 0xFF, A: 0xFF})
	if out := Downsample(src, 16, 16); out != src {
		t.Error("an already-small image should pass through unchanged")
	}
	if out := Downsample(src, 32, 32); out != src {
		t.Error("Downsample must never upscale")
	}
}
