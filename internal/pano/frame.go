package pano

import "image/color"

// Frame is the render target as a flat RGBA slice for cache locality.
// The pixel layout matches what ebiten's WritePixels expects.
type Frame struct {
	Width  int
	Height int
	Pix    []uint8 // RGBA interleaved, len = W*H*4
}

// NewFrame allocates a zeroed frame.
func NewFrame(w, h int) *Frame {
	return &Frame{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*4),
	}
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c color.NRGBA) {
	for i := 0; i < len(f.Pix); i += 4 {
		f.Pix[i] = c.R
		f.Pix[i+1] = c.G
		f.Pix[i+2] = c.B
		f.Pix[i+3] = c.A
	}
}

// At returns the RGBA bytes of pixel (x, y). Test helper.
func (f *Frame) At(x, y int) (r, g, b, a uint8) {
	i := (y*f.Width + x) * 4
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]
}
