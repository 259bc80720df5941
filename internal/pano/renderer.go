// Package pano renders the inside of the panorama sphere by inverse
// equirectangular projection: every screen pixel casts a ray through
// the camera, the ray's longitude/latitude picks the texel.
package pano

import (
	"image"
	"image/color"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"panoview/internal/camera"
	"panoview/internal/mathutil"
)

// Renderer draws the panorama for the current camera orientation.
// SetTexture and Render are called from the frame goroutine only.
type Renderer struct {
	tex      *image.NRGBA
	fallback color.NRGBA
	workers  int
}

// New returns a renderer with no texture. Until SetTexture is called,
// Render fills frames with the fallback color.
func New(fallback color.NRGBA) *Renderer {
	return &Renderer{
		fallback: fallback,
		workers:  runtime.NumCPU(),
	}
}

// SetTexture installs the decoded panorama. A nil texture keeps the
// fallback rendering, which is the degraded mode after a failed load.
func (r *Renderer) SetTexture(tex *image.NRGBA) {
	r.tex = tex
}

// Render fills the frame from the camera's point of view. Rows are
// rendered in parallel; the call returns only after every worker has
// finished, so the frame is complete when it is blitted.
func (r *Renderer) Render(cam *camera.Camera, f *Frame) {
	if r.tex == nil {
		f.Fill(r.fallback)
		return
	}

	camToWorld := cam.ViewMatrix().Transpose()
	tanHalf := math.Tan(mathutil.Deg2Rad(cam.FOV) / 2)

	var g errgroup.Group
	chunk := (f.Height + r.workers - 1) / r.workers
	for y0 := 0; y0 < f.Height; y0 += chunk {
		y1 := y0 + chunk
		if y1 > f.Height {
			y1 = f.Height
		}
		g.Go(func() error {
			r.renderRows(cam, f, camToWorld, tanHalf, y0, y1)
			return nil
		})
	}
	g.Wait()
}

func (r *Renderer) renderRows(cam *camera.Camera, f *Frame, camToWorld mathutil.Mat3, tanHalf float64, y0, y1 int) {
	w := float64(f.Width)
	h := float64(f.Height)
	sx := tanHalf * cam.Aspect

	for y := y0; y < y1; y++ {
		cy := (1 - 2*(float64(y)+0.5)/h) * tanHalf
		off := y * f.Width * 4
		for x := 0; x < f.Width; x++ {
			cx := (2*(float64(x)+0.5)/w - 1) * sx

			// Ray through the pixel, camera space +Z forward.
			d := camToWorld.MulVec3(mathutil.Vec3{cx, cy, 1})

			lon := math.Atan2(d[0], d[2])
			lat := math.Atan2(d[1], math.Sqrt(d[0]*d[0]+d[2]*d[2]))
			u := (lon + math.Pi) / (2 * math.Pi)
			v := (math.Pi/2 - lat) / math.Pi

			pr, pg, pb, _ := Sample(r.tex, u, v)
			i := off + x*4
			f.Pix[i] = pr
			f.Pix[i+1] = pg
			f.Pix[i+2] = pb
			f.Pix[i+3] = 0xFF
		}
	}
}
