// Package snapshot renders framed still views of a panorama to WebP
// files: the default view plus one view centered on each hotspot.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"image"
	"image/color"

	"github.com/HugoSmits86/nativewebp"
	"github.com/rs/zerolog"

	"panoview/internal/camera"
	"panoview/internal/pano"
	"panoview/internal/postprocess"
	"panoview/internal/scene"
	"panoview/internal/texture"
)

// Config holds all shared resources for a snapshot run.
type Config struct {
	OutputDir   string
	TexResolver texture.Resolver
	Size        int // output edge length in pixels, views are square
	Supersample int
	Workers     int
	Fallback    color.NRGBA
}

// View is one camera orientation to render.
type View struct {
	ID       string
	Panorama string
	Yaw      float64
	Pitch    float64
}

// Result holds the outcome of rendering one view.
type Result struct {
	ID      string
	Success bool
	Error   string
}

// Views builds the view list for a scene: the default orientation
// first, then one view aimed at each hotspot.
func Views(sc *scene.Scene, panorama string) []View {
	views := make([]View, 0, len(sc.Hotspots)+1)
	views = append(views, View{ID: "default", Panorama: panorama})
	for _, h := range sc.Hotspots {
		lon, lat := h.Position.LonLat()
		views = append(views, View{ID: h.ID, Panorama: panorama, Yaw: lon, Pitch: lat})
	}
	return views
}

// Run renders all views using a worker pool and reports per-view results.
func Run(cfg Config, views []View, log zerolog.Logger) []Result {
	total := len(views)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					log.Info().Int64("done", p).Int("total", total).
						Float64("views_per_sec", rate).Msg("snapshot progress")
				}
			}
		}
	}()

	// Worker pool
	viewChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range viewChan {
				results[idx] = renderView(cfg, views[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range views {
		viewChan <- i
	}
	close(viewChan)

	wg.Wait()
	close(done)

	return results
}

func renderView(cfg Config, v View) Result {
	tex := cfg.TexResolver.Resolve(v.Panorama)
	if tex == nil {
		return Result{ID: v.ID, Error: fmt.Sprintf("panorama not loadable: %s", v.Panorama)}
	}

	renderSize := cfg.Size * cfg.Supersample
	cam := camera.New(1)
	cam.Yaw = v.Yaw
	cam.Pitch = v.Pitch

	r := pano.New(cfg.Fallback)
	r.SetTexture(tex)
	frame := pano.NewFrame(renderSize, renderSize)
	r.Render(cam, frame)

	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	copy(img.Pix, frame.Pix)
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Size, cfg.Size)
	}

	outPath := filepath.Join(cfg.OutputDir, v.ID+".webp")
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{ID: v.ID, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{ID: v.ID, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{ID: v.ID, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{ID: v.ID, Success: true}
}
