// Package viewer runs the interactive panorama window: one ebiten game
// whose Update handles input and whose Draw re-renders the panorama and
// re-projects the hotspot markers every frame.
package viewer

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"panoview/internal/camera"
	"panoview/internal/overlay"
	"panoview/internal/pano"
	"panoview/internal/projector"
	"panoview/internal/scene"
	"panoview/internal/texture"
)

// ErrQuit is returned from Update to leave the frame loop cleanly.
var ErrQuit = errors.New("viewer: quit")

// Viewer implements ebiten.Game. All fields are owned by the frame
// goroutine; the only cross-goroutine traffic is the buffered texture
// load channel.
type Viewer struct {
	log zerolog.Logger

	cam      *camera.Camera
	sc       *scene.Scene
	renderer *pano.Renderer
	ov       *overlay.Overlay
	strategy projector.Strategy

	anchors  []projector.Anchor
	frame    *pano.Frame
	frameImg *ebiten.Image

	loadCh  <-chan texture.Result
	loading bool

	selected int // index into sc.Hotspots, -1 for none
	in       inputState

	width, height int
}

// New creates a viewer and starts loading the panorama in the
// background. The window shows the loading indicator until the load
// resolves.
func New(panoramaPath string, sc *scene.Scene, fallback color.NRGBA, log zerolog.Logger) *Viewer {
	return &Viewer{
		log:      log,
		cam:      camera.New(1),
		sc:       sc,
		renderer: pano.New(fallback),
		ov:       overlay.New(),
		strategy: projector.Perspective{},
		loadCh:   texture.LoadAsync(panoramaPath, log),
		loading:  true,
		selected: -1,
	}
}

// Update consumes the pending load result, processes input and
// re-projects the hotspot anchors for the new camera state.
func (v *Viewer) Update() error {
	if v.loading {
		select {
		case res := <-v.loadCh:
			// On failure the texture stays nil and the scene renders
			// untextured; the error was already logged.
			v.renderer.SetTexture(res.Img)
			v.loading = false
		default:
		}
	}

	v.ov.Tick()

	if err := v.processInput(); err != nil {
		return err
	}

	v.anchors = projector.ProjectAll(v.strategy, v.cam, v.sc.Hotspots, v.width, v.height, v.anchors)
	return nil
}

// Draw renders the panorama for the current camera and the overlay on
// top of it.
func (v *Viewer) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if v.frame == nil || v.frame.Width != w || v.frame.Height != h {
		v.frame = pano.NewFrame(w, h)
		if v.frameImg != nil {
			v.frameImg.Deallocate()
		}
		v.frameImg = ebiten.NewImage(w, h)
	}

	v.renderer.Render(v.cam, v.frame)
	v.frameImg.WritePixels(v.frame.Pix)
	screen.DrawImage(v.frameImg, nil)

	if v.loading {
		v.ov.DrawLoading(screen)
		return
	}

	v.ov.DrawMarkers(screen, v.sc.Hotspots, v.anchors, v.selected)
	v.ov.DrawControls(screen)
	if v.selected >= 0 {
		v.ov.DrawPanel(screen, v.sc.Hotspots[v.selected])
	}
}

// Layout keeps the render surface and the camera aspect in sync with
// the window size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.width || outsideHeight != v.height {
		v.width = outsideWidth
		v.height = outsideHeight
		if outsideHeight > 0 {
			v.cam.Aspect = float64(outsideWidth) / float64(outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}

// selectHotspot opens the detail panel for hotspot i, replacing any
// prior selection.
func (v *Viewer) selectHotspot(i int) {
	v.selected = i
}

// closePanel clears the selection.
func (v *Viewer) closePanel() {
	v.selected = -1
}
