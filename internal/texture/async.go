package texture

import (
	"image"

	"github.com/rs/zerolog"
)

// Result is the outcome of an asynchronous load. Img is nil on failure.
type Result struct {
	Img *image.NRGBA
	Err error
}

// LoadAsync decodes a panorama on a background goroutine and delivers
// the result over the returned channel. The channel is buffered so the
// goroutine never blocks; the viewer drains it from its frame loop,
// keeping all state mutation on one goroutine. There is no retry,
// timeout or cancellation — the load either resolves or fails once.
func LoadAsync(path string, log zerolog.Logger) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		img, err := Load(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("panorama load failed")
		} else {
			b := img.Bounds()
			log.Info().Str("path", path).
				Int("width", b.Dx()).Int("height", b.Dy()).
				Msg("panorama loaded")
		}
		ch <- Result{Img: img, Err: err}
	}()
	return ch
}
