package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"panoview/internal/config"
	"panoview/internal/scene"
	"panoview/internal/viewer"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	panoPath := flag.String("pano", "", "Path to the equirectangular panorama image")
	scenePath := flag.String("scene", "", "Path to the hotspot scene YAML (default: built-in demo scene)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Fatal().Err(err).Msg("load config")
		}
	}
	cfg.Resolve(config.Flags{Panorama: *panoPath, Scene: *scenePath})

	if cfg.Panorama == "" {
		log.Fatal().Msg("no panorama given; use -pano or config.json")
	}

	sc := scene.Default()
	if cfg.Scene != "" {
		var err error
		sc, err = scene.Load(cfg.Scene)
		if err != nil {
			log.Fatal().Err(err).Msg("load scene")
		}
	}

	fallback, err := cfg.FallbackColor()
	if err != nil {
		log.Fatal().Err(err).Msg("parse config")
	}

	log.Info().Str("panorama", cfg.Panorama).
		Int("hotspots", len(sc.Hotspots)).Msg("starting viewer")

	v := viewer.New(cfg.Panorama, sc, fallback, log)

	title := "panoview"
	if sc.Name != "" {
		title += " - " + sc.Name
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, viewer.ErrQuit) {
		log.Fatal().Err(err).Msg("viewer stopped")
	}
}
