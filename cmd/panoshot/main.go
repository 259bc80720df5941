package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"panoview/internal/config"
	"panoview/internal/scene"
	"panoview/internal/snapshot"
	"panoview/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	panoPath := flag.String("pano", "", "Path to the equirectangular panorama image")
	scenePath := flag.String("scene", "", "Path to the hotspot scene YAML (default: built-in demo scene)")
	outputDir := flag.String("output", "", "Output directory (default: snapshots)")
	size := flag.Int("size", 0, "Output edge length in pixels (default: 1024)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
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
	cfg.Resolve(config.Flags{
		Panorama:  *panoPath,
		Scene:     *scenePath,
		OutputDir: *outputDir,
		Workers:   *workers,
	})
	if *size > 0 {
		cfg.SnapshotSize = *size
	}
	if *supersample > 0 {
		cfg.Supersample = *supersample
	}

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

	views := snapshot.Views(sc, cfg.Panorama)
	log.Info().Int("views", len(views)).Int("workers", cfg.Workers).
		Str("output", cfg.OutputDir).Msg("rendering snapshots")

	start := time.Now()
	results := snapshot.Run(snapshot.Config{
		OutputDir:   cfg.OutputDir,
		TexResolver: texture.NewCache(),
		Size:        cfg.SnapshotSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Fallback:    fallback,
	}, views, log)

	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			log.Error().Str("view", r.ID).Str("error", r.Error).Msg("render failed")
		}
	}
	log.Info().Int("rendered", success).Int("total", len(views)).
		Dur("elapsed", time.Since(start)).Msg("done")

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := snapshot.WriteManifest(manifestPath, views); err != nil {
		log.Error().Err(err).Msg("manifest write failed")
	} else {
		log.Info().Str("path", manifestPath).Msg("manifest written")
	}

	if failed > 0 {
		os.Exit(1)
	}
}
