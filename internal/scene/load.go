package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"panoview/internal/mathutil"
)

// hotspotYAML is the on-disk form of a hotspot. A position is given
// either as a Cartesian triple or as lon/lat degrees with an optional
// radius; the loader converts everything to Cartesian.
type hotspotYAML struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Details     string    `yaml:"details"`
	Position    []float64 `yaml:"position"`
	Lon         *float64  `yaml:"lon"`
	Lat         *float64  `yaml:"lat"`
	Radius      float64   `yaml:"radius"`
}

type sceneYAML struct {
	Name     string        `yaml:"name"`
	Hotspots []hotspotYAML `yaml:"hotspots"`
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates scene YAML.
func Parse(data []byte) (*Scene, error) {
	var raw sceneYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}
	if len(raw.Hotspots) == 0 {
		return nil, fmt.Errorf("scene: no hotspots defined")
	}

	sc := &Scene{Name: raw.Name}
	seen := make(map[string]bool, len(raw.Hotspots))
	for i, h := range raw.Hotspots {
		if h.ID == "" {
			return nil, fmt.Errorf("scene: hotspot %d: missing id", i)
		}
		if seen[h.ID] {
			return nil, fmt.Errorf("scene: duplicate hotspot id %q", h.ID)
		}
		seen[h.ID] = true

		pos, err := resolvePosition(h)
		if err != nil {
			return nil, fmt.Errorf("scene: hotspot %q: %w", h.ID, err)
		}

		sc.Hotspots = append(sc.Hotspots, Hotspot{
			ID:          h.ID,
			Position:    pos,
			Title:       h.Title,
			Description: h.Description,
			Details:     h.Details,
		})
	}
	return sc, nil
}

func resolvePosition(h hotspotYAML) (mathutil.Vec3, error) {
	hasCart := len(h.Position) > 0
	hasSph := h.Lon != nil || h.Lat != nil

	switch {
	case hasCart && hasSph:
		return mathutil.Vec3{}, fmt.Errorf("both position and lon/lat given")
	case hasCart:
		if len(h.Position) != 3 {
			return mathutil.Vec3{}, fmt.Errorf("position needs 3 components, got %d", len(h.Position))
		}
		p := mathutil.Vec3{h.Position[0], h.Position[1], h.Position[2]}
		if p.Len() < 1e-9 {
			return mathutil.Vec3{}, fmt.Errorf("position must not be the origin")
		}
		return p, nil
	case hasSph:
		var lon, lat float64
		if h.Lon != nil {
			lon = *h.Lon
		}
		if h.Lat != nil {
			lat = *h.Lat
		}
		if lat < -90 || lat > 90 {
			return mathutil.Vec3{}, fmt.Errorf("lat %.1f out of range [-90, 90]", lat)
		}
		r := h.Radius
		if r <= 0 {
			r = defaultRadius
		}
		return mathutil.FromLonLat(lon, lat, r), nil
	default:
		return mathutil.Vec3{}, fmt.Errorf("no position given")
	}
}
