// Package scene holds the static hotspot configuration of a panorama.
// Hotspots are loaded once at startup and never change at runtime.
package scene

import (
	"panoview/internal/mathutil"
)

// Hotspot is a fixed point of interest in the panorama, rendered as a
// clickable marker that opens a detail panel.
type Hotspot struct {
	ID          string
	Position    mathutil.Vec3 // world meters, camera at origin
	Title       string
	Description string
	Details     string
}

// Scene is an immutable hotspot list plus a display name.
type Scene struct {
	Name     string
	Hotspots []Hotspot
}

// defaultRadius is the marker distance used when a hotspot is authored
// in lon/lat form without an explicit radius. Well inside the panorama
// sphere, far enough that perspective distortion is negligible.
const defaultRadius = 50.0

// Default returns the built-in demo scene: four hotspots at the front,
// left, back and right of the panorama.
func Default() *Scene {
	return &Scene{
		Name: "Demo",
		Hotspots: []Hotspot{
			{
				ID:          "front",
				Position:    mathutil.FromLonLat(0, 5, defaultRadius),
				Title:       "Main Entrance",
				Description: "The way in.",
				Details:     "The main entrance sits directly ahead of the default view. Walk through the double doors to reach the lobby and the reception desk.",
			},
			{
				ID:          "left",
				Position:    mathutil.FromLonLat(-90, 0, defaultRadius),
				Title:       "West Gallery",
				Description: "Exhibition space.",
				Details:     "The west gallery hosts the rotating exhibition. Natural light comes in through the skylights for most of the day.",
			},
			{
				ID:          "back",
				Position:    mathutil.FromLonLat(180, -10, defaultRadius),
				Title:       "Garden Court",
				Description: "Open-air courtyard.",
				Details:     "Behind the viewpoint, the garden court connects the two wings. The fountain at its center dates from the original building.",
			},
			{
				ID:          "right",
				Position:    mathutil.FromLonLat(90, 10, defaultRadius),
				Title:       "East Stair",
				Description: "Access to the upper floor.",
				Details:     "The east staircase leads to the mezzanine and the reading room. The balustrade is original cast iron.",
			},
		},
	}
}
