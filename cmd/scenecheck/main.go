package main

import (
	"fmt"
	"math"
	"os"

	"panoview/internal/mathutil"
	"panoview/internal/projector"
	"panoview/internal/scene"
)

// minSeparationDeg is the angular distance below which two hotspots are
// close enough that their markers will overlap at default zoom.
const minSeparationDeg = 10.0

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: scenecheck <scene.yaml>")
		os.Exit(2)
	}

	sc, err := scene.Load(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Scene: %s (%d hotspots)\n", sc.Name, len(sc.Hotspots))

	var sph projector.Spherical
	for _, h := range sc.Hotspots {
		lon, lat := h.Position.LonLat()
		px, py := sph.Percent(lon, lat)
		fmt.Printf("  %-16s lon=%7.1f lat=%6.1f  flat=(%5.1f%%, %5.1f%%)  %q\n",
			h.ID, lon, lat, px, py, h.Title)
	}

	// Pairwise angular separation between marker directions.
	warned := false
	for i := 0; i < len(sc.Hotspots); i++ {
		for j := i + 1; j < len(sc.Hotspots); j++ {
			a := sc.Hotspots[i].Position
			b := sc.Hotspots[j].Position
			cos := a.Dot(b) / (a.Len() * b.Len())
			sep := mathutil.Rad2Deg(math.Acos(mathutil.Clamp(cos, -1, 1)))
			if sep < minSeparationDeg {
				fmt.Printf("  WARNING: %q and %q are %.1f° apart\n",
					sc.Hotspots[i].ID, sc.Hotspots[j].ID, sep)
				warned = true
			}
		}
	}
	if !warned {
		fmt.Println("  Separation: OK")
	}
}
