package snapshot

import (
	"encoding/json"
	"os"
)

// ManifestEntry maps one rendered view to its output file.
type ManifestEntry struct {
	ID    string  `json:"id"`
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
	Image string  `json:"image"`
}

// WriteManifest writes manifest.json next to the rendered views.
func WriteManifest(path string, views []View) error {
	entries := make([]ManifestEntry, len(views))
	for i, v := range views {
		entries[i] = ManifestEntry{
			ID:    v.ID,
			Yaw:   v.Yaw,
			Pitch: v.Pitch,
			Image: v.ID + ".webp",
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
