package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one rendered scene in the output manifest.
type ManifestEntry struct {
	Name      string `json:"name"`
	Input     string `json:"input"`
	Image     string `json:"image"`
	Triangles int    `json:"triangles"`
	Pixels    int    `json:"pixels_written"`
	Clipped   int    `json:"pixels_clipped"`
}

// WriteManifest writes manifest.json listing the successful results. Image
// paths are stored relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		img := r.Output
		if rel, err := filepath.Rel(dir, r.Output); err == nil {
			img = filepath.ToSlash(rel)
		}
		entries = append(entries, ManifestEntry{
			Name:      r.Name,
			Input:     r.Input,
			Image:     img,
			Triangles: r.Triangles,
			Pixels:    r.Stats.Written,
			Clipped:   r.Stats.Clipped,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
