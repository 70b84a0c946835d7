package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one rendered scene in the output manifest.
type ManifestEntry struct {
	Name      string `json:"name"`
	Image     string `json:"image"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	ElapsedMS int64  `json:"elapsed_ms"`
}

// WriteManifest writes manifest.json listing the successful results.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:      r.Name,
			Image:     r.Image,
			Width:     r.Width,
			Height:    r.Height,
			ElapsedMS: r.Elapsed.Milliseconds(),
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
