package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paulmach/orb/geojson"
)

// WriteFeatureCollection serializes features as a single FeatureCollection
// document at path, creating parent directories as needed. An existing
// file is overwritten.
func WriteFeatureCollection(path string, features []*geojson.Feature) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory %s: %v", dir, err)
		}
	}
	fc := geojson.NewFeatureCollection()
	fc.Features = features
	w, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error creating output file %s: %v", path, err)
	}
	if err := json.NewEncoder(w).Encode(fc); err != nil {
		w.Close()
		return fmt.Errorf("error marshalling GeoJSON to %s: %v", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("error closing file %s: %v", path, err)
	}
	return nil
}

// ReadFeatureCollection loads a feature-collection document from path.
func ReadFeatureCollection(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %v", path, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding feature collection %s: %v", path, err)
	}
	return fc, nil
}
