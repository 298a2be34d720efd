// Package pipeline orchestrates the Brandenburg ALKIS run: grid-chunked
// download, deduplication, nutzart->bezeich transform, GeoJSON persistence
// and tile generation.
package pipeline

import (
	"errors"
	"log"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/kiezcolors/alkis-bb-tiles/pkg/alkis"
	"github.com/kiezcolors/alkis-bb-tiles/pkg/grid"
	"github.com/kiezcolors/alkis-bb-tiles/pkg/tiles"
)

// ErrNoFeatures is returned when every grid cell came back empty; tiling a
// dataset that does not exist is always a configuration or service problem.
var ErrNoFeatures = errors.New("no features downloaded")

// Fetcher fetches the raw features intersecting one grid cell.
type Fetcher interface {
	GetFeatures(box orb.Bound) ([]*geojson.Feature, error)
}

// Config carries the compiled-in defaults of a run, made explicit so tests
// can substitute paths and a mock fetcher.
type Config struct {
	// Box is the area to download, EPSG:4326.
	Box orb.Bound
	// GridSize is the cell edge length in degrees.
	GridSize float64
	// OutputPath is where the converted GeoJSON is written.
	OutputPath string
	// TilesDir is replaced wholesale by the tile generator.
	TilesDir string
	Tiles    tiles.Options
}

type Pipeline struct {
	cfg     Config
	fetcher Fetcher
	tiler   tiles.Generator
}

func New(cfg Config, fetcher Fetcher, tiler tiles.Generator) *Pipeline {
	return &Pipeline{cfg: cfg, fetcher: fetcher, tiler: tiler}
}

// Run executes the stages in order: download, transform, persist, tile.
// A failed cell fetch only loses that cell; an empty dataset, a missing
// tile tool or a tiling failure aborts the run.
func (p *Pipeline) Run() error {
	log.Println("Step 1: downloading features from WFS...")
	features := p.download()
	if len(features) == 0 {
		return ErrNoFeatures
	}

	log.Println("Step 2: transforming features...")
	transformed := alkis.Transform(features)
	log.Printf("Transformed %d of %d features", len(transformed), len(features))

	log.Printf("Step 3: saving GeoJSON to %s...", p.cfg.OutputPath)
	if err := WriteFeatureCollection(p.cfg.OutputPath, transformed); err != nil {
		return err
	}
	log.Printf("Saved %d features", len(transformed))

	log.Printf("Step 4: generating tiles in %s...", p.cfg.TilesDir)
	if err := p.tiler.GenerateTiles(p.cfg.OutputPath, p.cfg.TilesDir, p.cfg.Tiles); err != nil {
		return err
	}
	return nil
}

// download walks the grid, fetching and deduplicating cell by cell. Cells
// that fail to fetch or decode are logged and skipped; the service is slow
// and occasionally flaky, and losing one cell beats losing the whole run.
func (p *Pipeline) download() []*geojson.Feature {
	collector := NewCollector()
	it := grid.NewIterator(p.cfg.Box, p.cfg.GridSize)
	for it.Next() {
		cell := it.Cell()
		log.Printf("Fetching bbox (%.2f, %.2f, %.2f, %.2f)...",
			cell.Min[0], cell.Min[1], cell.Max[0], cell.Max[1])
		features, err := p.fetcher.GetFeatures(cell)
		if err != nil {
			log.Printf("  skipping cell: %v", err)
			continue
		}
		log.Printf("  %d features", len(features))
		collector.Add(features)
	}
	if n := collector.Fallbacks(); n > 0 {
		log.Printf("%d features identified via %s property fallback", n, gmlIDProperty)
	}
	if n := collector.Skipped(); n > 0 {
		log.Printf("Skipped %d features with no identifier", n)
	}
	log.Printf("Total unique features: %d", collector.Len())
	return collector.Features()
}
