// Command convert-bb converts an already-downloaded raw ALKIS GeoJSON file
// (nutzart -> bezeich) and regenerates the vector tiles. Useful when the
// slow WFS download has already been done by download-bb or make-tiles-bb.
package main

import (
	"flag"
	"log"

	"github.com/kiezcolors/alkis-bb-tiles/pkg/alkis"
	"github.com/kiezcolors/alkis-bb-tiles/pkg/pipeline"
	"github.com/kiezcolors/alkis-bb-tiles/pkg/tiles"
)

func main() {
	log.SetFlags(0)
	input := flag.String("input", "data/alkis_bb.geojson", "Raw ALKIS GeoJSON to convert")
	output := flag.String("output", "data/alkis_bb_converted.geojson", "Path for the converted GeoJSON")
	tilesDir := flag.String("tiles-dir", "static/tiles", "Output directory for vector tiles")
	layer := flag.String("layer", "alkis", "Tile layer name")
	minZoom := flag.Int("min-zoom", 10, "Minimum tile zoom level")
	maxZoom := flag.Int("max-zoom", 13, "Maximum tile zoom level")
	flag.Parse()

	log.Printf("Loading %s...", *input)
	fc, err := pipeline.ReadFeatureCollection(*input)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Converting %d features...", len(fc.Features))
	converted := alkis.Transform(fc.Features)
	logNutzartCounts(alkis.CountByNutzart(fc.Features))
	log.Printf("Converted: %d", len(converted))
	log.Printf("Skipped: %d", len(fc.Features)-len(converted))

	log.Printf("Saving to %s...", *output)
	if err := pipeline.WriteFeatureCollection(*output, converted); err != nil {
		log.Fatal(err)
	}

	log.Println("Generating tiles...")
	gen := tiles.NewTippecanoe()
	opts := tiles.Options{Layer: *layer, MinZoom: *minZoom, MaxZoom: *maxZoom, BaseZoom: *minZoom}
	if err := gen.GenerateTiles(*output, *tilesDir, opts); err != nil {
		log.Fatal(err)
	}
	log.Printf("Tiles generated in %s", *tilesDir)
}

func logNutzartCounts(counts map[string]int) {
	log.Println("Nutzart counts:")
	for _, lc := range alkis.RankByCount(counts) {
		bezeich, ok := alkis.MapNutzart(lc.Label)
		if !ok {
			bezeich = "SKIPPED"
		}
		log.Printf("  %s: %d -> %s", lc.Label, lc.Count, bezeich)
	}
}
