// Command download-bb downloads the Brandenburg ALKIS dataset as GML in
// the service's native CRS (EPSG:25833) using a fixed chunk list, then
// merges the chunks into one EPSG:4326 GeoJSON file with ogr2ogr. Chunks
// already on disk are kept, so an interrupted download can be resumed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"

	"github.com/kiezcolors/alkis-bb-tiles/pkg/gdal"
	"github.com/kiezcolors/alkis-bb-tiles/pkg/wfs"
)

// Brandenburg in EPSG:25833, split into 100km bands. The WFS caps every
// response at 100k features, which one band stays under.
var chunks = []orb.Bound{
	// West Brandenburg
	{Min: orb.Point{280000, 5700000}, Max: orb.Point{350000, 5800000}},
	{Min: orb.Point{280000, 5800000}, Max: orb.Point{350000, 5900000}},
	{Min: orb.Point{280000, 5900000}, Max: orb.Point{350000, 6000000}},
	// Central-West
	{Min: orb.Point{350000, 5700000}, Max: orb.Point{420000, 5800000}},
	{Min: orb.Point{350000, 5800000}, Max: orb.Point{420000, 5900000}},
	{Min: orb.Point{350000, 5900000}, Max: orb.Point{420000, 6000000}},
	// Central
	{Min: orb.Point{420000, 5700000}, Max: orb.Point{490000, 5800000}},
	{Min: orb.Point{420000, 5800000}, Max: orb.Point{490000, 5900000}},
	{Min: orb.Point{420000, 5900000}, Max: orb.Point{490000, 6000000}},
	// Central-East
	{Min: orb.Point{490000, 5700000}, Max: orb.Point{560000, 5800000}},
	{Min: orb.Point{490000, 5800000}, Max: orb.Point{560000, 5900000}},
	{Min: orb.Point{490000, 5900000}, Max: orb.Point{560000, 6000000}},
	// East Brandenburg
	{Min: orb.Point{560000, 5700000}, Max: orb.Point{630000, 5800000}},
	{Min: orb.Point{560000, 5800000}, Max: orb.Point{630000, 5900000}},
	{Min: orb.Point{560000, 5900000}, Max: orb.Point{630000, 6000000}},
}

func main() {
	log.SetFlags(0)
	dataDir := flag.String("data-dir", "data", "Directory for GML chunk files")
	output := flag.String("output", "data/alkis_bb.geojson", "Path for the merged GeoJSON")
	flag.Parse()

	if err := os.MkdirAll(*dataDir, 0755); err != nil {
		log.Fatal(err)
	}

	log.Printf("WFS: %s", wfs.DefaultEndpoint)
	log.Printf("Chunks: %d", len(chunks))
	client := wfs.NewClient()

	chunkFiles := make([]string, 0, len(chunks))
	for i, box := range chunks {
		path := filepath.Join(*dataDir, fmt.Sprintf("alkis_bb_chunk_%02d.gml", i))
		chunkFiles = append(chunkFiles, path)
		if _, err := os.Stat(path); err == nil {
			log.Printf("Chunk %d already exists, skipping...", i)
			continue
		}
		log.Printf("Downloading chunk (%.0f, %.0f) - (%.0f, %.0f)...",
			box.Min[0], box.Min[1], box.Max[0], box.Max[1])
		n, err := client.DownloadGML(box, path)
		if err != nil {
			log.Printf("  error: %v", err)
			continue
		}
		log.Printf("  %.1f MB", float64(n)/(1024*1024))
	}

	log.Println("Merging and converting to GeoJSON...")
	ogr := gdal.New()
	first := true
	for _, gml := range chunkFiles {
		if _, err := os.Stat(gml); err != nil {
			continue
		}
		log.Printf("Processing %s...", filepath.Base(gml))
		if err := ogr.ConvertToGeoJSON(gml, *output, !first); err != nil {
			if errors.Is(err, gdal.ErrNotInstalled) {
				log.Fatal(err)
			}
			log.Printf("  %v", err)
			continue
		}
		first = false
	}
	if first {
		log.Fatal("no chunks converted")
	}

	info, err := os.Stat(*output)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Created %s (%.1f MB)", *output, float64(info.Size())/(1024*1024))
	log.Println("Next step: convert and generate tiles with convert-bb")
}
