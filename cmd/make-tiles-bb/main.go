// Command make-tiles-bb downloads the Brandenburg ALKIS land-use dataset
// from the state WFS, converts it to the map application's schema and
// generates vector tiles with tippecanoe. All settings default to the
// values of a production run; the flags exist for tests and partial runs.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/paulmach/orb"
	"github.com/urfave/cli/v2"

	"github.com/kiezcolors/alkis-bb-tiles/pkg/pipeline"
	"github.com/kiezcolors/alkis-bb-tiles/pkg/tiles"
	"github.com/kiezcolors/alkis-bb-tiles/pkg/wfs"
)

// Brandenburg bounding box, EPSG:4326.
const defaultBBox = "11.2,51.35,14.77,53.56"

func main() {
	log.SetFlags(0)
	godotenv.Load()
	app := &cli.App{
		Name:  "make-tiles-bb",
		Usage: "Download Brandenburg ALKIS land-use data and generate vector tiles",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "wfs-url",
				Usage:   "ALKIS WFS endpoint",
				Value:   wfs.DefaultEndpoint,
				EnvVars: []string{"ALKIS_WFS_URL"},
			},
			&cli.StringFlag{
				Name:  "bbox",
				Usage: "Area to download as minLon,minLat,maxLon,maxLat",
				Value: defaultBBox,
			},
			&cli.Float64Flag{
				Name:  "grid-size",
				Usage: "Download cell edge length in degrees",
				Value: 0.5,
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "Per-request feature cap of the WFS",
				Value: wfs.DefaultMaxFeatures,
			},
			&cli.StringFlag{
				Name:    "output",
				Usage:   "Path for the converted GeoJSON",
				Value:   "data/alkis_bb.geojson",
				EnvVars: []string{"ALKIS_OUTPUT"},
			},
			&cli.StringFlag{
				Name:    "tiles-dir",
				Usage:   "Output directory for vector tiles (replaced on every run)",
				Value:   "static/tiles",
				EnvVars: []string{"ALKIS_TILES_DIR"},
			},
			&cli.StringFlag{
				Name:  "layer",
				Usage: "Tile layer name",
				Value: "alkis",
			},
			&cli.IntFlag{
				Name:  "min-zoom",
				Value: 10,
			},
			&cli.IntFlag{
				Name:  "max-zoom",
				Value: 13,
			},
			&cli.IntFlag{
				Name:  "base-zoom",
				Value: 10,
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	box, err := parseBBox(c.String("bbox"))
	if err != nil {
		return err
	}
	client := wfs.NewClient(
		wfs.WithEndpoint(c.String("wfs-url")),
		wfs.WithMaxFeatures(c.Int("count")),
	)
	cfg := pipeline.Config{
		Box:        box,
		GridSize:   c.Float64("grid-size"),
		OutputPath: c.String("output"),
		TilesDir:   c.String("tiles-dir"),
		Tiles: tiles.Options{
			Layer:       c.String("layer"),
			MinZoom:     c.Int("min-zoom"),
			MaxZoom:     c.Int("max-zoom"),
			BaseZoom:    c.Int("base-zoom"),
			IDAttribute: "id",
		},
	}
	log.Printf("WFS: %s", c.String("wfs-url"))
	log.Printf("Output: %s", cfg.OutputPath)
	log.Printf("Tiles: %s", cfg.TilesDir)
	p := pipeline.New(cfg, client, tiles.NewTippecanoe())
	if err := p.Run(); err != nil {
		return err
	}
	log.Println("Done")
	return nil
}

func parseBBox(s string) (orb.Bound, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return orb.Bound{}, fmt.Errorf("invalid bbox %q: want minLon,minLat,maxLon,maxLat", s)
	}
	var vals [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return orb.Bound{}, fmt.Errorf("invalid bbox %q: %v", s, err)
		}
		vals[i] = v
	}
	return orb.Bound{
		Min: orb.Point{vals[0], vals[1]},
		Max: orb.Point{vals[2], vals[3]},
	}, nil
}
