// Command lookup-bb answers which land-use category covers a coordinate,
// using the converted GeoJSON produced by make-tiles-bb or convert-bb.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/kiezcolors/alkis-bb-tiles/pkg/landuse"
	"github.com/kiezcolors/alkis-bb-tiles/pkg/pipeline"
)

func main() {
	log.SetFlags(0)
	input := flag.String("input", "data/alkis_bb_converted.geojson", "Converted ALKIS GeoJSON")
	flag.Parse()
	if flag.NArg() != 2 {
		log.Fatalf("Usage: %s [--input=FILE] LON LAT", os.Args[0])
	}
	lon, err := strconv.ParseFloat(flag.Arg(0), 64)
	if err != nil {
		log.Fatalf("invalid longitude %q: %v", flag.Arg(0), err)
	}
	lat, err := strconv.ParseFloat(flag.Arg(1), 64)
	if err != nil {
		log.Fatalf("invalid latitude %q: %v", flag.Arg(1), err)
	}

	fc, err := pipeline.ReadFeatureCollection(*input)
	if err != nil {
		log.Fatal(err)
	}
	index := landuse.NewIndex(fc.Features)
	log.Printf("Indexed %d parcels", index.Size())

	parcel := index.Lookup(orb.Point{lon, lat})
	if parcel == nil {
		log.Fatalf("no land-use parcel at (%v, %v)", lon, lat)
	}
	fmt.Println(parcel.Bezeich)
}
