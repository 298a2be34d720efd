// Package gdal wraps the ogr2ogr command-line tool for converting WFS GML
// downloads to GeoJSON.
package gdal

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrNotInstalled indicates the ogr2ogr binary was not found on PATH.
var ErrNotInstalled = errors.New("ogr2ogr not found. Install GDAL first: brew install gdal")

// Ogr2Ogr runs the ogr2ogr binary.
type Ogr2Ogr struct {
	Command string
}

func New() *Ogr2Ogr {
	return &Ogr2Ogr{Command: "ogr2ogr"}
}

// BuildArgs assembles the argument list for converting src to GeoJSON in
// EPSG:4326. With appendTo set, features are appended to an existing dst
// instead of creating it.
func BuildArgs(src, dst string, appendTo bool) []string {
	args := []string{"-f", "GeoJSON", "-t_srs", "EPSG:4326"}
	if appendTo {
		args = append(args, "-update", "-append")
	}
	return append(args, dst, src)
}

// ConvertToGeoJSON converts (or appends) the GML file src into the GeoJSON
// file dst, reprojecting to EPSG:4326.
func (o *Ogr2Ogr) ConvertToGeoJSON(src, dst string, appendTo bool) error {
	if _, err := exec.LookPath(o.Command); err != nil {
		return ErrNotInstalled
	}
	cmd := exec.Command(o.Command, BuildArgs(src, dst, appendTo)...)
	var stderr bytes.Buffer
	cmd.Stdout = os.Stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed converting %s: %v: %s", o.Command, src, err, stderr.String())
	}
	return nil
}
