// Package tiles generates vector tiles from a GeoJSON file by invoking
// tippecanoe as an external tool.
package tiles

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// ErrNotInstalled indicates the tippecanoe binary was not found on PATH.
var ErrNotInstalled = errors.New("tippecanoe not found, install it with: brew install tippecanoe")

// Options configure a tile generation run.
type Options struct {
	Layer    string
	MinZoom  int
	MaxZoom  int
	BaseZoom int // tippecanoe -B: zoom at or above which all features are kept
	// IDAttribute, when set, becomes the tile feature id
	// (--use-attribute-for-id). Empty leaves ids to tippecanoe.
	IDAttribute string
}

// Generator produces a tile directory from a feature-collection file.
// Tests substitute a fake that records its arguments.
type Generator interface {
	GenerateTiles(inputPath, outputDir string, opts Options) error
}

// Tippecanoe runs the tippecanoe binary.
type Tippecanoe struct {
	Command string
}

func NewTippecanoe() *Tippecanoe {
	return &Tippecanoe{Command: "tippecanoe"}
}

// BuildArgs assembles the tippecanoe argument list. Tile compression is
// disabled because the tiles are served as plain files, not from an
// mbtiles archive.
func BuildArgs(inputPath, outputDir string, opts Options) []string {
	args := []string{
		"--output-to-directory", outputDir,
		"--layer=" + opts.Layer,
	}
	if opts.IDAttribute != "" {
		args = append(args, "--use-attribute-for-id="+opts.IDAttribute)
	}
	return append(args,
		"--no-tile-compression",
		"--force",
		"-B", strconv.Itoa(opts.BaseZoom),
		fmt.Sprintf("--minimum-zoom=%d", opts.MinZoom),
		fmt.Sprintf("--maximum-zoom=%d", opts.MaxZoom),
		inputPath,
	)
}

// GenerateTiles removes outputDir recursively (tiles are always fully
// regenerated) and runs tippecanoe over inputPath. A missing binary or a
// nonzero exit is returned as an error with the tool's stderr attached.
func (t *Tippecanoe) GenerateTiles(inputPath, outputDir string, opts Options) error {
	if _, err := exec.LookPath(t.Command); err != nil {
		return ErrNotInstalled
	}
	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("error removing existing tiles directory %s: %v", outputDir, err)
	}
	cmd := exec.Command(t.Command, BuildArgs(inputPath, outputDir, opts)...)
	var stderr bytes.Buffer
	cmd.Stdout = os.Stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %v: %s", t.Command, err, stderr.String())
	}
	return nil
}
