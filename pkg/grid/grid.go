// Package grid partitions a geographic bounding box into fixed-size cells
// so that WFS downloads stay under the service's per-request feature cap.
package grid

import (
	"math"

	"github.com/paulmach/orb"
)

// Iterator produces the cells covering a bounding box in row-major order:
// the outer loop advances longitude, the inner loop latitude. Cells in the
// final row and column are clipped to the box, so they are narrower than
// the step when the box is not an exact multiple of it. Neighbouring cells
// share their boundary coordinates; features on a shared edge can be
// returned for both cells and are deduplicated downstream.
type Iterator struct {
	box  orb.Bound
	step float64
	x, y float64
	cell orb.Bound
}

// NewIterator returns an iterator over box with the given step in degrees.
// The iterator is single-use; create a new one to restart.
func NewIterator(box orb.Bound, step float64) *Iterator {
	return &Iterator{box: box, step: step, x: box.Min[0], y: box.Min[1]}
}

// Next advances to the next cell, returning false when the box is
// exhausted (or immediately, for an empty box or non-positive step).
func (it *Iterator) Next() bool {
	if it.step <= 0 {
		return false
	}
	if it.x >= it.box.Max[0] || it.y >= it.box.Max[1] {
		return false
	}
	it.cell = orb.Bound{
		Min: orb.Point{it.x, it.y},
		Max: orb.Point{
			math.Min(it.x+it.step, it.box.Max[0]),
			math.Min(it.y+it.step, it.box.Max[1]),
		},
	}
	it.y += it.step
	if it.y >= it.box.Max[1] {
		it.y = it.box.Min[1]
		it.x += it.step
	}
	return true
}

// Cell returns the cell the last call to Next advanced to.
func (it *Iterator) Cell() orb.Bound {
	return it.cell
}

// Cells materializes the full partition of box.
func Cells(box orb.Bound, step float64) []orb.Bound {
	var cells []orb.Bound
	it := NewIterator(box, step)
	for it.Next() {
		cells = append(cells, it.Cell())
	}
	return cells
}
