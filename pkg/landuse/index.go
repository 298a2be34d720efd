// Package landuse provides a spatial index over converted ALKIS features
// for point lookups: which land-use category covers a coordinate.
package landuse

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/kiezcolors/alkis-bb-tiles/pkg/alkis"
)

// rtreego rejects zero-length rectangle edges; degenerate bounds get this
// minimal extent in degrees.
const minExtent = 1e-9

// Parcel is one converted land-use feature, indexed by its bounding box.
type Parcel struct {
	Bezeich  string
	Geometry orb.Geometry
	bound    orb.Bound
}

func (p *Parcel) Bounds() rtreego.Rect {
	lengths := []float64{
		p.bound.Max[0] - p.bound.Min[0],
		p.bound.Max[1] - p.bound.Min[1],
	}
	for i := range lengths {
		if lengths[i] < minExtent {
			lengths[i] = minExtent
		}
	}
	r, err := rtreego.NewRect(rtreego.Point{p.bound.Min[0], p.bound.Min[1]}, lengths)
	if err != nil {
		panic(err)
	}
	return r
}

// Contains reports whether the parcel geometry itself contains pt, not
// just its bounding box.
func (p *Parcel) Contains(pt orb.Point) bool {
	if !p.bound.Contains(pt) {
		return false
	}
	switch g := p.Geometry.(type) {
	case orb.Polygon:
		return planar.PolygonContains(g, pt)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(g, pt)
	}
	return true
}

// Index answers point queries over a set of converted features.
type Index struct {
	rt *rtreego.Rtree
}

// NewIndex builds an index from converted features. Features without a
// bezeich property or geometry are ignored.
func NewIndex(features []*geojson.Feature) *Index {
	objs := make([]rtreego.Spatial, 0, len(features))
	for _, f := range features {
		bezeich, _ := f.Properties[alkis.BezeichProperty].(string)
		if bezeich == "" || f.Geometry == nil {
			continue
		}
		objs = append(objs, &Parcel{
			Bezeich:  bezeich,
			Geometry: f.Geometry,
			bound:    f.Geometry.Bound(),
		})
	}
	return &Index{rt: rtreego.NewTree(2, 25, 50, objs...)}
}

// Size returns the number of indexed parcels.
func (ix *Index) Size() int {
	return ix.rt.Size()
}

// Lookup returns a parcel containing pt, or nil when pt is outside every
// parcel. Parcels overlapping at boundaries can both contain pt; the first
// match wins.
func (ix *Index) Lookup(pt orb.Point) *Parcel {
	bb := rtreego.Point{pt[0], pt[1]}.ToRect(minExtent)
	for _, candidate := range ix.rt.SearchIntersect(bb) {
		parcel := candidate.(*Parcel)
		if parcel.Contains(pt) {
			return parcel
		}
	}
	return nil
}
