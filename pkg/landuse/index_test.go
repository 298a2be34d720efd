package landuse

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func converted(bezeich string, g orb.Geometry) *geojson.Feature {
	f := geojson.NewFeature(g)
	f.Properties["bezeich"] = bezeich
	return f
}

func TestIndex(t *testing.T) {
	wald := converted("AX_Wald", orb.Polygon{{
		{13.0, 52.0}, {13.2, 52.0}, {13.2, 52.2}, {13.0, 52.2}, {13.0, 52.0},
	}})
	// L-shaped parcel: its bounding box covers (13.55, 52.15) but the
	// geometry does not.
	see := converted("AX_StehendesGewaesser", orb.Polygon{{
		{13.4, 52.0}, {13.6, 52.0}, {13.6, 52.1}, {13.5, 52.1},
		{13.5, 52.2}, {13.4, 52.2}, {13.4, 52.0},
	}})
	index := NewIndex([]*geojson.Feature{wald, see})
	require.Equal(t, 2, index.Size())

	t.Run("point inside a parcel", func(t *testing.T) {
		p := index.Lookup(orb.Point{13.1, 52.1})
		require.NotNil(t, p)
		assert.Equal(t, "AX_Wald", p.Bezeich)
	})

	t.Run("point outside every parcel", func(t *testing.T) {
		assert.Nil(t, index.Lookup(orb.Point{14.0, 53.0}))
	})

	t.Run("point inside the bounding box but outside the geometry", func(t *testing.T) {
		assert.Nil(t, index.Lookup(orb.Point{13.55, 52.15}))
	})

	t.Run("degenerate bounds still index and resolve", func(t *testing.T) {
		// A point geometry has a zero-extent bounding box, which must be
		// widened to satisfy rtreego.
		brunnen := converted("AX_StehendesGewaesser", orb.Point{13.7, 52.3})
		ix := NewIndex([]*geojson.Feature{brunnen})
		require.Equal(t, 1, ix.Size())

		p := ix.Lookup(orb.Point{13.7, 52.3})
		require.NotNil(t, p)
		assert.Equal(t, "AX_StehendesGewaesser", p.Bezeich)
	})

	t.Run("features without bezeich are not indexed", func(t *testing.T) {
		raw := geojson.NewFeature(orb.Polygon{{
			{13.0, 52.0}, {13.1, 52.0}, {13.1, 52.1}, {13.0, 52.0},
		}})
		ix := NewIndex([]*geojson.Feature{raw})
		assert.Zero(t, ix.Size())
	})
}
