package alkis

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapNutzart(t *testing.T) {
	t.Run("known labels map to AX identifiers", func(t *testing.T) {
		bezeich, ok := MapNutzart("Wald")
		require.True(t, ok)
		assert.Equal(t, "AX_Wald", bezeich)

		bezeich, ok = MapNutzart("Unland/Vegetationslose Fläche")
		require.True(t, ok)
		assert.Equal(t, "AX_UnlandVegetationsloseFlaeche", bezeich)

		bezeich, ok = MapNutzart("Tagebau, Grube, Steinbruch")
		require.True(t, ok)
		assert.Equal(t, "AX_TagebauGrubeSteinbruch", bezeich)
	})

	t.Run("unknown labels are rejected", func(t *testing.T) {
		_, ok := MapNutzart("Unknown Label")
		assert.False(t, ok)
	})

	t.Run("empty label is rejected", func(t *testing.T) {
		_, ok := MapNutzart("")
		assert.False(t, ok)
	})

	t.Run("matching is case sensitive", func(t *testing.T) {
		_, ok := MapNutzart("wald")
		assert.False(t, ok)
	})
}

func testPolygon() orb.Polygon {
	return orb.Polygon{{{13.0, 52.4}, {13.1, 52.4}, {13.1, 52.5}, {13.0, 52.4}}}
}

func TestTransform(t *testing.T) {
	t.Run("mapped feature keeps geometry and gets exactly one property", func(t *testing.T) {
		f := geojson.NewFeature(testPolygon())
		f.Properties["nutzart"] = "Wald"
		f.Properties["aktualit"] = "2024-01-01"

		out := Transform([]*geojson.Feature{f})
		require.Len(t, out, 1)
		assert.Equal(t, testPolygon(), out[0].Geometry)
		assert.Equal(t, geojson.Properties{"bezeich": "AX_Wald"}, out[0].Properties)
	})

	t.Run("unmapped label is dropped", func(t *testing.T) {
		wald := geojson.NewFeature(testPolygon())
		wald.Properties["nutzart"] = "Wald"
		unknown := geojson.NewFeature(testPolygon())
		unknown.Properties["nutzart"] = "Unknown Label"

		out := Transform([]*geojson.Feature{wald, unknown})
		assert.Len(t, out, 1)
	})

	t.Run("feature without nutzart is dropped", func(t *testing.T) {
		f := geojson.NewFeature(testPolygon())
		out := Transform([]*geojson.Feature{f})
		assert.Empty(t, out)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, Transform(nil))
	})
}

func TestCountByNutzart(t *testing.T) {
	var features []*geojson.Feature
	for _, nutzart := range []string{"Wald", "Wald", "Moor", "Unknown Label"} {
		f := geojson.NewFeature(testPolygon())
		f.Properties["nutzart"] = nutzart
		features = append(features, f)
	}
	counts := CountByNutzart(features)
	assert.Equal(t, map[string]int{"Wald": 2, "Moor": 1, "Unknown Label": 1}, counts)
}

func TestRankByCount(t *testing.T) {
	ranked := RankByCount(map[string]int{
		"Moor":          1,
		"Wald":          7,
		"Heide":         1,
		"Fließgewässer": 3,
	})
	assert.Equal(t, []LabelCount{
		{Label: "Wald", Count: 7},
		{Label: "Fließgewässer", Count: 3},
		{Label: "Heide", Count: 1},
		{Label: "Moor", Count: 1},
	}, ranked)
}
