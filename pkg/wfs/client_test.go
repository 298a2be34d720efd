package wfs

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const featureCollectionJSON = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"id": "DEBBAL0100000001",
			"properties": {"nutzart": "Wald"},
			"geometry": {"type": "Polygon", "coordinates": [[[13.0,52.4],[13.1,52.4],[13.1,52.5],[13.0,52.4]]]}
		},
		{
			"type": "Feature",
			"id": "DEBBAL0100000002",
			"properties": {"nutzart": "Moor"},
			"geometry": {"type": "Polygon", "coordinates": [[[13.2,52.4],[13.3,52.4],[13.3,52.5],[13.2,52.4]]]}
		}
	]
}`

func brandenburgBox() orb.Bound {
	return orb.Bound{Min: orb.Point{11.2, 51.35}, Max: orb.Point{14.77, 53.56}}
}

func TestGetFeatures(t *testing.T) {
	t.Run("builds a WFS GetFeature query and decodes the response", func(t *testing.T) {
		var query url.Values
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.Query()
			w.Write([]byte(featureCollectionJSON))
		}))
		defer srv.Close()

		client := NewClient(WithEndpoint(srv.URL), WithMaxFeatures(100000))
		features, err := client.GetFeatures(brandenburgBox())
		require.NoError(t, err)
		require.Len(t, features, 2)
		assert.Equal(t, "DEBBAL0100000001", features[0].ID)
		assert.Equal(t, "Wald", features[0].Properties["nutzart"])

		assert.Equal(t, "WFS", query.Get("SERVICE"))
		assert.Equal(t, "2.0.0", query.Get("VERSION"))
		assert.Equal(t, "GetFeature", query.Get("REQUEST"))
		assert.Equal(t, "ave:Nutzung", query.Get("TYPENAMES"))
		assert.Equal(t, "application/json", query.Get("OUTPUTFORMAT"))
		assert.Equal(t, "EPSG:4326", query.Get("SRSNAME"))
		assert.Equal(t, "100000", query.Get("COUNT"))
		// EPSG:4326 BBOX is lat,lon ordered.
		assert.Equal(t, "51.35,11.2,53.56,14.77,EPSG:4326", query.Get("BBOX"))
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client := NewClient(WithEndpoint(srv.URL))
		_, err := client.GetFeatures(brandenburgBox())
		assert.Error(t, err)
	})

	t.Run("malformed response is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<ows:ExceptionReport/>"))
		}))
		defer srv.Close()

		client := NewClient(WithEndpoint(srv.URL))
		_, err := client.GetFeatures(brandenburgBox())
		assert.Error(t, err)
	})

	t.Run("unreachable endpoint is an error", func(t *testing.T) {
		client := NewClient(WithEndpoint("http://127.0.0.1:1"))
		_, err := client.GetFeatures(brandenburgBox())
		assert.Error(t, err)
	})
}

func TestDownloadGML(t *testing.T) {
	t.Run("streams the response body to a file", func(t *testing.T) {
		const gml = `<wfs:FeatureCollection/>`
		var query url.Values
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.Query()
			w.Write([]byte(gml))
		}))
		defer srv.Close()

		path := filepath.Join(t.TempDir(), "chunk_00.gml")
		client := NewClient(WithEndpoint(srv.URL))
		box := orb.Bound{Min: orb.Point{280000, 5700000}, Max: orb.Point{350000, 5800000}}
		n, err := client.DownloadGML(box, path)
		require.NoError(t, err)
		assert.Equal(t, int64(len(gml)), n)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, gml, string(data))

		// Projected CRS keeps easting,northing order and no OUTPUTFORMAT.
		assert.Equal(t, "280000,5700000,350000,5800000,EPSG:25833", query.Get("BBOX"))
		assert.Equal(t, "EPSG:25833", query.Get("SRSNAME"))
		assert.False(t, query.Has("OUTPUTFORMAT"))
	})

	t.Run("non-200 status leaves no file behind", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad request", http.StatusBadRequest)
		}))
		defer srv.Close()

		path := filepath.Join(t.TempDir(), "chunk_00.gml")
		client := NewClient(WithEndpoint(srv.URL))
		_, err := client.DownloadGML(orb.Bound{}, path)
		require.Error(t, err)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}
