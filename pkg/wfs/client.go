// Package wfs fetches features from the Brandenburg ALKIS WFS
// (Web Feature Service) endpoint.
package wfs

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// DefaultEndpoint is the Brandenburg "ALKIS vereinfacht" WFS.
const DefaultEndpoint = "https://isk.geobasis-bb.de/ows/alkis_vereinf_wfs"

// DefaultTypeName is the land-use feature type served by the endpoint.
const DefaultTypeName = "ave:Nutzung"

// DefaultMaxFeatures is the per-request feature cap. The service truncates
// responses beyond 100k features, which is why downloads are chunked.
const DefaultMaxFeatures = 100000

// The government service can be very slow on large cells.
const defaultTimeout = 5 * time.Minute

type Client struct {
	endpoint    string
	typeName    string
	maxFeatures int
	httpClient  *http.Client
}

type Option func(*Client)

func WithEndpoint(u string) Option {
	return func(c *Client) {
		c.endpoint = u
	}
}

func WithTypeName(name string) Option {
	return func(c *Client) {
		c.typeName = name
	}
}

func WithMaxFeatures(n int) Option {
	return func(c *Client) {
		c.maxFeatures = n
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(opt ...Option) *Client {
	c := &Client{
		endpoint:    DefaultEndpoint,
		typeName:    DefaultTypeName,
		maxFeatures: DefaultMaxFeatures,
		httpClient:  &http.Client{Timeout: defaultTimeout},
	}
	for _, f := range opt {
		f(c)
	}
	return c
}

// bboxParam renders a WFS BBOX parameter in the axis order the caller
// already arranged for the SRS.
func bboxParam(srs string, coords ...float64) string {
	parts := make([]string, 0, len(coords)+1)
	for _, c := range coords {
		parts = append(parts, strconv.FormatFloat(c, 'f', -1, 64))
	}
	return strings.Join(append(parts, srs), ",")
}

// GetFeatures requests all features intersecting box and decodes the
// GeoJSON response. Coordinates are EPSG:4326; note the service expects
// the BBOX parameter in lat,lon axis order for this SRS.
func (c *Client) GetFeatures(box orb.Bound) ([]*geojson.Feature, error) {
	params := url.Values{}
	params.Set("SERVICE", "WFS")
	params.Set("VERSION", "2.0.0")
	params.Set("REQUEST", "GetFeature")
	params.Set("TYPENAMES", c.typeName)
	params.Set("OUTPUTFORMAT", "application/json")
	params.Set("SRSNAME", "EPSG:4326")
	params.Set("BBOX", bboxParam("EPSG:4326", box.Min[1], box.Min[0], box.Max[1], box.Max[0]))
	params.Set("COUNT", strconv.Itoa(c.maxFeatures))
	u := c.endpoint + "?" + params.Encode()

	res, err := c.httpClient.Get(u)
	if err != nil {
		return nil, fmt.Errorf("error getting %s: %v", u, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status fetching %s: %s", u, res.Status)
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from %s: %v", c.endpoint, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding feature collection from %s: %v", c.endpoint, err)
	}
	return fc.Features, nil
}

// DownloadGML requests all features intersecting box in the service's
// native CRS (EPSG:25833, easting/northing axis order) as GML and streams
// the response to path. It returns the number of bytes written. Conversion
// to GeoJSON is left to ogr2ogr.
func (c *Client) DownloadGML(box orb.Bound, path string) (int64, error) {
	params := url.Values{}
	params.Set("SERVICE", "WFS")
	params.Set("VERSION", "2.0.0")
	params.Set("REQUEST", "GetFeature")
	params.Set("TYPENAMES", c.typeName)
	params.Set("SRSNAME", "EPSG:25833")
	params.Set("BBOX", bboxParam("EPSG:25833", box.Min[0], box.Min[1], box.Max[0], box.Max[1]))
	params.Set("COUNT", strconv.Itoa(c.maxFeatures))
	u := c.endpoint + "?" + params.Encode()

	res, err := c.httpClient.Get(u)
	if err != nil {
		return 0, fmt.Errorf("error getting %s: %v", u, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status fetching %s: %s", u, res.Status)
	}
	w, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("error creating %s: %v", path, err)
	}
	n, err := io.Copy(w, res.Body)
	if err != nil {
		w.Close()
		return n, fmt.Errorf("error writing %s: %v", path, err)
	}
	if err := w.Close(); err != nil {
		return n, fmt.Errorf("error closing %s: %v", path, err)
	}
	return n, nil
}
