package pipeline

import (
	"github.com/paulmach/orb/geojson"
)

// gmlIDProperty is the fallback identifier attribute. Some layers of the
// service omit the GeoJSON id member and carry the identifier here instead.
const gmlIDProperty = "gml_id"

// Collector accumulates features across grid cells, dropping duplicates by
// feature identifier. Cells share boundaries and large parcels span cells,
// so the same feature can arrive more than once; the first occurrence wins
// and output order follows first-seen order.
type Collector struct {
	seen      map[string]bool
	features  []*geojson.Feature
	fallbacks int
	skipped   int
}

func NewCollector() *Collector {
	return &Collector{seen: make(map[string]bool)}
}

// Add folds one cell's features into the collection. Features carrying no
// identifier under either field are skipped entirely.
func (c *Collector) Add(features []*geojson.Feature) {
	for _, f := range features {
		id := c.featureID(f)
		if id == "" {
			c.skipped++
			continue
		}
		if c.seen[id] {
			continue
		}
		c.seen[id] = true
		c.features = append(c.features, f)
	}
}

// featureID resolves a feature's identifier: the GeoJSON id member first,
// then the gml_id property. The fallback is counted so upstream schema
// drift stays visible in the run log.
func (c *Collector) featureID(f *geojson.Feature) string {
	if s, ok := f.ID.(string); ok && s != "" {
		return s
	}
	if s, ok := f.Properties[gmlIDProperty].(string); ok && s != "" {
		c.fallbacks++
		return s
	}
	return ""
}

// Features returns the collected features in first-seen order.
func (c *Collector) Features() []*geojson.Feature {
	return c.features
}

func (c *Collector) Len() int {
	return len(c.features)
}

// Fallbacks reports how many collected features were identified via the
// gml_id property instead of the id member.
func (c *Collector) Fallbacks() int {
	return c.fallbacks
}

// Skipped reports how many features carried no identifier at all.
func (c *Collector) Skipped() int {
	return c.skipped
}
