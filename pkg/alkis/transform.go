package alkis

import (
	"sort"

	"github.com/paulmach/orb/geojson"
)

// NutzartProperty is the attribute carrying the land-use label in the
// Brandenburg WFS responses.
const NutzartProperty = "nutzart"

// BezeichProperty is the single attribute carried by transformed features.
const BezeichProperty = "bezeich"

// Transform projects raw WFS features onto the map application's schema:
// geometry plus a single bezeich property. Features whose nutzart label has
// no mapping (including features without a nutzart at all) are dropped.
func Transform(features []*geojson.Feature) []*geojson.Feature {
	transformed := make([]*geojson.Feature, 0, len(features))
	for _, f := range features {
		nutzart, _ := f.Properties[NutzartProperty].(string)
		bezeich, ok := MapNutzart(nutzart)
		if !ok {
			continue
		}
		nf := geojson.NewFeature(f.Geometry)
		nf.Properties = geojson.Properties{BezeichProperty: bezeich}
		transformed = append(transformed, nf)
	}
	return transformed
}

// CountByNutzart tallies features per nutzart label, for progress
// reporting before a transform.
func CountByNutzart(features []*geojson.Feature) map[string]int {
	counts := make(map[string]int)
	for _, f := range features {
		nutzart, _ := f.Properties[NutzartProperty].(string)
		counts[nutzart]++
	}
	return counts
}

// LabelCount pairs a nutzart label with its feature count.
type LabelCount struct {
	Label string
	Count int
}

// RankByCount orders label counts by descending count, so the dominant
// categories report first; the label breaks ties.
func RankByCount(counts map[string]int) []LabelCount {
	ranked := make([]LabelCount, 0, len(counts))
	for label, count := range counts {
		ranked = append(ranked, LabelCount{Label: label, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Label < ranked[j].Label
	})
	return ranked
}
