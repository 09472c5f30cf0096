// Package geo indexes the world boundary GeoJSON by ISO3 code and
// answers the geometry questions map rendering needs: one country's
// feature, its centroid, and the bounds of a selection.
package geo

import (
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// property keys that carry the ISO3 code, tried in order; boundary
// files from different sources disagree on the casing.
var isoProperties = []string{"iso_a3", "ISO_A3", "adm0_a3", "ADM0_A3"}

type Index struct {
	features map[string]*geojson.Feature
}

// Load reads and indexes the boundary collection. A missing file is an
// error the caller downgrades to "maps unavailable".
func Load(path string) (*Index, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geojson %s: %w", path, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("parse geojson %s: %w", path, err)
	}

	ix := &Index{features: make(map[string]*geojson.Feature, len(fc.Features))}
	for _, f := range fc.Features {
		for _, key := range isoProperties {
			if code, ok := f.Properties[key].(string); ok && code != "" {
				ix.features[strings.ToUpper(code)] = f
				break
			}
		}
	}
	return ix, nil
}

func (ix *Index) Len() int { return len(ix.features) }

// Feature returns the boundary feature for an ISO3 code.
func (ix *Index) Feature(iso3 string) (*geojson.Feature, bool) {
	f, ok := ix.features[strings.ToUpper(iso3)]
	return f, ok
}

// Summary is the map-centering data for one country.
type Summary struct {
	Code     string     `json:"code"`
	Centroid LatLng     `json:"centroid"`
	BBox     [4]float64 `json:"bbox"` // [minLat, minLng, maxLat, maxLng]
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Summarize computes centroid and bounding box for one country.
func (ix *Index) Summarize(iso3 string) (*Summary, bool) {
	f, ok := ix.Feature(iso3)
	if !ok || f.Geometry == nil {
		return nil, false
	}
	centroid, _ := planar.CentroidArea(f.Geometry)
	b := f.Geometry.Bound()
	return &Summary{
		Code:     strings.ToUpper(iso3),
		Centroid: LatLng{Lat: centroid.Lat(), Lng: centroid.Lon()},
		BBox:     [4]float64{b.Min.Lat(), b.Min.Lon(), b.Max.Lat(), b.Max.Lon()},
	}, true
}

// Bounds returns the union bound of a selection; ok is false when none
// of the codes has geometry.
func (ix *Index) Bounds(codes []string) (orb.Bound, bool) {
	var bound orb.Bound
	found := false
	for _, code := range codes {
		f, ok := ix.Feature(code)
		if !ok || f.Geometry == nil {
			continue
		}
		if !found {
			bound = f.Geometry.Bound()
			found = true
		} else {
			bound = bound.Union(f.Geometry.Bound())
		}
	}
	return bound, found
}
