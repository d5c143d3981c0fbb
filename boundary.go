package eeviewer

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// CustomRegionName names a region drawn by the user.
const CustomRegionName = "Custom"

// Boundary is the outline of a country.
type Boundary struct {
	ID       string
	Name     string
	Geometry orb.Geometry
}

// DecodeBoundary decodes a country GeoJSON file. Both a bare Feature and a
// FeatureCollection holding the country as its first feature are accepted.
// id is used when the feature does not carry its own identifier.
func DecodeBoundary(id string, b []byte) (*Boundary, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return nil, fmt.Errorf("eeviewer: decoding boundary %s: %w", id, err)
	}
	var f *geojson.Feature
	switch probe.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(b)
		if err != nil {
			return nil, fmt.Errorf("eeviewer: decoding boundary %s: %w", id, err)
		}
		if len(fc.Features) == 0 {
			return nil, fmt.Errorf("eeviewer: boundary %s has no features", id)
		}
		f = fc.Features[0]
	case "Feature":
		var err error
		f, err = geojson.UnmarshalFeature(b)
		if err != nil {
			return nil, fmt.Errorf("eeviewer: decoding boundary %s: %w", id, err)
		}
	default:
		return nil, fmt.Errorf("eeviewer: boundary %s has unsupported type %q", id, probe.Type)
	}
	return boundaryFromFeature(id, f)
}

func boundaryFromFeature(id string, f *geojson.Feature) (*Boundary, error) {
	switch f.Geometry.(type) {
	case orb.Polygon, orb.MultiPolygon:
	default:
		return nil, fmt.Errorf("eeviewer: boundary %s is not polygonal", id)
	}
	b := &Boundary{ID: id, Geometry: f.Geometry}
	if fid, ok := f.ID.(string); ok && fid != "" {
		b.ID = fid
	}
	if name, ok := f.Properties["name"].(string); ok {
		b.Name = name
	}
	return b, nil
}

// Feature returns b as a GeoJSON feature.
func (b *Boundary) Feature() *geojson.Feature {
	f := geojson.NewFeature(b.Geometry)
	f.ID = b.ID
	f.Properties["name"] = b.Name
	return f
}

// MarshalJSON encodes b as a GeoJSON feature.
func (b *Boundary) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Feature())
}

// UnmarshalJSON decodes b from a GeoJSON feature.
func (b *Boundary) UnmarshalJSON(data []byte) error {
	f, err := geojson.UnmarshalFeature(data)
	if err != nil {
		return err
	}
	d, err := boundaryFromFeature("", f)
	if err != nil {
		return err
	}
	*b = *d
	return nil
}
