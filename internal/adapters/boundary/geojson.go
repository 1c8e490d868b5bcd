package boundary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/prairiefare/partnermap/internal/core/domain"
)

// loadGeoJSON accepts a FeatureCollection, a single Feature, or a
// bare Geometry. All polygonal features are merged into one
// multipolygon; non-polygonal features are ignored.
func loadGeoJSON(path string) (*domain.Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read boundary file: %w", err)
	}

	geoms, name, err := decodeGeoJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse boundary file: %w", err)
	}

	var mp orb.MultiPolygon
	for _, g := range geoms {
		switch t := g.(type) {
		case orb.Polygon:
			mp = append(mp, t)
		case orb.MultiPolygon:
			mp = append(mp, t...)
		}
	}
	if len(mp) == 0 {
		return nil, ErrNoPolygon
	}

	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	region := &domain.Region{Name: name, Geometry: mp}
	if err := checkLonLat(region); err != nil {
		return nil, err
	}
	return region, nil
}

func decodeGeoJSON(data []byte) ([]orb.Geometry, string, error) {
	if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil {
		geoms := make([]orb.Geometry, 0, len(fc.Features))
		var name string
		for _, f := range fc.Features {
			geoms = append(geoms, f.Geometry)
			if name == "" {
				name = featureName(f)
			}
		}
		return geoms, name, nil
	}
	if f, err := geojson.UnmarshalFeature(data); err == nil {
		return []orb.Geometry{f.Geometry}, featureName(f), nil
	}
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, "", err
	}
	return []orb.Geometry{g.Geometry()}, "", nil
}

func featureName(f *geojson.Feature) string {
	for _, key := range []string{"NAME", "name"} {
		if v, ok := f.Properties[key].(string); ok {
			return v
		}
	}
	return ""
}
