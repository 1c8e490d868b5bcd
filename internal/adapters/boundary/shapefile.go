package boundary

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/wroge/wgs84"

	"github.com/prairiefare/partnermap/internal/core/domain"
)

// loadShapefile reads every polygon shape in the file into one
// multipolygon. Shapefile ring winding is the reverse of GeoJSON:
// exterior rings are clockwise, interior rings counter-clockwise.
func loadShapefile(path string, epsg int) (*domain.Region, error) {
	reproject, err := transformFor(epsg)
	if err != nil {
		return nil, err
	}

	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shapefile: %w", err)
	}
	defer r.Close()

	var mp orb.MultiPolygon
	for r.Next() {
		_, s := r.Shape()

		var points []shp.Point
		var parts []int32
		switch shape := s.(type) {
		case *shp.Polygon:
			points, parts = shape.Points, shape.Parts
		case *shp.PolygonZ:
			points, parts = shape.Points, shape.Parts
		default:
			continue
		}

		for _, ring := range splitRings(points, parts, reproject) {
			if ring.Orientation() == orb.CW {
				// Exterior ring starts a new polygon.
				mp = append(mp, orb.Polygon{ring})
			} else {
				attachHole(mp, ring)
			}
		}
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("read shapefile: %w", err)
	}
	if len(mp) == 0 {
		return nil, ErrNoPolygon
	}

	region := &domain.Region{
		Name:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Geometry: mp,
	}
	if epsg == epsgWGS84 {
		if err := checkLonLat(region); err != nil {
			return nil, err
		}
	}
	return region, nil
}

// transformFor returns a point transform into WGS 84 lon/lat, or the
// identity when the file already is lon/lat.
func transformFor(epsg int) (func(x, y float64) (float64, float64), error) {
	if epsg == epsgWGS84 {
		return func(x, y float64) (float64, float64) { return x, y }, nil
	}
	from := wgs84.EPSG().Code(epsg)
	if from == nil {
		return nil, fmt.Errorf("%w: EPSG:%d", ErrUnsupportedCRS, epsg)
	}
	t := wgs84.Transform(from, wgs84.LonLat())
	return func(x, y float64) (float64, float64) {
		lon, lat, _ := t(x, y, 0)
		return lon, lat
	}, nil
}

// splitRings cuts the flat point array at the part offsets.
func splitRings(points []shp.Point, parts []int32, reproject func(x, y float64) (float64, float64)) []orb.Ring {
	if len(parts) == 0 {
		parts = []int32{0}
	}
	rings := make([]orb.Ring, 0, len(parts))
	for i, start := range parts {
		end := len(points)
		if i+1 < len(parts) {
			end = int(parts[i+1])
		}
		ring := make(orb.Ring, 0, end-int(start))
		for _, p := range points[start:end] {
			lon, lat := reproject(p.X, p.Y)
			ring = append(ring, orb.Point{lon, lat})
		}
		if len(ring) >= 4 {
			rings = append(rings, ring)
		}
	}
	return rings
}

// attachHole adds an interior ring to the polygon whose exterior
// contains it, or to the most recent polygon when no shell matches
// (degenerate but tolerated input). A hole arriving before any shell
// has nowhere to go and is dropped with a warning.
func attachHole(mp orb.MultiPolygon, hole orb.Ring) {
	for i := len(mp) - 1; i >= 0; i-- {
		shell := orb.Polygon{mp[i][0]}
		if planar.PolygonContains(shell, hole[0]) {
			mp[i] = append(mp[i], hole)
			return
		}
	}
	if len(mp) == 0 {
		slog.Warn("dropping interior ring with no exterior shell", "points", len(hole))
		return
	}
	last := len(mp) - 1
	mp[last] = append(mp[last], hole)
}
