package domain

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Region is the boundary area of interest (state outline). Geometry
// is always WGS 84 lon/lat; loaders reproject before constructing a
// Region.
type Region struct {
	Name     string
	Geometry orb.MultiPolygon
}

// Bounds returns the axis-aligned envelope of the region geometry.
func (r *Region) Bounds() Bounds {
	b := r.Geometry.Bound()
	return Bounds{
		MinLat: b.Min.Lat(),
		MinLon: b.Min.Lon(),
		MaxLat: b.Max.Lat(),
		MaxLon: b.Max.Lon(),
	}
}

// Contains reports whether the point falls inside the region,
// respecting interior rings.
func (r *Region) Contains(p GeoPoint) bool {
	return planar.MultiPolygonContains(r.Geometry, orb.Point{p.Lon, p.Lat})
}
