package domain

// GeoPoint represents a geographic coordinate (WGS 84).
type GeoPoint struct {
	Lat float64
	Lon float64
}

// Bounds represents a geographic bounding box.
type Bounds struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// Center returns the arithmetic midpoint of the box corners. This is
// a rough centroid, not an area centroid; the initial view fit was
// tuned against it.
func (b Bounds) Center() GeoPoint {
	return GeoPoint{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lon: (b.MinLon + b.MaxLon) / 2,
	}
}

// Contains reports whether the point lies inside the box, edges
// included.
func (b Bounds) Contains(p GeoPoint) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}

// Expand grows each side outward by the given margins in degrees.
func (b Bounds) Expand(west, south, east, north float64) Bounds {
	return Bounds{
		MinLat: b.MinLat - south,
		MinLon: b.MinLon - west,
		MaxLat: b.MaxLat + north,
		MaxLon: b.MaxLon + east,
	}
}
