// Package boundary loads the boundary region from standard
// geographic vector formats: Esri shapefile or GeoJSON. Output is
// always WGS 84 lon/lat so overlay and containment operations against
// partner positions are valid.
package boundary

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/prairiefare/partnermap/internal/core/domain"
)

const epsgWGS84 = 4326

var (
	// ErrNoPolygon means the file held no polygonal feature.
	ErrNoPolygon = errors.New("no polygon feature in boundary file")
	// ErrUnsupportedCRS means the declared EPSG code has no known
	// transform to WGS 84.
	ErrUnsupportedCRS = errors.New("unsupported boundary CRS")
	// ErrCRSMismatch means the declared CRS contradicts the file
	// format or the coordinates themselves.
	ErrCRSMismatch = errors.New("boundary CRS mismatch")
)

// Source loads a boundary region from a file, dispatching on the
// extension. epsg declares the file's coordinate reference system;
// shapefile coordinates are reprojected when it is not 4326.
type Source struct {
	path string
	epsg int
}

// New creates a boundary Source.
func New(path string, epsg int) *Source {
	return &Source{path: path, epsg: epsg}
}

// Load reads the boundary file.
func (s *Source) Load(ctx context.Context) (*domain.Region, error) {
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".shp":
		return loadShapefile(s.path, s.epsg)
	case ".json", ".geojson":
		if s.epsg != epsgWGS84 {
			return nil, fmt.Errorf("%w: GeoJSON is lon/lat by definition, got EPSG:%d", ErrCRSMismatch, s.epsg)
		}
		return loadGeoJSON(s.path)
	default:
		return nil, fmt.Errorf("unrecognized boundary format %q", filepath.Ext(s.path))
	}
}

// checkLonLat rejects geometry whose coordinates cannot be WGS 84
// degrees. Catches a projected file declared as 4326.
func checkLonLat(region *domain.Region) error {
	b := region.Bounds()
	if b.MinLon < -180 || b.MaxLon > 180 || b.MinLat < -90 || b.MaxLat > 90 {
		return fmt.Errorf("%w: coordinates outside lon/lat range (%.1f..%.1f, %.1f..%.1f)",
			ErrCRSMismatch, b.MinLon, b.MaxLon, b.MinLat, b.MaxLat)
	}
	return nil
}
