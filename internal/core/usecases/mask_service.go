package usecases

import (
	"fmt"

	"github.com/engelsjk/polygol"
	"github.com/paulmach/orb"

	"github.com/prairiefare/partnermap/internal/core/domain"
)

// MaskService computes the dimming overlay: the area inside a
// buffered bounding rectangle but outside the boundary region. The
// set-difference is delegated to a Martinez–Rueda clipping library so
// shared vertices and multipolygon holes are handled robustly.
type MaskService struct{}

// NewMaskService creates a MaskService.
func NewMaskService() *MaskService {
	return &MaskService{}
}

// Buffer expands the bounds outward by margin degrees on every side.
// The margin only needs to be large enough that the rectangle covers
// the visible map at all permitted zoom levels.
func (s *MaskService) Buffer(b domain.Bounds, margin float64) domain.Bounds {
	return b.Expand(margin, margin, margin, margin)
}

// Mask returns (buffered bounds rectangle) minus (region geometry).
// Interior rings of the region become islands of the mask.
func (s *MaskService) Mask(region *domain.Region, margin float64) (orb.MultiPolygon, error) {
	rect := boundsRing(s.Buffer(region.Bounds(), margin))
	subject := toPolygolGeom(orb.MultiPolygon{orb.Polygon{rect}})
	clip := toPolygolGeom(region.Geometry)

	diff, err := polygol.Difference(subject, clip)
	if err != nil {
		return nil, fmt.Errorf("mask difference: %w", err)
	}
	return fromPolygolGeom(diff), nil
}

func boundsRing(b domain.Bounds) orb.Ring {
	return orb.Ring{
		{b.MinLon, b.MinLat},
		{b.MaxLon, b.MinLat},
		{b.MaxLon, b.MaxLat},
		{b.MinLon, b.MaxLat},
		{b.MinLon, b.MinLat},
	}
}

func toPolygolGeom(mp orb.MultiPolygon) [][][][]float64 {
	geom := make([][][][]float64, len(mp))
	for i, poly := range mp {
		rings := make([][][]float64, len(poly))
		for j, ring := range poly {
			pts := make([][]float64, len(ring))
			for k, pt := range ring {
				pts[k] = []float64{pt[0], pt[1]}
			}
			rings[j] = pts
		}
		geom[i] = rings
	}
	return geom
}

func fromPolygolGeom(geom [][][][]float64) orb.MultiPolygon {
	mp := make(orb.MultiPolygon, 0, len(geom))
	for _, rings := range geom {
		poly := make(orb.Polygon, 0, len(rings))
		for _, pts := range rings {
			ring := make(orb.Ring, 0, len(pts))
			for _, pt := range pts {
				ring = append(ring, orb.Point{pt[0], pt[1]})
			}
			poly = append(poly, ring)
		}
		mp = append(mp, poly)
	}
	return mp
}
