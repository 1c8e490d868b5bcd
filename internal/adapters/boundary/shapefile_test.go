package boundary_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	shp "github.com/jonas-p/go-shp"

	"github.com/prairiefare/partnermap/internal/adapters/boundary"
	"github.com/prairiefare/partnermap/internal/core/domain"
)

// writeSquareShapefile writes one polygon shape with a clockwise
// exterior ring from (2,2) to (4,4), the shapefile winding for an
// outer ring.
func writeSquareShapefile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "square.shp")

	w, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		t.Fatal(err)
	}

	w.Write(&shp.Polygon{
		Box:       shp.Box{MinX: 2, MinY: 2, MaxX: 4, MaxY: 4},
		NumParts:  1,
		NumPoints: 5,
		Parts:     []int32{0},
		Points: []shp.Point{
			{X: 2, Y: 2}, {X: 2, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 2}, {X: 2, Y: 2},
		},
	})
	w.Close()
	return path
}

func TestLoadShapefile(t *testing.T) {
	path := writeSquareShapefile(t)

	region, err := boundary.New(path, 4326).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if region.Name != "square" {
		t.Errorf("name = %q, want square", region.Name)
	}

	b := region.Bounds()
	want := domain.Bounds{MinLat: 2, MinLon: 2, MaxLat: 4, MaxLon: 4}
	if b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
	if !region.Contains(domain.GeoPoint{Lat: 3, Lon: 3}) {
		t.Error("interior point should be inside region")
	}
	if region.Contains(domain.GeoPoint{Lat: 5, Lon: 5}) {
		t.Error("exterior point should be outside region")
	}
}

func TestLoadShapefile_HoleBecomesInteriorRing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "donut.shp")

	w, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		t.Fatal(err)
	}

	// Outer ring clockwise, hole counter-clockwise, both parts of
	// one shape record.
	w.Write(&shp.Polygon{
		Box:       shp.Box{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10},
		NumParts:  2,
		NumPoints: 10,
		Parts:     []int32{0, 5},
		Points: []shp.Point{
			{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0},
			{X: 4, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 6}, {X: 4, Y: 6}, {X: 4, Y: 4},
		},
	})
	w.Close()

	region, err := boundary.New(path, 4326).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(region.Geometry) != 1 || len(region.Geometry[0]) != 2 {
		t.Fatalf("expected one polygon with one hole, got %d polygons", len(region.Geometry))
	}
	if region.Contains(domain.GeoPoint{Lat: 5, Lon: 5}) {
		t.Error("hole interior must be outside the region")
	}
	if !region.Contains(domain.GeoPoint{Lat: 2, Lon: 2}) {
		t.Error("ring between shell and hole must be inside the region")
	}
}

func TestLoadShapefile_OrphanHoleIsDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orphan.shp")

	w, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		t.Fatal(err)
	}

	// A single counter-clockwise ring: an interior ring with no
	// exterior shell to attach to. It is dropped, leaving no
	// polygonal geometry at all.
	w.Write(&shp.Polygon{
		Box:       shp.Box{MinX: 2, MinY: 2, MaxX: 4, MaxY: 4},
		NumParts:  1,
		NumPoints: 5,
		Parts:     []int32{0},
		Points: []shp.Point{
			{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 4}, {X: 2, Y: 4}, {X: 2, Y: 2},
		},
	})
	w.Close()

	_, err = boundary.New(path, 4326).Load(context.Background())
	if !errors.Is(err, boundary.ErrNoPolygon) {
		t.Fatalf("expected ErrNoPolygon, got %v", err)
	}
}

func TestLoadShapefile_UnknownEPSGIsFatal(t *testing.T) {
	path := writeSquareShapefile(t)

	_, err := boundary.New(path, 999999).Load(context.Background())
	if !errors.Is(err, boundary.ErrUnsupportedCRS) {
		t.Fatalf("expected ErrUnsupportedCRS, got %v", err)
	}
}

func TestLoadShapefile_MissingFile(t *testing.T) {
	_, err := boundary.New(filepath.Join(t.TempDir(), "nope.shp"), 4326).Load(context.Background())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
