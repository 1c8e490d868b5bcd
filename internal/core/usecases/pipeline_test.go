package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prairiefare/partnermap/internal/core/domain"
	"github.com/prairiefare/partnermap/internal/core/usecases"
)

// --- Mock ports ---

type mockPartnerSource struct {
	partners []domain.Partner
	err      error
}

func (m *mockPartnerSource) Load(ctx context.Context) ([]domain.Partner, error) {
	return m.partners, m.err
}

type mockBoundarySource struct {
	region *domain.Region
	err    error
}

func (m *mockBoundarySource) Load(ctx context.Context) (*domain.Region, error) {
	return m.region, m.err
}

type mockRenderer struct {
	doc *domain.MapDocument
	err error
}

func (m *mockRenderer) Render(ctx context.Context, doc *domain.MapDocument) error {
	m.doc = doc
	return m.err
}

func newPipeline(partners *mockPartnerSource, boundary *mockBoundarySource, renderer *mockRenderer) *usecases.Pipeline {
	return usecases.NewPipeline(
		partners, boundary, renderer,
		usecases.NewEnrichService(),
		usecases.NewMaskService(),
		usecases.NewAssembleService(testOptions()),
		1.0,
	)
}

// --- Tests ---

func TestPipeline_Generate(t *testing.T) {
	partners := &mockPartnerSource{partners: []domain.Partner{
		{Name: "Market", Category: "Farmers Market", Location: domain.GeoPoint{Lat: 40, Lon: -89}},
		{Name: "Shop", Category: "", Location: domain.GeoPoint{Lat: 41, Lon: -88}},
	}}
	boundary := &mockBoundarySource{region: illinoisLike()}
	renderer := &mockRenderer{}

	err := newPipeline(partners, boundary, renderer).Generate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if renderer.doc == nil {
		t.Fatal("renderer was not called")
	}

	doc := renderer.doc
	if len(doc.Layers) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(doc.Layers))
	}
	if doc.Layers[1].Category != "Other" {
		t.Errorf("blank category should surface as Other, got %q", doc.Layers[1].Category)
	}
	if len(doc.Mask.Geometry) == 0 {
		t.Error("mask geometry missing from document")
	}
	if doc.Layers[0].Markers[0].Popup == "" {
		t.Error("markers must carry enriched popup bodies")
	}
}

func TestPipeline_PartnerLoadErrorIsFatal(t *testing.T) {
	loadErr := errors.New("row 3: bad position")
	renderer := &mockRenderer{}

	err := newPipeline(
		&mockPartnerSource{err: loadErr},
		&mockBoundarySource{region: illinoisLike()},
		renderer,
	).Generate(context.Background())

	if !errors.Is(err, loadErr) {
		t.Fatalf("expected wrapped load error, got %v", err)
	}
	if renderer.doc != nil {
		t.Error("no partial map may be produced after a load failure")
	}
}

func TestPipeline_BoundaryLoadErrorIsFatal(t *testing.T) {
	loadErr := errors.New("no polygon feature")
	renderer := &mockRenderer{}

	err := newPipeline(
		&mockPartnerSource{},
		&mockBoundarySource{err: loadErr},
		renderer,
	).Generate(context.Background())

	if !errors.Is(err, loadErr) {
		t.Fatalf("expected wrapped load error, got %v", err)
	}
	if renderer.doc != nil {
		t.Error("no partial map may be produced after a load failure")
	}
}

func TestPipeline_RenderErrorPropagates(t *testing.T) {
	renderErr := errors.New("disk full")
	err := newPipeline(
		&mockPartnerSource{},
		&mockBoundarySource{region: illinoisLike()},
		&mockRenderer{err: renderErr},
	).Generate(context.Background())

	if !errors.Is(err, renderErr) {
		t.Fatalf("expected wrapped render error, got %v", err)
	}
}

func TestPipeline_BoundsContainInRegionPartners(t *testing.T) {
	// Sanity property: any partner inside the region is inside the
	// region's bounding box.
	region := illinoisLike()
	bounds := region.Bounds()
	partners := []domain.Partner{
		{Name: "in", Location: domain.GeoPoint{Lat: 40, Lon: -89}},
		{Name: "out", Location: domain.GeoPoint{Lat: 45, Lon: -80}},
	}
	for _, p := range partners {
		if region.Contains(p.Location) && !bounds.Contains(p.Location) {
			t.Errorf("partner %s inside region but outside bounds", p.Name)
		}
	}
	if !region.Contains(partners[0].Location) {
		t.Error("expected first partner inside region")
	}
	if region.Contains(partners[1].Location) {
		t.Error("expected second partner outside region")
	}
}
