package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prairiefare/partnermap/internal/core/domain"
	"github.com/prairiefare/partnermap/internal/core/ports"
	"github.com/prairiefare/partnermap/internal/pkg/geospatial"
)

// Pipeline runs the whole batch: load partners and boundary, enrich,
// build the mask, assemble the document, render. Single pass, no
// feedback loops; any load error aborts before rendering so a partial
// map is never produced.
type Pipeline struct {
	partners ports.PartnerSource
	boundary ports.BoundarySource
	renderer ports.MapRenderer

	enrich   *EnrichService
	mask     *MaskService
	assemble *AssembleService

	bufferMargin float64
}

// NewPipeline wires the pipeline stages together.
func NewPipeline(partners ports.PartnerSource, boundary ports.BoundarySource, renderer ports.MapRenderer, enrich *EnrichService, mask *MaskService, assemble *AssembleService, bufferMargin float64) *Pipeline {
	return &Pipeline{
		partners:     partners,
		boundary:     boundary,
		renderer:     renderer,
		enrich:       enrich,
		mask:         mask,
		assemble:     assemble,
		bufferMargin: bufferMargin,
	}
}

// Generate executes one run.
func (p *Pipeline) Generate(ctx context.Context) error {
	records, err := p.partners.Load(ctx)
	if err != nil {
		return fmt.Errorf("load partners: %w", err)
	}
	slog.Info("partners loaded", "count", len(records))

	region, err := p.boundary.Load(ctx)
	if err != nil {
		return fmt.Errorf("load boundary: %w", err)
	}
	slog.Info("boundary loaded", "name", region.Name, "bounds", region.Bounds())

	records = p.enrich.Enrich(records)
	p.warnOutliers(records, region)

	mask, err := p.mask.Mask(region, p.bufferMargin)
	if err != nil {
		return fmt.Errorf("build mask: %w", err)
	}

	doc := p.assemble.Assemble(records, region, mask)
	slog.Info("map assembled", "layers", len(doc.Layers), "center", doc.Center)

	if err := p.renderer.Render(ctx, doc); err != nil {
		return fmt.Errorf("render map: %w", err)
	}
	return nil
}

// warnOutliers logs partners whose position falls outside the
// region. Outliers are not an error; the region is a visual frame,
// not a validation fence.
func (p *Pipeline) warnOutliers(records []domain.Partner, region *domain.Region) {
	center := region.Bounds().Center()
	for _, r := range records {
		if region.Contains(r.Location) {
			continue
		}
		km := geospatial.Haversine(center.Lat, center.Lon, r.Location.Lat, r.Location.Lon) / 1000
		slog.Warn("partner outside boundary region",
			"name", r.Name,
			"category", r.Category,
			"distance_from_center_km", fmt.Sprintf("%.1f", km),
		)
	}
}
