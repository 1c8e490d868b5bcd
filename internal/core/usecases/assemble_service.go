package usecases

import (
	"sort"

	"github.com/paulmach/orb"

	"github.com/prairiefare/partnermap/internal/core/domain"
)

// clusterGroupID is shared by every category layer so coincident
// markers cluster together across categories while each layer keeps
// its own toggle identity.
const clusterGroupID = "partners"

// AssembleOptions are the presentation knobs of the map document,
// sourced from configuration.
type AssembleOptions struct {
	Title           string
	TileURL         string
	TileAttribution string
	MaskColor       string
	MaskOpacity     float64
	OutlineColor    string
	OutlineWeight   float64
	BoundsPad       float64
	MinZoom         int
	MaxZoom         int
}

// AssembleService builds the declarative map document from the
// enriched record set and the region geometry. Category layers are
// discovered from data, never declared up front.
type AssembleService struct {
	opts AssembleOptions
}

// NewAssembleService creates an AssembleService.
func NewAssembleService(opts AssembleOptions) *AssembleService {
	return &AssembleService{opts: opts}
}

// Assemble produces the map document. The initial view fits the
// region bounds exactly; pan limits expand those bounds by the pad
// margin, doubled on the east edge so popups anchored near it can
// extend past the strict box.
func (s *AssembleService) Assemble(partners []domain.Partner, region *domain.Region, mask orb.MultiPolygon) *domain.MapDocument {
	bounds := region.Bounds()

	return &domain.MapDocument{
		Title:     s.opts.Title,
		Tiles:     domain.TileSpec{URL: s.opts.TileURL, Attribution: s.opts.TileAttribution},
		FitBounds: bounds,
		MaxBounds: bounds.Expand(s.opts.BoundsPad, s.opts.BoundsPad, 2*s.opts.BoundsPad, s.opts.BoundsPad),
		Center:    bounds.Center(),
		MinZoom:   s.opts.MinZoom,
		MaxZoom:   s.opts.MaxZoom,
		Mask: domain.OverlaySpec{
			Geometry:    mask,
			Color:       s.opts.MaskColor,
			FillOpacity: s.opts.MaskOpacity,
			Fill:        true,
			Stroke:      false,
		},
		Outline: domain.OverlaySpec{
			Geometry: region.Geometry,
			Color:    s.opts.OutlineColor,
			Weight:   s.opts.OutlineWeight,
			Fill:     false,
			Stroke:   true,
		},
		ClusterGroup: clusterGroupID,
		Layers:       s.layers(partners),
	}
}

// layers groups markers by the category values present in the data,
// one layer per distinct value, sorted for deterministic output.
func (s *AssembleService) layers(partners []domain.Partner) []domain.CategoryLayer {
	byCategory := make(map[string][]domain.Marker)
	for _, p := range partners {
		byCategory[p.Category] = append(byCategory[p.Category], domain.Marker{
			Lat:   p.Location.Lat,
			Lon:   p.Location.Lon,
			Popup: p.PopupHTML,
		})
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	layers := make([]domain.CategoryLayer, 0, len(categories))
	for _, c := range categories {
		layers = append(layers, domain.CategoryLayer{
			Category: c,
			Style:    domain.StyleFor(c),
			Markers:  byCategory[c],
		})
	}
	return layers
}
