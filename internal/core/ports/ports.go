package ports

import (
	"context"

	"github.com/prairiefare/partnermap/internal/core/domain"
)

// PartnerSource loads the full partner record set. A source that
// cannot produce every record fails the whole load; there is no
// partial result.
type PartnerSource interface {
	Load(ctx context.Context) ([]domain.Partner, error)
}

// BoundarySource loads the boundary region in WGS 84 lon/lat.
type BoundarySource interface {
	Load(ctx context.Context) (*domain.Region, error)
}

// MapRenderer turns an assembled map document into the output
// artifact (a static HTML page).
type MapRenderer interface {
	Render(ctx context.Context, doc *domain.MapDocument) error
}
