package usecases

import (
	"fmt"
	"strings"

	"github.com/prairiefare/partnermap/internal/core/domain"
)

// directionsBase is the map-service deep link template prefix.
const directionsBase = "http://maps.google.com/maps?daddr="

// EnrichService derives the presentation fields of a partner record:
// normalized category, marker style, directions URL and popup body.
// It is a pure transformation; records are enriched once and never
// mutated afterwards.
type EnrichService struct {
	// stateSuffix is appended to every directions query. The data
	// set is single-state, so this is a fixed constant rather than a
	// per-record field.
	stateSuffix string
}

// NewEnrichService creates an EnrichService with the Illinois
// directions suffix.
func NewEnrichService() *EnrichService {
	return &EnrichService{stateSuffix: "IL"}
}

// Enrich returns a copy of the record set with derived fields
// populated. Input order is preserved.
func (s *EnrichService) Enrich(partners []domain.Partner) []domain.Partner {
	out := make([]domain.Partner, len(partners))
	for i, p := range partners {
		p.Category = domain.NormalizeCategory(p.Category)
		p.Style = domain.StyleFor(p.Category)
		p.DirectionsURL = s.DirectionsURL(p)
		p.PopupHTML = s.PopupHTML(p)
		out[i] = p
	}
	return out
}

// DirectionsURL builds a map-service deep link from the street
// address and city, with spaces replaced by '+'. Other special
// characters ('&', '#', non-ASCII) are passed through unescaped; an
// accepted limitation of the link format, kept as-is. Empty when the
// record has no city.
func (s *EnrichService) DirectionsURL(p domain.Partner) string {
	if p.City == "" {
		return ""
	}
	plus := func(v string) string { return strings.ReplaceAll(v, " ", "+") }
	return directionsBase + plus(p.Address1) + "+" + plus(p.City) + "+" + s.stateSuffix
}

// PopupHTML builds the marker popup body: an ordered sequence of
// fragments, each wholly omitted when its source field is absent. A
// record with nothing but a name still yields a minimal valid popup.
func (s *EnrichService) PopupHTML(p domain.Partner) string {
	var lines []string

	lines = append(lines, "<b>"+p.Name+"</b>")
	if p.Address1 != "" {
		lines = append(lines, p.Address1)
	}
	if p.Address2 != "" {
		lines = append(lines, p.Address2)
	}
	if p.City != "" {
		locality := p.City
		if p.State != "" {
			locality += ", " + p.State
		}
		if p.Zip != "" {
			locality += " " + p.Zip
		}
		lines = append(lines, locality)
		lines = append(lines, fmt.Sprintf("<a href='%s' target='_blank'>Get Directions</a>", s.DirectionsURL(p)))
	}
	lines = append(lines, "Type: "+p.Category)
	if p.Dates != "" {
		lines = append(lines, "Dates: "+p.Dates)
	}
	if p.Days != "" {
		lines = append(lines, "Days: "+p.Days)
	}
	if p.Hours != "" {
		lines = append(lines, "Hours: "+p.Hours)
	}
	if p.Website != "" {
		lines = append(lines, fmt.Sprintf("<a href='%s' target='_blank'>Website</a>", p.Website))
	}
	if p.Notes != "" {
		// Blank line before the freeform notes.
		lines = append(lines, "", p.Notes)
	}

	return strings.Join(lines, "<br>")
}
