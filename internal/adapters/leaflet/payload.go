// Package leaflet renders a map document into a single static HTML
// page built on Leaflet and its plugin ecosystem.
package leaflet

import (
	"github.com/paulmach/orb/geojson"

	"github.com/prairiefare/partnermap/internal/core/domain"
)

// payload is the JSON blob handed to the page script. Field names
// follow Leaflet's option vocabulary where one exists.
type payload struct {
	Tiles        tilesJSON   `json:"tiles"`
	Fit          boundsJSON  `json:"fit"`
	MaxBounds    boundsJSON  `json:"maxBounds"`
	Center       latLngJSON  `json:"center"`
	MinZoom      int         `json:"minZoom"`
	MaxZoom      int         `json:"maxZoom"`
	Mask         overlayJSON `json:"mask"`
	Outline      overlayJSON `json:"outline"`
	ClusterGroup string      `json:"clusterGroup"`
	Layers       []layerJSON `json:"layers"`
}

type tilesJSON struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

// boundsJSON is [[south, west], [north, east]], Leaflet's LatLngBounds
// array form.
type boundsJSON [2][2]float64

// latLngJSON is [lat, lng].
type latLngJSON [2]float64

type overlayJSON struct {
	Geometry *geojson.Geometry `json:"geometry"`
	Style    overlayStyleJSON  `json:"style"`
}

type overlayStyleJSON struct {
	Color       string  `json:"color"`
	Weight      float64 `json:"weight"`
	Stroke      bool    `json:"stroke"`
	Fill        bool    `json:"fill"`
	FillColor   string  `json:"fillColor"`
	FillOpacity float64 `json:"fillOpacity"`
}

type layerJSON struct {
	Category string       `json:"category"`
	Icon     string       `json:"icon"`
	Color    string       `json:"color"`
	Markers  []markerJSON `json:"markers"`
}

type markerJSON struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Popup string  `json:"popup"`
}

func buildPayload(doc *domain.MapDocument) payload {
	layers := make([]layerJSON, 0, len(doc.Layers))
	for _, l := range doc.Layers {
		markers := make([]markerJSON, 0, len(l.Markers))
		for _, m := range l.Markers {
			markers = append(markers, markerJSON{Lat: m.Lat, Lng: m.Lon, Popup: m.Popup})
		}
		layers = append(layers, layerJSON{
			Category: l.Category,
			Icon:     l.Style.Icon,
			Color:    l.Style.Color,
			Markers:  markers,
		})
	}

	return payload{
		Tiles:        tilesJSON{URL: doc.Tiles.URL, Attribution: doc.Tiles.Attribution},
		Fit:          toBounds(doc.FitBounds),
		MaxBounds:    toBounds(doc.MaxBounds),
		Center:       latLngJSON{doc.Center.Lat, doc.Center.Lon},
		MinZoom:      doc.MinZoom,
		MaxZoom:      doc.MaxZoom,
		Mask:         toOverlay(doc.Mask),
		Outline:      toOverlay(doc.Outline),
		ClusterGroup: doc.ClusterGroup,
		Layers:       layers,
	}
}

func toBounds(b domain.Bounds) boundsJSON {
	return boundsJSON{{b.MinLat, b.MinLon}, {b.MaxLat, b.MaxLon}}
}

func toOverlay(o domain.OverlaySpec) overlayJSON {
	return overlayJSON{
		Geometry: geojson.NewGeometry(o.Geometry),
		Style: overlayStyleJSON{
			Color:       o.Color,
			Weight:      o.Weight,
			Stroke:      o.Stroke,
			Fill:        o.Fill,
			FillColor:   o.Color,
			FillOpacity: o.FillOpacity,
		},
	}
}
