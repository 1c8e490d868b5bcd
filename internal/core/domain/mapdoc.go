package domain

import "github.com/paulmach/orb"

// TileSpec describes the background tile layer.
type TileSpec struct {
	URL         string
	Attribution string
}

// OverlaySpec is a styled polygon overlay (mask or outline).
type OverlaySpec struct {
	Geometry    orb.MultiPolygon
	Color       string
	Weight      float64
	FillOpacity float64
	Fill        bool
	Stroke      bool
}

// Marker is one rendered point. Style comes from its layer.
type Marker struct {
	Lat   float64
	Lon   float64
	Popup string
}

// CategoryLayer groups the markers of one discovered category. Each
// layer is independently toggleable but all layers share the
// document's cluster group.
type CategoryLayer struct {
	Category string
	Style    MarkerStyle
	Markers  []Marker
}

// MapDocument is the complete declarative description of the map
// artifact, ready for a renderer to turn into HTML. It holds no
// behavior; renderers decide presentation mechanics.
type MapDocument struct {
	Title        string
	Tiles        TileSpec
	FitBounds    Bounds
	MaxBounds    Bounds
	Center       GeoPoint
	MinZoom      int
	MaxZoom      int
	Mask         OverlaySpec
	Outline      OverlaySpec
	ClusterGroup string
	Layers       []CategoryLayer
}
