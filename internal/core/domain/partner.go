package domain

import "strings"

// CategoryOther is the bucket for partners with a blank or missing
// category. Unrecognized categories keep their own name but share the
// default marker style with this bucket.
const CategoryOther = "Other"

// Partner represents one partner location (market, store, CSA pickup,
// mobile market stop). Empty string means the field was absent in the
// source file.
type Partner struct {
	Name     string
	Address1 string
	Address2 string
	City     string
	State    string
	Zip      string
	Category string
	Dates    string
	Days     string
	Hours    string
	Website  string
	Notes    string
	Location GeoPoint

	// Derived by the enricher, empty until then.
	Style         MarkerStyle
	DirectionsURL string
	PopupHTML     string
}

// MarkerStyle is the visual identity of a marker.
type MarkerStyle struct {
	Color string
	Icon  string
}

// DefaultStyle is used for CategoryOther and any category missing
// from the style table.
var DefaultStyle = MarkerStyle{Color: "purple", Icon: "map-marker"}

// categoryStyles is the closed category → marker style table. Adding
// a category is a one-line edit here; anything not listed falls back
// to DefaultStyle.
var categoryStyles = map[string]MarkerStyle{
	"Farmers Market": {Color: "green", Icon: "shopping-cart"},
	"Store":          {Color: "darkred", Icon: "shopping-basket"},
	"CSA":            {Color: "orange", Icon: "leaf"},
	"Mobile Market":  {Color: "blue", Icon: "truck"},
	CategoryOther:    DefaultStyle,
}

// NormalizeCategory trims whitespace and maps a blank category to
// CategoryOther. It performs no other normalization: downstream
// branching is exact string match. Idempotent.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return CategoryOther
	}
	return category
}

// StyleFor returns the marker style for a category, falling back to
// DefaultStyle for anything outside the table.
func StyleFor(category string) MarkerStyle {
	if style, ok := categoryStyles[category]; ok {
		return style
	}
	return DefaultStyle
}
