package domain_test

import (
	"testing"

	"github.com/prairiefare/partnermap/internal/core/domain"
)

func TestBounds_Center(t *testing.T) {
	b := domain.Bounds{MinLat: 37.0, MinLon: -91.5, MaxLat: 42.5, MaxLon: -87.0}
	got := b.Center()
	// Arithmetic midpoint of the corners, by contract.
	want := domain.GeoPoint{Lat: 39.75, Lon: -89.25}
	if got != want {
		t.Errorf("Center = %+v, want %+v", got, want)
	}
}

func TestBounds_Contains(t *testing.T) {
	b := domain.Bounds{MinLat: 37, MinLon: -91.5, MaxLat: 42.5, MaxLon: -87}
	cases := []struct {
		p    domain.GeoPoint
		want bool
	}{
		{domain.GeoPoint{Lat: 40, Lon: -89}, true},
		{domain.GeoPoint{Lat: 37, Lon: -91.5}, true}, // edges included
		{domain.GeoPoint{Lat: 36.9, Lon: -89}, false},
		{domain.GeoPoint{Lat: 40, Lon: -86.9}, false},
	}
	for _, tc := range cases {
		if got := b.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%+v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestBounds_Expand(t *testing.T) {
	b := domain.Bounds{MinLat: 10, MinLon: 20, MaxLat: 30, MaxLon: 40}
	got := b.Expand(1, 2, 3, 4)
	want := domain.Bounds{MinLat: 8, MinLon: 19, MaxLat: 34, MaxLon: 43}
	if got != want {
		t.Errorf("Expand = %+v, want %+v", got, want)
	}
}
