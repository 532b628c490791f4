package location

import (
	"context"

	"github.com/yanqian/runready/internal/domain/forecast"
)

// SearchLimit caps the number of places returned by a search.
const SearchLimit = 5

// Default is used when the client sends no coordinates (Kyiv).
var Default = forecast.Location{Lat: 50.4501, Lon: 30.5234}

// Address is the subset of a geocoder address the labels are built from.
type Address struct {
	City     string
	Town     string
	Village  string
	Suburb   string
	Hamlet   string
	State    string
	Province string
	Region   string
	Country  string
}

// Place is one geocoder hit.
type Place struct {
	Name        string
	DisplayName string
	Location    forecast.Location
	Address     Address
}

// Result is what API consumers receive.
type Result struct {
	Label       string  `json:"label"`
	DisplayName string  `json:"displayName,omitempty"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// Geocoder resolves place names and coordinates.
type Geocoder interface {
	Search(ctx context.Context, query string, limit int) ([]Place, error)
	Reverse(ctx context.Context, loc forecast.Location) (Place, bool, error)
}
