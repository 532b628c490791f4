package location

import (
	"fmt"
	"strings"

	"github.com/yanqian/runready/internal/domain/forecast"
)

// CoordinatesLabel renders a location as "50.45°, 30.52°".
func CoordinatesLabel(loc forecast.Location) string {
	return fmt.Sprintf("%.2f°, %.2f°", loc.Lat, loc.Lon)
}

// ReverseLabel builds the short label for a reverse-geocoded place.
// unknownRegion is used when only the country is known.
func ReverseLabel(addr Address, loc forecast.Location, unknownRegion string) string {
	city := firstNonEmpty(addr.City, addr.Town, addr.Village, addr.Suburb, addr.Hamlet)
	state := firstNonEmpty(addr.State, addr.Province, addr.Region)
	country := strings.TrimSpace(addr.Country)

	switch {
	case city != "" && country != "":
		return joinLabel(city, state, country)
	case country != "":
		return firstNonEmpty(state, unknownRegion) + ", " + country
	default:
		return CoordinatesLabel(loc)
	}
}

// SearchLabel builds the short label for a search hit, falling back to the
// full display name.
func SearchLabel(p Place) string {
	city := firstNonEmpty(p.Address.City, p.Address.Town, p.Address.Village, p.Name)
	state := firstNonEmpty(p.Address.State, p.Address.Province, p.Address.Region)
	country := strings.TrimSpace(p.Address.Country)
	if city != "" && country != "" {
		return joinLabel(city, state, country)
	}
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return CoordinatesLabel(p.Location)
}

func joinLabel(city, state, country string) string {
	if state == "" {
		return city + ", " + country
	}
	return city + ", " + state + ", " + country
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
