package places

import (
	"fmt"
	"strings"
)

// directionModifiers expand a location that is not in the region table.
var directionModifiers = []string{
	"North", "North East", "East", "South East",
	"South", "South West", "West", "North West",
	"Central", "Downtown",
}

// BuildQueries expands a niche/location pair into the text queries to run.
// The direct query always comes first.
func BuildQueries(niche, location string, deepScan bool) []string {
	queries := []string{fmt.Sprintf("%s in %s", niche, location)}
	if !deepScan {
		return queries
	}

	if cities, ok := SubRegions(location); ok {
		for _, city := range cities {
			queries = append(queries, fmt.Sprintf("%s in %s, %s", niche, city, location))
		}
		return queries
	}

	for _, modifier := range directionModifiers {
		queries = append(queries, fmt.Sprintf("%s in %s %s", niche, modifier, location))
	}
	return queries
}

// SubRegions returns the cities registered for a region, matched case-insensitively.
func SubRegions(location string) ([]string, bool) {
	cities, ok := regionCities[strings.ToLower(strings.TrimSpace(location))]
	return cities, ok
}
