package airports

import (
	"strings"

	"github.com/skypath/skypath/pkg/geo"
)

// Country is a searchable country with a centroid the camera can fly to.
type Country struct {
	Code     string       `json:"code"`
	Name     string       `json:"name"`
	Position geo.Position `json:"position"`
	Zoom     float64      `json:"zoom"`
}

// Region is a searchable continent-scale area.
type Region struct {
	Name     string       `json:"name"`
	Position geo.Position `json:"position"`
	Zoom     float64      `json:"zoom"`
}

// SearchResult is one match from SearchLocations, ready for the camera.
type SearchResult struct {
	Name     string       `json:"name"`
	Type     string       `json:"type"` // "Region" or "Country"
	Position geo.Position `json:"position"`
	Zoom     float64      `json:"zoom"`
}

// maxSearchResults bounds the dropdown length.
const maxSearchResults = 8

// SearchLocations matches the query against region names first, then
// country names and ISO codes, case-insensitively. Results are capped at
// eight entries, regions before countries.
func SearchLocations(query string) []SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var results []SearchResult

	for _, r := range Regions {
		if strings.Contains(strings.ToLower(r.Name), query) {
			results = append(results, SearchResult{
				Name:     r.Name,
				Type:     "Region",
				Position: r.Position,
				Zoom:     r.Zoom,
			})
		}
	}

	for _, c := range Countries {
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.ToLower(c.Code) == query {
			results = append(results, SearchResult{
				Name:     c.Name,
				Type:     "Country",
				Position: c.Position,
				Zoom:     c.Zoom,
			})
		}
	}

	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return results
}

// CountryCode maps an origin-country name as reported by the flight feed
// to its ISO code. Returns "" for countries outside the reference table.
func CountryCode(name string) string {
	for _, c := range Countries {
		if c.Name == name {
			return c.Code
		}
	}
	return ""
}

// Countries with flight activity, with centroids for globe focus.
var Countries = []Country{
	// North America
	{"US", "United States", geo.Position{Latitude: 38, Longitude: -97}, 1},
	{"CA", "Canada", geo.Position{Latitude: 56, Longitude: -106}, 1},
	{"MX", "Mexico", geo.Position{Latitude: 23, Longitude: -102}, 1},

	// Europe
	{"GB", "United Kingdom", geo.Position{Latitude: 54, Longitude: -2}, 1},
	{"DE", "Germany", geo.Position{Latitude: 51, Longitude: 10}, 1},
	{"FR", "France", geo.Position{Latitude: 46, Longitude: 2}, 1},
	{"ES", "Spain", geo.Position{Latitude: 40, Longitude: -4}, 1},
	{"IT", "Italy", geo.Position{Latitude: 42, Longitude: 12}, 1},
	{"NL", "Netherlands", geo.Position{Latitude: 52, Longitude: 5}, 1},
	{"CH", "Switzerland", geo.Position{Latitude: 47, Longitude: 8}, 1},
	{"AT", "Austria", geo.Position{Latitude: 47, Longitude: 14}, 1},
	{"BE", "Belgium", geo.Position{Latitude: 50, Longitude: 4}, 1},
	{"PL", "Poland", geo.Position{Latitude: 52, Longitude: 20}, 1},
	{"SE", "Sweden", geo.Position{Latitude: 62, Longitude: 15}, 1},
	{"NO", "Norway", geo.Position{Latitude: 62, Longitude: 10}, 1},
	{"FI", "Finland", geo.Position{Latitude: 64, Longitude: 26}, 1},
	{"DK", "Denmark", geo.Position{Latitude: 56, Longitude: 10}, 1},
	{"IE", "Ireland", geo.Position{Latitude: 53, Longitude: -8}, 1},
	{"PT", "Portugal", geo.Position{Latitude: 39, Longitude: -8}, 1},
	{"GR", "Greece", geo.Position{Latitude: 39, Longitude: 22}, 1},
	{"CZ", "Czech Republic", geo.Position{Latitude: 50, Longitude: 15}, 1},
	{"RO", "Romania", geo.Position{Latitude: 46, Longitude: 25}, 1},
	{"HU", "Hungary", geo.Position{Latitude: 47, Longitude: 20}, 1},
	{"RU", "Russia", geo.Position{Latitude: 60, Longitude: 100}, 1},
	{"TR", "Turkey", geo.Position{Latitude: 39, Longitude: 35}, 1},

	// Middle East
	{"AE", "United Arab Emirates", geo.Position{Latitude: 24, Longitude: 54}, 1},
	{"QA", "Qatar", geo.Position{Latitude: 25, Longitude: 51}, 1},
	{"SA", "Saudi Arabia", geo.Position{Latitude: 24, Longitude: 45}, 1},
	{"IL", "Israel", geo.Position{Latitude: 31, Longitude: 35}, 1},

	// Asia
	{"CN", "China", geo.Position{Latitude: 35, Longitude: 105}, 1},
	{"JP", "Japan", geo.Position{Latitude: 36, Longitude: 138}, 1},
	{"KR", "South Korea", geo.Position{Latitude: 36, Longitude: 128}, 1},
	{"IN", "India", geo.Position{Latitude: 21, Longitude: 78}, 1},
	{"SG", "Singapore", geo.Position{Latitude: 1, Longitude: 104}, 1},
	{"TH", "Thailand", geo.Position{Latitude: 15, Longitude: 101}, 1},
	{"MY", "Malaysia", geo.Position{Latitude: 4, Longitude: 109}, 1},
	{"ID", "Indonesia", geo.Position{Latitude: -2, Longitude: 118}, 1},
	{"PH", "Philippines", geo.Position{Latitude: 13, Longitude: 122}, 1},
	{"VN", "Vietnam", geo.Position{Latitude: 16, Longitude: 108}, 1},
	{"HK", "Hong Kong", geo.Position{Latitude: 22, Longitude: 114}, 1},
	{"TW", "Taiwan", geo.Position{Latitude: 24, Longitude: 121}, 1},

	// Oceania
	{"AU", "Australia", geo.Position{Latitude: -25, Longitude: 135}, 1},
	{"NZ", "New Zealand", geo.Position{Latitude: -41, Longitude: 174}, 1},

	// South America
	{"BR", "Brazil", geo.Position{Latitude: -14, Longitude: -51}, 1},
	{"AR", "Argentina", geo.Position{Latitude: -34, Longitude: -64}, 1},
	{"CL", "Chile", geo.Position{Latitude: -35, Longitude: -71}, 1},
	{"CO", "Colombia", geo.Position{Latitude: 4, Longitude: -72}, 1},
	{"PE", "Peru", geo.Position{Latitude: -10, Longitude: -76}, 1},

	// Africa
	{"ZA", "South Africa", geo.Position{Latitude: -29, Longitude: 25}, 1},
	{"EG", "Egypt", geo.Position{Latitude: 27, Longitude: 30}, 1},
	{"MA", "Morocco", geo.Position{Latitude: 32, Longitude: -6}, 1},
	{"KE", "Kenya", geo.Position{Latitude: 0, Longitude: 38}, 1},
	{"ET", "Ethiopia", geo.Position{Latitude: 9, Longitude: 39}, 1},
	{"NG", "Nigeria", geo.Position{Latitude: 10, Longitude: 8}, 1},
}

// Regions are continent-scale search targets.
var Regions = []Region{
	{"North America", geo.Position{Latitude: 40, Longitude: -100}, 1},
	{"South America", geo.Position{Latitude: -15, Longitude: -60}, 1},
	{"Europe", geo.Position{Latitude: 50, Longitude: 10}, 1},
	{"Africa", geo.Position{Latitude: 5, Longitude: 20}, 1},
	{"Asia", geo.Position{Latitude: 35, Longitude: 100}, 1},
	{"Australia", geo.Position{Latitude: -25, Longitude: 135}, 1},
	{"Oceania", geo.Position{Latitude: -20, Longitude: 150}, 1},
	{"Middle East", geo.Position{Latitude: 28, Longitude: 45}, 1},
	{"Southeast Asia", geo.Position{Latitude: 10, Longitude: 110}, 1},
	{"Central America", geo.Position{Latitude: 15, Longitude: -85}, 1},
	{"Caribbean", geo.Position{Latitude: 18, Longitude: -75}, 1},
	{"Scandinavia", geo.Position{Latitude: 62, Longitude: 15}, 1},
}
