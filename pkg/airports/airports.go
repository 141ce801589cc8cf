// Package airports holds the static waypoint reference data: a curated
// set of major world airports loaded once at startup and never mutated,
// plus the country/region tables behind the location search box.
package airports

import (
	"strings"

	"github.com/skypath/skypath/pkg/geo"
)

// Airport is a fixed known reference location used as a candidate
// endpoint for inferred routes.
type Airport struct {
	// IATA is the three-letter airport code (e.g., "JFK")
	IATA string `json:"iata"`

	// Name is the airport name (e.g., "John F. Kennedy")
	Name string `json:"name"`

	// City and Country locate the airport for display and search
	City    string `json:"city"`
	Country string `json:"country"`

	Position geo.Position `json:"position"`
}

// FullName returns the display name used in dropdowns and labels.
func (a Airport) FullName() string {
	return a.City + " (" + a.IATA + ")"
}

// Bounds is a latitude/longitude bounding box.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Contains reports whether p falls inside the box. Boxes never span the
// antimeridian in the reference tables.
func (b Bounds) Contains(p geo.Position) bool {
	return p.Latitude >= b.South && p.Latitude <= b.North &&
		p.Longitude >= b.West && p.Longitude <= b.East
}

// Load returns the curated airport set. The slice is freshly allocated
// per call so callers cannot corrupt the package table.
func Load() []Airport {
	out := make([]Airport, len(majorAirports))
	copy(out, majorAirports)
	return out
}

// ByIATA looks up an airport by code within a loaded set.
// Returns nil when the code is unknown.
func ByIATA(code string, set []Airport) *Airport {
	code = strings.ToUpper(code)
	for i := range set {
		if set[i].IATA == code {
			return &set[i]
		}
	}
	return nil
}

// InBounds returns the airports inside the bounding box.
func InBounds(set []Airport, b Bounds) []Airport {
	var out []Airport
	for _, a := range set {
		if b.Contains(a.Position) {
			out = append(out, a)
		}
	}
	return out
}

// majorAirports is the curated list of major world airports
// (OurAirports public-domain data).
var majorAirports = []Airport{
	// North America
	{"JFK", "John F. Kennedy", "New York", "United States", geo.Position{Latitude: 40.6413, Longitude: -73.7781}},
	{"LAX", "Los Angeles Intl", "Los Angeles", "United States", geo.Position{Latitude: 33.9425, Longitude: -118.4081}},
	{"ORD", "O'Hare Intl", "Chicago", "United States", geo.Position{Latitude: 41.9742, Longitude: -87.9073}},
	{"DFW", "Dallas/Fort Worth", "Dallas", "United States", geo.Position{Latitude: 32.8998, Longitude: -97.0403}},
	{"DEN", "Denver Intl", "Denver", "United States", geo.Position{Latitude: 39.8561, Longitude: -104.6737}},
	{"ATL", "Hartsfield-Jackson", "Atlanta", "United States", geo.Position{Latitude: 33.6407, Longitude: -84.4277}},
	{"SFO", "San Francisco Intl", "San Francisco", "United States", geo.Position{Latitude: 37.6213, Longitude: -122.379}},
	{"SEA", "Seattle-Tacoma", "Seattle", "United States", geo.Position{Latitude: 47.4502, Longitude: -122.3088}},
	{"MIA", "Miami Intl", "Miami", "United States", geo.Position{Latitude: 25.7959, Longitude: -80.2870}},
	{"BOS", "Logan Intl", "Boston", "United States", geo.Position{Latitude: 42.3656, Longitude: -71.0096}},
	{"YYZ", "Toronto Pearson", "Toronto", "Canada", geo.Position{Latitude: 43.6777, Longitude: -79.6248}},
	{"YVR", "Vancouver Intl", "Vancouver", "Canada", geo.Position{Latitude: 49.1967, Longitude: -123.1815}},
	{"MEX", "Mexico City Intl", "Mexico City", "Mexico", geo.Position{Latitude: 19.4363, Longitude: -99.0721}},

	// Europe
	{"LHR", "Heathrow", "London", "United Kingdom", geo.Position{Latitude: 51.4700, Longitude: -0.4543}},
	{"CDG", "Charles de Gaulle", "Paris", "France", geo.Position{Latitude: 49.0097, Longitude: 2.5479}},
	{"FRA", "Frankfurt", "Frankfurt", "Germany", geo.Position{Latitude: 50.0379, Longitude: 8.5622}},
	{"AMS", "Schiphol", "Amsterdam", "Netherlands", geo.Position{Latitude: 52.3105, Longitude: 4.7683}},
	{"MAD", "Barajas", "Madrid", "Spain", geo.Position{Latitude: 40.4983, Longitude: -3.5676}},
	{"FCO", "Fiumicino", "Rome", "Italy", geo.Position{Latitude: 41.8003, Longitude: 12.2389}},
	{"MUC", "Munich", "Munich", "Germany", geo.Position{Latitude: 48.3537, Longitude: 11.7750}},
	{"ZRH", "Zurich", "Zurich", "Switzerland", geo.Position{Latitude: 47.4647, Longitude: 8.5492}},
	{"IST", "Istanbul", "Istanbul", "Turkey", geo.Position{Latitude: 41.2753, Longitude: 28.7519}},
	{"DUB", "Dublin", "Dublin", "Ireland", geo.Position{Latitude: 53.4264, Longitude: -6.2499}},

	// Asia Pacific
	{"HND", "Haneda", "Tokyo", "Japan", geo.Position{Latitude: 35.5494, Longitude: 139.7798}},
	{"NRT", "Narita", "Tokyo", "Japan", geo.Position{Latitude: 35.7720, Longitude: 140.3929}},
	{"PEK", "Beijing Capital", "Beijing", "China", geo.Position{Latitude: 40.0799, Longitude: 116.6031}},
	{"PVG", "Pudong", "Shanghai", "China", geo.Position{Latitude: 31.1443, Longitude: 121.8083}},
	{"HKG", "Hong Kong Intl", "Hong Kong", "China", geo.Position{Latitude: 22.3080, Longitude: 113.9185}},
	{"SIN", "Changi", "Singapore", "Singapore", geo.Position{Latitude: 1.3644, Longitude: 103.9915}},
	{"ICN", "Incheon", "Seoul", "South Korea", geo.Position{Latitude: 37.4602, Longitude: 126.4407}},
	{"BKK", "Suvarnabhumi", "Bangkok", "Thailand", geo.Position{Latitude: 13.6900, Longitude: 100.7501}},
	{"SYD", "Sydney", "Sydney", "Australia", geo.Position{Latitude: -33.9399, Longitude: 151.1753}},
	{"MEL", "Melbourne", "Melbourne", "Australia", geo.Position{Latitude: -37.6690, Longitude: 144.8410}},
	{"DEL", "Indira Gandhi", "Delhi", "India", geo.Position{Latitude: 28.5562, Longitude: 77.1000}},
	{"BOM", "Chhatrapati Shivaji", "Mumbai", "India", geo.Position{Latitude: 19.0896, Longitude: 72.8656}},

	// Middle East
	{"DXB", "Dubai Intl", "Dubai", "UAE", geo.Position{Latitude: 25.2532, Longitude: 55.3657}},
	{"DOH", "Hamad Intl", "Doha", "Qatar", geo.Position{Latitude: 25.2609, Longitude: 51.6138}},
	{"AUH", "Abu Dhabi", "Abu Dhabi", "UAE", geo.Position{Latitude: 24.4330, Longitude: 54.6511}},
	{"TLV", "Ben Gurion", "Tel Aviv", "Israel", geo.Position{Latitude: 32.0055, Longitude: 34.8854}},

	// South America
	{"GRU", "Guarulhos", "Sao Paulo", "Brazil", geo.Position{Latitude: -23.4356, Longitude: -46.4731}},
	{"EZE", "Ezeiza", "Buenos Aires", "Argentina", geo.Position{Latitude: -34.8222, Longitude: -58.5358}},
	{"BOG", "El Dorado", "Bogota", "Colombia", geo.Position{Latitude: 4.7016, Longitude: -74.1469}},
	{"SCL", "Santiago", "Santiago", "Chile", geo.Position{Latitude: -33.3930, Longitude: -70.7858}},
	{"LIM", "Jorge Chavez", "Lima", "Peru", geo.Position{Latitude: -12.0219, Longitude: -77.1143}},

	// Africa
	{"JNB", "O.R. Tambo", "Johannesburg", "South Africa", geo.Position{Latitude: -26.1392, Longitude: 28.2460}},
	{"CPT", "Cape Town Intl", "Cape Town", "South Africa", geo.Position{Latitude: -33.9715, Longitude: 18.6021}},
	{"CAI", "Cairo Intl", "Cairo", "Egypt", geo.Position{Latitude: 30.1219, Longitude: 31.4056}},
	{"ADD", "Bole Intl", "Addis Ababa", "Ethiopia", geo.Position{Latitude: 8.9779, Longitude: 38.7993}},
	{"NBO", "Jomo Kenyatta", "Nairobi", "Kenya", geo.Position{Latitude: -1.3192, Longitude: 36.9278}},
}

// MajorHubs are the airports that stay labeled even at the widest zoom.
var MajorHubs = []string{
	"JFK", "LAX", "LHR", "CDG", "DXB", "HND", "SIN", "SYD",
	"ATL", "ORD", "FRA", "AMS", "HKG", "PEK", "DFW", "ICN",
}

// IsMajorHub reports whether the IATA code is in the always-visible set.
func IsMajorHub(code string) bool {
	for _, hub := range MajorHubs {
		if hub == code {
			return true
		}
	}
	return false
}
