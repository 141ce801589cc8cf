// Package filters narrows a flight snapshot by country, US state,
// airport proximity, minimum altitude, and operating airline. An empty
// FilterSet passes everything through untouched.
package filters

import (
	"github.com/skypath/skypath/pkg/airlines"
	"github.com/skypath/skypath/pkg/airports"
	"github.com/skypath/skypath/pkg/flightdata"
	"github.com/skypath/skypath/pkg/geo"
)

// airportProximityDeg is the planar degree-space radius used by the
// airport filter, roughly 300 km.
const airportProximityDeg = 3

// FilterSet holds the active filter criteria. Zero values mean "not
// filtering on this dimension".
type FilterSet struct {
	// Country is an ISO 3166-1 alpha-2 code matched against the
	// flight's origin country.
	Country string `json:"country,omitempty"`

	// State is a two-letter US state abbreviation; flights are matched
	// against the state's bounding box.
	State string `json:"state,omitempty"`

	// Airport is an IATA code; only flights within a small radius of
	// the airport pass.
	Airport string `json:"airport,omitempty"`

	// MinAltitudeM drops flights below the given altitude in meters.
	MinAltitudeM float64 `json:"minAltitude,omitempty"`

	// Airline is a 3-letter ICAO carrier prefix matched against the
	// callsign.
	Airline string `json:"airline,omitempty"`
}

// Active reports whether any filter dimension is set.
func (fs FilterSet) Active() bool {
	return fs != FilterSet{}
}

// Apply returns the flights passing every active filter. The airport
// filter needs the airport set for position lookups; a nil slice simply
// disables that dimension.
func (fs FilterSet) Apply(flights []flightdata.Flight, airportSet []airports.Airport) []flightdata.Flight {
	if !fs.Active() {
		return flights
	}

	var airportPos *geo.Position
	if fs.Airport != "" {
		if ap := airports.ByIATA(fs.Airport, airportSet); ap != nil {
			airportPos = &ap.Position
		}
	}

	out := make([]flightdata.Flight, 0, len(flights))
	for _, f := range flights {
		if fs.matches(f, airportPos) {
			out = append(out, f)
		}
	}
	return out
}

func (fs FilterSet) matches(f flightdata.Flight, airportPos *geo.Position) bool {
	if fs.Country != "" && airports.CountryCode(f.OriginCountry) != fs.Country {
		return false
	}

	if fs.State != "" {
		bounds, ok := StateBounds[fs.State]
		if ok && !bounds.Contains(geo.Position{Latitude: f.Latitude, Longitude: f.Longitude}) {
			return false
		}
	}

	if airportPos != nil {
		pos := geo.Position{Latitude: f.Latitude, Longitude: f.Longitude}
		if geo.PlanarDistance(pos, *airportPos) > airportProximityDeg {
			return false
		}
	}

	if fs.MinAltitudeM > 0 && f.AltitudeM < fs.MinAltitudeM {
		return false
	}

	if fs.Airline != "" && airlines.Code(f.Callsign) != fs.Airline {
		return false
	}

	return true
}

// USState is a state dropdown entry.
type USState struct {
	Abbr string `json:"abbr"`
	Name string `json:"name"`
}

// AirlineOption is an airline dropdown entry.
type AirlineOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// USStates lists the 50 states for the filter dropdown, alphabetical by
// name.
var USStates = []USState{
	{"AL", "Alabama"}, {"AK", "Alaska"}, {"AZ", "Arizona"}, {"AR", "Arkansas"},
	{"CA", "California"}, {"CO", "Colorado"}, {"CT", "Connecticut"}, {"DE", "Delaware"},
	{"FL", "Florida"}, {"GA", "Georgia"}, {"HI", "Hawaii"}, {"ID", "Idaho"},
	{"IL", "Illinois"}, {"IN", "Indiana"}, {"IA", "Iowa"}, {"KS", "Kansas"},
	{"KY", "Kentucky"}, {"LA", "Louisiana"}, {"ME", "Maine"}, {"MD", "Maryland"},
	{"MA", "Massachusetts"}, {"MI", "Michigan"}, {"MN", "Minnesota"}, {"MS", "Mississippi"},
	{"MO", "Missouri"}, {"MT", "Montana"}, {"NE", "Nebraska"}, {"NV", "Nevada"},
	{"NH", "New Hampshire"}, {"NJ", "New Jersey"}, {"NM", "New Mexico"}, {"NY", "New York"},
	{"NC", "North Carolina"}, {"ND", "North Dakota"}, {"OH", "Ohio"}, {"OK", "Oklahoma"},
	{"OR", "Oregon"}, {"PA", "Pennsylvania"}, {"RI", "Rhode Island"}, {"SC", "South Carolina"},
	{"SD", "South Dakota"}, {"TN", "Tennessee"}, {"TX", "Texas"}, {"UT", "Utah"},
	{"VT", "Vermont"}, {"VA", "Virginia"}, {"WA", "Washington"}, {"WV", "West Virginia"},
	{"WI", "Wisconsin"}, {"WY", "Wyoming"},
}

// Airlines lists the carriers offered in the filter dropdown, sorted by
// name.
var Airlines = []AirlineOption{
	{"CCA", "Air China"},
	{"ACA", "Air Canada"},
	{"AFR", "Air France"},
	{"ASA", "Alaska Airlines"},
	{"ANA", "All Nippon Airways"},
	{"AAL", "American Airlines"},
	{"BAW", "British Airways"},
	{"CPA", "Cathay Pacific"},
	{"DAL", "Delta Air Lines"},
	{"EVA", "EVA Air"},
	{"UAE", "Emirates"},
	{"ETD", "Etihad Airways"},
	{"JAL", "Japan Airlines"},
	{"JBU", "JetBlue Airways"},
	{"KLM", "KLM Royal Dutch"},
	{"KAL", "Korean Air"},
	{"DLH", "Lufthansa"},
	{"QFA", "Qantas"},
	{"QTR", "Qatar Airways"},
	{"RYR", "Ryanair"},
	{"SIA", "Singapore Airlines"},
	{"SWA", "Southwest Airlines"},
	{"THY", "Turkish Airlines"},
	{"UAL", "United Airlines"},
	{"VIR", "Virgin Atlantic"},
	{"WJA", "WestJet"},
	{"EZY", "easyJet"},
}

// StateBounds gives the approximate bounding box of each US state, keyed
// by abbreviation. Approximate is fine for flight filtering.
var StateBounds = map[string]airports.Bounds{
	"AL": {South: 30.2, North: 35.0, West: -88.5, East: -84.9},
	"AK": {South: 51.2, North: 71.4, West: -179.1, East: -129.9},
	"AZ": {South: 31.3, North: 37.0, West: -114.8, East: -109.0},
	"AR": {South: 33.0, North: 36.5, West: -94.6, East: -89.6},
	"CA": {South: 32.5, North: 42.0, West: -124.4, East: -114.1},
	"CO": {South: 37.0, North: 41.0, West: -109.0, East: -102.0},
	"CT": {South: 40.9, North: 42.0, West: -73.7, East: -71.8},
	"DE": {South: 38.4, North: 39.8, West: -75.8, East: -75.0},
	"FL": {South: 24.5, North: 31.0, West: -87.6, East: -80.0},
	"GA": {South: 30.4, North: 35.0, West: -85.6, East: -80.8},
	"HI": {South: 18.9, North: 22.2, West: -160.2, East: -154.8},
	"ID": {South: 42.0, North: 49.0, West: -117.2, East: -111.0},
	"IL": {South: 37.0, North: 42.5, West: -91.5, East: -87.5},
	"IN": {South: 37.8, North: 41.8, West: -88.1, East: -84.8},
	"IA": {South: 40.4, North: 43.5, West: -96.6, East: -90.1},
	"KS": {South: 37.0, North: 40.0, West: -102.0, East: -94.6},
	"KY": {South: 36.5, North: 39.1, West: -89.6, East: -82.0},
	"LA": {South: 29.0, North: 33.0, West: -94.0, East: -89.0},
	"ME": {South: 43.0, North: 47.5, West: -71.1, East: -66.9},
	"MD": {South: 38.0, North: 39.7, West: -79.5, East: -75.0},
	"MA": {South: 41.2, North: 42.9, West: -73.5, East: -69.9},
	"MI": {South: 41.7, North: 48.2, West: -90.4, East: -82.4},
	"MN": {South: 43.5, North: 49.4, West: -97.2, East: -89.5},
	"MS": {South: 30.2, North: 35.0, West: -91.7, East: -88.1},
	"MO": {South: 36.0, North: 40.6, West: -95.8, East: -89.1},
	"MT": {South: 45.0, North: 49.0, West: -116.0, East: -104.0},
	"NE": {South: 40.0, North: 43.0, West: -104.0, East: -95.3},
	"NV": {South: 35.0, North: 42.0, West: -120.0, East: -114.0},
	"NH": {South: 42.7, North: 45.3, West: -72.6, East: -70.7},
	"NJ": {South: 38.9, North: 41.4, West: -75.6, East: -73.9},
	"NM": {South: 31.3, North: 37.0, West: -109.0, East: -103.0},
	"NY": {South: 40.5, North: 45.0, West: -79.8, East: -71.8},
	"NC": {South: 33.8, North: 36.6, West: -84.3, East: -75.5},
	"ND": {South: 45.9, North: 49.0, West: -104.0, East: -96.6},
	"OH": {South: 38.4, North: 42.0, West: -84.8, East: -80.5},
	"OK": {South: 33.6, North: 37.0, West: -103.0, East: -94.4},
	"OR": {South: 42.0, North: 46.3, West: -124.6, East: -116.5},
	"PA": {South: 39.7, North: 42.3, West: -80.5, East: -74.7},
	"RI": {South: 41.1, North: 42.0, West: -71.9, East: -71.1},
	"SC": {South: 32.0, North: 35.2, West: -83.4, East: -78.5},
	"SD": {South: 42.5, North: 46.0, West: -104.1, East: -96.4},
	"TN": {South: 35.0, North: 36.7, West: -90.3, East: -81.6},
	"TX": {South: 25.8, North: 36.5, West: -106.6, East: -93.5},
	"UT": {South: 37.0, North: 42.0, West: -114.0, East: -109.0},
	"VT": {South: 42.7, North: 45.0, West: -73.4, East: -71.5},
	"VA": {South: 36.5, North: 39.5, West: -83.7, East: -75.2},
	"WA": {South: 45.5, North: 49.0, West: -124.8, East: -116.9},
	"WV": {South: 37.2, North: 40.6, West: -82.6, East: -77.7},
	"WI": {South: 42.5, North: 47.1, West: -92.9, East: -86.8},
	"WY": {South: 41.0, North: 45.0, West: -111.0, East: -104.0},
}
