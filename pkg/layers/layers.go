// Package layers turns flight and airport snapshots into the point and
// label sets the globe client renders. All sizing and coloring decisions
// live server-side so every client draws the same picture.
package layers

import (
	"math"

	"github.com/skypath/skypath/pkg/airports"
	"github.com/skypath/skypath/pkg/flightdata"
)

// MaxPoints caps the flight point layer per refresh.
const MaxPoints = 1000

// MaxFlightLabels caps callsign labels at close zoom.
const MaxFlightLabels = 50

// Zoom thresholds for label visibility. Zoom is the globe camera
// altitude: larger means farther out.
const (
	ZoomRegions       = 3.5
	ZoomMajorAirports = 2.5
	ZoomAllAirports   = 1.5
	ZoomCities        = 1.2
)

// Point is one marker on the globe.
type Point struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`

	// Altitude is the render height above the globe surface, in globe
	// radius units.
	Altitude float64 `json:"altitude"`

	Size  float64 `json:"size"`
	Color string  `json:"color"`
	Label string  `json:"label"`
}

// Label is one text marker on the globe.
type Label struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Text      string  `json:"label"`
	Size      float64 `json:"size"`
	Type      string  `json:"type"`
	Color     string  `json:"color"`
}

const defaultAltitudeM = 10000

// FlightPoints builds the aircraft marker layer. Point size grows with
// altitude; color bands separate climbing traffic from cruise.
func FlightPoints(flights []flightdata.Flight) []Point {
	if len(flights) > MaxPoints {
		flights = flights[:MaxPoints]
	}

	points := make([]Point, 0, len(flights))
	for _, f := range flights {
		label := f.Callsign
		if label == "" {
			label = f.ICAO
		}

		alt := f.AltitudeM
		if alt == 0 {
			alt = defaultAltitudeM
		}

		points = append(points, Point{
			Latitude:  f.Latitude,
			Longitude: f.Longitude,
			Altitude:  alt / 1e6,
			Size:      pointSize(alt),
			Color:     pointColor(f.AltitudeM),
			Label:     label,
		})
	}
	return points
}

// pointSize scales with altitude, saturating around typical cruise.
func pointSize(altitudeM float64) float64 {
	normalized := math.Min(altitudeM/12000, 1)
	return 0.1 + normalized*0.15
}

// pointColor bands altitude: yellow for climb/descent, orange for
// medium, blue for cruise.
func pointColor(altitudeM float64) string {
	switch {
	case altitudeM < 3000:
		return "#ffaa00"
	case altitudeM < 8000:
		return "#ff6600"
	default:
		return "#7aa2f7"
	}
}

// AirportPoints builds the airport marker layer. When zoomed far out
// only the major hubs are shown.
func AirportPoints(set []airports.Airport, zoom float64) []Point {
	filtered := set
	if zoom > ZoomAllAirports {
		filtered = nil
		for _, a := range set {
			if airports.IsMajorHub(a.IATA) {
				filtered = append(filtered, a)
			}
		}
	}

	points := make([]Point, 0, len(filtered))
	for _, a := range filtered {
		points = append(points, Point{
			Latitude:  a.Position.Latitude,
			Longitude: a.Position.Longitude,
			Altitude:  0.001,
			Size:      0.3,
			Color:     "#ffffff",
			Label:     a.IATA,
		})
	}
	return points
}

// LabelsForZoom builds the geographic label layer for a camera altitude.
// US state abbreviations are always present; the airport tier changes
// with zoom, from major hub codes far out to full airport names close
// in. Continent labels join above ZoomRegions.
func LabelsForZoom(set []airports.Airport, zoom float64) []Label {
	labels := make([]Label, 0, len(usStateCentroids)+len(set))

	for _, s := range usStateCentroids {
		labels = append(labels, newLabel(s.Lat, s.Lng, s.Abbr, 0.3, "state"))
	}

	if zoom >= ZoomRegions {
		labels = append(labels, RegionLabels()...)
	}

	switch {
	case zoom >= ZoomMajorAirports:
		for _, a := range set {
			if airports.IsMajorHub(a.IATA) {
				labels = append(labels, newLabel(a.Position.Latitude, a.Position.Longitude, a.IATA, 0.45, "airport-major"))
			}
		}
	case zoom >= ZoomAllAirports:
		for _, a := range set {
			size := 0.35
			if airports.IsMajorHub(a.IATA) {
				size = 0.45
			}
			labels = append(labels, newLabel(a.Position.Latitude, a.Position.Longitude, a.IATA, size, "airport"))
		}
	case zoom >= ZoomCities:
		for _, a := range set {
			labels = append(labels, newLabel(a.Position.Latitude, a.Position.Longitude, a.FullName(), 0.4, "city"))
		}
	default:
		for _, a := range set {
			labels = append(labels, newLabel(a.Position.Latitude, a.Position.Longitude, a.Name, 0.35, "airport-detail"))
		}
	}

	return labels
}

// FlightLabels builds callsign labels for close zoom. Flights without a
// callsign are skipped.
func FlightLabels(flights []flightdata.Flight) []Label {
	labels := make([]Label, 0, MaxFlightLabels)
	for _, f := range flights {
		if f.Callsign == "" {
			continue
		}
		if len(labels) == MaxFlightLabels {
			break
		}
		labels = append(labels, newLabel(f.Latitude, f.Longitude, f.Callsign, 0.4, "flight"))
	}
	return labels
}

// RegionLabels returns the continent labels shown at the farthest zoom.
func RegionLabels() []Label {
	return []Label{
		newLabel(40, -100, "North America", 1.2, "region"),
		newLabel(-15, -60, "South America", 1.2, "region"),
		newLabel(50, 10, "Europe", 1.2, "region"),
		newLabel(5, 20, "Africa", 1.2, "region"),
		newLabel(35, 100, "Asia", 1.2, "region"),
		newLabel(-25, 135, "Australia", 1.2, "region"),
	}
}

func newLabel(lat, lng float64, text string, size float64, typ string) Label {
	return Label{
		Latitude:  lat,
		Longitude: lng,
		Text:      text,
		Size:      size,
		Type:      typ,
		Color:     labelColor(typ),
	}
}

// labelColor maps a label type to its render color.
func labelColor(typ string) string {
	switch typ {
	case "airport-major":
		return "rgba(122, 162, 247, 0.95)"
	case "airport":
		return "rgba(122, 162, 247, 0.85)"
	case "state":
		return "rgba(120, 130, 150, 0.4)"
	case "city":
		return "rgba(200, 220, 255, 0.9)"
	case "airport-detail":
		return "rgba(150, 180, 220, 0.8)"
	case "flight":
		return "rgba(122, 162, 247, 0.9)"
	default:
		return "rgba(255, 255, 255, 0.7)"
	}
}

type stateCentroid struct {
	Name string
	Abbr string
	Lat  float64
	Lng  float64
}

// usStateCentroids places the always-on state abbreviation labels.
var usStateCentroids = []stateCentroid{
	{"Alabama", "AL", 32.7794, -86.8287},
	{"Alaska", "AK", 64.0685, -152.2782},
	{"Arizona", "AZ", 34.2744, -111.6602},
	{"Arkansas", "AR", 34.8938, -92.4426},
	{"California", "CA", 37.1841, -119.4696},
	{"Colorado", "CO", 38.9972, -105.5478},
	{"Connecticut", "CT", 41.6219, -72.7273},
	{"Delaware", "DE", 38.9896, -75.5050},
	{"Florida", "FL", 28.6305, -82.4497},
	{"Georgia", "GA", 32.6415, -83.4426},
	{"Hawaii", "HI", 20.2927, -156.3737},
	{"Idaho", "ID", 44.3509, -114.6130},
	{"Illinois", "IL", 40.0417, -89.1965},
	{"Indiana", "IN", 39.8942, -86.2816},
	{"Iowa", "IA", 42.0751, -93.4960},
	{"Kansas", "KS", 38.4937, -98.3804},
	{"Kentucky", "KY", 37.5347, -85.3021},
	{"Louisiana", "LA", 31.0689, -91.9968},
	{"Maine", "ME", 45.3695, -69.2428},
	{"Maryland", "MD", 39.0550, -76.7909},
	{"Massachusetts", "MA", 42.2596, -71.8083},
	{"Michigan", "MI", 44.3467, -85.4102},
	{"Minnesota", "MN", 46.2807, -94.3053},
	{"Mississippi", "MS", 32.7364, -89.6678},
	{"Missouri", "MO", 38.3566, -92.4580},
	{"Montana", "MT", 47.0527, -109.6333},
	{"Nebraska", "NE", 41.5378, -99.7951},
	{"Nevada", "NV", 39.3289, -116.6312},
	{"New Hampshire", "NH", 43.6805, -71.5811},
	{"New Jersey", "NJ", 40.1907, -74.6728},
	{"New Mexico", "NM", 34.4071, -106.1126},
	{"New York", "NY", 42.9538, -75.5268},
	{"North Carolina", "NC", 35.5557, -79.3877},
	{"North Dakota", "ND", 47.4501, -100.4659},
	{"Ohio", "OH", 40.2862, -82.7937},
	{"Oklahoma", "OK", 35.5889, -97.4943},
	{"Oregon", "OR", 43.9336, -120.5583},
	{"Pennsylvania", "PA", 40.8781, -77.7996},
	{"Rhode Island", "RI", 41.6762, -71.5562},
	{"South Carolina", "SC", 33.9169, -80.8964},
	{"South Dakota", "SD", 44.4443, -100.2263},
	{"Tennessee", "TN", 35.8580, -86.3505},
	{"Texas", "TX", 31.4757, -99.3312},
	{"Utah", "UT", 39.3055, -111.6703},
	{"Vermont", "VT", 44.0687, -72.6658},
	{"Virginia", "VA", 37.5215, -78.8537},
	{"Washington", "WA", 47.3826, -120.4472},
	{"West Virginia", "WV", 38.6409, -80.6227},
	{"Wisconsin", "WI", 44.6243, -89.9941},
	{"Wyoming", "WY", 42.9957, -107.5512},
}
