// Package geo provides spherical geometry primitives for positions on
// Earth's surface: great-circle distance, bearings, and point projection
// along a heading. All public functions take and return degrees; radians
// are used internally.
package geo

import "math"

// Constants for coordinate calculations
const (
	// DegreesToRadians converts degrees to radians
	DegreesToRadians = math.Pi / 180.0

	// RadiansToDegrees converts radians to degrees
	RadiansToDegrees = 180.0 / math.Pi

	// EarthRadiusKm is the Earth's radius in kilometers (WGS84 mean radius)
	EarthRadiusKm = 6371.0

	// KmPerNauticalMile converts nautical miles to kilometers
	KmPerNauticalMile = 1.852

	// FeetToMeters converts feet to meters
	FeetToMeters = 0.3048

	// MetersToFeet converts meters to feet
	MetersToFeet = 3.28084
)

// Position represents a point on Earth's surface.
// Uses the WGS84 coordinate system (same as GPS).
type Position struct {
	// Latitude in decimal degrees (-90 to +90)
	// Positive = North, Negative = South
	Latitude float64 `json:"lat"`

	// Longitude in decimal degrees (-180 to +180)
	// Positive = East, Negative = West
	Longitude float64 `json:"lng"`
}

// Valid reports whether the position holds finite coordinates within
// the geographic range. Inputs from external feeds must pass this check
// before entering any trigonometric computation.
func (p Position) Valid() bool {
	if math.IsNaN(p.Latitude) || math.IsInf(p.Latitude, 0) {
		return false
	}
	if math.IsNaN(p.Longitude) || math.IsInf(p.Longitude, 0) {
		return false
	}
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// ToRadians converts the position to radians.
// Returns (latRad, lngRad).
func (p Position) ToRadians() (float64, float64) {
	return p.Latitude * DegreesToRadians, p.Longitude * DegreesToRadians
}

// NormalizeLongitude wraps a longitude in degrees into (-180, 180].
func NormalizeLongitude(lng float64) float64 {
	lng = math.Mod(lng, 360.0)
	if lng > 180 {
		lng -= 360
	} else if lng <= -180 {
		lng += 360
	}
	return lng
}

// NormalizeHeading wraps a heading in degrees into [0, 360).
func NormalizeHeading(heading float64) float64 {
	h := math.Mod(heading, 360.0)
	if h < 0 {
		h += 360.0
	}
	return h
}

// Haversine calculates the great-circle distance between two points.
// Returns distance in kilometers.
func Haversine(from, to Position) float64 {
	lat1, lng1 := from.ToRadians()
	lat2, lng2 := to.ToRadians()

	dLat := lat2 - lat1
	dLng := lng2 - lng1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// HaversineNM is Haversine converted to nautical miles.
func HaversineNM(from, to Position) float64 {
	return Haversine(from, to) / KmPerNauticalMile
}

// PlanarDistance is the Euclidean distance between two points in raw
// degree space. It is not a geodesic: it only serves cheap relative
// comparisons among nearby candidates, never absolute distances.
func PlanarDistance(from, to Position) float64 {
	dLat := to.Latitude - from.Latitude
	dLng := to.Longitude - from.Longitude
	return math.Sqrt(dLat*dLat + dLng*dLng)
}

// Bearing calculates the initial bearing (forward azimuth) from one point
// to another along a great circle.
// Returns bearing in degrees (0-360), where 0/360 = North, 90 = East.
func Bearing(from, to Position) float64 {
	lat1, lng1 := from.ToRadians()
	lat2, lng2 := to.ToRadians()

	dLng := lng2 - lng1
	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)
	return NormalizeHeading(math.Atan2(y, x) * RadiansToDegrees)
}

// Project solves the direct geodesic problem on a sphere: the point
// reached by travelling distanceKm from p along the given initial
// heading (degrees clockwise from north).
//
// The returned longitude is normalized to (-180, 180].
func Project(p Position, headingDeg, distanceKm float64) Position {
	d := distanceKm / EarthRadiusKm
	headingRad := headingDeg * DegreesToRadians
	lat1, lng1 := p.ToRadians()

	lat2 := math.Asin(
		math.Sin(lat1)*math.Cos(d) +
			math.Cos(lat1)*math.Sin(d)*math.Cos(headingRad))

	lng2 := lng1 + math.Atan2(
		math.Sin(headingRad)*math.Sin(d)*math.Cos(lat1),
		math.Cos(d)-math.Sin(lat1)*math.Sin(lat2))

	return Position{
		Latitude:  lat2 * RadiansToDegrees,
		Longitude: NormalizeLongitude(lng2 * RadiansToDegrees),
	}
}
