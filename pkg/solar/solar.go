// Package solar computes the subsolar point and the day/night terminator
// for shading a globe. Uses a simplified solar ephemeris accurate to about
// 0.01 degrees, which is far below the ~0.25°/minute drift of the subsolar
// point itself.
package solar

import (
	"math"
	"time"

	"github.com/skypath/skypath/pkg/geo"
)

// SubsolarPoint is the location where the sun is directly overhead at a
// given instant. It is a pure function of wall-clock time and must be
// recomputed periodically rather than cached indefinitely.
type SubsolarPoint struct {
	Position geo.Position `json:"position"`
	Time     time.Time    `json:"time"`
}

// Subsolar calculates the subsolar point for the given instant.
//
// The algorithm:
//  1. Julian date from Unix time
//  2. Days since the J2000.0 epoch
//  3. Mean solar longitude and mean anomaly
//  4. Ecliptic longitude with first-order equation of center
//  5. Declination from the obliquity of the ecliptic (subsolar latitude)
//  6. Equation of time, then subsolar longitude from UTC decimal hours
func Subsolar(t time.Time) SubsolarPoint {
	utc := t.UTC()

	// Julian date and days since J2000.0
	jd := float64(utc.UnixMilli())/86400000.0 + 2440587.5
	d := jd - 2451545.0

	// Mean longitude of the sun (degrees)
	l := math.Mod(280.461+0.9856474*d, 360.0)

	// Mean anomaly of the sun (radians)
	g := math.Mod(357.528+0.9856003*d, 360.0) * geo.DegreesToRadians

	// Ecliptic longitude (degrees)
	lambda := l + 1.915*math.Sin(g) + 0.020*math.Sin(2*g)

	// Obliquity of the ecliptic (degrees)
	epsilon := 23.439 - 0.0000004*d

	// Declination = latitude of the subsolar point
	declination := math.Asin(
		math.Sin(epsilon*geo.DegreesToRadians)*
			math.Sin(lambda*geo.DegreesToRadians)) * geo.RadiansToDegrees

	// Equation of time (minutes)
	b := (360.0 / 365.0) * (d - 81.0) * geo.DegreesToRadians
	eot := 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)

	// Subsolar longitude: the sun is over 0° longitude at 12:00 UTC
	// (corrected by the equation of time), moving 15°/hour westward.
	utcHours := float64(utc.Hour()) +
		float64(utc.Minute())/60.0 +
		float64(utc.Second())/3600.0

	longitude := geo.NormalizeLongitude((12.0 - utcHours - eot/60.0) * 15.0)

	return SubsolarPoint{
		Position: geo.Position{Latitude: declination, Longitude: longitude},
		Time:     t,
	}
}

// InDaylight reports whether a surface point is on the sunlit side of the
// terminator: the angular distance from the subsolar point is below 90°.
func (sp SubsolarPoint) InDaylight(p geo.Position) bool {
	return sp.CosAngle(p) > 0
}

// CosAngle returns the cosine of the angular distance between a surface
// point and the subsolar point. Values near zero lie on the terminator;
// renderers can use the band ±0.1 as a smoothed twilight zone.
func (sp SubsolarPoint) CosAngle(p geo.Position) float64 {
	lat, lng := p.ToRadians()
	sunLat, sunLng := sp.Position.ToRadians()

	return math.Sin(lat)*math.Sin(sunLat) +
		math.Cos(lat)*math.Cos(sunLat)*math.Cos(lng-sunLng)
}

// Direction returns the unit vector pointing from the Earth's center
// toward the sun, in the Y-up frame used by globe renderers. Intended for
// shader-based shading: per-fragment dot(normal, sunDirection) against a
// smoothed twilight band replaces the polyline outline.
func (sp SubsolarPoint) Direction() (x, y, z float64) {
	lat, lng := sp.Position.ToRadians()
	return math.Cos(lat) * math.Cos(lng),
		math.Sin(lat),
		math.Cos(lat) * math.Sin(lng)
}

// TerminatorOutline generates numPoints+1 points along the day/night
// boundary: the great circle 90° from the subsolar point, swept by a
// parametric angle over [0, 2π]. Longitudes are normalized.
func (sp SubsolarPoint) TerminatorOutline(numPoints int) []geo.Position {
	if numPoints < 1 {
		numPoints = 1
	}

	sunLat, _ := sp.Position.ToRadians()
	points := make([]geo.Position, 0, numPoints+1)

	for i := 0; i <= numPoints; i++ {
		angle := float64(i) / float64(numPoints) * 2 * math.Pi

		lat := math.Asin(math.Cos(sunLat)*math.Sin(angle)) * geo.RadiansToDegrees
		lng := sp.Position.Longitude +
			math.Atan2(math.Cos(angle), -math.Sin(sunLat)*math.Sin(angle))*geo.RadiansToDegrees

		points = append(points, geo.Position{
			Latitude:  lat,
			Longitude: geo.NormalizeLongitude(lng),
		})
	}

	return points
}
