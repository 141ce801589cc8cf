// Package routes infers plausible flight routes from instantaneous
// position and heading. Live feeds report only where an aircraft is and
// which way it points, never where it came from or where it is going; the
// estimator picks the nearest known airport as the likely origin and
// projects the heading ahead to choose a plausible destination, producing
// great-circle arc descriptors for the globe's path overlay.
package routes

import (
	"math"

	"github.com/skypath/skypath/pkg/airports"
	"github.com/skypath/skypath/pkg/flightdata"
	"github.com/skypath/skypath/pkg/geo"
)

// Arc describes a single rendered route segment between two positions.
// Arcs are derived data, recomputed from scratch on every refresh cycle.
type Arc struct {
	Start geo.Position `json:"start"`
	End   geo.Position `json:"end"`

	// FlightID is the ICAO address of the flight this arc belongs to
	FlightID string `json:"flightId"`

	// Origin and Destination are the airport codes backing the arc ends.
	// Origin is empty for position arcs, whose start is the live position.
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination"`
}

// Estimator holds the tuning parameters for route inference. Callers own
// the instance; there is no package-level state.
type Estimator struct {
	// ProjectionDistanceKm is how far ahead along the heading the
	// destination probe point is placed.
	ProjectionDistanceKm float64

	// MinOriginDistanceDeg is the minimum planar (degree-space) distance
	// a destination candidate must keep from the current position.
	// Roughly 4° ≈ 450 km; excludes degenerate short arcs.
	MinOriginDistanceDeg float64

	// MaxArcs bounds the number of arcs produced per refresh.
	MaxArcs int
}

// NewEstimator returns an Estimator with the standard tuning.
func NewEstimator() Estimator {
	return Estimator{
		ProjectionDistanceKm: 2000,
		MinOriginDistanceDeg: 4,
		MaxArcs:              200,
	}
}

// FindNearestWaypoint returns the airport with the minimum great-circle
// distance from p, or nil for an empty set. Ties break first-seen.
func FindNearestWaypoint(p geo.Position, waypoints []airports.Airport) *airports.Airport {
	var nearest *airports.Airport
	minDistance := math.Inf(1)

	for i := range waypoints {
		if d := geo.Haversine(p, waypoints[i].Position); d < minDistance {
			minDistance = d
			nearest = &waypoints[i]
		}
	}

	return nearest
}

// EstimateDestination guesses the destination airport for an aircraft at
// p flying the given track. Returns nil when the track is unknown or no
// airport lies both near the projected probe point and far enough from
// the current position.
//
// The candidate scan uses the planar degree-space metric rather than the
// haversine: it only ranks nearby candidates relative to each other, and
// the cheap metric is fine for that.
func (e Estimator) EstimateDestination(p geo.Position, track *float64, waypoints []airports.Airport) *airports.Airport {
	if track == nil {
		return nil
	}

	projected := geo.Project(p, *track, e.ProjectionDistanceKm)

	var closest *airports.Airport
	minDistance := math.Inf(1)

	for i := range waypoints {
		distance := geo.PlanarDistance(projected, waypoints[i].Position)
		originDistance := geo.PlanarDistance(p, waypoints[i].Position)

		if distance < minDistance && originDistance > e.MinOriginDistanceDeg {
			minDistance = distance
			closest = &waypoints[i]
		}
	}

	return closest
}

// ArcData builds the route arc set for a refresh cycle. Each sampled
// flight contributes at most one arc, drawn from its inferred origin (the
// nearest airport) to its estimated destination. Flights with invalid
// coordinates, no usable heading, or identical origin and destination are
// skipped; one malformed record never aborts the batch.
func (e Estimator) ArcData(flights []flightdata.Flight, waypoints []airports.Airport) []Arc {
	if len(waypoints) == 0 {
		return nil
	}

	sampled := e.sampleFlights(flights)
	arcs := make([]Arc, 0, len(sampled))

	for _, flight := range sampled {
		pos := geo.Position{Latitude: flight.Latitude, Longitude: flight.Longitude}
		if !pos.Valid() {
			continue
		}

		origin := FindNearestWaypoint(pos, waypoints)
		if origin == nil {
			continue
		}

		dest := e.EstimateDestination(pos, flight.Track, waypoints)
		if dest == nil || dest.IATA == origin.IATA {
			continue
		}

		arcs = append(arcs, Arc{
			Start:       origin.Position,
			End:         dest.Position,
			FlightID:    flight.ICAO,
			Origin:      origin.IATA,
			Destination: dest.IATA,
		})
	}

	return arcs
}

// PositionArc builds a spotlight arc for a single highlighted flight,
// starting at its live position rather than the inferred origin airport.
// Returns nil when no destination can be estimated.
func (e Estimator) PositionArc(flight flightdata.Flight, waypoints []airports.Airport) *Arc {
	pos := geo.Position{Latitude: flight.Latitude, Longitude: flight.Longitude}
	if !pos.Valid() || len(waypoints) == 0 {
		return nil
	}

	dest := e.EstimateDestination(pos, flight.Track, waypoints)
	if dest == nil {
		return nil
	}

	return &Arc{
		Start:       pos,
		End:         dest.Position,
		FlightID:    flight.ICAO,
		Destination: dest.IATA,
	}
}

// AirportArcs fans out arcs from one airport to every other airport in
// the set, for the hub-connections display.
func AirportArcs(code string, waypoints []airports.Airport) []Arc {
	var origin *airports.Airport
	for i := range waypoints {
		if waypoints[i].IATA == code {
			origin = &waypoints[i]
			break
		}
	}
	if origin == nil {
		return nil
	}

	arcs := make([]Arc, 0, len(waypoints)-1)
	for _, dest := range waypoints {
		if dest.IATA == code {
			continue
		}
		arcs = append(arcs, Arc{
			Start:       origin.Position,
			End:         dest.Position,
			Origin:      origin.IATA,
			Destination: dest.IATA,
		})
	}

	return arcs
}

// sampleFlights downsamples the flight set when it exceeds MaxArcs:
// flights with a known track are kept and thinned to every Nth entry,
// preserving relative order. Deterministic for a given input.
func (e Estimator) sampleFlights(flights []flightdata.Flight) []flightdata.Flight {
	if e.MaxArcs <= 0 || len(flights) <= e.MaxArcs {
		return flights
	}

	withTrack := make([]flightdata.Flight, 0, len(flights))
	for _, f := range flights {
		if f.Track != nil {
			withTrack = append(withTrack, f)
		}
	}

	step := (len(withTrack) + e.MaxArcs - 1) / e.MaxArcs
	if step <= 1 {
		return withTrack
	}

	sampled := make([]flightdata.Flight, 0, e.MaxArcs)
	for i := 0; i < len(withTrack); i += step {
		sampled = append(sampled, withTrack[i])
	}

	return sampled
}
