// Package flightdata acquires live aircraft state vectors. The primary
// source is the OpenSky Network REST API; a simulated source provides a
// realistic global traffic picture when the API is unreachable or rate
// limited. Records are transient: each fetch fully replaces the last.
package flightdata

import (
	"context"
	"time"
)

// Flight is one aircraft state vector from a refresh cycle.
// All position data is in WGS84 coordinates.
type Flight struct {
	// ICAO is the unique 24-bit ICAO transponder address (e.g., "a12345")
	ICAO string `json:"icao24"`

	// Callsign is the flight number or registration, trimmed.
	// Empty when the aircraft broadcasts none.
	Callsign string `json:"callsign,omitempty"`

	// OriginCountry is the state of registry reported by the feed
	OriginCountry string `json:"originCountry,omitempty"`

	// Latitude in decimal degrees (-90 to +90)
	Latitude float64 `json:"lat"`

	// Longitude in decimal degrees (-180 to +180)
	Longitude float64 `json:"lng"`

	// AltitudeM is altitude in meters above mean sea level.
	// Barometric altitude when available, geometric otherwise.
	AltitudeM float64 `json:"altitude"`

	// OnGround reports whether the aircraft is on the surface
	OnGround bool `json:"onGround"`

	// VelocityMS is ground speed in meters per second
	VelocityMS float64 `json:"velocity"`

	// Track is the ground track in degrees (0-360), nil when the
	// aircraft reports no directional information. Route inference
	// requires a non-nil track.
	Track *float64 `json:"heading"`

	// VerticalRate in meters per second (positive = climbing)
	VerticalRate float64 `json:"verticalRate"`

	// Squawk is the 4-digit transponder code, empty when unknown
	Squawk string `json:"squawk,omitempty"`

	// LastSeen is the timestamp of the last position update
	LastSeen time.Time `json:"lastSeen"`
}

// Source is the interface all flight data providers implement. It lets
// the server swap between the live API and the simulated feed.
type Source interface {
	// Flights returns the current global flight picture. Implementations
	// may serve cached data within their refresh window.
	Flights(ctx context.Context) ([]Flight, error)

	// FlightsInBounds returns flights within a bounding box
	// (lamin/lomin/lamax/lomax in decimal degrees).
	FlightsInBounds(ctx context.Context, lamin, lomin, lamax, lomax float64) ([]Flight, error)

	// Close cleanly shuts down the source.
	Close() error
}
