package routes

import (
	"fmt"
	"testing"

	"github.com/skypath/skypath/pkg/airports"
	"github.com/skypath/skypath/pkg/flightdata"
	"github.com/skypath/skypath/pkg/geo"
)

func ptr(v float64) *float64 { return &v }

var atlanticWaypoints = []airports.Airport{
	{IATA: "JFK", Name: "John F. Kennedy Intl", Position: geo.Position{Latitude: 40.64, Longitude: -73.78}},
	{IATA: "LHR", Name: "London Heathrow", Position: geo.Position{Latitude: 51.47, Longitude: -0.45}},
}

func TestFindNearestWaypoint(t *testing.T) {
	tests := []struct {
		name string
		pos  geo.Position
		want string
	}{
		{"Mid-Atlantic leans American", geo.Position{Latitude: 45, Longitude: -40}, "JFK"},
		{"Over Ireland leans European", geo.Position{Latitude: 53, Longitude: -8}, "LHR"},
		{"At the airport itself", geo.Position{Latitude: 40.64, Longitude: -73.78}, "JFK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindNearestWaypoint(tt.pos, atlanticWaypoints)
			if got == nil {
				t.Fatal("Expected a waypoint, got nil")
			}
			if got.IATA != tt.want {
				t.Errorf("Nearest = %s, want %s", got.IATA, tt.want)
			}
		})
	}

	t.Run("Empty set returns nil", func(t *testing.T) {
		if got := FindNearestWaypoint(geo.Position{}, nil); got != nil {
			t.Errorf("Expected nil, got %s", got.IATA)
		}
	})

	t.Run("Singleton set returns its only member", func(t *testing.T) {
		got := FindNearestWaypoint(geo.Position{Latitude: -30, Longitude: 150}, atlanticWaypoints[:1])
		if got == nil || got.IATA != "JFK" {
			t.Errorf("Expected JFK, got %v", got)
		}
	})
}

func TestEstimateDestination(t *testing.T) {
	est := NewEstimator()

	t.Run("Eastbound over the Atlantic heads for Heathrow", func(t *testing.T) {
		pos := geo.Position{Latitude: 45, Longitude: -40}
		got := est.EstimateDestination(pos, ptr(90), atlanticWaypoints)
		if got == nil {
			t.Fatal("Expected a destination, got nil")
		}
		if got.IATA != "LHR" {
			t.Errorf("Destination = %s, want LHR", got.IATA)
		}
	})

	t.Run("Westbound over the Atlantic heads for Kennedy", func(t *testing.T) {
		pos := geo.Position{Latitude: 45, Longitude: -40}
		got := est.EstimateDestination(pos, ptr(270), atlanticWaypoints)
		if got == nil {
			t.Fatal("Expected a destination, got nil")
		}
		if got.IATA != "JFK" {
			t.Errorf("Destination = %s, want JFK", got.IATA)
		}
	})

	t.Run("Unknown heading yields no estimate", func(t *testing.T) {
		pos := geo.Position{Latitude: 45, Longitude: -40}
		if got := est.EstimateDestination(pos, nil, atlanticWaypoints); got != nil {
			t.Errorf("Expected nil for nil track, got %s", got.IATA)
		}
	})

	t.Run("Nearby airports are never the destination", func(t *testing.T) {
		// Position within the minimum origin distance of LHR; even a
		// heading straight at it must not pick it.
		pos := geo.Position{Latitude: 51.0, Longitude: -2.0}
		got := est.EstimateDestination(pos, ptr(45), []airports.Airport{atlanticWaypoints[1]})
		if got != nil {
			t.Errorf("Expected nil inside exclusion radius, got %s", got.IATA)
		}
	})

	t.Run("No waypoints yields no estimate", func(t *testing.T) {
		pos := geo.Position{Latitude: 45, Longitude: -40}
		if got := est.EstimateDestination(pos, ptr(90), nil); got != nil {
			t.Errorf("Expected nil, got %s", got.IATA)
		}
	})
}

func TestArcData(t *testing.T) {
	est := NewEstimator()

	t.Run("Mid-Atlantic eastbound flight gets a JFK to LHR arc", func(t *testing.T) {
		flights := []flightdata.Flight{
			{ICAO: "abc123", Latitude: 45, Longitude: -40, Track: ptr(90)},
		}

		arcs := est.ArcData(flights, atlanticWaypoints)
		if len(arcs) != 1 {
			t.Fatalf("Got %d arcs, want 1", len(arcs))
		}
		arc := arcs[0]
		if arc.Origin != "JFK" || arc.Destination != "LHR" {
			t.Errorf("Arc %s -> %s, want JFK -> LHR", arc.Origin, arc.Destination)
		}
		if arc.FlightID != "abc123" {
			t.Errorf("FlightID = %s, want abc123", arc.FlightID)
		}
		if arc.Start != atlanticWaypoints[0].Position || arc.End != atlanticWaypoints[1].Position {
			t.Errorf("Arc endpoints %+v -> %+v do not match the airports", arc.Start, arc.End)
		}
	})

	t.Run("Flights without headings are skipped", func(t *testing.T) {
		flights := []flightdata.Flight{
			{ICAO: "notrack", Latitude: 45, Longitude: -40},
		}
		if arcs := est.ArcData(flights, atlanticWaypoints); len(arcs) != 0 {
			t.Errorf("Got %d arcs for heading-less flight, want 0", len(arcs))
		}
	})

	t.Run("Invalid coordinates are skipped without aborting the batch", func(t *testing.T) {
		flights := []flightdata.Flight{
			{ICAO: "bad", Latitude: 95, Longitude: -40, Track: ptr(90)},
			{ICAO: "good", Latitude: 45, Longitude: -40, Track: ptr(90)},
		}
		arcs := est.ArcData(flights, atlanticWaypoints)
		if len(arcs) != 1 || arcs[0].FlightID != "good" {
			t.Errorf("Got %+v, want single arc for flight good", arcs)
		}
	})

	t.Run("Flights circling their origin are skipped", func(t *testing.T) {
		// Near JFK, heading toward LHR but with the projection still
		// closest to JFK... the destination scan excludes JFK by the
		// origin-distance rule, so only a genuine LHR pick can survive.
		flights := []flightdata.Flight{
			{ICAO: "local", Latitude: 40.7, Longitude: -73.9, Track: ptr(270)},
		}
		arcs := est.ArcData(flights, []airports.Airport{atlanticWaypoints[0]})
		if len(arcs) != 0 {
			t.Errorf("Got %d arcs for a flight with origin == only candidate, want 0", len(arcs))
		}
	})

	t.Run("Empty waypoint set yields no arcs", func(t *testing.T) {
		flights := []flightdata.Flight{
			{ICAO: "abc123", Latitude: 45, Longitude: -40, Track: ptr(90)},
		}
		if arcs := est.ArcData(flights, nil); arcs != nil {
			t.Errorf("Expected nil, got %v", arcs)
		}
	})

	t.Run("Never more arcs than MaxArcs", func(t *testing.T) {
		waypoints := airports.Load()

		var flights []flightdata.Flight
		for i := 0; i < 1000; i++ {
			flights = append(flights, flightdata.Flight{
				ICAO:      fmt.Sprintf("bulk%04d", i),
				Latitude:  float64(i%140) - 70,
				Longitude: float64((i*7)%360) - 180,
				Track:     ptr(float64(i % 360)),
			})
		}

		arcs := est.ArcData(flights, waypoints)
		if len(arcs) > est.MaxArcs {
			t.Errorf("Got %d arcs, want at most %d", len(arcs), est.MaxArcs)
		}
	})
}

func TestSampleFlights(t *testing.T) {
	est := NewEstimator()
	est.MaxArcs = 10

	var flights []flightdata.Flight
	for i := 0; i < 95; i++ {
		f := flightdata.Flight{ICAO: fmt.Sprintf("f%02d", i)}
		if i%3 != 0 {
			f.Track = ptr(float64(i))
		}
		flights = append(flights, f)
	}

	sampled := est.sampleFlights(flights)

	if len(sampled) > est.MaxArcs {
		t.Errorf("Sampled %d flights, want at most %d", len(sampled), est.MaxArcs)
	}
	for _, f := range sampled {
		if f.Track == nil {
			t.Errorf("Sampled flight %s has no track", f.ICAO)
		}
	}

	t.Run("Small sets pass through untouched", func(t *testing.T) {
		small := flights[:5]
		got := est.sampleFlights(small)
		if len(got) != len(small) {
			t.Errorf("Got %d flights, want %d", len(got), len(small))
		}
	})

	t.Run("Deterministic for the same input", func(t *testing.T) {
		a := est.sampleFlights(flights)
		b := est.sampleFlights(flights)
		if len(a) != len(b) {
			t.Fatalf("Lengths differ: %d vs %d", len(a), len(b))
		}
		for i := range a {
			if a[i].ICAO != b[i].ICAO {
				t.Errorf("Sample %d differs: %s vs %s", i, a[i].ICAO, b[i].ICAO)
			}
		}
	})
}

func TestPositionArc(t *testing.T) {
	est := NewEstimator()

	t.Run("Arc starts at the live position", func(t *testing.T) {
		flight := flightdata.Flight{ICAO: "abc123", Latitude: 45, Longitude: -40, Track: ptr(90)}
		arc := est.PositionArc(flight, atlanticWaypoints)
		if arc == nil {
			t.Fatal("Expected an arc, got nil")
		}
		if arc.Start.Latitude != 45 || arc.Start.Longitude != -40 {
			t.Errorf("Start = %+v, want the flight position", arc.Start)
		}
		if arc.Destination != "LHR" || arc.Origin != "" {
			t.Errorf("Arc %q -> %s, want \"\" -> LHR", arc.Origin, arc.Destination)
		}
	})

	t.Run("No destination means no arc", func(t *testing.T) {
		flight := flightdata.Flight{ICAO: "abc123", Latitude: 45, Longitude: -40}
		if arc := est.PositionArc(flight, atlanticWaypoints); arc != nil {
			t.Errorf("Expected nil, got %+v", arc)
		}
	})
}

func TestAirportArcs(t *testing.T) {
	waypoints := airports.Load()

	arcs := AirportArcs("JFK", waypoints)
	if len(arcs) != len(waypoints)-1 {
		t.Errorf("Got %d arcs, want %d", len(arcs), len(waypoints)-1)
	}
	for _, arc := range arcs {
		if arc.Origin != "JFK" {
			t.Errorf("Arc origin = %s, want JFK", arc.Origin)
		}
		if arc.Destination == "JFK" {
			t.Error("Arc loops back to its own origin")
		}
	}

	t.Run("Unknown code yields nil", func(t *testing.T) {
		if arcs := AirportArcs("XXX", waypoints); arcs != nil {
			t.Errorf("Expected nil, got %d arcs", len(arcs))
		}
	})
}
