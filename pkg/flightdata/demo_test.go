package flightdata

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDemoSourceFlights(t *testing.T) {
	src := NewDemoSource(1)
	flights, err := src.Flights(context.Background())
	if err != nil {
		t.Fatalf("Flights returned error: %v", err)
	}

	wantRegional := 0
	for _, r := range demoRegions {
		wantRegional += r.Density
	}
	if len(flights) != wantRegional+len(demoLongHaul) {
		t.Fatalf("Got %d flights, want %d", len(flights), wantRegional+len(demoLongHaul))
	}

	t.Run("Regional flights stay inside their region", func(t *testing.T) {
		idx := 0
		for _, region := range demoRegions {
			for i := 0; i < region.Density; i++ {
				f := flights[idx]
				if f.Latitude < region.MinLat || f.Latitude > region.MaxLat ||
					f.Longitude < region.MinLng || f.Longitude > region.MaxLng {
					t.Errorf("%s: flight %s at (%f, %f) outside region box",
						region.Name, f.ICAO, f.Latitude, f.Longitude)
				}
				if f.OriginCountry != region.Country {
					t.Errorf("%s: country %s, want %s", f.ICAO, f.OriginCountry, region.Country)
				}
				idx++
			}
		}
	})

	t.Run("All flights have usable tracks", func(t *testing.T) {
		for _, f := range flights {
			if f.Track == nil {
				t.Errorf("%s has nil track", f.ICAO)
				continue
			}
			if *f.Track < 0 || *f.Track >= 360.0001 {
				t.Errorf("%s track %f out of range", f.ICAO, *f.Track)
			}
		}
	})

	t.Run("Long haul seeds appended with stable IDs", func(t *testing.T) {
		last := flights[len(flights)-1]
		if !strings.HasPrefix(last.ICAO, "intl") {
			t.Errorf("Last flight ICAO = %s, want intl prefix", last.ICAO)
		}
	})

	t.Run("Fixed seed is reproducible", func(t *testing.T) {
		again, _ := NewDemoSource(1).Flights(context.Background())
		if len(again) != len(flights) {
			t.Fatalf("Lengths differ: %d vs %d", len(again), len(flights))
		}
		if again[0].Latitude != flights[0].Latitude || again[0].Callsign != flights[0].Callsign {
			t.Error("Same seed produced different traffic")
		}
	})
}

func TestDemoSourceZeroSeed(t *testing.T) {
	first, err := NewDemoSource(0).Flights(context.Background())
	if err != nil {
		t.Fatalf("Flights returned error: %v", err)
	}

	// Zero means time-based: a later construction must not replay the
	// same traffic.
	time.Sleep(time.Millisecond)
	second, _ := NewDemoSource(0).Flights(context.Background())

	same := true
	for i := range first {
		if first[i].Latitude != second[i].Latitude || first[i].Callsign != second[i].Callsign {
			same = false
			break
		}
	}
	if same {
		t.Error("Zero seed produced identical traffic across runs")
	}
}

func TestDemoSourceFlightsInBounds(t *testing.T) {
	src := NewDemoSource(7)
	flights, err := src.FlightsInBounds(context.Background(), 25, -125, 49, -70)
	if err != nil {
		t.Fatalf("FlightsInBounds returned error: %v", err)
	}
	if len(flights) == 0 {
		t.Fatal("Expected simulated US traffic inside the box")
	}
	for _, f := range flights {
		if f.Latitude < 25 || f.Latitude > 49 || f.Longitude < -125 || f.Longitude > -70 {
			t.Errorf("%s at (%f, %f) outside requested bounds", f.ICAO, f.Latitude, f.Longitude)
		}
	}
}

// failingSource always errors, for fallback tests.
type failingSource struct{}

func (failingSource) Flights(context.Context) ([]Flight, error) {
	return nil, errors.New("upstream down")
}

func (failingSource) FlightsInBounds(context.Context, float64, float64, float64, float64) ([]Flight, error) {
	return nil, errors.New("upstream down")
}

func (failingSource) Close() error { return nil }

func TestFallbackSource(t *testing.T) {
	var fellBack bool
	src := &FallbackSource{
		Primary:    failingSource{},
		Secondary:  NewDemoSource(3),
		OnFallback: func(error) { fellBack = true },
	}

	flights, err := src.Flights(context.Background())
	if err != nil {
		t.Fatalf("Fallback should have served: %v", err)
	}
	if len(flights) == 0 {
		t.Error("Fallback returned no flights")
	}
	if !fellBack {
		t.Error("OnFallback was not invoked")
	}
}

// flakySource fails a fixed number of times before succeeding, for
// retry tests.
type flakySource struct {
	failures int
	calls    int
}

func (s *flakySource) Flights(context.Context) ([]Flight, error) {
	s.calls++
	if s.calls <= s.failures {
		return nil, errors.New("transient upstream error")
	}
	return []Flight{{ICAO: "abc123"}}, nil
}

func (s *flakySource) FlightsInBounds(context.Context, float64, float64, float64, float64) ([]Flight, error) {
	return s.Flights(context.Background())
}

func (s *flakySource) Close() error { return nil }

func TestFallbackSourceRetriesPrimary(t *testing.T) {
	retry := RetryConfig{
		MaxRetries:   3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}

	t.Run("Transient failure recovers without fallback", func(t *testing.T) {
		primary := &flakySource{failures: 2}
		var fellBack bool
		src := &FallbackSource{
			Primary:    primary,
			Secondary:  NewDemoSource(3),
			Retry:      retry,
			OnFallback: func(error) { fellBack = true },
		}

		flights, err := src.Flights(context.Background())
		if err != nil {
			t.Fatalf("Expected primary to recover: %v", err)
		}
		if len(flights) != 1 || flights[0].ICAO != "abc123" {
			t.Errorf("Got %+v, want the primary's flight", flights)
		}
		if primary.calls != 3 {
			t.Errorf("Primary called %d times, want 3", primary.calls)
		}
		if fellBack {
			t.Error("Fell back to demo traffic despite primary recovery")
		}
	})

	t.Run("Exhausted retries still fall back", func(t *testing.T) {
		primary := &flakySource{failures: 10}
		var fellBack bool
		src := &FallbackSource{
			Primary:    primary,
			Secondary:  NewDemoSource(3),
			Retry:      retry,
			OnFallback: func(error) { fellBack = true },
		}

		flights, err := src.Flights(context.Background())
		if err != nil {
			t.Fatalf("Fallback should have served: %v", err)
		}
		if len(flights) == 0 {
			t.Error("Fallback returned no flights")
		}
		if primary.calls != 4 { // initial + 3 retries
			t.Errorf("Primary called %d times, want 4", primary.calls)
		}
		if !fellBack {
			t.Error("OnFallback was not invoked")
		}
	})
}
