package solar

import (
	"math"
	"testing"
	"time"

	"github.com/skypath/skypath/pkg/geo"
)

func TestSubsolar(t *testing.T) {
	t.Run("June solstice at solar noon UTC", func(t *testing.T) {
		instant := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
		sp := Subsolar(instant)

		// Declination should be near the axial tilt at the solstice
		if math.Abs(sp.Position.Latitude-23.4) > 0.2 {
			t.Errorf("Declination = %f, want ~23.4", sp.Position.Latitude)
		}
		// At 12:00 UTC the sun is near 0° longitude (within the
		// equation-of-time correction)
		if math.Abs(sp.Position.Longitude) > 2.0 {
			t.Errorf("Subsolar longitude = %f, want ~0 ± 2", sp.Position.Longitude)
		}
	})

	t.Run("December solstice declination is southern", func(t *testing.T) {
		instant := time.Date(2024, 12, 21, 12, 0, 0, 0, time.UTC)
		sp := Subsolar(instant)
		if math.Abs(sp.Position.Latitude+23.4) > 0.2 {
			t.Errorf("Declination = %f, want ~-23.4", sp.Position.Latitude)
		}
	})

	t.Run("Equinox declination near zero", func(t *testing.T) {
		instant := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
		sp := Subsolar(instant)
		if math.Abs(sp.Position.Latitude) > 0.6 {
			t.Errorf("Declination = %f, want ~0", sp.Position.Latitude)
		}
	})

	t.Run("Midnight UTC puts sun near the antimeridian", func(t *testing.T) {
		instant := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)
		sp := Subsolar(instant)
		if math.Abs(math.Abs(sp.Position.Longitude)-180) > 3.0 {
			t.Errorf("Subsolar longitude = %f, want ~±180", sp.Position.Longitude)
		}
	})

	t.Run("Declination bounded by axial tilt for any date", func(t *testing.T) {
		start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		for day := 0; day < 730; day += 7 {
			sp := Subsolar(start.AddDate(0, 0, day))
			if math.Abs(sp.Position.Latitude) > 23.5 {
				t.Errorf("day %d: declination %f outside ±23.5", day, sp.Position.Latitude)
			}
			if sp.Position.Longitude > 180 || sp.Position.Longitude <= -180 {
				t.Errorf("day %d: longitude %f not normalized", day, sp.Position.Longitude)
			}
		}
	})

	t.Run("Timestamp preserved", func(t *testing.T) {
		instant := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
		if sp := Subsolar(instant); !sp.Time.Equal(instant) {
			t.Errorf("Time = %v, want %v", sp.Time, instant)
		}
	})
}

func TestInDaylight(t *testing.T) {
	instant := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	sp := Subsolar(instant)

	t.Run("Subsolar point itself is in daylight", func(t *testing.T) {
		if !sp.InDaylight(sp.Position) {
			t.Error("Subsolar point should be in daylight")
		}
	})

	t.Run("Antipode is in darkness", func(t *testing.T) {
		antipode := geo.Position{
			Latitude:  -sp.Position.Latitude,
			Longitude: geo.NormalizeLongitude(sp.Position.Longitude + 180),
		}
		if sp.InDaylight(antipode) {
			t.Error("Antipode of subsolar point should be dark")
		}
	})

	t.Run("Point 90 degrees away sits on the boundary", func(t *testing.T) {
		// Project due north 90° of arc from the subsolar point
		quarter := geo.EarthRadiusKm * math.Pi / 2
		edge := geo.Project(sp.Position, 0, quarter)
		if cos := sp.CosAngle(edge); math.Abs(cos) > 0.01 {
			t.Errorf("CosAngle at terminator = %f, want ~0", cos)
		}
	})
}

func TestTerminatorOutline(t *testing.T) {
	sp := Subsolar(time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC))

	t.Run("Returns numPoints+1 points", func(t *testing.T) {
		if got := len(sp.TerminatorOutline(180)); got != 181 {
			t.Errorf("len = %d, want 181", got)
		}
	})

	t.Run("Every point is 90 degrees from the subsolar point", func(t *testing.T) {
		for i, p := range sp.TerminatorOutline(36) {
			if !p.Valid() {
				t.Fatalf("point %d invalid: %+v", i, p)
			}
			if cos := sp.CosAngle(p); math.Abs(cos) > 0.01 {
				t.Errorf("point %d: cosAngle = %f, want ~0", i, cos)
			}
		}
	})

	t.Run("Degenerate point count clamped", func(t *testing.T) {
		if got := len(sp.TerminatorOutline(0)); got != 2 {
			t.Errorf("len = %d, want 2", got)
		}
	})
}

func TestDirection(t *testing.T) {
	sp := Subsolar(time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC))
	x, y, z := sp.Direction()

	if norm := math.Sqrt(x*x + y*y + z*z); math.Abs(norm-1.0) > 1e-9 {
		t.Errorf("Direction norm = %f, want 1", norm)
	}

	// Near the equinox at solar noon the vector points along +X
	if x < 0.99 {
		t.Errorf("x = %f, want ~1 at equinox solar noon", x)
	}
}
