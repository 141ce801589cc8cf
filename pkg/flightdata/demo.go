package flightdata

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// trafficRegion describes one area of simulated flight activity.
type trafficRegion struct {
	Name     string
	MinLat   float64
	MaxLat   float64
	MinLng   float64
	MaxLng   float64
	Density  int // number of flights generated in the box
	Airlines []string
	Country  string
}

// longHaulSeed places a single intercontinental flight on a fixed
// corridor position with a fixed heading.
type longHaulSeed struct {
	Lat     float64
	Lng     float64
	Heading float64
	Country string
	Airline string
}

// Regional traffic distribution, roughly proportional to real densities.
var demoRegions = []trafficRegion{
	// North America
	{"US", 25, 49, -125, -70, 120, []string{"UAL", "DAL", "AAL", "SWA", "JBU", "ASA"}, "United States"},
	{"Canada", 45, 60, -130, -60, 25, []string{"ACA", "WJA"}, "Canada"},
	{"Mexico", 16, 30, -115, -87, 20, []string{"AMX", "VOI"}, "Mexico"},

	// Europe
	{"Western Europe", 43, 58, -10, 15, 80, []string{"BAW", "AFR", "DLH", "KLM", "EZY", "RYR"}, "United Kingdom"},
	{"Central Europe", 46, 55, 10, 25, 50, []string{"DLH", "AUA", "SWR", "LOT"}, "Germany"},
	{"Southern Europe", 36, 46, -10, 20, 40, []string{"IBE", "TAP", "AZA", "VLG"}, "Spain"},
	{"Nordic", 55, 70, 5, 30, 25, []string{"SAS", "FIN", "NAX"}, "Norway"},
	{"Russia", 50, 65, 30, 140, 35, []string{"AFL", "SBI", "SVR"}, "Russia"},

	// Asia
	{"East Asia", 25, 45, 100, 145, 70, []string{"CCA", "CES", "JAL", "ANA", "KAL", "AAR"}, "China"},
	{"Southeast Asia", -5, 25, 95, 125, 45, []string{"SIA", "THA", "MAS", "CPA"}, "Singapore"},
	{"South Asia", 8, 35, 68, 92, 35, []string{"AIC", "IGO", "SEJ"}, "India"},
	{"Middle East", 20, 40, 35, 60, 40, []string{"UAE", "QTR", "ETD", "THY", "ELY"}, "United Arab Emirates"},

	// Other regions
	{"Australia", -40, -12, 113, 154, 30, []string{"QFA", "JST", "VOZ"}, "Australia"},
	{"South America", -35, 5, -80, -35, 35, []string{"LAN", "GLO", "AVA", "AZU"}, "Brazil"},
	{"Africa", -35, 35, -18, 50, 25, []string{"SAA", "ETH", "RAM", "MSR"}, "South Africa"},
}

// Transatlantic, transpacific, and other long-haul corridors.
var demoLongHaul = []longHaulSeed{
	// Transatlantic
	{52, -30, 270, "United States", "UAL"},
	{50, -25, 90, "United Kingdom", "BAW"},
	{48, -40, 270, "Germany", "DLH"},
	{54, -20, 270, "United States", "DAL"},
	{46, -35, 90, "France", "AFR"},
	// Transpacific
	{45, -160, 270, "Japan", "JAL"},
	{40, -150, 90, "United States", "UAL"},
	{35, 170, 90, "Australia", "QFA"},
	{50, -170, 230, "South Korea", "KAL"},
	// Middle East - Europe
	{42, 30, 270, "United Arab Emirates", "UAE"},
	{38, 45, 300, "Qatar", "QTR"},
	// Asia - Australia
	{5, 115, 180, "Singapore", "SIA"},
	{-15, 130, 220, "Australia", "QFA"},
}

// DemoSource generates a simulated global flight picture with realistic
// regional distribution. Used as the fallback when the live API is
// unavailable, and for offline development.
type DemoSource struct {
	rng *rand.Rand
}

// NewDemoSource creates a demo source. A fixed seed produces a
// reproducible traffic picture; seed 0 picks a time-based seed so each
// run differs.
func NewDemoSource(seed int64) *DemoSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DemoSource{rng: rand.New(rand.NewSource(seed))}
}

// Flights generates the simulated traffic picture: per-region random
// flights plus the fixed long-haul corridor set.
func (d *DemoSource) Flights(_ context.Context) ([]Flight, error) {
	now := time.Now().UTC()
	var flights []Flight
	index := 0

	for _, region := range demoRegions {
		for i := 0; i < region.Density; i++ {
			lat := region.MinLat + d.rng.Float64()*(region.MaxLat-region.MinLat)
			lng := region.MinLng + d.rng.Float64()*(region.MaxLng-region.MinLng)
			track := d.rng.Float64() * 360
			airline := region.Airlines[d.rng.Intn(len(region.Airlines))]

			flights = append(flights, Flight{
				ICAO:          fmt.Sprintf("demo%04d", index),
				Callsign:      fmt.Sprintf("%s%d", airline, 100+d.rng.Intn(900)),
				OriginCountry: region.Country,
				Latitude:      lat,
				Longitude:     lng,
				AltitudeM:     8000 + d.rng.Float64()*4000,
				VelocityMS:    200 + d.rng.Float64()*50,
				Track:         &track,
				VerticalRate:  (d.rng.Float64() - 0.5) * 10,
				LastSeen:      now,
			})
			index++
		}
	}

	for i, route := range demoLongHaul {
		track := route.Heading
		flights = append(flights, Flight{
			ICAO:          fmt.Sprintf("intl%03d", i),
			Callsign:      fmt.Sprintf("%s%d", route.Airline, 100+i),
			OriginCountry: route.Country,
			Latitude:      route.Lat,
			Longitude:     route.Lng,
			AltitudeM:     11000 + d.rng.Float64()*1000,
			VelocityMS:    240 + d.rng.Float64()*20,
			Track:         &track,
			LastSeen:      now,
		})
	}

	return flights, nil
}

// FlightsInBounds filters the generated picture to a bounding box.
func (d *DemoSource) FlightsInBounds(ctx context.Context, lamin, lomin, lamax, lomax float64) ([]Flight, error) {
	all, err := d.Flights(ctx)
	if err != nil {
		return nil, err
	}

	var out []Flight
	for _, f := range all {
		if f.Latitude >= lamin && f.Latitude <= lamax &&
			f.Longitude >= lomin && f.Longitude <= lomax {
			out = append(out, f)
		}
	}
	return out, nil
}

// Close is a no-op for the demo source.
func (d *DemoSource) Close() error {
	return nil
}

// FallbackSource wraps a primary Source and fails over to a secondary
// when the primary errors. The globe keeps rendering simulated traffic
// through API outages; stale live data is simply replaced next cycle.
type FallbackSource struct {
	Primary   Source
	Secondary Source

	// Retry controls how hard the primary is tried before failing
	// over: transient errors (a 429 with Retry-After, a network blip)
	// are retried with backoff rather than immediately dropping to
	// simulated traffic. The zero value means a single attempt.
	Retry RetryConfig

	// OnFallback, when set, is invoked with the primary's error each
	// time the secondary serves a request.
	OnFallback func(error)
}

func (f *FallbackSource) tryPrimary(ctx context.Context, fn func() ([]Flight, error)) ([]Flight, error) {
	if f.Retry.MaxRetries > 0 {
		return RetryWithBackoffResult(ctx, f.Retry, fn)
	}
	return fn()
}

// Flights tries the primary source, with retries, and falls back on
// error.
func (f *FallbackSource) Flights(ctx context.Context) ([]Flight, error) {
	flights, err := f.tryPrimary(ctx, func() ([]Flight, error) {
		return f.Primary.Flights(ctx)
	})
	if err == nil {
		return flights, nil
	}
	if f.OnFallback != nil {
		f.OnFallback(err)
	}
	return f.Secondary.Flights(ctx)
}

// FlightsInBounds tries the primary source, with retries, and falls
// back on error.
func (f *FallbackSource) FlightsInBounds(ctx context.Context, lamin, lomin, lamax, lomax float64) ([]Flight, error) {
	flights, err := f.tryPrimary(ctx, func() ([]Flight, error) {
		return f.Primary.FlightsInBounds(ctx, lamin, lomin, lamax, lomax)
	})
	if err == nil {
		return flights, nil
	}
	if f.OnFallback != nil {
		f.OnFallback(err)
	}
	return f.Secondary.FlightsInBounds(ctx, lamin, lomin, lamax, lomax)
}

// Close closes both sources, returning the first error.
func (f *FallbackSource) Close() error {
	err := f.Primary.Close()
	if cerr := f.Secondary.Close(); err == nil {
		err = cerr
	}
	return err
}
