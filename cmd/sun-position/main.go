// Sun position utility: prints the subsolar point, day/night status for
// an observer, and a terminator sample for a given instant.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/skypath/skypath/pkg/geo"
	"github.com/skypath/skypath/pkg/solar"
)

var (
	lat       = flag.Float64("lat", 0, "Observer latitude in decimal degrees")
	lng       = flag.Float64("lng", 0, "Observer longitude in decimal degrees")
	when      = flag.String("time", "", "Instant in RFC3339 (default: now)")
	numPoints = flag.Int("points", 12, "Number of terminator sample points to print")
)

func main() {
	flag.Parse()

	t := time.Now()
	if *when != "" {
		parsed, err := time.Parse(time.RFC3339, *when)
		if err != nil {
			log.Fatalf("Invalid -time value %q: %v", *when, err)
		}
		t = parsed
	}

	observer := geo.Position{Latitude: *lat, Longitude: *lng}
	if !observer.Valid() {
		log.Fatalf("Invalid observer position %.4f, %.4f", *lat, *lng)
	}

	sun := solar.Subsolar(t)

	fmt.Printf("Time:           %s\n", t.UTC().Format(time.RFC3339))
	fmt.Printf("Subsolar point: %.4f°, %.4f°\n", sun.Position.Latitude, sun.Position.Longitude)

	x, y, z := sun.Direction()
	fmt.Printf("Sun direction:  (%.4f, %.4f, %.4f)\n", x, y, z)

	status := "night"
	if sun.InDaylight(observer) {
		status = "daylight"
	}
	fmt.Printf("Observer:       %.4f°, %.4f° — %s (cos angle %.4f)\n",
		observer.Latitude, observer.Longitude, status, sun.CosAngle(observer))

	if *numPoints > 0 {
		fmt.Printf("\nTerminator sample (%d points):\n", *numPoints)
		for i, p := range sun.TerminatorOutline(*numPoints) {
			fmt.Printf("  %3d: %8.4f°, %9.4f°\n", i, p.Latitude, p.Longitude)
		}
	}
}
