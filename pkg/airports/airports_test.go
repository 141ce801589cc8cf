package airports

import (
	"testing"

	"github.com/skypath/skypath/pkg/geo"
)

func TestLoad(t *testing.T) {
	set := Load()

	if len(set) == 0 {
		t.Fatal("Load returned empty set")
	}

	t.Run("All positions valid", func(t *testing.T) {
		for _, a := range set {
			if !a.Position.Valid() {
				t.Errorf("%s has invalid position %+v", a.IATA, a.Position)
			}
			if len(a.IATA) != 3 {
				t.Errorf("%s: IATA code must be 3 letters", a.IATA)
			}
		}
	})

	t.Run("No duplicate codes", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, a := range set {
			if seen[a.IATA] {
				t.Errorf("Duplicate IATA code %s", a.IATA)
			}
			seen[a.IATA] = true
		}
	})

	t.Run("Caller cannot corrupt the table", func(t *testing.T) {
		set[0].IATA = "XXX"
		if fresh := Load(); fresh[0].IATA == "XXX" {
			t.Error("Mutation of a loaded slice leaked into the package table")
		}
	})
}

func TestByIATA(t *testing.T) {
	set := Load()

	if jfk := ByIATA("JFK", set); jfk == nil || jfk.City != "New York" {
		t.Errorf("ByIATA(JFK) = %+v, want New York airport", jfk)
	}
	if got := ByIATA("jfk", set); got == nil {
		t.Error("ByIATA should be case-insensitive")
	}
	if got := ByIATA("ZZZ", set); got != nil {
		t.Errorf("ByIATA(ZZZ) = %+v, want nil", got)
	}
}

func TestInBounds(t *testing.T) {
	set := Load()

	// Continental US box
	us := Bounds{North: 49, South: 25, East: -66, West: -125}
	got := InBounds(set, us)

	for _, a := range got {
		if a.Country != "United States" {
			t.Errorf("%s (%s) matched continental US bounds", a.IATA, a.Country)
		}
	}

	codes := make(map[string]bool)
	for _, a := range got {
		codes[a.IATA] = true
	}
	for _, want := range []string{"JFK", "LAX", "ORD", "MIA"} {
		if !codes[want] {
			t.Errorf("Expected %s inside continental US bounds", want)
		}
	}
}

func TestIsMajorHub(t *testing.T) {
	if !IsMajorHub("JFK") {
		t.Error("JFK should be a major hub")
	}
	if IsMajorHub("NBO") {
		t.Error("NBO should not be a major hub")
	}
}

func TestSearchLocations(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantName  string
		wantType  string
		wantEmpty bool
	}{
		{"Country by name", "germ", "Germany", "Country", false},
		{"Country by code", "jp", "Japan", "Country", false},
		{"Region first", "euro", "Europe", "Region", false},
		{"Case insensitive", "BRAZIL", "Brazil", "Country", false},
		{"No match", "atlantis", "", "", true},
		{"Blank query", "   ", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchLocations(tt.query)
			if tt.wantEmpty {
				if len(got) != 0 {
					t.Errorf("SearchLocations(%q) = %v, want empty", tt.query, got)
				}
				return
			}
			if len(got) == 0 {
				t.Fatalf("SearchLocations(%q) returned nothing", tt.query)
			}
			if got[0].Name != tt.wantName || got[0].Type != tt.wantType {
				t.Errorf("First result = %s/%s, want %s/%s",
					got[0].Name, got[0].Type, tt.wantName, tt.wantType)
			}
		})
	}

	t.Run("Results capped", func(t *testing.T) {
		// "a" matches many countries and regions
		if got := SearchLocations("a"); len(got) > 8 {
			t.Errorf("len = %d, want <= 8", len(got))
		}
	})
}

func TestCountryCode(t *testing.T) {
	if got := CountryCode("United States"); got != "US" {
		t.Errorf("CountryCode(United States) = %s, want US", got)
	}
	if got := CountryCode("Wakanda"); got != "" {
		t.Errorf("CountryCode(Wakanda) = %s, want empty", got)
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{North: 10, South: -10, East: 20, West: 0}
	if !b.Contains(geo.Position{Latitude: 0, Longitude: 10}) {
		t.Error("Center point should be inside")
	}
	if b.Contains(geo.Position{Latitude: 11, Longitude: 10}) {
		t.Error("Point north of box should be outside")
	}
	if b.Contains(geo.Position{Latitude: 0, Longitude: -1}) {
		t.Error("Point west of box should be outside")
	}
}
