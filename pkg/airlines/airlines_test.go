package airlines

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		callsign string
		want     string
	}{
		{"JBU583", "JetBlue Airways"},
		{"BAW117", "British Airways"},
		{"baw117", "British Airways"},
		{" UAL902 ", "United Airlines"},
		{"FDX1234", "FedEx Express"},
		{"N123AB", ""}, // GA registration, not a carrier
		{"ZZ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Name(tt.callsign); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.callsign, got, tt.want)
		}
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		callsign string
		want     string
	}{
		{"DAL456", "DAL"},
		{"ezy22xy", "EZY"},
		{"AB", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Code(tt.callsign); got != tt.want {
			t.Errorf("Code(%q) = %q, want %q", tt.callsign, got, tt.want)
		}
	}
}

func TestParseCallsign(t *testing.T) {
	tests := []struct {
		callsign   string
		wantPrefix string
		wantNumber string
		wantOK     bool
	}{
		{"UAL123", "UAL", "123", true},
		{"BA117", "BA", "117", true},
		{"EZY22XY", "EZY", "22XY", true},
		{"N425TS", "", "", false},
		{"UAL", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.callsign, func(t *testing.T) {
			prefix, number, ok := ParseCallsign(tt.callsign)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if prefix != tt.wantPrefix || number != tt.wantNumber {
				t.Errorf("Got (%q, %q), want (%q, %q)", prefix, number, tt.wantPrefix, tt.wantNumber)
			}
		})
	}
}

func TestDecodeSquawk(t *testing.T) {
	tests := []struct {
		code        string
		wantMeaning string
		emergency   bool
	}{
		{"7500", "Hijack", true},
		{"7600", "Radio Failure", true},
		{"7700", "Emergency", true},
		{"2167", "", false},
		{"1200", "", false},
	}

	for _, tt := range tests {
		sq := DecodeSquawk(tt.code)
		if sq.Code != tt.code {
			t.Errorf("Code = %q, want %q", sq.Code, tt.code)
		}
		if sq.Meaning != tt.wantMeaning || sq.IsEmergency != tt.emergency {
			t.Errorf("DecodeSquawk(%q) = %+v, want meaning %q emergency %v",
				tt.code, sq, tt.wantMeaning, tt.emergency)
		}
	}
}
