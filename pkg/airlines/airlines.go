// Package airlines resolves airline identities from flight callsigns and
// decodes transponder squawk codes.
package airlines

import (
	"regexp"
	"strings"
)

// ICAO 3-letter prefix to airline name. Covers the carriers that show up
// regularly in global state vector feeds.
var icaoAirlines = map[string]string{
	// Major US Airlines
	"AAL": "American Airlines",
	"DAL": "Delta Air Lines",
	"UAL": "United Airlines",
	"SWA": "Southwest Airlines",
	"JBU": "JetBlue Airways",
	"ASA": "Alaska Airlines",
	"FFT": "Frontier Airlines",
	"NKS": "Spirit Airlines",
	"HAL": "Hawaiian Airlines",
	"AAY": "Allegiant Air",

	// Canada
	"ACA": "Air Canada",
	"WJA": "WestJet",
	"TSC": "Air Transat",

	// Mexico & Latin America
	"AMX": "Aeromexico",
	"VOI": "Volaris",
	"VIV": "Viva Aerobus",
	"LAN": "LATAM Airlines",
	"AVA": "Avianca",
	"GLO": "Gol Transportes",
	"AZU": "Azul Airlines",
	"ARG": "Aerolineas Argentinas",
	"CMP": "Copa Airlines",

	// UK & Ireland
	"BAW": "British Airways",
	"EZY": "easyJet",
	"VIR": "Virgin Atlantic",
	"TOM": "TUI Airways",
	"EIN": "Aer Lingus",
	"RYR": "Ryanair",

	// Continental Europe
	"AFR": "Air France",
	"DLH": "Lufthansa",
	"KLM": "KLM Royal Dutch",
	"IBE": "Iberia",
	"TAP": "TAP Air Portugal",
	"AZA": "ITA Airways",
	"VLG": "Vueling",
	"SAS": "Scandinavian Airlines",
	"FIN": "Finnair",
	"NAX": "Norwegian Air",
	"AUA": "Austrian Airlines",
	"SWR": "Swiss Int'l Air",
	"BEL": "Brussels Airlines",
	"LOT": "LOT Polish Airlines",
	"CSA": "Czech Airlines",
	"THY": "Turkish Airlines",
	"AEE": "Aegean Airlines",
	"WZZ": "Wizz Air",

	// Russia & Eastern Europe
	"AFL": "Aeroflot",
	"SBI": "S7 Airlines",
	"SVR": "Ural Airlines",

	// Middle East
	"UAE": "Emirates",
	"QTR": "Qatar Airways",
	"ETD": "Etihad Airways",
	"ELY": "El Al Israel",
	"MEA": "Middle East Airlines",
	"GFA": "Gulf Air",
	"SVA": "Saudia",
	"KAC": "Kuwait Airways",
	"RJA": "Royal Jordanian",
	"OMA": "Oman Air",

	// East Asia
	"CCA": "Air China",
	"CES": "China Eastern",
	"CSN": "China Southern",
	"CHH": "Hainan Airlines",
	"JAL": "Japan Airlines",
	"ANA": "All Nippon Airways",
	"KAL": "Korean Air",
	"AAR": "Asiana Airlines",
	"EVA": "EVA Air",
	"CAL": "China Airlines",
	"CPA": "Cathay Pacific",
	"HKE": "Hong Kong Express",

	// Southeast Asia
	"SIA": "Singapore Airlines",
	"THA": "Thai Airways",
	"MAS": "Malaysia Airlines",
	"GIA": "Garuda Indonesia",
	"PAL": "Philippine Airlines",
	"VJC": "VietJet Air",
	"HVN": "Vietnam Airlines",
	"AXM": "AirAsia",

	// South Asia
	"AIC": "Air India",
	"IGO": "IndiGo",
	"SEJ": "SpiceJet",
	"ALK": "SriLankan Airlines",
	"BGB": "Biman Bangladesh",
	"PIA": "Pakistan Int'l",

	// Oceania
	"QFA": "Qantas",
	"JST": "Jetstar",
	"VOZ": "Virgin Australia",
	"ANZ": "Air New Zealand",
	"FJI": "Fiji Airways",

	// Africa
	"SAA": "South African Airways",
	"ETH": "Ethiopian Airlines",
	"RAM": "Royal Air Maroc",
	"MSR": "EgyptAir",
	"KQA": "Kenya Airways",
	"NGL": "Nigeria Air",

	// Cargo
	"FDX": "FedEx Express",
	"UPS": "UPS Airlines",
	"GTI": "Atlas Air",
	"CLX": "Cargolux",
}

// Name returns the airline operating a callsign, or "" when the prefix is
// not a known carrier.
func Name(callsign string) string {
	return icaoAirlines[Code(callsign)]
}

// Code returns the 3-letter ICAO prefix of a callsign, uppercased. Returns
// "" for callsigns shorter than three characters.
func Code(callsign string) string {
	callsign = strings.TrimSpace(callsign)
	if len(callsign) < 3 {
		return ""
	}
	return strings.ToUpper(callsign[:3])
}

var callsignPattern = regexp.MustCompile(`^([A-Z]{2,3})(\d+[A-Z]*)$`)

// ParseCallsign splits a commercial callsign into its carrier prefix and
// flight number suffix. ok is false for general-aviation registrations and
// other callsigns that do not follow the airline pattern.
func ParseCallsign(callsign string) (prefix, number string, ok bool) {
	m := callsignPattern.FindStringSubmatch(strings.TrimSpace(callsign))
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// Squawk describes a decoded transponder code.
type Squawk struct {
	Code        string `json:"code"`
	Meaning     string `json:"meaning,omitempty"`
	IsEmergency bool   `json:"isEmergency"`
}

var emergencySquawks = map[string]string{
	"7500": "Hijack",
	"7600": "Radio Failure",
	"7700": "Emergency",
}

// DecodeSquawk interprets a 4-digit squawk code, flagging the reserved
// emergency codes.
func DecodeSquawk(code string) Squawk {
	meaning, emergency := emergencySquawks[code]
	return Squawk{
		Code:        code,
		Meaning:     meaning,
		IsEmergency: emergency,
	}
}
