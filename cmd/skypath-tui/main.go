// SkyPath TUI - terminal flight browser
// Shows the live flight picture with inferred routes and sun position
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skypath/skypath/pkg/airlines"
	"github.com/skypath/skypath/pkg/airports"
	"github.com/skypath/skypath/pkg/config"
	"github.com/skypath/skypath/pkg/flightdata"
	"github.com/skypath/skypath/pkg/geo"
	"github.com/skypath/skypath/pkg/routes"
	"github.com/skypath/skypath/pkg/solar"
)

var (
	configPath = flag.String("config", "configs/config.json", "Path to configuration file")
	demoMode   = flag.Bool("demo", false, "Use simulated traffic")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110"))

	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	nightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	emergencyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const visibleRows = 18

// altitude floors cycled by the f key, in meters
var altitudeFloors = []float64{0, 3000, 8000}

type sortMode int

const (
	sortByCallsign sortMode = iota
	sortByAltitude
	sortBySpeed
)

func (s sortMode) String() string {
	switch s {
	case sortByAltitude:
		return "altitude"
	case sortBySpeed:
		return "speed"
	default:
		return "callsign"
	}
}

type tickMsg time.Time

type flightsMsg struct {
	flights []flightdata.Flight
	err     error
}

type model struct {
	source    flightdata.Source
	estimator routes.Estimator
	waypoints []airports.Airport

	all      []flightdata.Flight
	flights  []flightdata.Flight
	sun      solar.SubsolarPoint
	selected int
	offset   int
	sort     sortMode
	floorIdx int
	err      error
	updated  time.Time
}

// rebuildView applies the altitude floor and active sort to the raw
// flight set.
func (m *model) rebuildView() {
	floor := altitudeFloors[m.floorIdx]
	m.flights = m.flights[:0]
	for _, f := range m.all {
		if f.AltitudeM >= floor {
			m.flights = append(m.flights, f)
		}
	}

	switch m.sort {
	case sortByAltitude:
		sort.SliceStable(m.flights, func(i, j int) bool {
			return m.flights[i].AltitudeM > m.flights[j].AltitudeM
		})
	case sortBySpeed:
		sort.SliceStable(m.flights, func(i, j int) bool {
			return m.flights[i].VelocityMS > m.flights[j].VelocityMS
		})
	default:
		sort.SliceStable(m.flights, func(i, j int) bool {
			return m.flights[i].Callsign < m.flights[j].Callsign
		})
	}

	if m.selected >= len(m.flights) {
		m.selected = len(m.flights) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	if m.offset > m.selected {
		m.offset = m.selected
	}
}

func newModel(source flightdata.Source) model {
	return model{
		source:    source,
		estimator: routes.NewEstimator(),
		waypoints: airports.Load(),
		sun:       solar.Subsolar(time.Now()),
	}
}

func tick() tea.Cmd {
	return tea.Tick(10*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) fetchFlights() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		flights, err := m.source.Flights(ctx)
		return flightsMsg{flights: flights, err: err}
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.fetchFlights(), tick())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
				if m.selected < m.offset {
					m.offset = m.selected
				}
			}

		case "down", "j":
			if m.selected < len(m.flights)-1 {
				m.selected++
				if m.selected >= m.offset+visibleRows {
					m.offset = m.selected - visibleRows + 1
				}
			}

		case "g":
			m.selected = 0
			m.offset = 0

		case "G":
			if len(m.flights) > 0 {
				m.selected = len(m.flights) - 1
				m.offset = m.selected - visibleRows + 1
				if m.offset < 0 {
					m.offset = 0
				}
			}

		case "c":
			m.sort = sortByCallsign
			m.rebuildView()

		case "a":
			m.sort = sortByAltitude
			m.rebuildView()

		case "s":
			m.sort = sortBySpeed
			m.rebuildView()

		case "f":
			m.floorIdx = (m.floorIdx + 1) % len(altitudeFloors)
			m.rebuildView()

		case "r":
			return m, m.fetchFlights()
		}

	case tickMsg:
		m.sun = solar.Subsolar(time.Now())
		return m, tea.Batch(m.fetchFlights(), tick())

	case flightsMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.all = msg.flights
		m.updated = time.Now()
		m.rebuildView()
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("✈ SkyPath Flight Browser"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("Fetch error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if len(m.flights) == 0 {
		b.WriteString(dimStyle.Render("Waiting for flight data..."))
		b.WriteString("\n")
	} else {
		list := m.renderList()
		detail := m.renderDetail()
		b.WriteString(sideBySide(list, detail, 44))
	}

	b.WriteString("\n")
	b.WriteString(m.renderSunLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • c/a/s sort • f altitude floor • r refresh • q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m model) renderList() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render(fmt.Sprintf("%d/%d flights", len(m.flights), len(m.all))))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  sort %s", m.sort)))
	if floor := altitudeFloors[m.floorIdx]; floor > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ≥%.0f m", floor)))
	}
	if !m.updated.IsZero() {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  updated %s", m.updated.Format("15:04:05"))))
	}
	b.WriteString("\n\n")

	end := m.offset + visibleRows
	if end > len(m.flights) {
		end = len(m.flights)
	}

	for i := m.offset; i < end; i++ {
		f := m.flights[i]

		callsign := f.Callsign
		if callsign == "" {
			callsign = f.ICAO
		}
		line := fmt.Sprintf("%-9s %7.0f m  %5.0f kt", callsign, f.AltitudeM, f.VelocityMS*1.944)

		if i == m.selected {
			b.WriteString(selectedStyle.Render("▶ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m model) renderDetail() string {
	if m.selected >= len(m.flights) {
		return ""
	}
	f := m.flights[m.selected]
	pos := geo.Position{Latitude: f.Latitude, Longitude: f.Longitude}

	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", label)))
		b.WriteString(value)
		b.WriteString("\n")
	}

	callsign := f.Callsign
	if callsign == "" {
		callsign = "(no callsign)"
	}
	b.WriteString(selectedStyle.Render(callsign))
	b.WriteString("\n\n")

	if airline := airlines.Name(f.Callsign); airline != "" {
		row("Airline", airline)
	}
	row("ICAO", f.ICAO)
	row("Country", f.OriginCountry)
	row("Position", fmt.Sprintf("%.4f, %.4f", f.Latitude, f.Longitude))
	row("Altitude", fmt.Sprintf("%.0f m", f.AltitudeM))
	row("Speed", fmt.Sprintf("%.0f kt", f.VelocityMS*1.944))
	if f.Track != nil {
		row("Track", fmt.Sprintf("%.0f°", *f.Track))
	}
	if f.VerticalRate != 0 {
		row("Vert rate", fmt.Sprintf("%+.1f m/s", f.VerticalRate))
	}

	if f.Squawk != "" {
		sq := airlines.DecodeSquawk(f.Squawk)
		if sq.IsEmergency {
			row("Squawk", emergencyStyle.Render(fmt.Sprintf("%s  %s", sq.Code, sq.Meaning)))
		} else {
			row("Squawk", sq.Code)
		}
	}

	if origin := routes.FindNearestWaypoint(pos, m.waypoints); origin != nil {
		row("Near", fmt.Sprintf("%s  %.0f nm", origin.FullName(), geo.HaversineNM(pos, origin.Position)))
	}
	if dest := m.estimator.EstimateDestination(pos, f.Track, m.waypoints); dest != nil {
		row("Heading to", dest.FullName())
	}

	if m.sun.InDaylight(pos) {
		row("Sky", dayStyle.Render("☀ daylight"))
	} else {
		row("Sky", nightStyle.Render("☾ night"))
	}

	return b.String()
}

func (m model) renderSunLine() string {
	p := m.sun.Position
	return dimStyle.Render(fmt.Sprintf("Subsolar point: %.2f°, %.2f°", p.Latitude, p.Longitude))
}

// sideBySide joins two blocks of text into columns, padding the left
// block to a fixed width.
func sideBySide(left, right string, leftWidth int) string {
	leftLines := strings.Split(left, "\n")
	rightLines := strings.Split(right, "\n")

	n := len(leftLines)
	if len(rightLines) > n {
		n = len(rightLines)
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		var l, r string
		if i < len(leftLines) {
			l = leftLines[i]
		}
		if i < len(rightLines) {
			r = rightLines[i]
		}
		pad := leftWidth - lipgloss.Width(l)
		if pad < 0 {
			pad = 0
		}
		b.WriteString(l)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(r)
		b.WriteString("\n")
	}

	return b.String()
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *demoMode {
		cfg.Source.Mode = "demo"
	}

	var source flightdata.Source
	if cfg.Source.Mode == "demo" {
		source = flightdata.NewDemoSource(cfg.Source.DemoSeed)
	} else {
		opensky := flightdata.NewOpenSkyClient(flightdata.OpenSkyConfig{
			BaseURL:           cfg.Source.BaseURL,
			CacheDuration:     time.Duration(cfg.Source.CacheSeconds) * time.Second,
			RequestsPerMinute: cfg.Source.RequestsPerMinute,
		})
		source = &flightdata.FallbackSource{
			Primary:   opensky,
			Secondary: flightdata.NewDemoSource(cfg.Source.DemoSeed),
			Retry:     flightdata.DefaultRetryConfig(),
		}
	}
	defer source.Close()

	p := tea.NewProgram(newModel(source), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("TUI failed: %v", err)
	}
}
