// SkyPath Flight Table - sortable terminal table of the live picture
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

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

// SortMode selects the active table ordering
type SortMode int

const (
	SortByCallsign SortMode = iota
	SortByAltitude
	SortBySpeed
	SortByCountry
)

// App wires the table UI to a flight data source
type App struct {
	source    flightdata.Source
	estimator routes.Estimator
	waypoints []airports.Airport

	tviewApp *tview.Application
	table    *tview.Table
	detail   *tview.TextView
	status   *tview.TextView

	mu       sync.RWMutex
	flights  []flightdata.Flight
	sun      solar.SubsolarPoint
	sortMode SortMode

	updateTimer *time.Ticker
	stopChan    chan struct{}
}

// NewApp creates the application and builds its UI
func NewApp(source flightdata.Source, refreshSeconds int) *App {
	app := &App{
		source:      source,
		estimator:   routes.NewEstimator(),
		waypoints:   airports.Load(),
		sun:         solar.Subsolar(time.Now()),
		sortMode:    SortByCallsign,
		updateTimer: time.NewTicker(time.Duration(refreshSeconds) * time.Second),
		stopChan:    make(chan struct{}),
	}

	app.setupUI()
	return app
}

func (a *App) setupUI() {
	a.tviewApp = tview.NewApplication()

	a.table = tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0)
	a.table.SetBorder(true).SetTitle(" Flights ")
	a.table.SetSelectionChangedFunc(func(row, col int) {
		a.updateDetail()
	})

	a.detail = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	a.detail.SetBorder(true).SetTitle(" Detail ")

	a.status = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	a.status.SetBorder(true).SetTitle(" Status ")

	sidebar := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.detail, 0, 6, false).
		AddItem(a.status, 0, 4, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(a.table, 0, 7, true).
		AddItem(sidebar, 0, 3, false)

	a.tviewApp.SetRoot(layout, true)
	a.tviewApp.SetInputCapture(a.handleKeyboard)
}

func (a *App) handleKeyboard(event *tcell.EventKey) *tcell.EventKey {
	switch {
	case event.Key() == tcell.KeyEscape || event.Rune() == 'q':
		a.Stop()
		return nil
	case event.Rune() == 'c':
		a.setSort(SortByCallsign)
		return nil
	case event.Rune() == 'a':
		a.setSort(SortByAltitude)
		return nil
	case event.Rune() == 's':
		a.setSort(SortBySpeed)
		return nil
	case event.Rune() == 'o':
		a.setSort(SortByCountry)
		return nil
	case event.Rune() == 'r':
		go a.refresh()
		return nil
	}
	return event
}

func (a *App) setSort(mode SortMode) {
	a.mu.Lock()
	a.sortMode = mode
	a.sortLocked()
	a.mu.Unlock()

	a.tviewApp.QueueUpdateDraw(func() {
		a.updateTable()
		a.updateStatus()
	})
}

// sortLocked orders the flight slice per the active mode. Caller holds
// the write lock.
func (a *App) sortLocked() {
	switch a.sortMode {
	case SortByAltitude:
		sort.SliceStable(a.flights, func(i, j int) bool {
			return a.flights[i].AltitudeM > a.flights[j].AltitudeM
		})
	case SortBySpeed:
		sort.SliceStable(a.flights, func(i, j int) bool {
			return a.flights[i].VelocityMS > a.flights[j].VelocityMS
		})
	case SortByCountry:
		sort.SliceStable(a.flights, func(i, j int) bool {
			return a.flights[i].OriginCountry < a.flights[j].OriginCountry
		})
	default:
		sort.SliceStable(a.flights, func(i, j int) bool {
			return a.flights[i].Callsign < a.flights[j].Callsign
		})
	}
}

func (a *App) updateTable() {
	a.mu.RLock()
	defer a.mu.RUnlock()

	a.table.Clear()

	headers := []string{"CALLSIGN", "AIRLINE", "COUNTRY", "ALT (m)", "SPD (kt)", "TRK", "SQUAWK"}
	for col, h := range headers {
		a.table.SetCell(0, col, tview.NewTableCell(h).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false).
			SetAttributes(tcell.AttrBold))
	}

	for i, f := range a.flights {
		row := i + 1

		callsign := f.Callsign
		if callsign == "" {
			callsign = f.ICAO
		}

		track := "---"
		if f.Track != nil {
			track = fmt.Sprintf("%03.0f°", *f.Track)
		}

		squawkCell := tview.NewTableCell(f.Squawk)
		if sq := airlines.DecodeSquawk(f.Squawk); sq.IsEmergency {
			squawkCell.SetText(sq.Code + " " + sq.Meaning).
				SetTextColor(tcell.ColorRed).
				SetAttributes(tcell.AttrBold)
		}

		a.table.SetCell(row, 0, tview.NewTableCell(callsign).SetTextColor(tcell.ColorWhite))
		a.table.SetCell(row, 1, tview.NewTableCell(airlines.Name(f.Callsign)))
		a.table.SetCell(row, 2, tview.NewTableCell(f.OriginCountry))
		a.table.SetCell(row, 3, tview.NewTableCell(fmt.Sprintf("%7.0f", f.AltitudeM)).SetAlign(tview.AlignRight))
		a.table.SetCell(row, 4, tview.NewTableCell(fmt.Sprintf("%5.0f", f.VelocityMS*1.944)).SetAlign(tview.AlignRight))
		a.table.SetCell(row, 5, tview.NewTableCell(track))
		a.table.SetCell(row, 6, squawkCell)
	}
}

func (a *App) updateDetail() {
	a.mu.RLock()
	defer a.mu.RUnlock()

	row, _ := a.table.GetSelection()
	idx := row - 1
	if idx < 0 || idx >= len(a.flights) {
		a.detail.SetText("[gray]No flight selected[-]")
		return
	}

	f := a.flights[idx]
	pos := geo.Position{Latitude: f.Latitude, Longitude: f.Longitude}

	text := fmt.Sprintf("[yellow]%s[-] [gray](%s)[-]\n", f.Callsign, f.ICAO)
	if airline := airlines.Name(f.Callsign); airline != "" {
		text += fmt.Sprintf("[gray]Airline:[-]  [white]%s[-]\n", airline)
	}
	text += fmt.Sprintf("[gray]Pos:[-]      [white]%.4f°, %.4f°[-]\n", f.Latitude, f.Longitude)
	text += fmt.Sprintf("[gray]Alt:[-]      [white]%.0f m[-]  [gray]VS:[-] [white]%+.1f m/s[-]\n", f.AltitudeM, f.VerticalRate)

	if origin := routes.FindNearestWaypoint(pos, a.waypoints); origin != nil {
		text += fmt.Sprintf("[gray]Near:[-]     [white]%s (%.0f nm)[-]\n", origin.FullName(), geo.HaversineNM(pos, origin.Position))
	}
	if dest := a.estimator.EstimateDestination(pos, f.Track, a.waypoints); dest != nil {
		text += fmt.Sprintf("[gray]Bound:[-]    [white]%s[-]\n", dest.FullName())
	}

	if a.sun.InDaylight(pos) {
		text += "[gray]Sky:[-]      [yellow]daylight[-]\n"
	} else {
		text += "[gray]Sky:[-]      [blue]night[-]\n"
	}

	a.detail.SetText(text)
}

func (a *App) updateStatus() {
	a.mu.RLock()
	defer a.mu.RUnlock()

	sortName := map[SortMode]string{
		SortByCallsign: "callsign",
		SortByAltitude: "altitude",
		SortBySpeed:    "speed",
		SortByCountry:  "country",
	}[a.sortMode]

	text := fmt.Sprintf("[gray]Flights:[-] [white]%d[-]\n", len(a.flights))
	text += fmt.Sprintf("[gray]Sort:[-]    [white]%s[-]\n", sortName)
	text += fmt.Sprintf("[gray]Sun:[-]     [white]%.1f°, %.1f°[-]\n",
		a.sun.Position.Latitude, a.sun.Position.Longitude)
	text += fmt.Sprintf("[gray]Time:[-]    [white]%s[-]\n\n", time.Now().Format("15:04:05"))
	text += "[yellow]c/a/s/o[-] sort  [yellow]r[-] refresh  [yellow]q[-] quit"

	a.status.SetText(text)
}

// Run starts the refresh loop and the UI
func (a *App) Run() error {
	go a.updateLoop()
	return a.tviewApp.Run()
}

func (a *App) updateLoop() {
	a.refresh()

	for {
		select {
		case <-a.updateTimer.C:
			a.refresh()
		case <-a.stopChan:
			return
		}
	}
}

func (a *App) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	flights, err := a.source.Flights(ctx)
	if err != nil {
		a.tviewApp.QueueUpdateDraw(func() {
			a.status.SetText(fmt.Sprintf("[red]Fetch error: %v[-]", err))
		})
		return
	}

	a.mu.Lock()
	a.flights = flights
	a.sun = solar.Subsolar(time.Now())
	a.sortLocked()
	a.mu.Unlock()

	a.tviewApp.QueueUpdateDraw(func() {
		a.updateTable()
		a.updateDetail()
		a.updateStatus()
	})
}

// Stop shuts the application down
func (a *App) Stop() {
	a.updateTimer.Stop()
	close(a.stopChan)
	a.tviewApp.Stop()
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
		source = &flightdata.FallbackSource{
			Primary: flightdata.NewOpenSkyClient(flightdata.OpenSkyConfig{
				BaseURL:           cfg.Source.BaseURL,
				CacheDuration:     time.Duration(cfg.Source.CacheSeconds) * time.Second,
				RequestsPerMinute: cfg.Source.RequestsPerMinute,
			}),
			Secondary: flightdata.NewDemoSource(cfg.Source.DemoSeed),
			Retry:     flightdata.DefaultRetryConfig(),
		}
	}
	defer source.Close()

	app := NewApp(source, cfg.Refresh.FlightsSeconds)
	if err := app.Run(); err != nil {
		log.Fatalf("UI failed: %v", err)
	}
}
