// Package server exposes the globe state over REST and websocket: flight
// snapshots, estimated route arcs, render layers, the solar terminator,
// and themes.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/skypath/skypath/pkg/airports"
	"github.com/skypath/skypath/pkg/config"
	"github.com/skypath/skypath/pkg/filters"
	"github.com/skypath/skypath/pkg/flightdata"
	"github.com/skypath/skypath/pkg/layers"
	"github.com/skypath/skypath/pkg/routes"
	"github.com/skypath/skypath/pkg/solar"
)

// Server holds the HTTP server and its dependencies.
type Server struct {
	router    *chi.Mux
	cfg       *config.Config
	source    flightdata.Source
	estimator routes.Estimator
	airports  []airports.Airport
	state     *State
	hub       *Hub
}

// New creates a server around a flight data source.
func New(cfg *config.Config, source flightdata.Source) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		cfg:       cfg,
		source:    source,
		estimator: routes.NewEstimator(),
		airports:  airports.Load(),
		state:     &State{},
		hub:       NewHub(),
	}

	// The sun is valid from the first request on; flights arrive with
	// the first refresh.
	s.state.SetSun(solar.Subsolar(time.Now()))

	s.setupRoutes()
	return s
}

// Router returns the HTTP handler.
func (s *Server) Router() http.Handler {
	return s.router
}

// RefreshFlights fetches a new flight picture, recomputes arcs, and
// broadcasts the snapshot to websocket clients.
func (s *Server) RefreshFlights(ctx context.Context) error {
	flights, err := s.source.Flights(ctx)
	if err != nil {
		return err
	}

	arcs := s.estimator.ArcData(flights, s.airports)
	s.state.SetFlights(flights, arcs)
	s.broadcast()
	return nil
}

// RefreshSolar recomputes the subsolar point and broadcasts.
func (s *Server) RefreshSolar() {
	s.state.SetSun(solar.Subsolar(time.Now()))
	s.broadcast()
}

// Run drives the refresh loops until the context is cancelled. An
// initial flight fetch happens immediately.
func (s *Server) Run(ctx context.Context) {
	if err := s.RefreshFlights(ctx); err != nil {
		log.Printf("Initial flight refresh failed: %v", err)
	}

	flightTicker := time.NewTicker(time.Duration(s.cfg.Refresh.FlightsSeconds) * time.Second)
	solarTicker := time.NewTicker(time.Duration(s.cfg.Refresh.SolarSeconds) * time.Second)
	defer flightTicker.Stop()
	defer solarTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-flightTicker.C:
			if err := s.RefreshFlights(ctx); err != nil {
				log.Printf("Flight refresh failed: %v", err)
			}
		case <-solarTicker.C:
			s.RefreshSolar()
		}
	}
}

func (s *Server) broadcast() {
	data, err := json.Marshal(s.state.Get())
	if err != nil {
		log.Printf("Failed to marshal snapshot: %v", err)
		return
	}
	s.hub.Broadcast(data)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	r := s.router

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Compress(5))

	// CORS for browser clients
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/flights", s.handleGetFlights)
		r.Get("/flights/{icao}", s.handleGetFlightByICAO)
		r.Get("/arcs", s.handleGetArcs)
		r.Get("/arcs/{icao}", s.handleGetPositionArc)

		r.Get("/airports", s.handleGetAirports)
		r.Get("/airports/{iata}/arcs", s.handleGetAirportArcs)

		r.Get("/points", s.handleGetPoints)
		r.Get("/labels", s.handleGetLabels)

		r.Get("/sun", s.handleGetSun)
		r.Get("/terminator", s.handleGetTerminator)

		r.Get("/themes", s.handleGetThemes)
		r.Get("/themes/{name}", s.handleGetTheme)

		r.Get("/search", s.handleSearch)
		r.Get("/filters/options", s.handleGetFilterOptions)

		r.Get("/ws", s.handleWebSocket)
	})
}

// filterFromQuery builds a FilterSet from request query parameters.
func filterFromQuery(r *http.Request) filters.FilterSet {
	q := r.URL.Query()
	fs := filters.FilterSet{
		Country: q.Get("country"),
		State:   q.Get("state"),
		Airport: q.Get("airport"),
		Airline: q.Get("airline"),
	}
	if v := q.Get("minAltitude"); v != "" {
		if alt, err := strconv.ParseFloat(v, 64); err == nil {
			fs.MinAltitudeM = alt
		}
	}
	return fs
}

func zoomFromQuery(r *http.Request, fallback float64) float64 {
	if v := r.URL.Query().Get("zoom"); v != "" {
		if z, err := strconv.ParseFloat(v, 64); err == nil && z > 0 {
			return z
		}
	}
	return fallback
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap := s.state.Get()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"flights":    len(snap.Flights),
		"arcs":       len(snap.Arcs),
		"clients":    s.hub.ClientCount(),
		"updated_at": snap.UpdatedAt,
	})
}

// handleGetFlights returns the current flight snapshot, optionally
// narrowed by filter query parameters (country, state, airport,
// minAltitude, airline).
func (s *Server) handleGetFlights(w http.ResponseWriter, r *http.Request) {
	snap := s.state.Get()
	flights := filterFromQuery(r).Apply(snap.Flights, s.airports)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"flights":    flights,
		"count":      len(flights),
		"updated_at": snap.UpdatedAt,
	})
}

func (s *Server) handleGetFlightByICAO(w http.ResponseWriter, r *http.Request) {
	icao := chi.URLParam(r, "icao")

	for _, f := range s.state.Get().Flights {
		if f.ICAO == icao {
			respondJSON(w, http.StatusOK, f)
			return
		}
	}

	http.Error(w, "Flight not found", http.StatusNotFound)
}

func (s *Server) handleGetArcs(w http.ResponseWriter, r *http.Request) {
	snap := s.state.Get()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"arcs":       snap.Arcs,
		"count":      len(snap.Arcs),
		"updated_at": snap.UpdatedAt,
	})
}

// handleGetPositionArc returns the spotlight arc for one flight,
// starting at its live position.
func (s *Server) handleGetPositionArc(w http.ResponseWriter, r *http.Request) {
	icao := chi.URLParam(r, "icao")

	for _, f := range s.state.Get().Flights {
		if f.ICAO != icao {
			continue
		}
		arc := s.estimator.PositionArc(f, s.airports)
		if arc == nil {
			http.Error(w, "No route estimate for flight", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, arc)
		return
	}

	http.Error(w, "Flight not found", http.StatusNotFound)
}

func (s *Server) handleGetAirports(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"airports": s.airports,
		"count":    len(s.airports),
	})
}

func (s *Server) handleGetAirportArcs(w http.ResponseWriter, r *http.Request) {
	iata := chi.URLParam(r, "iata")

	arcs := routes.AirportArcs(iata, s.airports)
	if arcs == nil {
		http.Error(w, "Airport not found", http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"arcs":  arcs,
		"count": len(arcs),
	})
}

// handleGetPoints returns the flight and airport point layers.
func (s *Server) handleGetPoints(w http.ResponseWriter, r *http.Request) {
	snap := s.state.Get()
	flights := filterFromQuery(r).Apply(snap.Flights, s.airports)
	zoom := zoomFromQuery(r, 2.5)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"flights":  layers.FlightPoints(flights),
		"airports": layers.AirportPoints(s.airports, zoom),
	})
}

// handleGetLabels returns the label layer for a zoom level.
func (s *Server) handleGetLabels(w http.ResponseWriter, r *http.Request) {
	zoom := zoomFromQuery(r, 2.5)
	labels := layers.LabelsForZoom(s.airports, zoom)

	if r.URL.Query().Get("flights") == "true" {
		labels = append(labels, layers.FlightLabels(s.state.Get().Flights)...)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"labels": labels,
		"count":  len(labels),
	})
}

// handleGetSun returns the subsolar point and the unit sun direction
// vector for shader lighting.
func (s *Server) handleGetSun(w http.ResponseWriter, r *http.Request) {
	sun := s.state.Get().Sun
	x, y, z := sun.Direction()

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"position":  sun.Position,
		"time":      sun.Time,
		"direction": map[string]float64{"x": x, "y": y, "z": z},
	})
}

// handleGetTerminator returns the day/night boundary outline.
func (s *Server) handleGetTerminator(w http.ResponseWriter, r *http.Request) {
	numPoints := s.cfg.View.TerminatorPoints
	if v := r.URL.Query().Get("points"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 3 && n <= 3600 {
			numPoints = n
		}
	}

	sun := s.state.Get().Sun
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"outline": sun.TerminatorOutline(numPoints),
		"sun":     sun.Position,
		"time":    sun.Time,
	})
}

func (s *Server) handleGetThemes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"themes": config.Themes,
		"active": s.cfg.View.ActiveTheme,
		"view": map[string]float64{
			"lat":  s.cfg.View.InitialLat,
			"lng":  s.cfg.View.InitialLng,
			"zoom": s.cfg.View.InitialZoom,
		},
	})
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	theme, ok := config.Themes[name]
	if !ok {
		http.Error(w, "Theme not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, theme)
}

// handleSearch resolves a location query to globe focus targets.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "Missing query parameter q", http.StatusBadRequest)
		return
	}

	results := airports.SearchLocations(query)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"count":   len(results),
	})
}

// handleGetFilterOptions returns the dropdown contents for the filter
// sidebar.
func (s *Server) handleGetFilterOptions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"countries": airports.Countries,
		"states":    filters.USStates,
		"airlines":  filters.Airlines,
		"airports":  s.airports,
	})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	initial, err := json.Marshal(s.state.Get())
	if err != nil {
		log.Printf("Failed to marshal initial snapshot: %v", err)
		initial = nil
	}
	s.hub.ServeWS(w, r, initial)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
