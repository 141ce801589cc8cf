package server

import (
	"sync"
	"time"

	"github.com/skypath/skypath/pkg/flightdata"
	"github.com/skypath/skypath/pkg/routes"
	"github.com/skypath/skypath/pkg/solar"
)

// Snapshot is the state served to clients: the latest flight picture,
// the arcs derived from it, and the current sun position. Flights and
// arcs refresh together; the sun on its own slower cycle.
type Snapshot struct {
	Flights   []flightdata.Flight `json:"flights"`
	Arcs      []routes.Arc        `json:"arcs"`
	Sun       solar.SubsolarPoint `json:"sun"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// State holds the current snapshot behind a read/write lock. Readers
// (HTTP handlers, websocket broadcasts) vastly outnumber the two
// refresh writers.
type State struct {
	mu   sync.RWMutex
	snap Snapshot
}

// Get returns the current snapshot.
func (s *State) Get() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// SetFlights replaces the flight picture and its derived arcs.
func (s *State) SetFlights(flights []flightdata.Flight, arcs []routes.Arc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Flights = flights
	s.snap.Arcs = arcs
	s.snap.UpdatedAt = time.Now().UTC()
}

// SetSun replaces the sun position.
func (s *State) SetSun(sun solar.SubsolarPoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Sun = sun
}
