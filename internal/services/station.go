package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"voltflow-backend/internal/location"
	"voltflow-backend/internal/models"
	"voltflow-backend/pkg/geo"
)

// DirectoryClient issues one places-search fetch. Satisfied by the
// tomtom client.
type DirectoryClient interface {
	NearbyStations(ctx context.Context, origin geo.Coordinate) ([]models.ChargingStation, error)
}

// StationService holds the station list for the map/list views. Each
// location update triggers one directory fetch; the fetched list replaces
// the previous one wholesale. Fetches carry a monotonic sequence number
// and a response that arrives after a newer one has been applied is
// discarded, so the displayed list never moves backwards in time.
type StationService struct {
	directory DirectoryClient
	locations *location.Provider

	mu           sync.Mutex
	stations     []models.ChargingStation
	criteria     models.FilterCriteria
	selectedID   string
	hasSelection bool
	nextSeq      uint64
	appliedSeq   uint64

	done      chan struct{}
	closeOnce sync.Once
}

func NewStationService(directory DirectoryClient, locations *location.Provider) *StationService {
	return &StationService{
		directory: directory,
		locations: locations,
		criteria:  models.DefaultFilterCriteria(),
		done:      make(chan struct{}),
	}
}

// Start consumes location updates until Close or context cancellation.
// A failed fetch is logged and leaves the previous list on screen; the
// next movement or manual refresh retries naturally.
func (s *StationService) Start(ctx context.Context) {
	updates := s.locations.Subscribe()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.done:
				return
			case coord := <-updates:
				if err := s.Refresh(ctx, coord); err != nil {
					log.Printf("Station refresh failed: %v", err)
				}
			}
		}
	}()
}

// Close stops the location update loop.
func (s *StationService) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Refresh performs one directory fetch around the coordinate and applies
// the result unless a newer fetch already finished.
func (s *StationService) Refresh(ctx context.Context, origin geo.Coordinate) error {
	s.mu.Lock()
	s.nextSeq++
	seq := s.nextSeq
	s.mu.Unlock()

	stations, err := s.directory.NearbyStations(ctx, origin)
	if err != nil {
		// The previously displayed list stays untouched.
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.appliedSeq {
		// A newer response already landed; this one is stale.
		return nil
	}
	s.appliedSeq = seq
	s.stations = stations

	if s.hasSelection && s.findLocked(s.selectedID) == nil {
		s.hasSelection = false
		s.selectedID = ""
	}
	return nil
}

// Stations returns a copy of the unfiltered station list.
func (s *StationService) Stations() []models.ChargingStation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ChargingStation, len(s.stations))
	copy(out, s.stations)
	return out
}

// Visible returns the current list filtered and sorted for display.
func (s *StationService) Visible() []models.ChargingStation {
	s.mu.Lock()
	stations := make([]models.ChargingStation, len(s.stations))
	copy(stations, s.stations)
	criteria := s.criteria
	s.mu.Unlock()

	return VisibleStations(stations, criteria)
}

// Criteria returns the active filter configuration.
func (s *StationService) Criteria() models.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// FilterUpdate carries the slider and toggle values from the filter
// sheet. Nil fields keep their current value.
type FilterUpdate struct {
	Types         []models.ConnectorType `json:"types"`
	MinPower      *float64               `json:"minPower" validate:"omitempty,gte=0"`
	MaxPower      *float64               `json:"maxPower" validate:"omitempty,gte=0"`
	MaxPrice      *float64               `json:"maxPrice" validate:"omitempty,gte=0"`
	AvailableOnly *bool                  `json:"availableOnly"`
	Query         *string                `json:"query"`
}

// UpdateCriteria applies a partial filter update. Power bounds clamp each
// other so min never exceeds max, matching the slider behavior. An unknown
// connector type rejects the whole update so a typo cannot silently turn
// into a filter that matches nothing.
func (s *StationService) UpdateCriteria(update FilterUpdate) (models.FilterCriteria, error) {
	for _, t := range update.Types {
		if !t.Valid() {
			return models.FilterCriteria{}, fmt.Errorf("%w: %q", ErrUnknownConnector, t)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if update.Types != nil {
		types := make(map[models.ConnectorType]bool)
		for _, t := range update.Types {
			types[t] = true
		}
		s.criteria.Types = types
	}
	if update.MinPower != nil {
		s.criteria.SetMinPower(*update.MinPower)
	}
	if update.MaxPower != nil {
		s.criteria.SetMaxPower(*update.MaxPower)
	}
	if update.MaxPrice != nil {
		s.criteria.MaxPrice = *update.MaxPrice
	}
	if update.AvailableOnly != nil {
		s.criteria.AvailableOnly = *update.AvailableOnly
	}
	if update.Query != nil {
		s.criteria.Query = *update.Query
	}

	return s.criteria, nil
}

// Select marks a station from the current list as selected.
func (s *StationService) Select(id string) (*models.ChargingStation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	station := s.findLocked(id)
	if station == nil {
		return nil, ErrStationNotFound
	}

	s.selectedID = id
	s.hasSelection = true
	return station, nil
}

// Selected returns the selected station, if any survives the last fetch.
func (s *StationService) Selected() (*models.ChargingStation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasSelection {
		return nil, false
	}
	station := s.findLocked(s.selectedID)
	if station == nil {
		return nil, false
	}
	return station, true
}

// ClearSelection drops the selected-station pointer.
func (s *StationService) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = ""
	s.hasSelection = false
}

func (s *StationService) findLocked(id string) *models.ChargingStation {
	for i := range s.stations {
		if s.stations[i].ID == id {
			station := s.stations[i]
			return &station
		}
	}
	return nil
}
