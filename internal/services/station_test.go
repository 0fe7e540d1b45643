package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"voltflow-backend/internal/location"
	"voltflow-backend/internal/models"
	"voltflow-backend/pkg/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDirectory serves canned responses and can hold a fetch open until
// released, which lets tests interleave overlapping requests.
type fakeDirectory struct {
	mu       sync.Mutex
	response []models.ChargingStation
	err      error
	started  chan struct{}
	release  chan struct{}
}

func (f *fakeDirectory) set(stations []models.ChargingStation, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.response = stations
	f.err = err
}

func (f *fakeDirectory) NearbyStations(ctx context.Context, origin geo.Coordinate) ([]models.ChargingStation, error) {
	f.mu.Lock()
	stations := f.response
	err := f.err
	started := f.started
	release := f.release
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if release != nil {
		<-release
	}
	return stations, err
}

func TestStationService_RefreshReplacesList(t *testing.T) {
	dir := &fakeDirectory{}
	dir.set([]models.ChargingStation{station("a", models.ConnectorCCS, 150, 0.35, 900, 2)}, nil)

	svc := NewStationService(dir, location.NewProvider(0))
	defer svc.Close()

	require.NoError(t, svc.Refresh(context.Background(), geo.Coordinate{}))
	require.Len(t, svc.Stations(), 1)

	dir.set([]models.ChargingStation{
		station("b", models.ConnectorType2, 22, 0.30, 400, 1),
		station("c", models.ConnectorCHAdeMO, 100, 0.45, 800, 0),
	}, nil)
	require.NoError(t, svc.Refresh(context.Background(), geo.Coordinate{}))

	stations := svc.Stations()
	require.Len(t, stations, 2, "each fetch replaces the whole list")
	assert.Equal(t, "b", stations[0].ID)
}

func TestStationService_FailedFetchKeepsPreviousList(t *testing.T) {
	dir := &fakeDirectory{}
	dir.set([]models.ChargingStation{station("a", models.ConnectorCCS, 150, 0.35, 900, 2)}, nil)

	svc := NewStationService(dir, location.NewProvider(0))
	defer svc.Close()

	require.NoError(t, svc.Refresh(context.Background(), geo.Coordinate{}))

	dir.set(nil, errors.New("boom"))
	err := svc.Refresh(context.Background(), geo.Coordinate{})
	assert.Error(t, err)

	stations := svc.Stations()
	require.Len(t, stations, 1, "a failed fetch must not clear the display")
	assert.Equal(t, "a", stations[0].ID)
}

func TestStationService_StaleResponseDiscarded(t *testing.T) {
	staleStations := []models.ChargingStation{station("stale", models.ConnectorCCS, 150, 0.35, 900, 2)}
	freshStations := []models.ChargingStation{station("fresh", models.ConnectorType2, 22, 0.30, 400, 1)}

	release := make(chan struct{})
	dir := &fakeDirectory{
		started: make(chan struct{}, 1),
		release: release,
	}
	dir.set(staleStations, nil)

	svc := NewStationService(dir, location.NewProvider(0))
	defer svc.Close()

	// First fetch blocks inside the client.
	firstDone := make(chan error, 1)
	go func() {
		firstDone <- svc.Refresh(context.Background(), geo.Coordinate{Lat: 1})
	}()
	<-dir.started

	// Second fetch starts after the first and completes immediately.
	dir.mu.Lock()
	dir.response = freshStations
	dir.started = nil
	dir.release = nil
	dir.mu.Unlock()
	require.NoError(t, svc.Refresh(context.Background(), geo.Coordinate{Lat: 2}))

	// Now the first (older) response arrives late and must be dropped.
	close(release)
	select {
	case err := <-firstDone:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("blocked refresh never returned")
	}

	stations := svc.Stations()
	require.Len(t, stations, 1)
	assert.Equal(t, "fresh", stations[0].ID, "the superseded response must not overwrite the newer one")
}

func TestStationService_Selection(t *testing.T) {
	dir := &fakeDirectory{}
	dir.set(testStations(), nil)

	svc := NewStationService(dir, location.NewProvider(0))
	defer svc.Close()
	require.NoError(t, svc.Refresh(context.Background(), geo.Coordinate{}))

	_, err := svc.Select("nope")
	assert.ErrorIs(t, err, ErrStationNotFound)

	selected, err := svc.Select("venice-type2")
	require.NoError(t, err)
	assert.Equal(t, "venice-type2", selected.ID)

	got, ok := svc.Selected()
	require.True(t, ok)
	assert.Equal(t, "venice-type2", got.ID)

	// A fetch that drops the selected station clears the pointer.
	dir.set([]models.ChargingStation{station("other", models.ConnectorCCS, 150, 0.35, 100, 1)}, nil)
	require.NoError(t, svc.Refresh(context.Background(), geo.Coordinate{}))

	_, ok = svc.Selected()
	assert.False(t, ok)
}

func TestStationService_UpdateCriteriaClampsPower(t *testing.T) {
	svc := NewStationService(&fakeDirectory{}, location.NewProvider(0))
	defer svc.Close()

	maxPower := 100.0
	_, err := svc.UpdateCriteria(FilterUpdate{MaxPower: &maxPower})
	require.NoError(t, err)
	minPower := 200.0
	criteria, err := svc.UpdateCriteria(FilterUpdate{MinPower: &minPower})
	require.NoError(t, err)

	assert.Equal(t, 200.0, criteria.MinPower)
	assert.Equal(t, 200.0, criteria.MaxPower)
}

func TestStationService_UpdateCriteriaRejectsUnknownType(t *testing.T) {
	svc := NewStationService(&fakeDirectory{}, location.NewProvider(0))
	defer svc.Close()

	_, err := svc.UpdateCriteria(FilterUpdate{Types: []models.ConnectorType{models.ConnectorCCS, "foo"}})
	assert.ErrorIs(t, err, ErrUnknownConnector)

	// The rejected update leaves the criteria untouched.
	assert.True(t, svc.Criteria().Types[models.ConnectorType2])
}

func TestStationService_LocationUpdateTriggersFetch(t *testing.T) {
	dir := &fakeDirectory{}
	dir.set(testStations(), nil)

	provider := location.NewProvider(50)
	require.NoError(t, provider.Grant())

	svc := NewStationService(dir, provider)
	defer svc.Close()
	svc.Start(context.Background())

	_, err := provider.Report(geo.Coordinate{Lat: 34.0522, Lon: -118.2437})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(svc.Stations()) == len(testStations())
	}, 2*time.Second, 10*time.Millisecond, "movement should trigger a directory fetch")
}
