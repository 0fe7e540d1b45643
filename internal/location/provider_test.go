package location

import (
	"testing"

	"voltflow-backend/pkg/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_GrantStartsStreaming(t *testing.T) {
	p := NewProvider(0)
	assert.Equal(t, StateNotDetermined, p.Status())

	require.NoError(t, p.Grant())
	assert.Equal(t, StateAuthorizedStreaming, p.Status())
}

func TestProvider_DenyBlocksRequests(t *testing.T) {
	p := NewProvider(0)

	require.NoError(t, p.Deny())
	assert.Equal(t, StateDenied, p.Status())

	err := p.RequestLocation()
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// A settings change shows up as a grant on the next permission query.
	require.NoError(t, p.Grant())
	assert.Equal(t, StateAuthorizedStreaming, p.Status())
}

func TestProvider_RequestLocationIdempotentWhileStreaming(t *testing.T) {
	p := NewProvider(0)
	require.NoError(t, p.Grant())

	assert.NoError(t, p.RequestLocation())
	assert.NoError(t, p.RequestLocation())
	assert.Equal(t, StateAuthorizedStreaming, p.Status())
}

func TestProvider_RequestLocationPromptsWhenNotDetermined(t *testing.T) {
	p := NewProvider(0)

	err := p.RequestLocation()
	assert.ErrorIs(t, err, ErrDecisionPending)
	assert.Equal(t, StateNotDetermined, p.Status())
}

func TestProvider_StopAndResume(t *testing.T) {
	p := NewProvider(0)
	require.NoError(t, p.Grant())
	require.NoError(t, p.Stop())
	assert.Equal(t, StateAuthorizedIdle, p.Status())

	require.NoError(t, p.RequestLocation())
	assert.Equal(t, StateAuthorizedStreaming, p.Status())
}

func TestProvider_ReportRequiresStreaming(t *testing.T) {
	p := NewProvider(0)

	_, err := p.Report(geo.Coordinate{Lat: 34.05, Lon: -118.24})
	assert.ErrorIs(t, err, ErrNotStreaming)
}

func TestProvider_DistanceFilter(t *testing.T) {
	p := NewProvider(50)
	require.NoError(t, p.Grant())

	origin := geo.Coordinate{Lat: 34.0522, Lon: -118.2437}
	published, err := p.Report(origin)
	require.NoError(t, err)
	assert.True(t, published, "first report always publishes")

	// Roughly 11 m north: below the 50 m filter.
	near := geo.Coordinate{Lat: 34.0523, Lon: -118.2437}
	published, err = p.Report(near)
	require.NoError(t, err)
	assert.False(t, published)

	// Roughly 1.1 km north: well past the filter.
	far := geo.Coordinate{Lat: 34.0622, Lon: -118.2437}
	published, err = p.Report(far)
	require.NoError(t, err)
	assert.True(t, published)

	current, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, far, current)
}

func TestProvider_SubscriberSeesLatestOnly(t *testing.T) {
	p := NewProvider(50)
	require.NoError(t, p.Grant())

	updates := p.Subscribe()

	first := geo.Coordinate{Lat: 34.00, Lon: -118.00}
	second := geo.Coordinate{Lat: 35.00, Lon: -118.00}

	_, err := p.Report(first)
	require.NoError(t, err)
	_, err = p.Report(second)
	require.NoError(t, err)

	// The buffered slot was overwritten; only the newest survives.
	got := <-updates
	assert.Equal(t, second, got)

	select {
	case extra := <-updates:
		t.Fatalf("unexpected extra update: %+v", extra)
	default:
	}
}

func TestProvider_RevokeClearsCoordinate(t *testing.T) {
	p := NewProvider(0)
	require.NoError(t, p.Grant())

	_, err := p.Report(geo.Coordinate{Lat: 1, Lon: 1})
	require.NoError(t, err)

	require.NoError(t, p.Revoke())
	assert.Equal(t, StateDenied, p.Status())

	_, ok := p.Current()
	assert.False(t, ok)
}
