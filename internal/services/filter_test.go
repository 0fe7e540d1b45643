package services

import (
	"testing"

	"voltflow-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func station(id string, t models.ConnectorType, power, price, distance float64, available int) models.ChargingStation {
	return models.ChargingStation{
		ID:          id,
		Name:        id,
		Type:        t,
		PowerOutput: power,
		Price:       price,
		Distance:    distance,
		Available:   available,
		Total:       available + 2,
	}
}

func testStations() []models.ChargingStation {
	return []models.ChargingStation{
		station("beverly-supercharger", models.ConnectorSupercharger, 250, 0.40, 500, 6),
		station("santa-monica-ccs", models.ConnectorCCS, 150, 0.35, 2300, 2),
		station("downtown-chademo", models.ConnectorCHAdeMO, 100, 0.45, 1800, 0),
		station("venice-type2", models.ConnectorType2, 22, 0.30, 1500, 1),
	}
}

func TestVisibleStations_EmptyTypeSetYieldsEmpty(t *testing.T) {
	criteria := models.DefaultFilterCriteria()
	criteria.Types = map[models.ConnectorType]bool{}

	assert.Empty(t, VisibleStations(testStations(), criteria))
}

func TestVisibleStations_SortedSubset(t *testing.T) {
	input := testStations()
	criteria := models.DefaultFilterCriteria()

	visible := VisibleStations(input, criteria)

	assert.LessOrEqual(t, len(visible), len(input))
	byID := make(map[string]models.ChargingStation)
	for _, s := range input {
		byID[s.ID] = s
	}
	for i, s := range visible {
		_, ok := byID[s.ID]
		assert.True(t, ok, "output station %s must come from the input", s.ID)
		if i > 0 {
			assert.GreaterOrEqual(t, s.Distance, visible[i-1].Distance)
		}
	}
}

func TestVisibleStations_Idempotent(t *testing.T) {
	criteria := models.DefaultFilterCriteria()
	criteria.MaxPrice = 0.40

	once := VisibleStations(testStations(), criteria)
	twice := VisibleStations(once, criteria)

	assert.Equal(t, once, twice)
}

func TestVisibleStations_TypeScenario(t *testing.T) {
	// criteria{types={type2}, power 0-350, maxPrice 1.0} against one type2
	// at 1500 m and one supercharger at 500 m keeps only the type2.
	stations := []models.ChargingStation{
		station("far-type2", models.ConnectorType2, 22, 0.30, 1500, 1),
		station("near-supercharger", models.ConnectorSupercharger, 250, 0.40, 500, 6),
	}
	criteria := models.FilterCriteria{
		Types:    map[models.ConnectorType]bool{models.ConnectorType2: true},
		MinPower: 0,
		MaxPower: 350,
		MaxPrice: 1.0,
	}

	visible := VisibleStations(stations, criteria)

	require.Len(t, visible, 1)
	assert.Equal(t, "far-type2", visible[0].ID)
}

func TestVisibleStations_StableForEqualDistances(t *testing.T) {
	stations := []models.ChargingStation{
		station("first", models.ConnectorCCS, 150, 0.35, 1000, 2),
		station("second", models.ConnectorCCS, 150, 0.35, 1000, 2),
		station("third", models.ConnectorCCS, 150, 0.35, 1000, 2),
	}

	visible := VisibleStations(stations, models.DefaultFilterCriteria())

	require.Len(t, visible, 3)
	assert.Equal(t, "first", visible[0].ID)
	assert.Equal(t, "second", visible[1].ID)
	assert.Equal(t, "third", visible[2].ID)
}

func TestVisibleStations_AvailableOnly(t *testing.T) {
	criteria := models.DefaultFilterCriteria()
	criteria.AvailableOnly = true

	visible := VisibleStations(testStations(), criteria)

	for _, s := range visible {
		assert.Positive(t, s.Available)
	}
	assert.Len(t, visible, 3)
}

func TestVisibleStations_QueryIsCaseInsensitive(t *testing.T) {
	criteria := models.DefaultFilterCriteria()
	criteria.Query = "SANTA"

	visible := VisibleStations(testStations(), criteria)

	require.Len(t, visible, 1)
	assert.Equal(t, "santa-monica-ccs", visible[0].ID)
}

func TestVisibleStations_PowerRange(t *testing.T) {
	criteria := models.DefaultFilterCriteria()
	criteria.SetMinPower(100)
	criteria.SetMaxPower(200)

	visible := VisibleStations(testStations(), criteria)

	require.Len(t, visible, 2)
	for _, s := range visible {
		assert.GreaterOrEqual(t, s.PowerOutput, 100.0)
		assert.LessOrEqual(t, s.PowerOutput, 200.0)
	}
}

func TestVisibleStations_MaxPrice(t *testing.T) {
	criteria := models.DefaultFilterCriteria()
	criteria.MaxPrice = 0.35

	visible := VisibleStations(testStations(), criteria)

	for _, s := range visible {
		assert.LessOrEqual(t, s.Price, 0.35)
	}
	assert.Len(t, visible, 2)
}

func TestFilterCriteria_PowerBoundsClampEachOther(t *testing.T) {
	criteria := models.DefaultFilterCriteria()

	criteria.SetMaxPower(100)
	criteria.SetMinPower(200)
	assert.Equal(t, 200.0, criteria.MinPower)
	assert.Equal(t, 200.0, criteria.MaxPower, "raising min past max drags max up")

	criteria.SetMaxPower(50)
	assert.Equal(t, 50.0, criteria.MinPower, "lowering max past min drags min down")
	assert.Equal(t, 50.0, criteria.MaxPower)
}
