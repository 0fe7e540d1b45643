package services

import (
	"sort"

	"voltflow-backend/internal/models"
)

// VisibleStations applies the filter criteria and returns the admitted
// stations sorted by ascending distance. The sort is stable so equally
// distant stations keep their fetch order. An empty accepted-type set
// yields an empty result by policy. The input slice is never modified.
func VisibleStations(stations []models.ChargingStation, criteria models.FilterCriteria) []models.ChargingStation {
	visible := make([]models.ChargingStation, 0, len(stations))
	for _, s := range stations {
		if criteria.Matches(s) {
			visible = append(visible, s)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Distance < visible[j].Distance
	})

	return visible
}
