package models

import (
	"strings"

	"voltflow-backend/pkg/geo"
)

// ConnectorType is the physical charging-plug standard a station supports.
type ConnectorType string

const (
	ConnectorSupercharger ConnectorType = "supercharger"
	ConnectorCCS          ConnectorType = "ccs"
	ConnectorCHAdeMO      ConnectorType = "chademo"
	ConnectorType2        ConnectorType = "type2"
	ConnectorUnknown      ConnectorType = "unknown"
)

// Valid reports whether t is one of the known connector types.
func (t ConnectorType) Valid() bool {
	switch t {
	case ConnectorSupercharger, ConnectorCCS, ConnectorCHAdeMO, ConnectorType2, ConnectorUnknown:
		return true
	}
	return false
}

// AllConnectorTypes lists every known connector type, used as the default
// accepted set for fresh filter criteria.
func AllConnectorTypes() []ConnectorType {
	return []ConnectorType{
		ConnectorSupercharger,
		ConnectorCCS,
		ConnectorCHAdeMO,
		ConnectorType2,
		ConnectorUnknown,
	}
}

// ChargingStation is one station returned by a directory fetch. The whole
// list is replaced on every fetch; stations are never persisted.
type ChargingStation struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Coordinate  geo.Coordinate `json:"coordinate"`
	Type        ConnectorType  `json:"type"`
	PowerOutput float64        `json:"powerOutput"` // kW
	Price       float64        `json:"price"`       // per kWh
	Distance    float64        `json:"distance"`    // meters from the query coordinate
	Address     string         `json:"address"`
	Available   int            `json:"available"`
	Total       int            `json:"total"`
}

// FilterCriteria is the user-selected filter configuration for the station
// list. The zero value shows nothing; use DefaultFilterCriteria.
type FilterCriteria struct {
	Types         map[ConnectorType]bool `json:"types"`
	MinPower      float64                `json:"minPower"`
	MaxPower      float64                `json:"maxPower"`
	MaxPrice      float64                `json:"maxPrice"`
	AvailableOnly bool                   `json:"availableOnly"`
	Query         string                 `json:"query"`
}

// DefaultFilterCriteria accepts every connector type with the slider ranges
// the station filter starts from.
func DefaultFilterCriteria() FilterCriteria {
	types := make(map[ConnectorType]bool)
	for _, t := range AllConnectorTypes() {
		types[t] = true
	}
	return FilterCriteria{
		Types:    types,
		MinPower: 0,
		MaxPower: 350,
		MaxPrice: 1.0,
	}
}

// SetMinPower sets the lower power bound, dragging the upper bound along
// when the two would cross so that MinPower <= MaxPower always holds.
func (c *FilterCriteria) SetMinPower(kw float64) {
	c.MinPower = kw
	if c.MaxPower < c.MinPower {
		c.MaxPower = c.MinPower
	}
}

// SetMaxPower sets the upper power bound, dragging the lower bound along
// when the two would cross.
func (c *FilterCriteria) SetMaxPower(kw float64) {
	c.MaxPower = kw
	if c.MinPower > c.MaxPower {
		c.MinPower = c.MaxPower
	}
}

// Matches reports whether a single station passes the criteria.
func (c FilterCriteria) Matches(s ChargingStation) bool {
	if !c.Types[s.Type] {
		return false
	}
	if s.PowerOutput < c.MinPower || s.PowerOutput > c.MaxPower {
		return false
	}
	if s.Price > c.MaxPrice {
		return false
	}
	if c.AvailableOnly && s.Available <= 0 {
		return false
	}
	if c.Query != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(c.Query)) {
		return false
	}
	return true
}
