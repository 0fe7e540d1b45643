package models

import "time"

// EfficiencyScore summarizes driving efficiency, each component on a 0-100
// scale except EnergyUsage which is kWh/100km.
type EfficiencyScore struct {
	Overall      float64 `json:"overall"`
	Acceleration float64 `json:"acceleration"`
	Braking      float64 `json:"braking"`
	EnergyUsage  float64 `json:"energyUsage"`
}

// TipCategory classifies a driving tip.
type TipCategory string

const (
	TipAcceleration TipCategory = "acceleration"
	TipBraking      TipCategory = "braking"
	TipClimate      TipCategory = "climate"
	TipRoute        TipCategory = "route"
	TipCharging     TipCategory = "charging"
)

// DrivingTip is a suggestion for saving energy.
type DrivingTip struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	PotentialSaving float64     `json:"potentialSaving"` // kWh
	Category        TipCategory `json:"category"`
}

// DrivingSession is one completed trip.
type DrivingSession struct {
	ID           string    `json:"id"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	AverageSpeed float64   `json:"averageSpeed"`
	EnergyUsed   float64   `json:"energyUsed"`
	Distance     float64   `json:"distance"`
}
