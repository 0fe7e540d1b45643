package services

import (
	"time"

	"voltflow-backend/internal/models"
)

// EnergyService serves the smart-energy screens: the efficiency score,
// driving tips and recent sessions. Until real trip telemetry lands this
// is seeded data.
type EnergyService struct {
	score    models.EfficiencyScore
	tips     []models.DrivingTip
	sessions []models.DrivingSession
}

func NewEnergyService() *EnergyService {
	now := time.Now()
	return &EnergyService{
		score: models.EfficiencyScore{
			Overall:      85,
			Acceleration: 90,
			Braking:      82,
			EnergyUsage:  16.8,
		},
		tips: []models.DrivingTip{
			{
				ID:              "tip-smooth-acceleration",
				Title:           "Smooth Acceleration",
				Description:     "Gradual acceleration can improve your efficiency by up to 10%",
				PotentialSaving: 0.8,
				Category:        models.TipAcceleration,
			},
			{
				ID:              "tip-optimal-climate",
				Title:           "Optimal Climate",
				Description:     "Using seat heaters instead of cabin heat can extend your range",
				PotentialSaving: 1.2,
				Category:        models.TipClimate,
			},
		},
		sessions: []models.DrivingSession{
			{
				ID:           "session-commute",
				StartTime:    now.Add(-26 * time.Hour),
				EndTime:      now.Add(-25 * time.Hour),
				AverageSpeed: 52,
				EnergyUsed:   6.4,
				Distance:     38,
			},
		},
	}
}

func (s *EnergyService) Score() models.EfficiencyScore {
	return s.score
}

func (s *EnergyService) Tips() []models.DrivingTip {
	return s.tips
}

func (s *EnergyService) RecentSessions() []models.DrivingSession {
	return s.sessions
}
