package services

import (
	"sync"

	"voltflow-backend/internal/models"
)

// CarService serves vehicle status and control toggles. Cars come from
// seeded data; there is no live manufacturer API behind this service, so
// state changes only mutate the in-memory record.
type CarService struct {
	mu   sync.RWMutex
	cars map[string]*models.Car
}

func NewCarService() *CarService {
	svc := &CarService{cars: make(map[string]*models.Car)}
	for _, car := range seedCars() {
		svc.cars[car.ID] = car
	}
	return svc
}

func seedCars() []*models.Car {
	return []*models.Car{
		{
			ID:           "car-model-x",
			Brand:        models.BrandTesla,
			Model:        "Model X",
			BatteryLevel: 0.85,
			Range:        212,
			Location: models.CarLocation{
				Latitude:  34.0522,
				Longitude: -118.2437,
				Address:   "Beverly Hills",
			},
			IsCharging:    true,
			ChargingLimit: 0.9,
			Temperature:   20.0,
			Mileage:       15000,
			Controls:      models.CarControls{HeightSetting: 0.5},
			ExteriorTemp:  20.0,
			InteriorTemp:  20.0,
		},
		{
			ID:           "car-taycan",
			Brand:        models.BrandPorsche,
			Model:        "Taycan 4S",
			BatteryLevel: 0.62,
			Range:        288,
			Location: models.CarLocation{
				Latitude:  34.0195,
				Longitude: -118.4912,
				Address:   "Santa Monica",
			},
			ChargingLimit: 0.8,
			Temperature:   19.5,
			Mileage:       8200,
			EngineStarted: true,
			Controls:      models.CarControls{HeightSetting: 0.5},
			ExteriorTemp:  21.0,
			InteriorTemp:  20.0,
		},
	}
}

// ListCars returns every known vehicle.
func (s *CarService) ListCars() []*models.Car {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cars := make([]*models.Car, 0, len(s.cars))
	for _, car := range s.cars {
		copied := *car
		cars = append(cars, &copied)
	}
	return cars
}

// GetCar returns one vehicle by id.
func (s *CarService) GetCar(id string) (*models.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	car, ok := s.cars[id]
	if !ok {
		return nil, ErrCarNotFound
	}
	copied := *car
	return &copied, nil
}

// StartCharging flips the car into the charging state.
func (s *CarService) StartCharging(id string) (*models.Car, error) {
	return s.mutate(id, func(car *models.Car) error {
		if car.IsCharging {
			return ErrChargeState
		}
		car.IsCharging = true
		return nil
	})
}

// StopCharging flips the car out of the charging state.
func (s *CarService) StopCharging(id string) (*models.Car, error) {
	return s.mutate(id, func(car *models.Car) error {
		if !car.IsCharging {
			return ErrChargeState
		}
		car.IsCharging = false
		return nil
	})
}

// SetChargingLimit sets the charge target as a battery fraction.
func (s *CarService) SetChargingLimit(id string, limit float64) (*models.Car, error) {
	return s.mutate(id, func(car *models.Car) error {
		car.ChargingLimit = limit
		return nil
	})
}

// SetTemperature sets the interior climate target.
func (s *CarService) SetTemperature(id string, temperature float64) (*models.Car, error) {
	return s.mutate(id, func(car *models.Car) error {
		car.InteriorTemp = temperature
		car.Temperature = temperature
		return nil
	})
}

// ControlsUpdate carries the remote toggle values. Nil fields keep their
// current state.
type ControlsUpdate struct {
	SmartSummon   *bool    `json:"smartSummon"`
	HeightSetting *float64 `json:"heightSetting" validate:"omitempty,gte=0,lte=1"`
	AirFlow       *bool    `json:"airFlow"`
	Climate       *bool    `json:"climate"`
	Camera        *bool    `json:"camera"`
}

// UpdateControls applies a partial toggle update.
func (s *CarService) UpdateControls(id string, update ControlsUpdate) (*models.Car, error) {
	return s.mutate(id, func(car *models.Car) error {
		if update.SmartSummon != nil {
			car.Controls.SmartSummon = *update.SmartSummon
		}
		if update.HeightSetting != nil {
			car.Controls.HeightSetting = *update.HeightSetting
		}
		if update.AirFlow != nil {
			car.Controls.AirFlow = *update.AirFlow
		}
		if update.Climate != nil {
			car.Controls.Climate = *update.Climate
		}
		if update.Camera != nil {
			car.Controls.Camera = *update.Camera
		}
		return nil
	})
}

func (s *CarService) mutate(id string, fn func(car *models.Car) error) (*models.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	car, ok := s.cars[id]
	if !ok {
		return nil, ErrCarNotFound
	}
	if err := fn(car); err != nil {
		return nil, err
	}
	copied := *car
	return &copied, nil
}
