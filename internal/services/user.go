package services

import (
	"errors"
	"fmt"

	"voltflow-backend/internal/models"
	"voltflow-backend/internal/repository"
	"voltflow-backend/internal/session"
)

// UserService owns the profile side of the user document: preferences,
// favorite stations and linked cars. Every successful mutation republishes
// the fresh document so the session snapshot stays a read-mostly cache of
// the remote store.
type UserService struct {
	userRepo *repository.UserRepository
	sessions *session.Store
}

func NewUserService(userRepo *repository.UserRepository, sessions *session.Store) *UserService {
	return &UserService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

type UpdatePreferencesRequest struct {
	DefaultChargingSpeed   models.ChargingSpeed `json:"defaultChargingSpeed" validate:"omitempty,oneof=slow normal fast"`
	PreferredPaymentMethod string               `json:"preferredPaymentMethod"`
	NotificationsEnabled   bool                 `json:"notificationsEnabled"`
	DarkModeEnabled        bool                 `json:"darkModeEnabled"`
}

func (s *UserService) GetUser(id string) (*models.AuthUser, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return user.Sanitize(), nil
}

func (s *UserService) UpdatePreferences(id string, req *UpdatePreferencesRequest) (*models.AuthUser, error) {
	prefs := models.Preferences{
		DefaultChargingSpeed:   req.DefaultChargingSpeed,
		PreferredPaymentMethod: req.PreferredPaymentMethod,
		NotificationsEnabled:   req.NotificationsEnabled,
		DarkModeEnabled:        req.DarkModeEnabled,
	}
	if prefs.DefaultChargingSpeed == "" {
		prefs.DefaultChargingSpeed = models.ChargingSpeedNormal
	}

	user, err := s.userRepo.UpdatePreferences(id, prefs)
	if err != nil {
		return nil, s.mapErr(err)
	}

	s.sessions.Publish(user)
	return user.Sanitize(), nil
}

func (s *UserService) AddFavoriteStation(id, stationID string) (*models.AuthUser, error) {
	user, err := s.userRepo.AddFavoriteStation(id, stationID)
	if err != nil {
		return nil, s.mapErr(err)
	}

	s.sessions.Publish(user)
	return user.Sanitize(), nil
}

func (s *UserService) RemoveFavoriteStation(id, stationID string) (*models.AuthUser, error) {
	user, err := s.userRepo.RemoveFavoriteStation(id, stationID)
	if err != nil {
		return nil, s.mapErr(err)
	}

	s.sessions.Publish(user)
	return user.Sanitize(), nil
}

func (s *UserService) AddCar(id, carID string) (*models.AuthUser, error) {
	user, err := s.userRepo.AddCar(id, carID)
	if err != nil {
		return nil, s.mapErr(err)
	}

	s.sessions.Publish(user)
	return user.Sanitize(), nil
}

func (s *UserService) RemoveCar(id, carID string) (*models.AuthUser, error) {
	user, err := s.userRepo.RemoveCar(id, carID)
	if err != nil {
		return nil, s.mapErr(err)
	}

	s.sessions.Publish(user)
	return user.Sanitize(), nil
}

func (s *UserService) mapErr(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrUserNotFound
	}
	return fmt.Errorf("%w: %v", ErrAuthUnknown, err)
}
