package models

import (
	"time"
)

// ChargingSpeed is the user's default charging speed preference.
type ChargingSpeed string

const (
	ChargingSpeedSlow   ChargingSpeed = "slow"
	ChargingSpeedNormal ChargingSpeed = "normal"
	ChargingSpeedFast   ChargingSpeed = "fast"
)

// Preferences is the per-user settings block embedded in the user document.
type Preferences struct {
	DefaultChargingSpeed   ChargingSpeed `bson:"default_charging_speed" json:"defaultChargingSpeed" validate:"omitempty,oneof=slow normal fast"`
	PreferredPaymentMethod string        `bson:"preferred_payment_method,omitempty" json:"preferredPaymentMethod,omitempty"`
	NotificationsEnabled   bool          `bson:"notifications_enabled" json:"notificationsEnabled"`
	DarkModeEnabled        bool          `bson:"dark_mode_enabled" json:"darkModeEnabled"`
}

// DefaultPreferences are applied to every newly created account.
func DefaultPreferences() Preferences {
	return Preferences{
		DefaultChargingSpeed: ChargingSpeedNormal,
		NotificationsEnabled: true,
		DarkModeEnabled:      true,
	}
}

// User is one document in the users collection, keyed by an opaque id
// issued at sign-up.
type User struct {
	ID               string      `bson:"_id" json:"id"`
	Email            string      `bson:"email" json:"email" validate:"required,email"`
	Password         string      `bson:"password" json:"-"`
	Cars             []string    `bson:"cars" json:"cars"`
	FavoriteStations []string    `bson:"favorite_stations" json:"favoriteStations"`
	Preferences      Preferences `bson:"preferences" json:"preferences"`
	CreatedAt        time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time   `bson:"updated_at" json:"updatedAt"`
}

// AuthUser is the sanitized user shape returned to clients after
// authentication. The password hash never leaves the service layer.
type AuthUser struct {
	ID               string      `json:"id"`
	Email            string      `json:"email"`
	Cars             []string    `json:"cars"`
	FavoriteStations []string    `json:"favoriteStations"`
	Preferences      Preferences `json:"preferences"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// Sanitize converts a stored user document into its client-facing shape.
func (u *User) Sanitize() *AuthUser {
	return &AuthUser{
		ID:               u.ID,
		Email:            u.Email,
		Cars:             u.Cars,
		FavoriteStations: u.FavoriteStations,
		Preferences:      u.Preferences,
		CreatedAt:        u.CreatedAt,
	}
}
