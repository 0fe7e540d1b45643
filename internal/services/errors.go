package services

import "errors"

// Authentication failures, each surfaced to the client as its own reason.
var (
	ErrEmailInUse    = errors.New("email is already in use")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrWeakPassword  = errors.New("password is too weak, use at least 6 characters")
	ErrWrongPassword = errors.New("incorrect password")
	ErrUserNotFound  = errors.New("no account found with this email")
	ErrAuthUnknown   = errors.New("authentication failed")
)

// Station and car lookup failures.
var (
	ErrStationNotFound  = errors.New("station not found")
	ErrCarNotFound      = errors.New("car not found")
	ErrChargeState      = errors.New("charging state conflict")
	ErrUnknownConnector = errors.New("unknown connector type")
)
