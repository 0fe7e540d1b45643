package biometric

import (
	"context"
	"crypto/subtle"
	"errors"
)

// Capability is the class of biometric hardware available to the device.
type Capability string

const (
	CapabilityNone        Capability = "none"
	CapabilityFingerprint Capability = "fingerprint"
	CapabilityFace        Capability = "face"
)

var (
	// ErrNotAvailable is returned when no biometric hardware is present.
	ErrNotAvailable = errors.New("biometric: not available")
	// ErrChallengeFailed is returned when the one-shot challenge fails.
	ErrChallengeFailed = errors.New("biometric: challenge failed")
)

// Authenticator answers the capability query and runs one-shot challenges.
type Authenticator interface {
	Capability() Capability
	Challenge(ctx context.Context, proof string) error
}

// DeviceAuthenticator checks the proof the device forwards after its local
// biometric prompt against a configured shared secret. It stands in for
// the platform prompt, which only ever reports success or failure.
type DeviceAuthenticator struct {
	capability Capability
	secret     string
}

func NewDeviceAuthenticator(capability Capability, secret string) *DeviceAuthenticator {
	if capability == "" {
		capability = CapabilityNone
	}
	return &DeviceAuthenticator{
		capability: capability,
		secret:     secret,
	}
}

func (a *DeviceAuthenticator) Capability() Capability {
	return a.capability
}

func (a *DeviceAuthenticator) Challenge(ctx context.Context, proof string) error {
	if a.capability == CapabilityNone {
		return ErrNotAvailable
	}
	if subtle.ConstantTimeCompare([]byte(proof), []byte(a.secret)) != 1 {
		return ErrChallengeFailed
	}
	return nil
}
