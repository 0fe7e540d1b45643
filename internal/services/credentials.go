package services

import (
	"context"
	"strings"

	"voltflow-backend/pkg/biometric"
	"voltflow-backend/pkg/credentials"
)

// passwordAccountSuffix marks the accounts whose secrets are gated behind
// the biometric challenge, e.g. "voltflow_password".
const passwordAccountSuffix = "_password"

// CredentialService fronts the secure credential store and applies the
// optional biometric gate before handing back stored passwords.
type CredentialService struct {
	store         *credentials.Store
	authenticator biometric.Authenticator
}

func NewCredentialService(store *credentials.Store, authenticator biometric.Authenticator) *CredentialService {
	return &CredentialService{
		store:         store,
		authenticator: authenticator,
	}
}

// Capability reports the device biometric class for the client UI.
func (s *CredentialService) Capability() biometric.Capability {
	return s.authenticator.Capability()
}

func (s *CredentialService) Save(ctx context.Context, account, secret string) error {
	return s.store.Save(ctx, account, secret)
}

func (s *CredentialService) Update(ctx context.Context, account, secret string) error {
	return s.store.Update(ctx, account, secret)
}

// Retrieve returns the stored secret. Password accounts additionally
// require a fresh biometric proof when the device has the hardware.
func (s *CredentialService) Retrieve(ctx context.Context, account, proof string) (string, error) {
	if strings.HasSuffix(account, passwordAccountSuffix) && s.authenticator.Capability() != biometric.CapabilityNone {
		if err := s.authenticator.Challenge(ctx, proof); err != nil {
			return "", err
		}
	}
	return s.store.Retrieve(ctx, account)
}

func (s *CredentialService) Delete(ctx context.Context, account string) error {
	return s.store.Delete(ctx, account)
}
