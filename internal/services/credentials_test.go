package services

import (
	"context"
	"testing"

	"voltflow-backend/pkg/biometric"
	"voltflow-backend/pkg/credentials"

	"github.com/alicebob/miniredis/v2"
	redisClient "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCredentialService(t *testing.T, capability biometric.Capability) *CredentialService {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redisClient.NewClient(&redisClient.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := credentials.NewStore(client, "test_credentials:")
	return NewCredentialService(store, biometric.NewDeviceAuthenticator(capability, "device-proof"))
}

func TestCredentialService_PasswordRequiresBiometricProof(t *testing.T) {
	svc := newCredentialService(t, biometric.CapabilityFace)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "voltflow_password", "hunter2"))

	_, err := svc.Retrieve(ctx, "voltflow_password", "wrong-proof")
	assert.ErrorIs(t, err, biometric.ErrChallengeFailed)

	secret, err := svc.Retrieve(ctx, "voltflow_password", "device-proof")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", secret)
}

func TestCredentialService_EmailIsNotGated(t *testing.T) {
	svc := newCredentialService(t, biometric.CapabilityFace)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "voltflow_email", "driver@voltflow.app"))

	email, err := svc.Retrieve(ctx, "voltflow_email", "")
	require.NoError(t, err)
	assert.Equal(t, "driver@voltflow.app", email)
}

func TestCredentialService_NoBiometricHardwareSkipsGate(t *testing.T) {
	svc := newCredentialService(t, biometric.CapabilityNone)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "voltflow_password", "hunter2"))

	secret, err := svc.Retrieve(ctx, "voltflow_password", "")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", secret)
}
