package credentials

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redisClient "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redisClient.NewClient(&redisClient.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewStore(client, "test_credentials:")
}

func TestStore_SaveRetrieveLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	const account = "voltflow_password"

	// Nothing saved yet.
	_, err := store.Retrieve(ctx, account)
	assert.ErrorIs(t, err, ErrNotFound)

	// First save succeeds and round-trips.
	require.NoError(t, store.Save(ctx, account, "hunter2"))
	secret, err := store.Retrieve(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", secret)

	// A second save on the same account must not overwrite.
	err = store.Save(ctx, account, "other")
	assert.ErrorIs(t, err, ErrDuplicateEntry)

	secret, err = store.Retrieve(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", secret)

	// Update is the way to replace an existing entry.
	require.NoError(t, store.Update(ctx, account, "correcthorse"))
	secret, err = store.Retrieve(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, "correcthorse", secret)
}

func TestStore_UpdateMissingEntry(t *testing.T) {
	store := newTestStore(t)

	err := store.Update(context.Background(), "voltflow_email", "driver@voltflow.app")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "voltflow_email", "driver@voltflow.app"))
	require.NoError(t, store.Delete(ctx, "voltflow_email"))

	_, err := store.Retrieve(ctx, "voltflow_email")
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.Delete(ctx, "voltflow_email")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_AccountsAreIndependent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "voltflow_email", "driver@voltflow.app"))
	require.NoError(t, store.Save(ctx, "voltflow_password", "hunter2"))

	email, err := store.Retrieve(ctx, "voltflow_email")
	require.NoError(t, err)
	password, err := store.Retrieve(ctx, "voltflow_password")
	require.NoError(t, err)

	assert.Equal(t, "driver@voltflow.app", email)
	assert.Equal(t, "hunter2", password)
}
