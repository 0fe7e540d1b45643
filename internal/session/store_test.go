package session

import (
	"testing"
	"time"

	"voltflow-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForUpdate(t *testing.T, ch <-chan *models.User) *models.User {
	t.Helper()
	select {
	case u := <-ch:
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for session update")
		return nil
	}
}

func TestStore_PublishAndSnapshot(t *testing.T) {
	s := NewStore()
	defer s.Close()

	updates := s.Subscribe()

	user := &models.User{ID: "u1", Email: "driver@voltflow.app"}
	s.Publish(user)

	got := waitForUpdate(t, updates)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, user, s.Snapshot())
}

func TestStore_ClearOnSignOut(t *testing.T) {
	s := NewStore()
	defer s.Close()

	updates := s.Subscribe()

	s.Publish(&models.User{ID: "u1", Email: "driver@voltflow.app"})
	require.NotNil(t, waitForUpdate(t, updates))

	s.Clear()
	got := waitForUpdate(t, updates)
	assert.Nil(t, got)
	assert.Nil(t, s.Snapshot())
}

func TestStore_LastWriterWins(t *testing.T) {
	s := NewStore()
	defer s.Close()

	updates := s.Subscribe()

	first := &models.User{ID: "u1", Email: "first@voltflow.app"}
	second := &models.User{ID: "u2", Email: "second@voltflow.app"}
	s.Publish(first)
	s.Publish(second)

	// Drain until the final state lands; intermediate updates may be
	// collapsed since the subscriber buffer keeps only the latest.
	deadline := time.After(2 * time.Second)
	for {
		if u := s.Snapshot(); u != nil && u.ID == "u2" {
			break
		}
		select {
		case <-updates:
		case <-deadline:
			t.Fatal("second publish never applied")
		case <-time.After(10 * time.Millisecond):
		}
	}

	assert.Equal(t, second, s.Snapshot())
}
