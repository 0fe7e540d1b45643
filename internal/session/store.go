// Package session holds the currently signed-in user behind a
// single-writer loop. Auth-state changes are queued onto one channel and
// applied by one goroutine, so snapshot readers never see a torn user
// record; when writes race, the last one queued wins.
package session

import (
	"sync"

	"voltflow-backend/internal/models"
)

// Store publishes at most one signed-in user at a time.
type Store struct {
	updates chan *models.User
	done    chan struct{}

	mu          sync.RWMutex
	current     *models.User
	subscribers []chan *models.User

	closeOnce sync.Once
}

// NewStore creates a store and starts its writer loop.
func NewStore() *Store {
	s := &Store{
		updates: make(chan *models.User, 16),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Store) run() {
	for {
		select {
		case <-s.done:
			return
		case user := <-s.updates:
			s.apply(user)
		}
	}
}

func (s *Store) apply(user *models.User) {
	s.mu.Lock()
	s.current = user
	subs := make([]chan *models.User, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- user:
		default:
			// Drop the stale notification; the next snapshot is current.
			select {
			case <-ch:
			default:
			}
			ch <- user
		}
	}
}

// Publish queues a new signed-in user.
func (s *Store) Publish(user *models.User) {
	select {
	case s.updates <- user:
	case <-s.done:
	}
}

// Clear queues removal of the published user, used on sign-out.
func (s *Store) Clear() {
	s.Publish(nil)
}

// Snapshot returns the currently published user, nil when signed out.
func (s *Store) Snapshot() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Subscribe registers for auth-state changes. Each subscriber channel
// buffers a single pending update; only the latest is retained.
func (s *Store) Subscribe() <-chan *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan *models.User, 1)
	s.subscribers = append(s.subscribers, ch)
	return ch
}

// Close stops the writer loop.
func (s *Store) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}
