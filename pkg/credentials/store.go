// Package credentials is the backend analog of the device keychain: an
// opaque string per account name, stored raw. Secrecy comes from the
// store itself, not from hashing; retrieval may additionally be gated by
// a biometric challenge at the service layer.
package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrDuplicateEntry is returned by Save when the account already has
	// a stored secret; callers must Update instead.
	ErrDuplicateEntry = errors.New("credentials: duplicate entry")
	// ErrNotFound is returned when no secret exists for the account.
	ErrNotFound = errors.New("credentials: not found")
)

// Store keeps one secret per account name in Redis.
type Store struct {
	client    *redis.Client
	keyPrefix string
}

// NewStore creates a credential store. The prefix namespaces keys so the
// store can share a Redis database with other components.
func NewStore(client *redis.Client, keyPrefix string) *Store {
	if keyPrefix == "" {
		keyPrefix = "credentials:"
	}
	return &Store{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (s *Store) key(account string) string {
	return s.keyPrefix + account
}

// Save stores a secret for an account that has none yet.
func (s *Store) Save(ctx context.Context, account, secret string) error {
	ok, err := s.client.SetNX(ctx, s.key(account), secret, 0).Result()
	if err != nil {
		return fmt.Errorf("credentials: save %s: %w", account, err)
	}
	if !ok {
		return ErrDuplicateEntry
	}
	return nil
}

// Update replaces the secret of an existing account.
func (s *Store) Update(ctx context.Context, account, secret string) error {
	ok, err := s.client.SetXX(ctx, s.key(account), secret, 0).Result()
	if err != nil {
		return fmt.Errorf("credentials: update %s: %w", account, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Retrieve returns the stored secret for the account.
func (s *Store) Retrieve(ctx context.Context, account string) (string, error) {
	secret, err := s.client.Get(ctx, s.key(account)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("credentials: retrieve %s: %w", account, err)
	}
	return secret, nil
}

// Delete removes the stored secret for the account.
func (s *Store) Delete(ctx context.Context, account string) error {
	deleted, err := s.client.Del(ctx, s.key(account)).Result()
	if err != nil {
		return fmt.Errorf("credentials: delete %s: %w", account, err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}
