package session

import (
	"context"
	"encoding/json"
	"fmt"

	"ClinicaAdmin/cache"
)

// Store persists operator sessions in Redis. Consumers must re-read the
// session on every request so a logout elsewhere takes effect immediately.
type Store struct {
	cache *cache.Cache
}

func NewStore(cache *cache.Cache) *Store {
	return &Store{cache: cache}
}

func (s *Store) Save(ctx context.Context, sess *Session) error {
	sessionJSON, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.cache.Set(ctx, s.getSessionCacheKey(sess.ID), sessionJSON, SessionExpiry)
}

// Get returns the stored session, or nil when the id is unknown or expired.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	cachedSession, err := s.cache.Get(ctx, s.getSessionCacheKey(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get session from cache: %w", err)
	}
	if cachedSession == "" {
		return nil, nil
	}
	var sess Session
	if err := json.Unmarshal([]byte(cachedSession), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, s.getSessionCacheKey(id))
}

// DeleteAll removes every stored session, logging out all operators at once.
func (s *Store) DeleteAll(ctx context.Context) error {
	return s.cache.DeleteAll(ctx, s.getSessionCacheKey("*"))
}

func (s *Store) getSessionCacheKey(id string) string {
	return fmt.Sprintf("session_cache:%s", id)
}
