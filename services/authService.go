package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"ClinicaAdmin/backend"
	"ClinicaAdmin/cache"
	"ClinicaAdmin/session"
	"ClinicaAdmin/utils"
)

type AuthService struct {
	backend *backend.Client
	store   *session.Store
	cache   *cache.Cache
}

func NewAuthService(backend *backend.Client, store *session.Store, cache *cache.Cache) *AuthService {
	return &AuthService{backend: backend, store: store, cache: cache}
}

// Login authenticates against the clinical backend and persists the
// resulting bearer token and user as a new session. Login and Logout are the
// only session writers.
func (s *AuthService) Login(ctx context.Context, username, password string) (*session.Session, string, error) {
	lockKey := fmt.Sprintf("login_lock:%s", username)
	lockValue := uuid.New().String() // Generate a unique lock value
	locked, err := s.cache.AcquireLock(ctx, lockKey, lockValue, 10*time.Second)
	if err != nil {
		return nil, "", fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, "", fmt.Errorf("a login for %s is already in progress", username)
	}
	defer func() {
		if err := s.cache.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	result, err := s.backend.Login(ctx, username, password)
	if err != nil {
		return nil, "", err
	}

	sess := &session.Session{
		ID:    uuid.New().String(),
		Token: result.Token,
		User:  result.User,
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, "", fmt.Errorf("failed to persist session: %w", err)
	}

	token, err := utils.GenerateSessionToken(sess.ID, sess.User.RoleID)
	if err != nil {
		return nil, "", err
	}
	return sess, token, nil
}

// Logout removes the stored session; the console token becomes useless
// immediately since every request re-reads the store.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

// LogoutAll revokes every active session, the caller's included. Used by
// admins after a credential change or a suspected leak.
func (s *AuthService) LogoutAll(ctx context.Context) error {
	return s.store.DeleteAll(ctx)
}
