package services

import (
	"context"
	"time"

	"pet-care-server/models"
	"pet-care-server/repository"
)

// SessionService issues and resolves login sessions over a pluggable store
type SessionService struct {
	store repository.SessionStore
	ttl   time.Duration
}

// NewSessionService creates a new session service
func NewSessionService(store repository.SessionStore, ttl time.Duration) *SessionService {
	return &SessionService{store: store, ttl: ttl}
}

// Issue creates a session for the given account and returns it. The session
// id is what goes into the cookie.
func (s *SessionService) Issue(ctx context.Context, userID string, userType models.UserType) (*models.Session, error) {
	session := &models.Session{
		UserID:    userID,
		UserType:  userType,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.store.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Resolve looks up a session by id. Expired sessions are deleted on sight
// and reported as not found.
func (s *SessionService) Resolve(ctx context.Context, id string) (*models.Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Expired() {
		_ = s.store.Delete(ctx, id)
		return nil, repository.ErrNotFound
	}
	return session, nil
}

// Revoke deletes a session. Revoking an unknown id is not an error.
func (s *SessionService) Revoke(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
