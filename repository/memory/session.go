package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"pet-care-server/models"
	"pet-care-server/repository"
)

// SessionStore is an in-memory repository.SessionStore used by tests
type SessionStore struct {
	mu   sync.RWMutex
	byID map[string]models.Session
}

var _ repository.SessionStore = (*SessionStore)(nil)

func NewSessionStore() *SessionStore {
	return &SessionStore{byID: make(map[string]models.Session)}
}

func (s *SessionStore) Create(ctx context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	s.byID[session.ID] = *session
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &session, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byID, id)
	return nil
}

func (s *SessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var purged int64
	now := time.Now()
	for id, session := range s.byID {
		if now.After(session.ExpiresAt) {
			delete(s.byID, id)
			purged++
		}
	}
	return purged, nil
}
