package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"pet-care-server/models"
	"pet-care-server/repository"
)

// ContactRepo is an in-memory repository.ContactRepository used by tests
type ContactRepo struct {
	mu       sync.RWMutex
	messages []models.Contact
}

var _ repository.ContactRepository = (*ContactRepo)(nil)

func NewContactRepo() *ContactRepo {
	return &ContactRepo{}
}

func (r *ContactRepo) Create(ctx context.Context, contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if contact.ID == "" {
		contact.ID = uuid.NewString()
	}
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now()
	}

	r.messages = append(r.messages, *contact)
	return nil
}

// Messages returns a snapshot of everything stored, for test assertions
func (r *ContactRepo) Messages() []models.Contact {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Contact, len(r.messages))
	copy(out, r.messages)
	return out
}
