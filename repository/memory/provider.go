package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"pet-care-server/models"
	"pet-care-server/repository"
)

// ProviderRepo is an in-memory repository.ProviderRepository used by tests
type ProviderRepo struct {
	mu    sync.RWMutex
	byID  map[string]models.Provider
	order []string
}

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

func NewProviderRepo() *ProviderRepo {
	return &ProviderRepo{byID: make(map[string]models.Provider)}
}

func (r *ProviderRepo) Create(ctx context.Context, provider *models.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if provider.ID == "" {
		provider.ID = uuid.NewString()
	}
	if provider.CreatedAt.IsZero() {
		provider.CreatedAt = time.Now()
	}
	provider.UpdatedAt = time.Now()

	r.byID[provider.ID] = *provider
	r.order = append(r.order, provider.ID)
	return nil
}

func (r *ProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &provider, nil
}

func (r *ProviderRepo) FindByEmail(ctx context.Context, email string) ([]models.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Provider, 0)
	for _, id := range r.order {
		if p := r.byID[id]; p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *ProviderRepo) List(ctx context.Context) ([]models.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Provider, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
