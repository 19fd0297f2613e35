package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"pet-care-server/models"
	"pet-care-server/repository"
)

// CustomerRepo is an in-memory repository.CustomerRepository used by tests
type CustomerRepo struct {
	mu    sync.RWMutex
	byID  map[string]models.Customer
	order []string
}

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

func NewCustomerRepo() *CustomerRepo {
	return &CustomerRepo{byID: make(map[string]models.Customer)}
}

func (r *CustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now()
	}
	customer.UpdatedAt = time.Now()

	r.byID[customer.ID] = *customer
	r.order = append(r.order, customer.ID)
	return nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &customer, nil
}

func (r *CustomerRepo) FindByEmail(ctx context.Context, email string) ([]models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Customer, 0)
	for _, id := range r.order {
		if c := r.byID[id]; c.Email == email {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CustomerRepo) List(ctx context.Context) ([]models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Customer, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
