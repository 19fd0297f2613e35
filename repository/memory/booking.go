package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"pet-care-server/models"
	"pet-care-server/repository"
)

// BookingRepo is an in-memory repository.BookingRepository used by tests
type BookingRepo struct {
	mu    sync.RWMutex
	byID  map[string]models.Booking
	order []string
}

var _ repository.BookingRepository = (*BookingRepo)(nil)

func NewBookingRepo() *BookingRepo {
	return &BookingRepo{byID: make(map[string]models.Booking)}
}

func (r *BookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	booking.UpdatedAt = time.Now()

	r.byID[booking.ID] = *booking
	r.order = append(r.order, booking.ID)
	return nil
}

func (r *BookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &booking, nil
}

func (r *BookingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Booking, 0)
	for _, id := range r.order {
		if b := r.byID[id]; b.ProviderID == providerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BookingRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Booking, 0)
	for _, id := range r.order {
		if b := r.byID[id]; b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *BookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	r.byID[id] = booking
	return &booking, nil
}
