package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pet-care-server/models"
)

// ProviderRepository persists pet care provider accounts
type ProviderRepository interface {
	Create(ctx context.Context, provider *models.Provider) error
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	// FindByEmail returns every provider with the given email, duplicates included.
	FindByEmail(ctx context.Context, email string) ([]models.Provider, error)
	List(ctx context.Context) ([]models.Provider, error)
}

type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository creates a GORM-backed provider repository
func NewProviderRepository(db *gorm.DB) ProviderRepository {
	return &providerRepository{db: db}
}

func (r *providerRepository) Create(ctx context.Context, provider *models.Provider) error {
	return r.db.WithContext(ctx).Create(provider).Error
}

func (r *providerRepository) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	var provider models.Provider
	if err := r.db.WithContext(ctx).First(&provider, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &provider, nil
}

func (r *providerRepository) FindByEmail(ctx context.Context, email string) ([]models.Provider, error) {
	providers := make([]models.Provider, 0)
	if err := r.db.WithContext(ctx).Where("email = ?", email).Order("created_at").Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *providerRepository) List(ctx context.Context) ([]models.Provider, error) {
	providers := make([]models.Provider, 0)
	if err := r.db.WithContext(ctx).Order("created_at").Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}
