package repository

import (
	"context"

	"gorm.io/gorm"

	"pet-care-server/models"
)

// ContactRepository persists contact form messages. Intake only: nothing
// reads these back through the API.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a GORM-backed contact repository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}
