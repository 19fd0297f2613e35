package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Availability holds one flag per weekday a provider is open for bookings
type Availability struct {
	Sunday    bool `json:"sunday"`
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
}

// Provider represents a pet care service provider
type Provider struct {
	ID              string         `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string         `json:"name" gorm:"size:255"`
	Email           string         `json:"email" gorm:"size:255;index"`
	Contact         string         `json:"contact" gorm:"size:50"`
	Location        string         `json:"location" gorm:"size:255"`
	PasswordHash    string         `json:"-" gorm:"size:255"` // Hidden from JSON
	Experience      string         `json:"experience" gorm:"size:500"`
	Certifications  string         `json:"certifications" gorm:"size:1000"`
	ServicesOffered pq.StringArray `json:"servicesOffered" gorm:"type:text[]"`
	Availability    Availability   `json:"availability" gorm:"embedded;embeddedPrefix:availability_"`
	Charges         string         `json:"charges" gorm:"size:100"`
	CreatedAt       time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Provider model
func (Provider) TableName() string {
	return "providers"
}

// BeforeCreate is a GORM hook that runs before creating a provider
func (p *Provider) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
