package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserType string

const (
	UserTypePetOwner        UserType = "petOwner"
	UserTypePetCareProvider UserType = "petCareProvider"
)

// IsValid checks if the user type is one of the supported discriminators
func (t UserType) IsValid() bool {
	switch t {
	case UserTypePetOwner, UserTypePetCareProvider:
		return true
	default:
		return false
	}
}

// Customer represents a pet owner together with their pet's profile
type Customer struct {
	ID             string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string    `json:"name" gorm:"size:255"`
	Email          string    `json:"email" gorm:"size:255;index"`
	Contact        string    `json:"contact" gorm:"size:50"`
	Location       string    `json:"location" gorm:"size:255"`
	PasswordHash   string    `json:"-" gorm:"size:255"` // Hidden from JSON
	Species        string    `json:"species" gorm:"size:100"`
	Breed          string    `json:"breed" gorm:"size:100"`
	Age            string    `json:"age" gorm:"size:50"`
	Weight         string    `json:"weight" gorm:"size:50"`
	MedicalHistory string    `json:"medicalHistory" gorm:"size:2000"`
	Allergies      string    `json:"allergies" gorm:"size:1000"`
	PreferredFood  string    `json:"preferredFood" gorm:"size:255"`
	Behavior       string    `json:"behavior" gorm:"size:1000"`
	Temperament    string    `json:"temperament" gorm:"size:255"`
	CreatedAt      time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// BeforeCreate is a GORM hook that runs before creating a customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
