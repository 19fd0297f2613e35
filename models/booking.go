package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "Pending"
	BookingStatusAccepted BookingStatus = "Accepted"
	BookingStatusRejected BookingStatus = "Rejected"
)

// IsValid checks if the booking status is one of the three allowed values
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusAccepted, BookingStatusRejected:
		return true
	default:
		return false
	}
}

// Booking links a customer to a provider for a service on a set of weekdays.
// Provider and customer ids are checked against their tables at create time;
// no database-level foreign keys are declared so historic rows with dangling
// references stay readable.
type Booking struct {
	ID         string         `json:"id" gorm:"type:uuid;primaryKey"`
	ProviderID string         `json:"providerId" gorm:"type:uuid;index"`
	CustomerID string         `json:"customerId" gorm:"type:uuid;index"`
	Service    string         `json:"service" gorm:"size:255"`
	Days       pq.StringArray `json:"days" gorm:"type:text[]"`
	Status     BookingStatus  `json:"status" gorm:"type:varchar(20);default:'Pending';check:status IN ('Pending','Accepted','Rejected')"`
	CreatedAt  time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// BeforeCreate is a GORM hook that runs before creating a booking
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = BookingStatusPending
	}
	return nil
}
