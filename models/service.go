package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultServicePrice is the catalog price applied when none is supplied.
const DefaultServicePrice = 30000

type Service struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	DurationMinutes int       `gorm:"default:30" json:"durationMinutes"`
	Price           float64   `gorm:"type:decimal(10,2);default:30000" json:"price"`

	Appointments []Appointment `gorm:"foreignKey:ServiceID" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
