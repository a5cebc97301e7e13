package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Patient struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	FullName   string     `gorm:"not null" json:"fullName"`
	NationalID string     `gorm:"index" json:"nationalId"` // RUT; duplicates allowed
	BirthDate  *time.Time `json:"birthDate"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email"`

	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Initialize UUID before creating
func (p *Patient) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
