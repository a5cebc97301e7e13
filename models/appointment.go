package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus is the closed status domain of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// statusTransitions lists the allowed next statuses for each status.
// completed, cancelled and no_show are terminal.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled: {StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

var ErrInvalidStatus = errors.New("invalid appointment status")
var ErrInvalidTransition = errors.New("invalid appointment status transition")

// IsValidStatus reports whether s belongs to the status domain.
func IsValidStatus(s AppointmentStatus) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition reports whether an appointment may move from one status
// to another. Setting the same status again is always allowed.
func CanTransition(from, to AppointmentStatus) bool {
	if from == to {
		return true
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PatientID      uuid.UUID `gorm:"type:uuid;index;not null" json:"patientId"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;index;not null" json:"professionalId"`
	ServiceID      uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`

	// Times of day are zero-padded HH:MM:SS so lexical order is
	// chronological order.
	Date      time.Time `gorm:"type:date;index;not null" json:"date"`
	StartTime string    `gorm:"type:varchar(8)" json:"startTime"`
	EndTime   string    `gorm:"type:varchar(8)" json:"endTime"`

	Status AppointmentStatus `gorm:"type:varchar(20);default:'scheduled'" json:"status"`
	Notes  string            `gorm:"type:text" json:"notes"`
	Price  float64           `gorm:"type:decimal(10,2);default:0" json:"price"`

	Patient      Patient      `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Professional Professional `gorm:"foreignKey:ProfessionalID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Service      Service      `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// BeforeCreate assigns the UUID and applies the price-default rule: an
// appointment inserted with no price (zero) takes the current price of
// its service. Runs inside the insert transaction; updates never re-apply
// the rule, so repricing a service leaves existing appointments untouched.
func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if !IsValidStatus(a.Status) {
		return ErrInvalidStatus
	}
	if a.Price == 0 {
		var service Service
		if err := tx.First(&service, "id = ?", a.ServiceID).Error; err != nil {
			return err
		}
		a.Price = service.Price
	}
	return
}

// AppointmentDetail is the denormalized projection of an appointment with
// the display names of its patient, professional and service, produced by
// left joins so a row never disappears while its references exist.
type AppointmentDetail struct {
	ID               uuid.UUID         `json:"id"`
	PatientID        uuid.UUID         `json:"patientId"`
	ProfessionalID   uuid.UUID         `json:"professionalId"`
	ServiceID        uuid.UUID         `json:"serviceId"`
	Date             time.Time         `json:"date"`
	StartTime        string            `json:"startTime"`
	EndTime          string            `json:"endTime"`
	Status           AppointmentStatus `json:"status"`
	Notes            string            `json:"notes"`
	Price            float64           `json:"price"`
	PatientName      string            `json:"patientName"`
	ProfessionalName string            `json:"professionalName"`
	ServiceName      string            `json:"serviceName"`
	CreatedAt        time.Time         `json:"createdAt"`
}
