package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"cian-agenda-backend/config"
	"cian-agenda-backend/models"
	"cian-agenda-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAppointmentInput defines the expected JSON structure for creating
// an appointment. Price may be omitted or zero, in which case the service
// price is applied at insert time.
type CreateAppointmentInput struct {
	PatientID       uuid.UUID `json:"patientId" binding:"required"`
	ProfessionalID  uuid.UUID `json:"professionalId" binding:"required"`
	ServiceID       uuid.UUID `json:"serviceId" binding:"required"`
	Date            string    `json:"date" binding:"required"` // YYYY-MM-DD
	StartTime       string    `json:"startTime" binding:"required"`
	DurationMinutes int       `json:"durationMinutes" binding:"min=0"`
	EndTime         string    `json:"endTime"`
	Notes           string    `json:"notes"`
	Price           float64   `json:"price" binding:"min=0"`
}

// UpdateAppointmentInput defines the mutable appointment fields. The
// references, date/times and creation timestamp are fixed once created.
type UpdateAppointmentInput struct {
	Status *models.AppointmentStatus `json:"status"`
	Notes  *string                   `json:"notes"`
	Price  *float64                  `json:"price"`
}

// projectionQuery builds the denormalized full-appointment projection:
// appointments left-joined with the display names of patient, professional
// and service.
func projectionQuery(db *gorm.DB) *gorm.DB {
	return db.Table("appointments a").
		Select(`a.id, a.patient_id, a.professional_id, a.service_id,
			a.date, a.start_time, a.end_time, a.status, a.notes, a.price, a.created_at,
			COALESCE(p.full_name, '') AS patient_name,
			COALESCE(pr.full_name, '') AS professional_name,
			COALESCE(s.name, '') AS service_name`).
		Joins("LEFT JOIN patients p ON p.id = a.patient_id").
		Joins("LEFT JOIN professionals pr ON pr.id = a.professional_id").
		Joins("LEFT JOIN services s ON s.id = a.service_id")
}

func isForeignKeyViolation(err error) bool {
	// Postgres: "violates foreign key constraint"; sqlite: "FOREIGN KEY
	// constraint failed".
	return strings.Contains(strings.ToLower(err.Error()), "constraint")
}

// CreateAppointment books an appointment. The same professional cannot hold
// two time-overlapping appointments on one date (cancelled and no-show ones
// do not block the slot).
func CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	if !utils.ValidateTimeOfDay(input.StartTime) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid start time, expected HH:MM or HH:MM:SS")
		return
	}
	startTime := utils.NormalizeTimeOfDay(input.StartTime)

	endTime := input.EndTime
	if endTime != "" {
		if !utils.ValidateTimeOfDay(endTime) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid end time, expected HH:MM or HH:MM:SS")
			return
		}
		endTime = utils.NormalizeTimeOfDay(endTime)
	} else {
		duration := input.DurationMinutes
		if duration == 0 {
			var service models.Service
			if err := config.DB.First(&service, "id = ?", input.ServiceID).Error; err == nil {
				duration = service.DurationMinutes
			}
			if duration == 0 {
				duration = config.BlockMinutes()
			}
		}
		endTime, err = utils.AddMinutes(startTime, duration)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid start time")
			return
		}
	}

	if endTime <= startTime {
		utils.RespondWithError(c, http.StatusBadRequest, "End time must be after start time")
		return
	}

	// Overlap check for the same professional and date.
	var conflicts int64
	err = config.DB.Model(&models.Appointment{}).
		Where("professional_id = ? AND date = ?", input.ProfessionalID, date).
		Where("status NOT IN ?", []models.AppointmentStatus{models.StatusCancelled, models.StatusNoShow}).
		Where("start_time < ? AND end_time > ?", endTime, startTime).
		Count(&conflicts).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if conflicts > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Time conflict with another appointment of the same professional")
		return
	}

	appointment := models.Appointment{
		PatientID:      input.PatientID,
		ProfessionalID: input.ProfessionalID,
		ServiceID:      input.ServiceID,
		Date:           date,
		StartTime:      startTime,
		EndTime:        endTime,
		Status:         models.StatusScheduled,
		Notes:          input.Notes,
		Price:          input.Price, // zero is replaced by the service price on insert
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || isForeignKeyViolation(err) {
			utils.RespondWithError(c, http.StatusConflict, "Appointment references a missing patient, professional or service")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments lists appointments as projection rows, optionally filtered
// by date range and status.
func GetAppointments(c *gin.Context) {
	query := projectionQuery(config.DB)

	if from := c.Query("from"); from != "" {
		date, err := time.Parse("2006-01-02", from)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("a.date >= ?", date)
	}
	if to := c.Query("to"); to != "" {
		date, err := time.Parse("2006-01-02", to)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("a.date <= ?", date)
	}
	if status := c.Query("status"); status != "" {
		if !models.IsValidStatus(models.AppointmentStatus(status)) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown status")
			return
		}
		query = query.Where("a.status = ?", status)
	}

	var appointments []models.AppointmentDetail
	if err := query.Order("a.date, a.start_time").Scan(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves one appointment as a projection row
func GetAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appointments []models.AppointmentDetail
	if err := projectionQuery(config.DB).Where("a.id = ?", appointmentUUID).
		Scan(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if len(appointments) == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, appointments[0])
}

// UpdateAppointment mutates status, notes or price in place. Status changes
// must follow the transition table; the price-default rule never re-runs on
// update.
func UpdateAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.First(&appointment, "id = ?", appointmentUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Status != nil {
		if !models.IsValidStatus(*input.Status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown status")
			return
		}
		if !models.CanTransition(appointment.Status, *input.Status) {
			utils.RespondWithError(c, http.StatusConflict,
				"Cannot change status from "+string(appointment.Status)+" to "+string(*input.Status))
			return
		}
		appointment.Status = *input.Status
	}
	if input.Notes != nil {
		appointment.Notes = *input.Notes
	}
	if input.Price != nil {
		appointment.Price = *input.Price
	}

	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment removes an appointment
func DeleteAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	result := config.DB.Delete(&models.Appointment{}, "id = ?", appointmentUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
