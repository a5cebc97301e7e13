package controllers

import (
	"net/http"
	"strconv"
	"time"

	"cian-agenda-backend/config"
	"cian-agenda-backend/models"
	"cian-agenda-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleSlot is one block of a professional's working day.
type ScheduleSlot struct {
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime"`
	IsAvailable   bool       `json:"isAvailable"`
	IsBooked      bool       `json:"isBooked"`
	AppointmentID *uuid.UUID `json:"appointmentId,omitempty"`
}

// GetDayAgenda lists the projection rows of a single date ordered by start
// time.
func GetDayAgenda(c *gin.Context) {
	dateParam := c.Query("date")
	if dateParam == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "date query parameter is required")
		return
	}
	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	var appointments []models.AppointmentDetail
	if err := projectionQuery(config.DB).
		Where("a.date = ?", date).
		Order("a.start_time").
		Scan(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve agenda")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         dateParam,
		"appointments": appointments,
	})
}

// GetScheduleSlots renders the slot grid of a professional's working day,
// marking blocks taken by active appointments. Block length defaults to the
// configured value; cancelled and no-show appointments free their slot.
func GetScheduleSlots(c *gin.Context) {
	professionalUUID, err := uuid.Parse(c.Query("professionalId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid professional ID format")
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	block := config.BlockMinutes()
	if b := c.Query("block"); b != "" {
		v, err := strconv.Atoi(b)
		if err != nil || v <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid block minutes")
			return
		}
		block = v
	}

	workdayStart, workdayEnd := config.WorkdayWindow()
	starts, err := utils.GenerateSlots(block, workdayStart, workdayEnd)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid working-hours configuration")
		return
	}

	var booked []models.Appointment
	if err := config.DB.
		Where("professional_id = ? AND date = ?", professionalUUID, date).
		Where("status NOT IN ?", []models.AppointmentStatus{models.StatusCancelled, models.StatusNoShow}).
		Find(&booked).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	slots := make([]ScheduleSlot, 0, len(starts))
	for _, start := range starts {
		end, err := utils.AddMinutes(start, block)
		if err != nil {
			continue
		}
		slot := ScheduleSlot{StartTime: start, EndTime: end, IsAvailable: true}
		for i := range booked {
			if utils.Overlaps(start, end, booked[i].StartTime, booked[i].EndTime) {
				id := booked[i].ID
				slot.IsAvailable = false
				slot.IsBooked = true
				slot.AppointmentID = &id
				break
			}
		}
		slots = append(slots, slot)
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         c.Query("date"),
		"blockMinutes": block,
		"slots":        slots,
	})
}
