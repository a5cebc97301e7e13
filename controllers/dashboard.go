package controllers

import (
	"net/http"
	"time"

	"cian-agenda-backend/config"
	"cian-agenda-backend/models"
	"cian-agenda-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview returns the landing-page numbers: entity counts,
// today's agenda, the month's revenue from completed appointments and the
// next week's load.
func GetDashboardOverview(c *gin.Context) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	weekAhead := today.AddDate(0, 0, 7)

	var totalPatients int64
	config.DB.Model(&models.Patient{}).Count(&totalPatients)

	var totalProfessionals int64
	config.DB.Model(&models.Professional{}).Count(&totalProfessionals)

	var totalServices int64
	config.DB.Model(&models.Service{}).Count(&totalServices)

	var totalAppointments int64
	config.DB.Model(&models.Appointment{}).Count(&totalAppointments)

	var monthlyRevenue float64
	config.DB.Model(&models.Appointment{}).
		Where("date >= ? AND status = ?", firstOfMonth, models.StatusCompleted).
		Select("COALESCE(SUM(price), 0)").Scan(&monthlyRevenue)

	var upcomingWeek int64
	config.DB.Model(&models.Appointment{}).
		Where("date > ? AND date <= ?", today, weekAhead).
		Where("status IN ?", []models.AppointmentStatus{models.StatusScheduled, models.StatusConfirmed}).
		Count(&upcomingWeek)

	var todayAppointments []models.AppointmentDetail
	if err := projectionQuery(config.DB).
		Where("a.date = ?", today).
		Order("a.start_time").
		Scan(&todayAppointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve today's agenda")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalPatients":      totalPatients,
		"totalProfessionals": totalProfessionals,
		"totalServices":      totalServices,
		"totalAppointments":  totalAppointments,
		"monthlyRevenue":     monthlyRevenue,
		"upcomingWeek":       upcomingWeek,
		"todayAppointments":  todayAppointments,
	})
}
