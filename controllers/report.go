// controllers/report.go
package controllers

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"cian-agenda-backend/config"
	"cian-agenda-backend/models"
	"cian-agenda-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportController handles all reporting functions
type ReportController struct{}

// ReportSummary represents the KPI report for a date range
type ReportSummary struct {
	From              string              `json:"from"`
	To                string              `json:"to"`
	TotalAppointments int                 `json:"totalAppointments"`
	Completed         int                 `json:"completed"`
	Cancelled         int                 `json:"cancelled"`
	NoShow            int                 `json:"noShow"`
	Revenue           float64             `json:"revenue"`
	OccupancyPercent  float64             `json:"occupancyPercent"`
	SlotsUsed         int                 `json:"slotsUsed"`
	SlotsAvailable    int                 `json:"slotsAvailable"`
	ByDay             []DayCount          `json:"byDay"`
	ByProfessional    []ProfessionalCount `json:"byProfessional"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type ProfessionalCount struct {
	Professional string `json:"professional"`
	Count        int    `json:"count"`
}

// GetReportAnalytics builds the KPI report: appointment totals by status,
// approximate revenue, appointments per day and per professional, and the
// occupancy derived from the block length and working-hours window.
// Defaults to the current month; `professional` filters by name substring.
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var err error
	if p := c.Query("from"); p != "" {
		if from, err = time.Parse("2006-01-02", p); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
			return
		}
	}
	if p := c.Query("to"); p != "" {
		if to, err = time.Parse("2006-01-02", p); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
			return
		}
	}

	query := projectionQuery(config.DB).
		Where("a.date >= ? AND a.date <= ?", from, to)
	if pro := c.Query("professional"); pro != "" {
		query = query.Where("LOWER(pr.full_name) LIKE ?", "%"+strings.ToLower(pro)+"%")
	}

	var scope []models.AppointmentDetail
	if err := query.Scan(&scope).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build report")
		return
	}

	summary := ReportSummary{
		From:           from.Format("2006-01-02"),
		To:             to.Format("2006-01-02"),
		ByDay:          []DayCount{},
		ByProfessional: []ProfessionalCount{},
	}

	byDay := map[string]int{}
	byProfessional := map[string]int{}
	professionals := map[uuid.UUID]bool{}
	for _, a := range scope {
		summary.TotalAppointments++
		switch a.Status {
		case models.StatusCompleted:
			summary.Completed++
		case models.StatusCancelled:
			summary.Cancelled++
		case models.StatusNoShow:
			summary.NoShow++
		}
		summary.Revenue += a.Price
		byDay[a.Date.Format("2006-01-02")]++
		byProfessional[a.ProfessionalName]++
		professionals[a.ProfessionalID] = true
	}

	for day, count := range byDay {
		summary.ByDay = append(summary.ByDay, DayCount{Date: day, Count: count})
	}
	sort.Slice(summary.ByDay, func(i, j int) bool {
		return summary.ByDay[i].Date < summary.ByDay[j].Date
	})

	for pro, count := range byProfessional {
		summary.ByProfessional = append(summary.ByProfessional, ProfessionalCount{Professional: pro, Count: count})
	}
	sort.Slice(summary.ByProfessional, func(i, j int) bool {
		if summary.ByProfessional[i].Count != summary.ByProfessional[j].Count {
			return summary.ByProfessional[i].Count > summary.ByProfessional[j].Count
		}
		return summary.ByProfessional[i].Professional < summary.ByProfessional[j].Professional
	})

	// Approximate occupancy: slots used over slots available across the
	// distinct professionals and days in scope.
	summary.SlotsUsed = summary.TotalAppointments
	summary.SlotsAvailable = len(professionals) * len(byDay) * config.SlotsPerDay(config.BlockMinutes())
	if summary.SlotsAvailable > 0 {
		summary.OccupancyPercent = float64(summary.SlotsUsed) / float64(summary.SlotsAvailable) * 100
	}

	c.JSON(http.StatusOK, summary)
}
