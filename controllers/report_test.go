package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"cian-agenda-backend/controllers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportAnalytics(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	patient := createPatient(t, "Juan González")
	maria := createProfessional(t, "María Pérez", "Terapia Ocupacional")
	jose := createProfessional(t, "José Soto", "Fonoaudiología")
	service := createService(t, "Terapia 30min", 30, 30000)

	type booking struct {
		professionalID string
		date, start    string
		status         string
	}
	bookings := []booking{
		{maria.ID.String(), "2026-09-07", "09:00", "completed"},
		{maria.ID.String(), "2026-09-07", "10:00", "cancelled"},
		{maria.ID.String(), "2026-09-08", "09:00", "no_show"},
		{jose.ID.String(), "2026-09-07", "09:00", ""},
	}
	for _, b := range bookings {
		w := performRequest(r, http.MethodPost, "/api/appointments", token, gin.H{
			"patientId":      patient.ID,
			"professionalId": b.professionalID,
			"serviceId":      service.ID,
			"date":           b.date,
			"startTime":      b.start,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		if b.status != "" {
			created := decodeAppointment(t, w)
			w = performRequest(r, http.MethodPut, "/api/appointments/"+created.ID.String(), token, gin.H{
				"status": b.status,
			})
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}
	}

	w := performRequest(r, http.MethodGet, "/api/reports?from=2026-09-01&to=2026-09-30", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary controllers.ReportSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))

	assert.Equal(t, 4, summary.TotalAppointments)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 1, summary.Cancelled)
	assert.Equal(t, 1, summary.NoShow)
	assert.Equal(t, float64(4*30000), summary.Revenue)

	require.Len(t, summary.ByDay, 2)
	assert.Equal(t, "2026-09-07", summary.ByDay[0].Date)
	assert.Equal(t, 3, summary.ByDay[0].Count)
	assert.Equal(t, "2026-09-08", summary.ByDay[1].Date)
	assert.Equal(t, 1, summary.ByDay[1].Count)

	require.Len(t, summary.ByProfessional, 2)
	assert.Equal(t, "María Pérez", summary.ByProfessional[0].Professional)
	assert.Equal(t, 3, summary.ByProfessional[0].Count)

	// 2 professionals x 2 distinct days x 20 default slots per day.
	assert.Equal(t, 4, summary.SlotsUsed)
	assert.Equal(t, 80, summary.SlotsAvailable)
	assert.InDelta(t, 5.0, summary.OccupancyPercent, 0.001)
}

func TestReportFiltersByProfessionalName(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	patient := createPatient(t, "Ana Díaz")
	maria := createProfessional(t, "María Pérez", "Terapia Ocupacional")
	jose := createProfessional(t, "José Soto", "Fonoaudiología")
	service := createService(t, "Terapia 30min", 30, 30000)

	for _, professionalID := range []string{maria.ID.String(), jose.ID.String()} {
		w := performRequest(r, http.MethodPost, "/api/appointments", token, gin.H{
			"patientId":      patient.ID,
			"professionalId": professionalID,
			"serviceId":      service.ID,
			"date":           "2026-09-07",
			"startTime":      "09:00",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := performRequest(r, http.MethodGet,
		"/api/reports?from=2026-09-01&to=2026-09-30&professional=soto", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary controllers.ReportSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 1, summary.TotalAppointments)
	require.Len(t, summary.ByProfessional, 1)
	assert.Equal(t, "José Soto", summary.ByProfessional[0].Professional)
}

func TestDashboardOverviewCounts(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	createPatient(t, "Juan González")
	createPatient(t, "Ana Díaz")
	createProfessional(t, "María Pérez", "Terapia Ocupacional")
	createService(t, "Terapia 30min", 30, 30000)

	w := performRequest(r, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var overview map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
	assert.JSONEq(t, "2", string(overview["totalPatients"]))
	assert.JSONEq(t, "1", string(overview["totalProfessionals"]))
	assert.JSONEq(t, "1", string(overview["totalServices"]))
	assert.JSONEq(t, "0", string(overview["totalAppointments"]))
}
