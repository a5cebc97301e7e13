package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"cian-agenda-backend/config"
	"cian-agenda-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotsResponse struct {
	Date         string `json:"date"`
	BlockMinutes int    `json:"blockMinutes"`
	Slots        []struct {
		StartTime   string `json:"startTime"`
		EndTime     string `json:"endTime"`
		IsAvailable bool   `json:"isAvailable"`
		IsBooked    bool   `json:"isBooked"`
	} `json:"slots"`
}

func TestScheduleSlotsGrid(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	patient := createPatient(t, "Juan González")
	professional := createProfessional(t, "María Pérez", "Terapia Ocupacional")
	service := createService(t, "Terapia 30min", 30, 30000)

	w := performRequest(r, http.MethodPost, "/api/appointments", token, gin.H{
		"patientId":      patient.ID,
		"professionalId": professional.ID,
		"serviceId":      service.ID,
		"date":           "2026-09-07",
		"startTime":      "10:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(r, http.MethodGet,
		"/api/schedule/slots?professionalId="+professional.ID.String()+"&date=2026-09-07", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp slotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, config.DefaultBlockMinutes, resp.BlockMinutes)

	// Default window 09:00-18:30 in 30-minute blocks, closing slot included.
	require.Len(t, resp.Slots, 20)
	assert.Equal(t, "09:00:00", resp.Slots[0].StartTime)
	assert.Equal(t, "09:30:00", resp.Slots[0].EndTime)

	booked := 0
	for _, slot := range resp.Slots {
		if slot.IsBooked {
			booked++
			assert.Equal(t, "10:00:00", slot.StartTime)
			assert.False(t, slot.IsAvailable)
		}
	}
	assert.Equal(t, 1, booked)
}

func TestScheduleSlotsValidation(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)
	professional := createProfessional(t, "María Pérez", "Terapia Ocupacional")

	w := performRequest(r, http.MethodGet, "/api/schedule/slots?professionalId=nope&date=2026-09-07", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, http.MethodGet,
		"/api/schedule/slots?professionalId="+professional.ID.String()+"&date=07-09-2026", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, http.MethodGet,
		"/api/schedule/slots?professionalId="+professional.ID.String()+"&date=2026-09-07&block=0", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDayAgendaOrderedByStartTime(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	patient := createPatient(t, "Ana Díaz")
	professional := createProfessional(t, "Camila Rojas", "Psicología")
	service := createService(t, "Terapia 30min", 30, 30000)

	for _, start := range []string{"11:00", "09:00", "15:30"} {
		w := performRequest(r, http.MethodPost, "/api/appointments", token, gin.H{
			"patientId":      patient.ID,
			"professionalId": professional.ID,
			"serviceId":      service.ID,
			"date":           "2026-09-07",
			"startTime":      start,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// A different date stays out of the agenda.
	w := performRequest(r, http.MethodPost, "/api/appointments", token, gin.H{
		"patientId":      patient.ID,
		"professionalId": professional.ID,
		"serviceId":      service.ID,
		"date":           "2026-09-08",
		"startTime":      "09:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(r, http.MethodGet, "/api/schedule/day?date=2026-09-07", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Date         string                     `json:"date"`
		Appointments []models.AppointmentDetail `json:"appointments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Appointments, 3)
	assert.Equal(t, "09:00:00", resp.Appointments[0].StartTime)
	assert.Equal(t, "11:00:00", resp.Appointments[1].StartTime)
	assert.Equal(t, "15:30:00", resp.Appointments[2].StartTime)
	assert.Equal(t, "Camila Rojas", resp.Appointments[0].ProfessionalName)
}
