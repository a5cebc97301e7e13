package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"cian-agenda-backend/config"
	"cian-agenda-backend/models"
	"cian-agenda-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("APP_PASSWORD", "test-password")
	os.Exit(m.Run())
}

// setupRouter gives each test a fresh in-memory database (foreign keys on)
// and a router wired to it.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	name := fmt.Sprintf("test_%d", atomic.AddInt64(&testDBCounter, 1))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A shared in-memory database vanishes with its last connection.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, config.MigrateSchema(db))
	config.DB = db

	return routes.SetupRouter()
}

func performRequest(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := performRequest(r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "tester@example.com",
		"password": "test-password",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

func createPatient(t *testing.T, name string) models.Patient {
	t.Helper()
	patient := models.Patient{FullName: name, Phone: "+56912345678"}
	require.NoError(t, config.DB.Create(&patient).Error)
	return patient
}

func createProfessional(t *testing.T, name, specialty string) models.Professional {
	t.Helper()
	professional := models.Professional{FullName: name, Specialty: specialty}
	require.NoError(t, config.DB.Create(&professional).Error)
	return professional
}

func createService(t *testing.T, name string, duration int, price float64) models.Service {
	t.Helper()
	service := models.Service{Name: name, DurationMinutes: duration, Price: price}
	require.NoError(t, config.DB.Create(&service).Error)
	return service
}

func decodeAppointment(t *testing.T, w *httptest.ResponseRecorder) models.Appointment {
	t.Helper()
	var appointment models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appointment))
	return appointment
}

// sanity check on the shared helper fixture
func TestSetupRouterMigratesSchema(t *testing.T) {
	setupRouter(t)
	assert.True(t, config.DB.Migrator().HasTable(&models.Appointment{}))
	assert.True(t, config.DB.Migrator().HasTable(&models.ReminderLog{}))
}
