// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"cian-agenda-backend/models"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_FROM_NUMBER"),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendDailyReminders()
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders notifies every patient with a phone number about
// tomorrow's scheduled or confirmed appointments, logging each attempt.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	tomorrow := time.Now().AddDate(0, 0, 1)
	date := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, time.UTC)

	type reminderRow struct {
		ID           string
		StartTime    string
		PatientName  string
		PatientPhone string
		Professional string
		ServiceName  string
	}
	var rows []reminderRow
	err := s.db.Table("appointments a").
		Select(`a.id, a.start_time,
			COALESCE(p.full_name, '') AS patient_name,
			COALESCE(p.phone, '') AS patient_phone,
			COALESCE(pr.full_name, '') AS professional,
			COALESCE(sv.name, '') AS service_name`).
		Joins("LEFT JOIN patients p ON p.id = a.patient_id").
		Joins("LEFT JOIN professionals pr ON pr.id = a.professional_id").
		Joins("LEFT JOIN services sv ON sv.id = a.service_id").
		Where("a.date = ?", date).
		Where("a.status IN ?", []models.AppointmentStatus{models.StatusScheduled, models.StatusConfirmed}).
		Scan(&rows).Error
	if err != nil {
		log.Printf("Failed to fetch tomorrow's appointments: %v", err)
		return
	}

	for _, row := range rows {
		s.processReminder(row.ID, row.PatientName, row.PatientPhone, row.Professional, row.ServiceName, row.StartTime, date)
	}

	log.Printf("Processed %d appointment reminders", len(rows))
}

func (s *ReminderService) processReminder(appointmentID, patient, phone, professional, service, startTime string, date time.Time) {
	entry := models.ReminderLog{
		Phone:  phone,
		SentAt: time.Now(),
	}
	if id, err := uuid.Parse(appointmentID); err == nil {
		entry.AppointmentID = id
	}

	if phone == "" {
		entry.Status = "skipped"
		entry.ErrorMessage = "patient has no phone number"
		s.logReminder(&entry)
		return
	}

	message := fmt.Sprintf(
		"Hola %s, te recordamos tu cita de %s con %s el %s a las %s. CIAN.",
		patient, service, professional, date.Format("02-01-2006"), startTime[:5])
	entry.Message = message

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.from)
	params.SetBody(message)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Printf("Failed to send reminder for appointment %s: %v", appointmentID, err)
		entry.Status = "failed"
		entry.ErrorMessage = err.Error()
	} else {
		entry.Status = "sent"
	}
	s.logReminder(&entry)
}

func (s *ReminderService) logReminder(entry *models.ReminderLog) {
	if err := s.db.Create(entry).Error; err != nil {
		log.Printf("Failed to log reminder: %v", err)
	}
}
