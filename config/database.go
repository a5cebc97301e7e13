package config

import (
	"os"

	"cian-agenda-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}

// MigrateSchema applies the schema. Safe to re-run: AutoMigrate only adds
// what is missing and the view is CREATE OR REPLACE.
func MigrateSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Patient{},
		&models.Professional{},
		&models.Service{},
		&models.Appointment{},
		&models.ReminderLog{},
	); err != nil {
		return err
	}

	// The denormalized view mirrors the projection the API serves. sqlite
	// (tests) has no CREATE OR REPLACE VIEW; queries use the same joins
	// directly, so the view is Postgres-only.
	if db.Dialector.Name() == "postgres" {
		return db.Exec(`
			CREATE OR REPLACE VIEW appointments_full AS
			SELECT a.id, a.date, a.start_time, a.end_time, a.status, a.notes,
			       a.price, a.created_at,
			       a.patient_id, p.full_name AS patient_name,
			       a.professional_id, pr.full_name AS professional_name,
			       a.service_id, s.name AS service_name
			FROM appointments a
			LEFT JOIN patients p ON p.id = a.patient_id
			LEFT JOIN professionals pr ON pr.id = a.professional_id
			LEFT JOIN services s ON s.id = a.service_id
		`).Error
	}
	return nil
}
