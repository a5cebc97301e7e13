package config

import (
	"log"
	"time"

	"cian-agenda-backend/models"

	"gorm.io/gorm"
)

// SeedSampleData loads the sample dataset: three professionals, three
// services, two patients. There is no uniqueness guard, so running it twice
// duplicates the rows — matching the original seed script.
func SeedSampleData(db *gorm.DB) error {
	professionals := []models.Professional{
		{FullName: "María Pérez", Specialty: "Terapia Ocupacional"},
		{FullName: "José Soto", Specialty: "Fonoaudiología"},
		{FullName: "Camila Rojas", Specialty: "Psicología"},
	}
	services := []models.Service{
		{Name: "Terapia 30min", DurationMinutes: 30, Price: 30000},
		{Name: "Terapia 45min", DurationMinutes: 45, Price: 42000},
		{Name: "Evaluación inicial", DurationMinutes: 60, Price: 55000},
	}
	birth := time.Date(2015, time.March, 12, 0, 0, 0, 0, time.UTC)
	patients := []models.Patient{
		{FullName: "Juan González", NationalID: "21.543.876-5", BirthDate: &birth, Phone: "+56911111111", Email: "juan.gonzalez@example.com"},
		{FullName: "Ana Díaz", NationalID: "22.104.332-K", Phone: "+56922222222", Email: "ana.diaz@example.com"},
	}

	for i := range professionals {
		if err := db.Create(&professionals[i]).Error; err != nil {
			return err
		}
	}
	for i := range services {
		if err := db.Create(&services[i]).Error; err != nil {
			return err
		}
	}
	for i := range patients {
		if err := db.Create(&patients[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d professionals, %d services, %d patients",
		len(professionals), len(services), len(patients))
	return nil
}
