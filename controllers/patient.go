package controllers

import (
	"errors"
	"net/http"
	"time"

	"cian-agenda-backend/config"
	"cian-agenda-backend/models"
	"cian-agenda-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreatePatientInput defines the expected JSON structure for creating a patient
type CreatePatientInput struct {
	FullName   string     `json:"fullName" binding:"required"`
	NationalID string     `json:"nationalId"`
	BirthDate  *time.Time `json:"birthDate"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email"`
}

// UpdatePatientInput defines the expected JSON structure for updating a patient
type UpdatePatientInput struct {
	FullName   *string    `json:"fullName"`
	NationalID *string    `json:"nationalId"`
	BirthDate  *time.Time `json:"birthDate"`
	Phone      *string    `json:"phone"`
	Email      *string    `json:"email"`
}

// CreatePatient creates a new patient. The national ID is not unique:
// duplicates are permitted, as in the source schema.
func CreatePatient(c *gin.Context) {
	var input CreatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	patient := models.Patient{
		FullName:   input.FullName,
		NationalID: input.NationalID,
		BirthDate:  input.BirthDate,
		Phone:      input.Phone,
		Email:      input.Email,
	}

	if err := config.DB.Create(&patient).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create patient")
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// GetPatients retrieves all patients, optionally filtered by name
func GetPatients(c *gin.Context) {
	query := config.DB.Order("full_name")
	if search := c.Query("search"); search != "" {
		query = query.Where("full_name LIKE ?", "%"+search+"%")
	}

	var patients []models.Patient
	if err := query.Find(&patients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve patients")
		return
	}

	c.JSON(http.StatusOK, patients)
}

// GetPatient retrieves a specific patient by ID
func GetPatient(c *gin.Context) {
	patientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid patient ID format")
		return
	}

	var patient models.Patient
	if err := config.DB.First(&patient, "id = ?", patientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Patient not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, patient)
}

// UpdatePatient updates an existing patient
func UpdatePatient(c *gin.Context) {
	patientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid patient ID format")
		return
	}

	var input UpdatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var patient models.Patient
	if err := config.DB.First(&patient, "id = ?", patientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Patient not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.FullName != nil {
		patient.FullName = *input.FullName
	}
	if input.NationalID != nil {
		patient.NationalID = *input.NationalID
	}
	if input.BirthDate != nil {
		patient.BirthDate = input.BirthDate
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		patient.Phone = *input.Phone
	}
	if input.Email != nil {
		patient.Email = *input.Email
	}

	if err := config.DB.Save(&patient).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update patient")
		return
	}

	c.JSON(http.StatusOK, patient)
}

// DeletePatient deletes a patient. Fails while appointments reference it.
func DeletePatient(c *gin.Context) {
	patientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid patient ID format")
		return
	}

	result := config.DB.Delete(&models.Patient{}, "id = ?", patientUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusConflict, "Cannot delete patient: existing appointments reference it")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Patient not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted successfully"})
}
