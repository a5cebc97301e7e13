package controllers

import (
	"errors"
	"net/http"

	"cian-agenda-backend/config"
	"cian-agenda-backend/models"
	"cian-agenda-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateProfessionalInput struct {
	FullName  string `json:"fullName" binding:"required"`
	Specialty string `json:"specialty"`
}

type UpdateProfessionalInput struct {
	FullName  *string `json:"fullName"`
	Specialty *string `json:"specialty"`
}

// CreateProfessional creates a new professional
func CreateProfessional(c *gin.Context) {
	var input CreateProfessionalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	professional := models.Professional{
		FullName:  input.FullName,
		Specialty: input.Specialty,
	}

	if err := config.DB.Create(&professional).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create professional")
		return
	}

	c.JSON(http.StatusCreated, professional)
}

// GetProfessionals retrieves all professionals
func GetProfessionals(c *gin.Context) {
	var professionals []models.Professional
	if err := config.DB.Order("full_name").Find(&professionals).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve professionals")
		return
	}

	c.JSON(http.StatusOK, professionals)
}

// GetProfessional retrieves a specific professional by ID
func GetProfessional(c *gin.Context) {
	professionalUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid professional ID format")
		return
	}

	var professional models.Professional
	if err := config.DB.First(&professional, "id = ?", professionalUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Professional not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, professional)
}

// UpdateProfessional updates an existing professional
func UpdateProfessional(c *gin.Context) {
	professionalUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid professional ID format")
		return
	}

	var input UpdateProfessionalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var professional models.Professional
	if err := config.DB.First(&professional, "id = ?", professionalUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Professional not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.FullName != nil {
		professional.FullName = *input.FullName
	}
	if input.Specialty != nil {
		professional.Specialty = *input.Specialty
	}

	if err := config.DB.Save(&professional).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update professional")
		return
	}

	c.JSON(http.StatusOK, professional)
}

// DeleteProfessional deletes a professional. Fails while appointments
// reference it.
func DeleteProfessional(c *gin.Context) {
	professionalUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid professional ID format")
		return
	}

	result := config.DB.Delete(&models.Professional{}, "id = ?", professionalUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusConflict, "Cannot delete professional: existing appointments reference it")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Professional not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Professional deleted successfully"})
}
