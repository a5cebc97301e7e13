// controllers/auth.go
package controllers

import (
	"net/http"

	"cian-agenda-backend/utils"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Email    string `json:"email"` // reference only, echoed back by /auth/me
	Password string `json:"password" binding:"required"`
}

// Login exchanges the shared application password for a JWT. There are no
// user accounts; one secret gates all access.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.CheckAppPassword(input.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Incorrect or unconfigured password")
		return
	}

	token, err := utils.GenerateToken(input.Email)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"email": input.Email,
	})
}

// Me returns the reference email carried by the token.
func Me(c *gin.Context) {
	email, _ := c.Get("email")
	c.JSON(http.StatusOK, gin.H{"email": email})
}
