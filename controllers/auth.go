// controllers/auth.go
package controllers

import (
	"net/http"

	"eventhub-backend/services"
	"eventhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthController handles registration, email confirmation and login.
type AuthController struct {
	Credentials *services.CredentialService
}

// Register creates an unconfirmed account. The account cannot log in
// until the emailed confirmation token is redeemed.
func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, err := ac.Credentials.Register(input.Name, input.Email, input.Password, input.Role, input.Phone)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful, please confirm your email",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// ConfirmEmail redeems the single-use token from the query string.
func (ac *AuthController) ConfirmEmail(c *gin.Context) {
	user, err := ac.Credentials.ConfirmEmail(c.Query("token"))
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Email confirmed",
		"email":   user.Email,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, token, err := ac.Credentials.Login(input.Email, input.Password)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"token": token,
	})
}

// ListUsers is the admin user listing.
func (ac *AuthController) ListUsers(c *gin.Context) {
	users, err := ac.Credentials.ListUsers()
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
