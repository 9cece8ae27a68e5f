package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/waitlist-simple/apperrors"
	"github.com/waitlist-simple/dto"
	"github.com/waitlist-simple/middleware"
	"github.com/waitlist-simple/services"
	"github.com/waitlist-simple/utils"
)

var authService = services.NewAuthService()

// Register handles user registration
func Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, utils.BindingError(err))
		return
	}

	user, err := authService.Register(c.Request.Context(), req)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendResponse(c, http.StatusCreated, user, "User registered successfully")
}

// Login handles user authentication
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, utils.BindingError(err))
		return
	}

	authResponse, err := authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendResponse(c, http.StatusOK, authResponse, "Login successful")
}

// GetCurrentUser returns the authenticated user's profile.
func GetCurrentUser(c *gin.Context) {
	claims, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.SendError(c, apperrors.NewForbidden(
			"Forbidden: You do not have permission to access this resource."))
		return
	}

	user, err := authService.GetUser(c.Request.Context(), claims.ID)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendResponse(c, http.StatusOK, user, "User profile retrieved successfully")
}
