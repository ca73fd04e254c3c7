package controllers

import (
	"errors"

	"dental-store/models"
	"dental-store/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary Admin login
// @Description Authenticate an admin user and issue a JWT
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Email and password are required", Error: err.Error()})
		return
	}

	result, err := ctrl.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(401, models.ErrorResponse{Success: false, Message: "Invalid email or password"})
			return
		}
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Login failed"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Login successful", Data: result})
}
