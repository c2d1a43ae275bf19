package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/colegio-app/colegio-backend/internal/app/models/dto"
	"github.com/colegio-app/colegio-backend/internal/app/serializers"
	"github.com/colegio-app/colegio-backend/internal/app/services"
	"github.com/colegio-app/colegio-backend/internal/middleware"
)

// AuthController handles sign-in
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login signs a staff member in
// @Summary Sign in
// @Description Verifies the credentials and returns the user with an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "User and token"
// @Failure 404 {object} dto.ErrorResponse "Unknown email or wrong password"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, token, err := c.authService.Login(ctx, req.User.Email, req.User.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":  serializers.User(*user),
		"token": token,
	})
}
