package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/virpal-singh/portfolio-backend/internal/middleware"
	"github.com/virpal-singh/portfolio-backend/internal/model"
	"github.com/virpal-singh/portfolio-backend/internal/response"
	"github.com/virpal-singh/portfolio-backend/internal/service"
	"github.com/virpal-singh/portfolio-backend/internal/validator"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	adminService *service.AdminService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(adminService *service.AdminService) *AuthHandler {
	return &AuthHandler{adminService: adminService}
}

// Login godoc
// POST /api/auth/login
// Validates the operator credentials and returns a 7-day token plus profile.
// Any mismatch yields the same generic 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, token, err := h.adminService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"admin": admin,
	})
}

// GetProfile godoc
// GET /api/auth/profile
// Returns the admin profile resolved by the auth middleware.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	admin := middleware.GetAdmin(c)
	if admin == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"admin": admin})
}

// Logout godoc
// POST /api/auth/logout
// Stateless acknowledgment: the server holds no token state, so the client
// is solely responsible for discarding its token.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, "Logout successful", nil)
}
