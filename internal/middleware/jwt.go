package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/virpal-singh/portfolio-backend/internal/model"
	"github.com/virpal-singh/portfolio-backend/internal/response"
	"github.com/virpal-singh/portfolio-backend/internal/service"
)

// ContextKeyAdmin is the Gin context key for the authenticated admin.
const ContextKeyAdmin = "admin"

// RequireAdminJWT validates the bearer token from the Authorization header
// and loads the referenced admin. A missing, malformed or expired token, or
// a token whose admin no longer exists, all reject with 401.
func RequireAdminJWT(authService *service.AuthService, adminService *service.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractBearerToken(c)
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		adminID, err := authService.ValidateToken(tokenStr)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		admin, err := adminService.GetByID(c.Request.Context(), adminID)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		c.Set(ContextKeyAdmin, admin)
		c.Next()
	}
}

// GetAdmin retrieves the authenticated admin from the Gin context.
func GetAdmin(c *gin.Context) *model.Admin {
	val, exists := c.Get(ContextKeyAdmin)
	if !exists {
		return nil
	}
	admin, ok := val.(*model.Admin)
	if !ok {
		return nil
	}
	return admin
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
