package router

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/virpal-singh/portfolio-backend/internal/config"
	"github.com/virpal-singh/portfolio-backend/internal/handler"
	"github.com/virpal-singh/portfolio-backend/internal/middleware"
	"github.com/virpal-singh/portfolio-backend/internal/response"
	"github.com/virpal-singh/portfolio-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Message *handler.MessageHandler
	Chat    *handler.ChatHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	adminService *service.AdminService,
	handlers *Handlers,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.SecureHeaders())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "Server is running!", gin.H{
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": cfg.GinMode,
		})
	})

	// In debug mode the contact/chat limiters skip loopback clients so
	// local development is not throttled (the general limiter never skips).
	skipLocal := cfg.GinMode == gin.DebugMode

	apiLimiter := middleware.NewRateLimiter(cfg.APIRateMax, cfg.APIRateWindow, "15 minutes", false)
	contactLimiter := middleware.NewRateLimiter(cfg.ContactRateMax, cfg.ContactRateWindow, "15 minutes", skipLocal)
	chatLimiter := middleware.NewRateLimiter(cfg.ChatRateMax, cfg.ChatRateWindow, "1 minute", skipLocal)

	requireAdmin := middleware.RequireAdminJWT(authService, adminService)

	api := router.Group("/api")
	api.Use(apiLimiter.Middleware())
	{
		// ─── Auth ──────────────────────────────────────────────────────
		auth := api.Group("/auth")
		{
			auth.POST("/login", handlers.Auth.Login)
			auth.GET("/profile", requireAdmin, handlers.Auth.GetProfile)
			auth.POST("/logout", requireAdmin, handlers.Auth.Logout)
		}

		// ─── Contact Messages ──────────────────────────────────────────
		messages := api.Group("/messages")
		{
			messages.POST("", contactLimiter.Middleware(), handlers.Message.Create)
			messages.GET("", requireAdmin, handlers.Message.List)
			messages.GET("/stats", requireAdmin, handlers.Message.Stats)
			messages.GET("/:id", requireAdmin, handlers.Message.Get)
			messages.PATCH("/:id/read", requireAdmin, handlers.Message.ToggleRead)
			messages.DELETE("/:id", requireAdmin, handlers.Message.Delete)
		}

		// ─── Chat ──────────────────────────────────────────────────────
		chat := api.Group("/chat")
		{
			chat.GET("/test", handlers.Chat.Test)
			chat.POST("", chatLimiter.Middleware(), handlers.Chat.Send)
			chat.GET("/admin/stats", requireAdmin, handlers.Chat.Stats)
			chat.GET("/:sessionId", handlers.Chat.History)
		}
	}

	// Serve the pre-built SPA bundle when present. The API works without it.
	if info, err := os.Stat(cfg.PublicDir); err == nil && info.IsDir() {
		static := router.Group("/")
		static.Use(middleware.CacheControl(86400))
		static.StaticFile("/", cfg.PublicDir+"/index.html")
		static.Static("/assets", cfg.PublicDir+"/assets")
	}

	// Unknown routes get the standard error body.
	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrRouteNotFound)
	})

	return router
}
