package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/virpal-singh/portfolio-backend/internal/ai"
	"github.com/virpal-singh/portfolio-backend/internal/config"
	"github.com/virpal-singh/portfolio-backend/internal/database"
	"github.com/virpal-singh/portfolio-backend/internal/handler"
	"github.com/virpal-singh/portfolio-backend/internal/logger"
	"github.com/virpal-singh/portfolio-backend/internal/repository"
	"github.com/virpal-singh/portfolio-backend/internal/router"
	"github.com/virpal-singh/portfolio-backend/internal/service"
	"github.com/virpal-singh/portfolio-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Portfolio Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	adminRepo := repository.NewAdminRepository(pool)
	contactRepo := repository.NewContactMessageRepository(pool)
	chatRepo := repository.NewChatMessageRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	adminService := service.NewAdminService(adminRepo, authService, cfg, log)
	contactService := service.NewContactMessageService(contactRepo, rdb, cfg, log)

	generator := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	chatService := service.NewChatService(chatRepo, generator, rdb, cfg, log)

	// ─── Provision Admin Account ──────────────────────────────────────
	// Runs BEFORE accepting traffic so the first login never races over
	// record creation.
	if err := adminService.EnsureOperator(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to provision admin account")
	}

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:    handler.NewAuthHandler(adminService),
		Message: handler.NewMessageHandler(contactService),
		Chat:    handler.NewChatHandler(chatService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, adminService, handlers, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
