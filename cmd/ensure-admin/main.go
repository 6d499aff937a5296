// Command ensure-admin provisions the operator's admin row without starting
// the server. Useful for deploy hooks and for seeding a fresh database.
// Credentials come from the environment; when ADMIN_PASSWORD is unset the
// password is prompted for interactively.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/virpal-singh/portfolio-backend/internal/config"
	"github.com/virpal-singh/portfolio-backend/internal/database"
	"github.com/virpal-singh/portfolio-backend/internal/logger"
	"github.com/virpal-singh/portfolio-backend/internal/repository"
	"github.com/virpal-singh/portfolio-backend/internal/service"
	"golang.org/x/term"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	reader := bufio.NewReader(os.Stdin)

	if cfg.AdminEmail == "" {
		fmt.Print("Enter admin email: ")
		email, _ := reader.ReadString('\n')
		cfg.AdminEmail = strings.TrimSpace(email)
		if cfg.AdminEmail == "" {
			fmt.Println("Error: email is required")
			os.Exit(1)
		}
	}

	if cfg.AdminPassword == "" {
		fmt.Print("Enter admin password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			fmt.Println("Error reading password")
			os.Exit(1)
		}
		cfg.AdminPassword = string(bytePassword)
		if len(cfg.AdminPassword) < 6 {
			fmt.Println("Error: password must be at least 6 characters")
			os.Exit(1)
		}
	}

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	adminRepo := repository.NewAdminRepository(pool)
	authService := service.NewAuthService(cfg)
	adminService := service.NewAdminService(adminRepo, authService, cfg, log)

	if err := adminService.EnsureOperator(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to provision admin account")
	}

	fmt.Printf("Admin account ensured for %s\n", cfg.AdminEmail)
}
