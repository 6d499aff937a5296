package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/virpal-singh/portfolio-backend/internal/config"
	"github.com/virpal-singh/portfolio-backend/internal/model"
	"github.com/virpal-singh/portfolio-backend/internal/repository"
)

// AdminStore is the persistence surface AdminService needs.
type AdminStore interface {
	GetByID(ctx context.Context, id int) (*model.Admin, error)
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	Ensure(ctx context.Context, email, name, passwordHash string) error
	TouchLastLogin(ctx context.Context, id int) error
}

// AdminService handles the operator profile and login flow.
type AdminService struct {
	store AdminStore
	auth  *AuthService
	cfg   *config.Config
	log   zerolog.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(store AdminStore, auth *AuthService, cfg *config.Config, log zerolog.Logger) *AdminService {
	return &AdminService{
		store: store,
		auth:  auth,
		cfg:   cfg,
		log:   log.With().Str("component", "admin_service").Logger(),
	}
}

// EnsureOperator provisions the admin row for the configured operator
// credentials if it does not exist yet. Runs at startup so the first login
// never races over record creation; the unique email constraint guards the
// multi-instance case. A no-op when no credentials are configured.
func (s *AdminService) EnsureOperator(ctx context.Context) error {
	if s.cfg.AdminEmail == "" || s.cfg.AdminPassword == "" {
		s.log.Warn().Msg("ADMIN_EMAIL/ADMIN_PASSWORD not configured; admin login disabled")
		return nil
	}

	hash, err := s.auth.HashPassword(s.cfg.AdminPassword)
	if err != nil {
		return err
	}

	if err := s.store.Ensure(ctx, s.cfg.AdminEmail, s.cfg.AdminName, hash); err != nil {
		return err
	}

	s.log.Info().Str("email", s.cfg.AdminEmail).Msg("admin account ensured")
	return nil
}

// Login checks the supplied credentials against the configured operator
// values, stamps last_login and returns the profile with a fresh token.
// Any mismatch yields ErrInvalidCredentials with no further detail.
func (s *AdminService) Login(ctx context.Context, email, password string) (*model.Admin, string, error) {
	if err := s.auth.VerifyOperatorCredentials(email, password); err != nil {
		return nil, "", err
	}

	admin, err := s.store.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		// Startup provisioning should have created the row; recover by
		// ensuring it now. Idempotent under the unique email constraint.
		if err := s.EnsureOperator(ctx); err != nil {
			return nil, "", err
		}
		admin, err = s.store.GetByEmail(ctx, email)
	}
	if err != nil {
		return nil, "", err
	}

	if err := s.store.TouchLastLogin(ctx, admin.ID); err != nil {
		return nil, "", err
	}
	now := time.Now()
	admin.LastLogin = &now

	token, err := s.auth.GenerateToken(admin.ID)
	if err != nil {
		return nil, "", err
	}

	return admin, token, nil
}

// GetByID resolves an admin profile, for the auth middleware and /profile.
func (s *AdminService) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	return s.store.GetByID(ctx, id)
}
