package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/virpal-singh/portfolio-backend/internal/model"
)

// AdminRepository handles admin profile data access.
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

// GetByID retrieves an admin by ID.
func (r *AdminRepository) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	a := &model.Admin{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, name, password_hash, last_login, created_at, updated_at
		 FROM admins WHERE id = $1`, id,
	).Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.LastLogin, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return a, nil
}

// GetByEmail retrieves an admin by their unique email.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	a := &model.Admin{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, name, password_hash, last_login, created_at, updated_at
		 FROM admins WHERE email = $1`, email,
	).Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.LastLogin, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return a, nil
}

// Ensure inserts the admin row if it does not exist yet. The unique
// constraint on email makes this safe under concurrent startup; an existing
// row is left untouched.
func (r *AdminRepository) Ensure(ctx context.Context, email, name, passwordHash string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO admins (email, name, password_hash)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO NOTHING`,
		email, name, passwordHash)
	return err
}

// TouchLastLogin stamps last_login with the current time.
func (r *AdminRepository) TouchLastLogin(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE admins SET last_login = NOW(), updated_at = NOW() WHERE id = $1`, id)
	return err
}
