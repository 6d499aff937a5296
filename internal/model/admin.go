package model

import "time"

// Admin is the operator profile row. Exactly one is expected to exist; it is
// provisioned idempotently at startup from the configured operator
// credentials. Login verifies against those configured values, not against
// PasswordHash — the hash is stored only so the row is a complete profile.
type Admin struct {
	ID           int        `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	LastLogin    *time.Time `json:"lastLogin"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// LoginRequest is the payload for admin authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}
