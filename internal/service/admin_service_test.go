package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/virpal-singh/portfolio-backend/internal/model"
	"github.com/virpal-singh/portfolio-backend/internal/repository"
)

// fakeAdminStore is an in-memory AdminStore holding at most one row.
type fakeAdminStore struct {
	admin      *model.Admin
	ensures    int
	lastLogins int
}

func (f *fakeAdminStore) GetByID(_ context.Context, id int) (*model.Admin, error) {
	if f.admin == nil || f.admin.ID != id {
		return nil, repository.ErrNotFound
	}
	out := *f.admin
	return &out, nil
}

func (f *fakeAdminStore) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	if f.admin == nil || f.admin.Email != email {
		return nil, repository.ErrNotFound
	}
	out := *f.admin
	return &out, nil
}

func (f *fakeAdminStore) Ensure(_ context.Context, email, name, passwordHash string) error {
	f.ensures++
	if f.admin != nil {
		return nil
	}
	f.admin = &model.Admin{
		ID:           1,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	return nil
}

func (f *fakeAdminStore) TouchLastLogin(_ context.Context, id int) error {
	f.lastLogins++
	now := time.Now()
	f.admin.LastLogin = &now
	return nil
}

func newAdminService(store AdminStore) (*AdminService, *AuthService) {
	cfg := testConfig()
	auth := NewAuthService(cfg)
	return NewAdminService(store, auth, cfg, zerolog.Nop()), auth
}

func TestLoginProvisionsMissingAdmin(t *testing.T) {
	store := &fakeAdminStore{}
	svc, auth := newAdminService(store)

	admin, token, err := svc.Login(context.Background(), "admin@example.com", "operator-pass")
	require.NoError(t, err)

	// Exactly one row was created and the token decodes to its id.
	require.NotNil(t, store.admin)
	assert.Equal(t, "Virpal Singh", store.admin.Name)

	adminID, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, adminID)
	assert.Equal(t, strconv.Itoa(store.admin.ID), strconv.Itoa(adminID))

	assert.NotNil(t, admin.LastLogin)
	assert.Equal(t, 1, store.lastLogins)
}

func TestLoginExistingAdminDoesNotRecreate(t *testing.T) {
	store := &fakeAdminStore{}
	svc, _ := newAdminService(store)

	require.NoError(t, svc.EnsureOperator(context.Background()))
	ensuresAfterStartup := store.ensures

	_, _, err := svc.Login(context.Background(), "admin@example.com", "operator-pass")
	require.NoError(t, err)
	assert.Equal(t, ensuresAfterStartup, store.ensures, "login must not re-provision an existing row")
}

func TestLoginWrongPasswordIsGeneric(t *testing.T) {
	store := &fakeAdminStore{}
	svc, _ := newAdminService(store)

	_, _, err := svc.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err2 := svc.Login(context.Background(), "unknown@example.com", "operator-pass")
	assert.ErrorIs(t, err2, ErrInvalidCredentials)

	// Same sentinel either way: nothing reveals whether the email existed.
	assert.Equal(t, err, err2)

	// Failed logins never create the profile row.
	assert.Nil(t, store.admin)
}

func TestEnsureOperatorIsIdempotent(t *testing.T) {
	store := &fakeAdminStore{}
	svc, _ := newAdminService(store)

	require.NoError(t, svc.EnsureOperator(context.Background()))
	first := *store.admin

	require.NoError(t, svc.EnsureOperator(context.Background()))
	assert.Equal(t, first.ID, store.admin.ID)
	assert.Equal(t, first.PasswordHash, store.admin.PasswordHash)
}

func TestEnsureOperatorWithoutCredentialsIsNoop(t *testing.T) {
	store := &fakeAdminStore{}
	cfg := testConfig()
	cfg.AdminEmail = ""
	cfg.AdminPassword = ""
	svc := NewAdminService(store, NewAuthService(cfg), cfg, zerolog.Nop())

	require.NoError(t, svc.EnsureOperator(context.Background()))
	assert.Nil(t, store.admin)
}
