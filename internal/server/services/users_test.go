package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/testdash/internal/common"
	"github.com/dmitrijs2005/testdash/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func register(t *testing.T, s *UserService, email string) *AuthResult {
	t.Helper()
	res, err := s.Register(context.Background(), RegisterInput{FullName: "Alice Doe", Email: email, Password: "secret1"})
	require.NoError(t, err)
	return res
}

func TestRegisterLoginAuthenticate_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestUserService(t)

	reg := register(t, s, "alice@x.io")
	assert.NotEmpty(t, reg.Token)
	assert.NotEmpty(t, reg.User.ID)
	assert.NotEqual(t, "secret1", reg.User.PasswordHash)

	login, err := s.Login(ctx, "alice@x.io", "secret1")
	require.NoError(t, err)

	u, err := s.Authenticate(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, u.ID)
	assert.Equal(t, "Alice Doe", u.FullName)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s, rm, _ := newTestUserService(t)

	register(t, s, "alice@x.io")

	_, err := s.Register(ctx, RegisterInput{FullName: "Other", Email: "alice@x.io", Password: "another1"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	n, err := rm.Users().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"missing name", RegisterInput{Email: "a@x.io", Password: "secret1"}},
		{"missing email", RegisterInput{FullName: "A", Password: "secret1"}},
		{"bad email", RegisterInput{FullName: "A", Email: "not-an-email", Password: "secret1"}},
		{"missing password", RegisterInput{FullName: "A", Email: "a@x.io"}},
		{"short password", RegisterInput{FullName: "A", Email: "a@x.io", Password: "12345"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newTestUserService(t)
			_, err := s.Register(context.Background(), tt.in)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestLogin_NonEnumerable(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestUserService(t)
	register(t, s, "alice@x.io")

	_, wrongPassword := s.Login(ctx, "alice@x.io", "wrong-password")
	_, unknownEmail := s.Login(ctx, "nobody@x.io", "secret1")

	assert.ErrorIs(t, wrongPassword, common.ErrorInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, common.ErrorInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLogin_MissingFields(t *testing.T) {
	s, _, _ := newTestUserService(t)

	_, err := s.Login(context.Background(), "", "secret1")
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.Contains(t, err.Error(), "email and password are required")

	_, err = s.Login(context.Background(), "a@x.io", "")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestLogin_RecordsLastLogin(t *testing.T) {
	ctx := context.Background()
	s, rm, clock := newTestUserService(t)
	reg := register(t, s, "alice@x.io")

	clock.Advance(time.Hour)
	_, err := s.Login(ctx, "alice@x.io", "secret1")
	require.NoError(t, err)

	u, err := rm.Users().GetUserByID(ctx, reg.User.ID)
	require.NoError(t, err)
	require.NotNil(t, u.LastLoginAt)
	assert.True(t, u.LastLoginAt.Equal(clock.Now()))
}

func TestAuthenticate_TokenLifetime(t *testing.T) {
	ctx := context.Background()
	s, _, clock := newTestUserService(t)
	reg := register(t, s, "alice@x.io")

	clock.Advance(24*time.Hour - time.Second)
	_, err := s.Authenticate(ctx, reg.Token)
	require.NoError(t, err)

	clock.Advance(time.Second)
	_, err = s.Authenticate(ctx, reg.Token)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestAuthenticate_DeletedUser(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestUserService(t)
	reg := register(t, s, "alice@x.io")

	require.NoError(t, s.DeleteProfile(ctx, reg.User.ID))

	_, err := s.Authenticate(ctx, reg.Token)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	assert.ErrorIs(t, s.DeleteProfile(ctx, reg.User.ID), common.ErrorNotFound)
}

func TestAuthenticate_Garbage(t *testing.T) {
	s, _, _ := newTestUserService(t)
	_, err := s.Authenticate(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestUpdateProfile_EmailOnly(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestUserService(t)
	reg := register(t, s, "alice@x.io")

	updated, err := s.UpdateProfile(ctx, reg.User.ID, models.ProfileUpdate{Email: "new@x.com"})
	require.NoError(t, err)

	assert.Equal(t, "new@x.com", updated.Email)
	assert.Equal(t, reg.User.FullName, updated.FullName)
	assert.Equal(t, reg.User.PasswordHash, updated.PasswordHash)

	_, err = s.Login(ctx, "new@x.com", "secret1")
	assert.NoError(t, err)
	_, err = s.Login(ctx, "alice@x.io", "secret1")
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)
}

func TestUpdateProfile_Password(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestUserService(t)
	reg := register(t, s, "alice@x.io")

	updated, err := s.UpdateProfile(ctx, reg.User.ID, models.ProfileUpdate{Password: "brand-new"})
	require.NoError(t, err)
	assert.NotEqual(t, reg.User.PasswordHash, updated.PasswordHash)

	_, err = s.Login(ctx, "alice@x.io", "brand-new")
	assert.NoError(t, err)
	_, err = s.Login(ctx, "alice@x.io", "secret1")
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)
}

func TestUpdateProfile_Errors(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestUserService(t)
	alice := register(t, s, "alice@x.io")
	register(t, s, "bob@x.io")

	_, err := s.UpdateProfile(ctx, alice.User.ID, models.ProfileUpdate{Password: "123"})
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.UpdateProfile(ctx, alice.User.ID, models.ProfileUpdate{Email: "broken"})
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.UpdateProfile(ctx, alice.User.ID, models.ProfileUpdate{Email: "bob@x.io"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = s.UpdateProfile(ctx, "missing", models.ProfileUpdate{FullName: "X"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestUserService(t)
	reg := register(t, s, "alice@x.io")

	u, err := s.Profile(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.io", u.Email)

	_, err = s.Profile(ctx, "missing")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}
