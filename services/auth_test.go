package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerRequest(email string) dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           email,
		Grade:           4,
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

func TestRegisterIssuesToken(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.authSvc.Register(registerRequest(" Ada@Example.com "))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Equal(t, model.RoleStudent, resp.User.Role)
	require.NotNil(t, resp.User.CurrentLevel)
	assert.Equal(t, 1, *resp.User.CurrentLevel)

	identity, err := env.jwtSvc.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, identity.UserID)
	assert.Equal(t, "ada@example.com", identity.Email)
	assert.Equal(t, model.RoleStudent, identity.Role)
	assert.Equal(t, 4, identity.Grade)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.authSvc.Register(registerRequest("ada@example.com"))
	require.NoError(t, err)

	_, err = env.authSvc.Register(registerRequest("ADA@example.com"))
	appErr := requireAppError(t, err, http.StatusBadRequest, MsgEmailTaken)
	assert.ErrorIs(t, appErr, ErrEmailTaken)
}

func TestLoginFailures(t *testing.T) {
	env := newTestEnv(t)
	reg, err := env.authSvc.Register(registerRequest("ada@example.com"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		kind     error
		message  string
	}{
		{"unknown email", "nobody@example.com", "secret123", ErrUserNotFound, MsgInvalidCredentials},
		{"wrong password", "ada@example.com", "wrong", ErrBadCredential, MsgInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.authSvc.Login(dto.LoginRequest{Email: tt.email, Password: tt.password})
			appErr := requireAppError(t, err, http.StatusUnauthorized, tt.message)
			assert.True(t, errors.Is(appErr, tt.kind))
		})
	}

	require.NoError(t, env.dbSvc.Users().SetActive(reg.User.ID, false))
	_, err = env.authSvc.Login(dto.LoginRequest{Email: "ada@example.com", Password: "secret123"})
	appErr := requireAppError(t, err, http.StatusUnauthorized, MsgAccountDeactivated)
	assert.ErrorIs(t, appErr, ErrInactive)
}

func TestLoginStartsStreak(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.authSvc.Register(registerRequest("ada@example.com"))
	require.NoError(t, err)

	resp, err := env.authSvc.Login(dto.LoginRequest{Email: "Ada@Example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User.StreakDays)
	assert.Equal(t, 1, *resp.User.StreakDays)
}

func TestVerifyToken(t *testing.T) {
	env := newTestEnv(t)
	reg, err := env.authSvc.Register(registerRequest("ada@example.com"))
	require.NoError(t, err)

	identity, err := env.authSvc.VerifyToken(reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, identity.UserID)

	_, err = env.authSvc.VerifyToken("not-a-token")
	requireAppError(t, err, http.StatusUnauthorized, MsgInvalidToken)

	require.NoError(t, env.dbSvc.Users().SetActive(reg.User.ID, false))
	_, err = env.authSvc.VerifyToken(reg.Token)
	requireAppError(t, err, http.StatusUnauthorized, MsgInvalidToken)

	_, err = env.authSvc.CurrentUser(reg.User.ID)
	requireAppError(t, err, http.StatusUnauthorized, MsgInvalidToken)
}
