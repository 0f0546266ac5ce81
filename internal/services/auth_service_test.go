package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthService(t *testing.T) *AuthService {
	t.Helper()
	svc, err := NewAuthService("admin@reeyo.com", "password123", "test-secret", time.Hour, bcrypt.MinCost)
	require.NoError(t, err)
	return svc
}

func TestAuthService_Login(t *testing.T) {
	svc := setupAuthService(t)

	token, claims, err := svc.Login(" Admin@Reeyo.com ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "admin@reeyo.com", claims.Subject)
	assert.True(t, svc.IsAuthenticated(token))
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	svc := setupAuthService(t)

	_, _, err := svc.Login("admin@reeyo.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("someone@reeyo.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LogoutRevokesOnlyThatSession(t *testing.T) {
	svc := setupAuthService(t)
	first, claims, err := svc.Login("admin@reeyo.com", "password123")
	require.NoError(t, err)
	second, _, err := svc.Login("admin@reeyo.com", "password123")
	require.NoError(t, err)

	svc.Logout(claims)

	_, err = svc.Authenticate(first)
	assert.ErrorIs(t, err, ErrTokenRevoked)
	assert.True(t, svc.IsAuthenticated(second))
}

func TestAuthService_RejectsGarbageToken(t *testing.T) {
	assert.False(t, setupAuthService(t).IsAuthenticated("garbage"))
}
