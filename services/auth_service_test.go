package services

import (
	"testing"

	"restman/pkg/apperr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginRoundTrip(t *testing.T) {
	e := newTestEnv(t)

	user, err := e.auth.Register("Chef@Example.com", "secret123", "Jo", "Chef")
	require.NoError(t, err)
	assert.Equal(t, "chef@example.com", user.Email, "email is normalized")
	assert.Equal(t, "customer", user.Role)
	assert.NotEqual(t, "secret123", user.Password, "password is stored hashed")

	token, got, err := e.auth.Login("chef@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(user.ID), claims["userId"])
	assert.Equal(t, "customer", claims["role"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.auth.Register("chef@example.com", "secret123", "Jo", "Chef")
	require.NoError(t, err)

	_, err = e.auth.Register("chef@example.com", "other456", "Al", "Cook")
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	e := newTestEnv(t)

	_, _, err := e.auth.Login("nobody@example.com", "whatever")
	assert.Error(t, err)

	_, err = e.auth.Register("chef@example.com", "secret123", "Jo", "Chef")
	require.NoError(t, err)
	_, _, err = e.auth.Login("chef@example.com", "wrongpass")
	assert.Error(t, err)
}
