package auth

import (
	"testing"
	"time"

	"student-manager/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("secret", 1)
	op := models.Operator{Email: "admin@example.com", Role: models.RoleOperator}

	token, err := svc.GenerateToken(op)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, op.Email, claims.Email)
	assert.Equal(t, models.RoleOperator, claims.Role)
}

func TestTokenWrongSecretOrExpired(t *testing.T) {
	svc := NewJWTService("secret", 1)
	token, err := svc.GenerateToken(models.Operator{Email: "a@b.c", Role: models.RoleOperator})
	require.NoError(t, err)

	_, err = NewJWTService("other", 1).ValidateToken(token)
	assert.Error(t, err)

	old := NewJWTService("secret", 1)
	old.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := old.GenerateToken(models.Operator{Email: "a@b.c", Role: models.RoleOperator})
	require.NoError(t, err)
	_, err = svc.ValidateToken(expired)
	assert.Error(t, err)
}

func TestAuthenticator(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	a := NewAuthenticator("admin@example.com", hash)

	op, err := a.Login("admin@example.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleOperator, op.Role)

	_, err = a.Login("admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = a.Login("other@example.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = NewAuthenticator("admin@example.com", "").Login("admin@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
