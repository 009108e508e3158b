package jwt

import (
	"testing"
	"time"

	"FoodLink-Backend/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	svc := NewJWTService("secret")

	token, err := svc.GenerateTokenUser("user-1", domain.RoleDonor)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, role, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
	assert.Equal(t, domain.RoleDonor, role)
}

func TestGenerateToken_NoSecret(t *testing.T) {
	_, err := NewJWTService("").GenerateTokenUser("user-1", domain.RoleDonor)
	assert.Error(t, err)
}

func TestGetUserIDByToken_Errors(t *testing.T) {
	svc := NewJWTService("secret")

	t.Run("Empty", func(t *testing.T) {
		_, _, err := svc.GetUserIDByToken("")
		assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, _, err := svc.GetUserIDByToken("not-a-token")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := NewJWTService("other").GenerateTokenUser("user-1", domain.RoleNGO)
		require.NoError(t, err)
		_, _, err = svc.GetUserIDByToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("Expired", func(t *testing.T) {
		old := &jwtService{secretKey: "secret", issuer: "FOODLINK", now: func() time.Time {
			return time.Now().Add(-3 * time.Hour)
		}}
		token, err := old.GenerateTokenUser("user-1", domain.RoleNGO)
		require.NoError(t, err)
		_, _, err = svc.GetUserIDByToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})

	t.Run("WrongAlgorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwtUserClaim{UserID: "user-1"})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, _, err = svc.GetUserIDByToken(signed)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}
