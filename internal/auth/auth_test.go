package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-12345"

func TestHashPassword(t *testing.T) {
	t.Run("Successfully hash password", func(t *testing.T) {
		password := "mySecurePassword123"
		hashed, err := HashPassword(password)

		assert.NoError(t, err)
		assert.NotEmpty(t, hashed)
		assert.NotEqual(t, password, hashed)
	})

	t.Run("Different hashes for same password", func(t *testing.T) {
		hash1, _ := HashPassword("samePassword")
		hash2, _ := HashPassword("samePassword")

		assert.NotEqual(t, hash1, hash2)
	})
}

func TestCheckPassword(t *testing.T) {
	hashed, _ := HashPassword("correctPassword")

	assert.True(t, CheckPassword(hashed, "correctPassword"))
	assert.False(t, CheckPassword(hashed, "wrongPassword"))
	assert.False(t, CheckPassword(hashed, ""))
}

func TestGenerateToken(t *testing.T) {
	t.Run("Token contains correct claims", func(t *testing.T) {
		token, err := GenerateToken(42, "owner@gym.com", RoleGymOwner, 7, testSecret, time.Hour)
		require.NoError(t, err)

		claims, err := ValidateToken(token, testSecret)
		require.NoError(t, err)

		assert.Equal(t, 42, claims.UserID)
		assert.Equal(t, "owner@gym.com", claims.Email)
		assert.Equal(t, RoleGymOwner, claims.Role)
		assert.Equal(t, 7, claims.GymID)
		assert.Equal(t, jwtIssuer, claims.Issuer)
		assert.Contains(t, claims.Audience, jwtAudience)
	})

	t.Run("Fail with empty secret", func(t *testing.T) {
		token, err := GenerateToken(1, "a@b.c", RoleSuperAdmin, 0, "", time.Hour)

		assert.Equal(t, ErrEmptyJWTSecret, err)
		assert.Empty(t, token)
	})

	t.Run("Zero ttl falls back to default", func(t *testing.T) {
		token, err := GenerateToken(1, "a@b.c", RoleSuperAdmin, 0, testSecret, 0)
		require.NoError(t, err)

		claims, err := ValidateToken(token, testSecret)
		require.NoError(t, err)

		diff := claims.ExpiresAt.Time.Sub(time.Now().Add(DefaultTokenTTL)).Abs()
		assert.Less(t, diff, 2*time.Second)
	})
}

func TestValidateToken(t *testing.T) {
	token, _ := GenerateToken(100, "test@example.com", RoleSuperAdmin, 0, testSecret, time.Hour)

	t.Run("Fail with empty secret", func(t *testing.T) {
		claims, err := ValidateToken(token, "")

		assert.Equal(t, ErrEmptyJWTSecret, err)
		assert.Nil(t, claims)
	})

	t.Run("Fail with wrong secret", func(t *testing.T) {
		claims, err := ValidateToken(token, "wrong-secret")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Fail with invalid token format", func(t *testing.T) {
		claims, err := ValidateToken("invalid.token.format", testSecret)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Fail with tampered payload", func(t *testing.T) {
		other, _ := GenerateToken(1, "x@example.com", RoleGymOwner, 9, testSecret, time.Hour)
		tampered := token[:len(token)-10] + other[len(other)-10:]

		claims, err := ValidateToken(tampered, testSecret)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Fail with expired token", func(t *testing.T) {
		tokenString := expiredToken(t, testSecret)

		claims, err := ValidateToken(tokenString, testSecret)

		assert.Equal(t, ErrTokenExpired, err)
		assert.Nil(t, claims)
	})
}

func expiredToken(t *testing.T, secret string) string {
	t.Helper()

	past := time.Now().Add(-1 * time.Hour)
	claims := &JWTClaims{
		UserID: 1,
		Email:  "owner@gym.com",
		Role:   RoleGymOwner,
		GymID:  1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtIssuer,
			Audience:  []string{jwtAudience},
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-15 * time.Minute)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}
