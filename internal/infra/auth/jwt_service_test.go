package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diploma/config"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestGenerateTokens(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	access, refresh, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)
}

func TestValidateToken(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	access, refresh, err := svc.GenerateTokens(userID)
	require.NoError(t, err)

	t.Run("valid access token", func(t *testing.T) {
		token, err := svc.ValidateToken(access, svc.accessSecret)
		require.NoError(t, err)
		assert.True(t, token.Valid)

		claims, ok := token.Claims.(jwt.MapClaims)
		require.True(t, ok)
		assert.Equal(t, userID.String(), claims["sub"])
		assert.Equal(t, "access", claims["type"])
	})

	t.Run("valid refresh token", func(t *testing.T) {
		token, err := svc.ValidateToken(refresh, svc.refreshSecret)
		require.NoError(t, err)
		assert.True(t, token.Valid)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := svc.ValidateToken(access, "wrong-secret")
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token", svc.accessSecret)
		assert.Error(t, err)
	})
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestJWTService(t)
	svc.accessTTL = -time.Minute

	access, _, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(access, svc.accessSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
