package auth

import (
	"testing"
	"time"

	"pos/config"
	"pos/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: ttl}}
	cfg.SecretKey.Access = testSecret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(&entity.Cashier{Username: "kasir", Label: "Kasir 1"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "kasir", claims.Username)
	assert.Equal(t, "Kasir 1", claims.Label)
	assert.Equal(t, "kasir", claims.Subject)
	assert.Equal(t, time.Hour, svc.AccessTokenDuration())
}

func TestJWTService_DefaultTTL(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, defaultAccessTTL, svc.AccessTokenDuration())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	other, err := NewJWTService(func() *config.Config {
		cfg := newTestConfig(time.Hour)
		cfg.SecretKey.Access = "another_secret_key_for_the_other_register"

		return cfg
	}())
	require.NoError(t, err)
	foreign, err := other.GenerateAccessToken(&entity.Cashier{Username: "kasir"})
	require.NoError(t, err)

	expiredSvc := &jwtService{
		accessSecret: testSecret,
		accessTTL:    time.Minute,
		now:          func() time.Time { return time.Now().Add(-time.Hour) },
	}
	expired, err := expiredSvc.GenerateAccessToken(&entity.Cashier{Username: "kasir"})
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"username": "kasir", "iss": tokenIssuer}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "not a jwt", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: foreign},
		{name: "expired", token: expired},
		{name: "unsigned", token: noneToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_GenerateRequiresUsername(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	_, err = svc.GenerateAccessToken(&entity.Cashier{})
	assert.Error(t, err)

	_, err = svc.GenerateAccessToken(nil)
	assert.Error(t, err)
}
