package auth

import (
	"testing"
	"time"

	"launchpad/config"
	"launchpad/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	return cfg
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	t.Parallel()
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	t.Parallel()
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	assert.Equal(t, time.Minute, svc.GetAccessTokenDuration())

	accessToken, refreshToken, err := svc.GenerateTokens(42)
	require.NoError(t, err)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), accessClaims.UserID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.Equal(t, "42", accessClaims.Subject)

	refreshClaims, err := svc.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	t.Parallel()
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)

	other := newTestConfig()
	other.SecretKey.Access = "a_completely_different_access_secret"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)
	foreign, _, err := otherSvc.GenerateTokens(1)
	require.NoError(t, err)

	_, err = svc.ValidateToken(foreign)
	assert.Error(t, err, "token signed with another secret")
}

func TestJWTService_RejectsUnknownType(t *testing.T) {
	t.Parallel()
	cfg := newTestConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	claims := service.Claims{
		UserID: 1,
		Type:   "session",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	t.Parallel()
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	accessToken, _, err := impl.GenerateTokens(7)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(accessToken)
	assert.Error(t, err)
}
