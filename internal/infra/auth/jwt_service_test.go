package auth

import (
	"testing"
	"time"

	"campusmap/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.IssueToken("alice", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.UserID)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.IssueToken("alice", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := newTestTokenService(t)

	other := newTestTokenService(t)
	other.accessSecret = "a_completely_different_secret_value"

	token, err := other.IssueToken("alice", time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t)

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}
