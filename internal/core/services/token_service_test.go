package services_test

import (
	"testing"
	"time"

	"github.com/dailyforge/journal_backend/internal/apperrors"
	"github.com/dailyforge/journal_backend/internal/core/services"
	"github.com/dailyforge/journal_backend/pkg/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenConfig(secret string, expiry time.Duration) *config.Config {
	return &config.Config{
		JWTSecret:         secret,
		JWTIssuer:         "journal-backend",
		JWTExpiryDuration: expiry,
	}
}

func TestTokenService_IssueAndVerifyRoundtrip(t *testing.T) {
	svc := services.NewTokenService(tokenConfig("test-secret", time.Hour))

	tokenString, err := svc.IssueToken("test_user")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	subject, err := svc.VerifyToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "test_user", subject)
}

func TestTokenService_IssuedClaims(t *testing.T) {
	svc := services.NewTokenService(tokenConfig("test-secret", time.Hour))

	tokenString, err := svc.IssueToken("test_user")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	assert.Equal(t, "journal-backend", claims.Issuer)
	assert.Equal(t, "test_user", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	svc := services.NewTokenService(tokenConfig("test-secret", -time.Minute))

	tokenString, err := svc.IssueToken("test_user")
	require.NoError(t, err)

	_, err = svc.VerifyToken(tokenString)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestTokenService_RejectsWrongKey(t *testing.T) {
	issuer := services.NewTokenService(tokenConfig("signing-secret", time.Hour))
	verifier := services.NewTokenService(tokenConfig("a-different-secret", time.Hour))

	tokenString, err := issuer.IssueToken("test_user")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(tokenString)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc := services.NewTokenService(tokenConfig("test-secret", time.Hour))

	_, err := svc.VerifyToken("not.a.token")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
