package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dailyforge/journal_backend/internal/apperrors"
	portssvc "github.com/dailyforge/journal_backend/internal/core/ports/services"
	"github.com/dailyforge/journal_backend/pkg/config"
)

// tokenService signs and verifies HS256 identity tokens. The signing key,
// issuer and expiry horizon come from startup configuration; verification is
// stateless and nothing is persisted server-side.
type tokenService struct {
	secret         string
	issuer         string
	expiryDuration time.Duration
}

// NewTokenService creates a new TokenService from the process configuration.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{
		secret:         cfg.JWTSecret,
		issuer:         cfg.JWTIssuer,
		expiryDuration: cfg.JWTExpiryDuration,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// IssueToken generates a signed token asserting the given subject.
func (s *tokenService) IssueToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiryDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses a token string, validates signature and standard claims,
// and returns the subject. All failures wrap apperrors.ErrUnauthorized.
func (s *tokenService) VerifyToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("%w: invalid token claims", apperrors.ErrUnauthorized)
	}
	return claims.Subject, nil
}
