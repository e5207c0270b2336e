package services

// TokenSvcFacade issues and verifies signed, time-bounded identity tokens.
// Verification is stateless; tokens are never persisted server-side.
type TokenSvcFacade interface {
	// IssueToken signs a token asserting the given subject.
	IssueToken(subject string) (string, error)

	// VerifyToken checks signature, shape and expiry, returning the subject.
	// Failures wrap apperrors.ErrUnauthorized.
	VerifyToken(tokenString string) (string, error)
}
