package service

// TokenService defines the interface for issuing and validating the signed
// bearer tokens that drive authentication. Tokens are never stored; validity
// is purely a function of signature and expiry at verification time.
type TokenService interface {
	// Issue creates a signed token for the subject (the user's email) that
	// expires after the configured window.
	Issue(subject string) (string, error)

	// Validate verifies signature and expiry and returns the subject.
	// Malformed, forged, expired, and subject-less tokens all fail with
	// the same credential error.
	Validate(token string) (string, error)

	// Refresh validates the incoming token and, only if it is still
	// valid, issues a fresh token with a new expiry for the same subject.
	// Refresh is not a grace period; an expired token cannot be renewed.
	Refresh(token string) (string, error)
}
