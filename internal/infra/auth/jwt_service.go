package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tasker/config"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/service"
	"tasker/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface
// using HS256-signed JWTs. The clock is injected so expiry behaviour is
// deterministic under time travel in tests.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	clock  service.Clock
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, clock service.Clock) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.SecretKey == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Auth.SecretKey),
		ttl:    cfg.Auth.ExpireDuration(),
		clock:  clock,
	}, nil
}

// Issue creates a signed token whose subject is the user's email and whose
// expiry is now + the configured window.
func (s *jwtService) Issue(subject string) (string, error) {
	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate verifies signature and expiry against the injected clock and
// returns the subject. Every failure mode collapses into the single
// credential error so callers cannot tell a forged token from an expired
// one.
func (s *jwtService) Validate(tokenString string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", domainerrors.ErrCouldNotValidateCredentials.WrapMessage("token validation failed")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", domainerrors.ErrCouldNotValidateCredentials.WrapMessage("token subject missing")
	}

	return claims.Subject, nil
}

// Refresh re-validates the incoming token and issues a brand-new token with
// a freshly computed expiry for the same subject. An expired or invalid
// token cannot be refreshed.
func (s *jwtService) Refresh(tokenString string) (string, error) {
	subject, err := s.Validate(tokenString)
	if err != nil {
		return "", err
	}

	return s.Issue(subject)
}
