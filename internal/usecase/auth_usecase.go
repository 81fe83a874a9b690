package usecase

import (
	"context"

	"tasker/internal/domain/entity"
)

// TokenOutput is the issued bearer token pair returned by login and refresh.
type TokenOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthUsecase covers credential login and token refresh.
type AuthUsecase interface {
	// Login verifies the email/password pair and issues an access token.
	// Unknown email and wrong password are indistinguishable to the
	// caller.
	Login(ctx context.Context, email, password string) (*TokenOutput, error)

	// Refresh issues a fresh token for an already-authenticated user.
	// The route sits behind the auth middleware, so an expired token
	// never reaches this call.
	Refresh(ctx context.Context, user *entity.User) (*TokenOutput, error)
}
