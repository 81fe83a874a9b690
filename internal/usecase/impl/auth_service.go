package impl

import (
	"context"
	"log/slog"

	deliverycontext "tasker/internal/delivery/context"
	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/repository"
	"tasker/internal/domain/service"
	"tasker/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const tokenTypeBearer = "bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credential pair and issues an access token. An unknown
// email and a wrong password produce the same error so callers cannot probe
// which accounts exist.
func (srv *authService) Login(ctx context.Context, email, password string) (*usecase.TokenOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email")

			return nil, domainerrors.ErrIncorrectCredentials.WrapMessage("login")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrIncorrectCredentials.WrapMessage("login")
	}

	token, err := srv.tokenService.Issue(user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Info("User logged in", slog.Int64("userID", user.ID))

	return &usecase.TokenOutput{AccessToken: token, TokenType: tokenTypeBearer}, nil
}

// Refresh issues a fresh token for the already-authenticated user. The auth
// middleware has validated the current token before this runs, so an
// expired credential can never be exchanged for a fresh one here.
func (srv *authService) Refresh(ctx context.Context, user *entity.User) (*usecase.TokenOutput, error) {
	token, err := srv.tokenService.Issue(user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh access token")
	}

	return &usecase.TokenOutput{AccessToken: token, TokenType: tokenTypeBearer}, nil
}
