// Package impl contains the implementation of the application's business logic.
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

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. Uniqueness of username and email is
// enforced by the store constraint during the insert, never by a pre-check.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Registering user", slog.String("username", input.Username))

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("registration")
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashed,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("User registered", slog.Int64("userID", user.ID))

	return user, nil
}

// List returns accounts in ID order with offset pagination.
func (srv *userService) List(ctx context.Context, skip, limit int) ([]*entity.User, error) {
	skip, limit = normalizePage(skip, limit)

	users, err := srv.userRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// Get returns a single account by ID.
func (srv *userService) Get(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("get user")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

// Update replaces the mutable fields of an account. Only the account owner
// may update it; the ownership check runs before any lookup so a foreign ID
// always reads as forbidden.
func (srv *userService) Update(ctx context.Context, id int64, requester *entity.User, input *usecase.UpdateUserInput) (*entity.User, error) {
	if requester.ID != id {
		srv.log(ctx).Warn("Rejected cross-user update", slog.Int64("requesterID", requester.ID), slog.Int64("targetID", id))

		return nil, domainerrors.ErrNotEnoughPermissions.WrapMessage("update user")
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("update user")
		}

		return nil, errors.Wrap(err, "failed to load user for update")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during update", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("update user")
	}

	user.Username = input.Username
	user.Email = input.Email
	user.PasswordHash = hashed

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// Delete removes an account and its todos atomically. Only the account
// owner may delete it.
func (srv *userService) Delete(ctx context.Context, id int64, requester *entity.User) error {
	if requester.ID != id {
		srv.log(ctx).Warn("Rejected cross-user delete", slog.Int64("requesterID", requester.ID), slog.Int64("targetID", id))

		return domainerrors.ErrNotEnoughPermissions.WrapMessage("delete user")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// The todos go first so the FK never dangles mid-transaction.
		if err := repoFactory.TodoRepo().DeleteAllByOwner(ctx, id); err != nil {
			return errors.Wrap(err, "failed to cascade todos")
		}

		if err := repoFactory.UserRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("delete user")
			}

			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("User deleted", slog.Int64("userID", id))

	return nil
}

// normalizePage clamps pagination parameters to their documented defaults.
func normalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = usecase.DefaultSkip
	}
	if limit <= 0 {
		limit = usecase.DefaultLimit
	}

	return skip, limit
}
