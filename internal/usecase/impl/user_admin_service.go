package impl

import (
	"context"
	"log/slog"

	"terraverde/internal/domain/entity"
	domainerrors "terraverde/internal/domain/errors"
	"terraverde/internal/domain/repository"
	"terraverde/internal/errors"
	"terraverde/internal/usecase"
)

// userAdminService implements the UserAdminUsecase interface.
type userAdminService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserAdminService is the constructor for userAdminService.
func NewUserAdminService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.UserAdminUsecase {
	return &userAdminService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListUsers returns every account for the back office.
func (srv *userAdminService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	return users, nil
}

// UpdateAccess changes a user's role and/or access level.
func (srv *userAdminService) UpdateAccess(ctx context.Context, userID uint, input *usecase.UpdateUserAccessInput) error {
	fields := map[string]any{}
	if input.Role != nil {
		if !entity.Role(*input.Role).IsValid() {
			return domainerrors.NewValidationError("role must be one of: user, admin")
		}
		fields["role"] = *input.Role
	}
	if input.AccessLevel != nil {
		if !entity.AccessLevel(*input.AccessLevel).IsValid() {
			return domainerrors.NewValidationError("access_level must be one of: free, login, premium")
		}
		fields["access_level"] = *input.AccessLevel
	}
	if len(fields) == 0 {
		return domainerrors.NewValidationError("no access fields provided")
	}

	if err := srv.userRepo.Update(ctx, userID, fields); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("access update failed")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user access")
	}

	srv.logger.Info("user access updated", "userID", userID)

	return nil
}
