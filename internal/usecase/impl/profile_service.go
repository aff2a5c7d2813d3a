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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile retrieves the caller's account record.
func (srv *profileService) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load profile")
	}

	return user, nil
}

// UpdateProfile applies a partial update to the caller's own profile fields.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uint, input *usecase.UpdateProfileInput) (*entity.User, error) {
	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}
	if input.Address != nil {
		fields["address"] = *input.Address
	}
	if input.Bio != nil {
		fields["bio"] = *input.Bio
	}
	if input.PictureURL != nil {
		fields["picture_url"] = *input.PictureURL
	}
	if input.EmailNotifications != nil {
		fields["email_notifications"] = *input.EmailNotifications
	}
	if input.OrderUpdates != nil {
		fields["order_updates"] = *input.OrderUpdates
	}

	if len(fields) > 0 {
		if err := srv.userRepo.Update(ctx, userID, fields); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, domainerrors.ErrUserNotFound.WrapMessage("profile update failed")
			}

			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
		}

		srv.logger.Info("profile updated", "userID", userID, "fields", len(fields))
	}

	return srv.GetProfile(ctx, userID)
}
