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

// offeringService implements the OfferingUsecase interface.
type offeringService struct {
	serviceRepo repository.ServiceRepository
	logger      *slog.Logger
}

// NewOfferingService is the constructor for offeringService.
func NewOfferingService(
	serviceRepo repository.ServiceRepository,
	logger *slog.Logger,
) usecase.OfferingUsecase {
	return &offeringService{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List returns offerings; inactive rows only for admins.
func (srv *offeringService) List(ctx context.Context, isAdmin bool) ([]*entity.ServiceOffering, error) {
	offerings, err := srv.serviceRepo.List(ctx, isAdmin)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list service offerings")
	}

	return offerings, nil
}

// Get returns one offering.
func (srv *offeringService) Get(ctx context.Context, id uint) (*entity.ServiceOffering, error) {
	offering, err := srv.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, domainerrors.ErrContentNotFound.WrapMessage("service offering lookup failed")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load service offering")
	}

	return offering, nil
}

// Create persists a new service offering.
func (srv *offeringService) Create(ctx context.Context, input *usecase.CreateOfferingInput) (*entity.ServiceOffering, error) {
	active := true
	if input.Active != nil {
		active = *input.Active
	}

	offering := &entity.ServiceOffering{
		TitlePt:       input.TitlePt,
		TitleEn:       input.TitleEn,
		DescriptionPt: input.DescriptionPt,
		DescriptionEn: input.DescriptionEn,
		Price:         input.Price,
		Duration:      input.Duration,
		Active:        active,
	}
	if err := srv.serviceRepo.Create(ctx, offering); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create service offering")
	}

	srv.logger.Info("service offering created", "offeringID", offering.ID)

	return offering, nil
}

// Update applies a partial offering update.
func (srv *offeringService) Update(ctx context.Context, id uint, input *usecase.UpdateOfferingInput) error {
	fields := map[string]any{}
	if input.TitlePt != nil {
		fields["title_pt"] = *input.TitlePt
	}
	if input.TitleEn != nil {
		fields["title_en"] = *input.TitleEn
	}
	if input.DescriptionPt != nil {
		fields["description_pt"] = *input.DescriptionPt
	}
	if input.DescriptionEn != nil {
		fields["description_en"] = *input.DescriptionEn
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Duration != nil {
		fields["duration"] = *input.Duration
	}
	if input.Active != nil {
		fields["active"] = *input.Active
	}
	if len(fields) == 0 {
		return domainerrors.NewValidationError("no service offering fields provided")
	}

	if err := srv.serviceRepo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return domainerrors.ErrContentNotFound.WrapMessage("service offering update failed")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update service offering")
	}

	return nil
}

// Delete hard-deletes an offering.
func (srv *offeringService) Delete(ctx context.Context, id uint) error {
	if err := srv.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return domainerrors.ErrContentNotFound.WrapMessage("service offering delete failed")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete service offering")
	}

	srv.logger.Info("service offering deleted", "offeringID", id)

	return nil
}
