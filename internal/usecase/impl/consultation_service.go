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

// consultationService implements the ConsultationUsecase interface.
type consultationService struct {
	consultationRepo repository.ConsultationRepository
	serviceRepo      repository.ServiceRepository
	logger           *slog.Logger
}

// NewConsultationService is the constructor for consultationService.
func NewConsultationService(
	consultationRepo repository.ConsultationRepository,
	serviceRepo repository.ServiceRepository,
	logger *slog.Logger,
) usecase.ConsultationUsecase {
	return &consultationService{
		consultationRepo: consultationRepo,
		serviceRepo:      serviceRepo,
		logger:           logger,
	}
}

// Request books a consultation against an existing, active offering.
func (srv *consultationService) Request(ctx context.Context, userID uint, input *usecase.RequestConsultationInput) (*entity.ConsultationRequest, error) {
	offering, err := srv.serviceRepo.FindByID(ctx, input.ServiceID)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, domainerrors.ErrContentNotFound.WrapMessage("booked service does not exist")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load booked service")
	}
	if !offering.Active {
		return nil, domainerrors.NewValidationError("service offering is not bookable")
	}

	request := &entity.ConsultationRequest{
		UserID:        userID,
		ServiceID:     input.ServiceID,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		PreferredDate: input.PreferredDate,
		Message:       input.Message,
		Status:        entity.ConsultationStatusPending,
	}
	if err := srv.consultationRepo.Create(ctx, request); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create consultation request")
	}

	srv.logger.Info("consultation requested",
		"requestID", request.ID,
		"userID", userID,
		"serviceID", input.ServiceID,
	)

	return request, nil
}

// ListMine returns the caller's bookings.
func (srv *consultationService) ListMine(ctx context.Context, userID uint) ([]*entity.ConsultationRequest, error) {
	requests, err := srv.consultationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list consultation requests")
	}

	return requests, nil
}

// ListAll returns every booking system-wide.
func (srv *consultationService) ListAll(ctx context.Context) ([]*entity.ConsultationRequest, error) {
	requests, err := srv.consultationRepo.ListAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list all consultation requests")
	}

	return requests, nil
}

// UpdateStatus moves a booking through its lifecycle.
func (srv *consultationService) UpdateStatus(ctx context.Context, id uint, input *usecase.UpdateConsultationStatusInput) error {
	status := entity.ConsultationStatus(input.Status)
	if !status.IsValid() {
		return domainerrors.NewValidationError("status must be one of: pending, confirmed, completed, cancelled")
	}

	if err := srv.consultationRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrConsultationNotFound) {
			return domainerrors.ErrContentNotFound.WrapMessage("consultation status update failed")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update consultation status")
	}

	srv.logger.Info("consultation status updated", "requestID", id, "status", input.Status)

	return nil
}
