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

// eventService implements the EventUsecase interface.
type eventService struct {
	eventRepo repository.EventRepository
	logger    *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(
	eventRepo repository.EventRepository,
	logger *slog.Logger,
) usecase.EventUsecase {
	return &eventService{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// List returns events ordered by start time; cancelled ones only for admins.
func (srv *eventService) List(ctx context.Context, isAdmin bool) ([]*entity.Event, error) {
	events, err := srv.eventRepo.List(ctx, isAdmin)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list events")
	}

	return events, nil
}

// Get returns one event.
func (srv *eventService) Get(ctx context.Context, id uint) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, domainerrors.ErrContentNotFound.WrapMessage("event lookup failed")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load event")
	}

	return event, nil
}

// Create persists a new event. Status defaults to upcoming.
func (srv *eventService) Create(ctx context.Context, input *usecase.CreateEventInput) (*entity.Event, error) {
	status := entity.EventStatusUpcoming
	if input.Status != "" {
		status = entity.EventStatus(input.Status)
		if !status.IsValid() {
			return nil, domainerrors.NewValidationError("status must be one of: upcoming, past, cancelled")
		}
	}

	event := &entity.Event{
		TitlePt:       input.TitlePt,
		TitleEn:       input.TitleEn,
		DescriptionPt: input.DescriptionPt,
		DescriptionEn: input.DescriptionEn,
		Location:      input.Location,
		StartsAt:      input.StartsAt,
		Status:        status,
	}
	if err := srv.eventRepo.Create(ctx, event); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	srv.logger.Info("event created", "eventID", event.ID)

	return event, nil
}

// Update applies a partial event update.
func (srv *eventService) Update(ctx context.Context, id uint, input *usecase.UpdateEventInput) error {
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
	if input.Location != nil {
		fields["location"] = *input.Location
	}
	if input.StartsAt != nil {
		fields["starts_at"] = *input.StartsAt
	}
	if input.Status != nil {
		if !entity.EventStatus(*input.Status).IsValid() {
			return domainerrors.NewValidationError("status must be one of: upcoming, past, cancelled")
		}
		fields["status"] = *input.Status
	}
	if len(fields) == 0 {
		return domainerrors.NewValidationError("no event fields provided")
	}

	if err := srv.eventRepo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return domainerrors.ErrContentNotFound.WrapMessage("event update failed")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update event")
	}

	return nil
}

// Delete hard-deletes an event.
func (srv *eventService) Delete(ctx context.Context, id uint) error {
	if err := srv.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return domainerrors.ErrContentNotFound.WrapMessage("event delete failed")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete event")
	}

	srv.logger.Info("event deleted", "eventID", id)

	return nil
}
