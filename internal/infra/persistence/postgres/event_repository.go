package postgres

import (
	"context"

	"terraverde/internal/domain/entity"
	"terraverde/internal/domain/repository"
	"terraverde/internal/errors"
	"terraverde/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new instance of eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*entity.Event, error) {
	var eventModel model.EventModel
	if err := r.db.WithContext(ctx).First(&eventModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	return toEventEntity(&eventModel), nil
}

func (r *eventRepository) List(ctx context.Context, includeAll bool) ([]*entity.Event, error) {
	// Upcoming events first, soonest at the top.
	query := r.db.WithContext(ctx).Order("starts_at ASC")
	if !includeAll {
		query = query.Where("status <> ?", entity.EventStatusCancelled)
	}

	var eventModels []*model.EventModel
	if err := query.Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventModel := range eventModels {
		events = append(events, toEventEntity(eventModel))
	}

	return events, nil
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventModel := toEventModel(event)
	if err := r.db.WithContext(ctx).Create(eventModel).Error; err != nil {
		return errors.Wrap(err, "failed to create event")
	}

	event.ID = eventModel.ID
	event.CreatedAt = eventModel.CreatedAt
	event.UpdatedAt = eventModel.UpdatedAt

	return nil
}

func (r *eventRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.EventModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

func toEventEntity(m *model.EventModel) *entity.Event {
	return &entity.Event{
		ID:            m.ID,
		TitlePt:       m.TitlePt,
		TitleEn:       m.TitleEn,
		DescriptionPt: m.DescriptionPt,
		DescriptionEn: m.DescriptionEn,
		Location:      m.Location,
		StartsAt:      m.StartsAt,
		Status:        entity.EventStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toEventModel(e *entity.Event) *model.EventModel {
	return &model.EventModel{
		ID:            e.ID,
		TitlePt:       e.TitlePt,
		TitleEn:       e.TitleEn,
		DescriptionPt: e.DescriptionPt,
		DescriptionEn: e.DescriptionEn,
		Location:      e.Location,
		StartsAt:      e.StartsAt,
		Status:        string(e.Status),
	}
}
