package postgres

import (
	"context"

	"terraverde/internal/domain/entity"
	"terraverde/internal/domain/repository"
	"terraverde/internal/errors"
	"terraverde/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type consultationRepository struct {
	db *gorm.DB
}

// NewConsultationRepository creates a new instance of consultationRepository.
func NewConsultationRepository(db *gorm.DB) repository.ConsultationRepository {
	return &consultationRepository{db: db}
}

func (r *consultationRepository) Create(ctx context.Context, request *entity.ConsultationRequest) error {
	requestModel := toConsultationModel(request)
	if err := r.db.WithContext(ctx).Create(requestModel).Error; err != nil {
		return errors.Wrap(err, "failed to create consultation request")
	}

	request.ID = requestModel.ID
	request.CreatedAt = requestModel.CreatedAt
	request.UpdatedAt = requestModel.UpdatedAt

	return nil
}

func (r *consultationRepository) FindByID(ctx context.Context, id uint) (*entity.ConsultationRequest, error) {
	var requestModel model.ConsultationRequestModel
	if err := r.db.WithContext(ctx).First(&requestModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConsultationNotFound
		}

		return nil, errors.Wrap(err, "failed to find consultation request by ID")
	}

	return toConsultationEntity(&requestModel), nil
}

func (r *consultationRepository) ListByUser(ctx context.Context, userID uint) ([]*entity.ConsultationRequest, error) {
	var requestModels []*model.ConsultationRequestModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requestModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list consultation requests by user")
	}

	return toConsultationEntities(requestModels), nil
}

func (r *consultationRepository) ListAll(ctx context.Context) ([]*entity.ConsultationRequest, error) {
	var requestModels []*model.ConsultationRequestModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&requestModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all consultation requests")
	}

	return toConsultationEntities(requestModels), nil
}

func (r *consultationRepository) UpdateStatus(ctx context.Context, id uint, status entity.ConsultationStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.ConsultationRequestModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update consultation request status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConsultationNotFound
	}

	return nil
}

func toConsultationEntities(models []*model.ConsultationRequestModel) []*entity.ConsultationRequest {
	requests := make([]*entity.ConsultationRequest, 0, len(models))
	for _, requestModel := range models {
		requests = append(requests, toConsultationEntity(requestModel))
	}

	return requests
}

func toConsultationEntity(m *model.ConsultationRequestModel) *entity.ConsultationRequest {
	return &entity.ConsultationRequest{
		ID:            m.ID,
		UserID:        m.UserID,
		ServiceID:     m.ServiceID,
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		PreferredDate: m.PreferredDate,
		Message:       m.Message,
		Status:        entity.ConsultationStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toConsultationModel(e *entity.ConsultationRequest) *model.ConsultationRequestModel {
	return &model.ConsultationRequestModel{
		ID:            e.ID,
		UserID:        e.UserID,
		ServiceID:     e.ServiceID,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		PreferredDate: e.PreferredDate,
		Message:       e.Message,
		Status:        string(e.Status),
	}
}
