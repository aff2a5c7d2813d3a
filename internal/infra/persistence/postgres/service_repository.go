package postgres

import (
	"context"

	"terraverde/internal/domain/entity"
	"terraverde/internal/domain/repository"
	"terraverde/internal/errors"
	"terraverde/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new instance of serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) FindByID(ctx context.Context, id uint) (*entity.ServiceOffering, error) {
	var offeringModel model.ServiceOfferingModel
	if err := r.db.WithContext(ctx).First(&offeringModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to find service offering by ID")
	}

	return toServiceOfferingEntity(&offeringModel), nil
}

func (r *serviceRepository) List(ctx context.Context, includeInactive bool) ([]*entity.ServiceOffering, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var offeringModels []*model.ServiceOfferingModel
	if err := query.Find(&offeringModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list service offerings")
	}

	return toServiceOfferingEntities(offeringModels), nil
}

func (r *serviceRepository) Create(ctx context.Context, offering *entity.ServiceOffering) error {
	offeringModel := toServiceOfferingModel(offering)
	if err := r.db.WithContext(ctx).Create(offeringModel).Error; err != nil {
		return errors.Wrap(err, "failed to create service offering")
	}

	offering.ID = offeringModel.ID
	offering.CreatedAt = offeringModel.CreatedAt
	offering.UpdatedAt = offeringModel.UpdatedAt

	return nil
}

func (r *serviceRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&model.ServiceOfferingModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update service offering")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.ServiceOfferingModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete service offering")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

func (r *serviceRepository) Search(ctx context.Context, query string) ([]*entity.ServiceOffering, error) {
	pattern := "%" + query + "%"

	var offeringModels []*model.ServiceOfferingModel
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Where(
			"title_pt ILIKE ? OR title_en ILIKE ? OR description_pt ILIKE ? OR description_en ILIKE ?",
			pattern, pattern, pattern, pattern,
		).
		Order("created_at DESC").
		Find(&offeringModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search service offerings")
	}

	return toServiceOfferingEntities(offeringModels), nil
}

func toServiceOfferingEntities(models []*model.ServiceOfferingModel) []*entity.ServiceOffering {
	offerings := make([]*entity.ServiceOffering, 0, len(models))
	for _, offeringModel := range models {
		offerings = append(offerings, toServiceOfferingEntity(offeringModel))
	}

	return offerings
}

func toServiceOfferingEntity(m *model.ServiceOfferingModel) *entity.ServiceOffering {
	return &entity.ServiceOffering{
		ID:            m.ID,
		TitlePt:       m.TitlePt,
		TitleEn:       m.TitleEn,
		DescriptionPt: m.DescriptionPt,
		DescriptionEn: m.DescriptionEn,
		Price:         m.Price,
		Duration:      m.Duration,
		Active:        m.Active,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toServiceOfferingModel(e *entity.ServiceOffering) *model.ServiceOfferingModel {
	return &model.ServiceOfferingModel{
		ID:            e.ID,
		TitlePt:       e.TitlePt,
		TitleEn:       e.TitleEn,
		DescriptionPt: e.DescriptionPt,
		DescriptionEn: e.DescriptionEn,
		Price:         e.Price,
		Duration:      e.Duration,
		Active:        e.Active,
	}
}
