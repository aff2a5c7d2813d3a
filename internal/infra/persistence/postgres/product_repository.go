package postgres

import (
	"context"

	"terraverde/internal/domain/entity"
	"terraverde/internal/domain/repository"
	"terraverde/internal/errors"
	"terraverde/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new instance of productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var productModel model.ProductModel
	if err := r.db.WithContext(ctx).First(&productModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductEntity(&productModel), nil
}

func (r *productRepository) List(ctx context.Context, includeInactive bool) ([]*entity.Product, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var productModels []*model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductEntities(productModels), nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productModel := toProductModel(product)
	if err := r.db.WithContext(ctx).Create(productModel).Error; err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productModel.ID
	product.CreatedAt = productModel.CreatedAt
	product.UpdatedAt = productModel.UpdatedAt

	return nil
}

func (r *productRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.ProductModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (r *productRepository) Search(ctx context.Context, query string) ([]*entity.Product, error) {
	pattern := "%" + query + "%"

	var productModels []*model.ProductModel
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Where(
			"name_pt ILIKE ? OR name_en ILIKE ? OR description_pt ILIKE ? OR description_en ILIKE ?",
			pattern, pattern, pattern, pattern,
		).
		Order("created_at DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return toProductEntities(productModels), nil
}

func toProductEntities(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, productModel := range models {
		products = append(products, toProductEntity(productModel))
	}

	return products
}

func toProductEntity(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:                  m.ID,
		NamePt:              m.NamePt,
		NameEn:              m.NameEn,
		DescriptionPt:       m.DescriptionPt,
		DescriptionEn:       m.DescriptionEn,
		Price:               m.Price,
		Stock:               m.Stock,
		SustainabilityScore: m.SustainabilityScore,
		Category:            m.Category,
		ImageURL:            m.ImageURL,
		Featured:            m.Featured,
		Active:              m.Active,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func toProductModel(e *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:                  e.ID,
		NamePt:              e.NamePt,
		NameEn:              e.NameEn,
		DescriptionPt:       e.DescriptionPt,
		DescriptionEn:       e.DescriptionEn,
		Price:               e.Price,
		Stock:               e.Stock,
		SustainabilityScore: e.SustainabilityScore,
		Category:            e.Category,
		ImageURL:            e.ImageURL,
		Featured:            e.Featured,
		Active:              e.Active,
	}
}
