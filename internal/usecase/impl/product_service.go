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

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	productRepo repository.ProductRepository,
	reviewRepo repository.ReviewRepository,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		logger:      logger,
	}
}

// List returns catalog products; inactive rows only for admins.
func (srv *productService) List(ctx context.Context, isAdmin bool) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, isAdmin)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	return products, nil
}

// Get returns one product with its review aggregate. The rating is computed
// on read; it is never cached on the product row.
func (srv *productService) Get(ctx context.Context, id uint) (*usecase.ProductDetail, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product lookup failed")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load product")
	}

	rating, err := srv.reviewRepo.RatingForProduct(ctx, id)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load product rating")
	}

	return &usecase.ProductDetail{Product: product, Rating: rating}, nil
}

// Create persists a new catalog product.
func (srv *productService) Create(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	active := true
	if input.Active != nil {
		active = *input.Active
	}

	product := &entity.Product{
		NamePt:              input.NamePt,
		NameEn:              input.NameEn,
		DescriptionPt:       input.DescriptionPt,
		DescriptionEn:       input.DescriptionEn,
		Price:               input.Price,
		Stock:               input.Stock,
		SustainabilityScore: input.SustainabilityScore,
		Category:            input.Category,
		ImageURL:            input.ImageURL,
		Featured:            input.Featured,
		Active:              active,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	srv.logger.Info("product created", "productID", product.ID)

	return product, nil
}

// Update applies a partial catalog update.
func (srv *productService) Update(ctx context.Context, id uint, input *usecase.UpdateProductInput) error {
	fields := map[string]any{}
	if input.NamePt != nil {
		fields["name_pt"] = *input.NamePt
	}
	if input.NameEn != nil {
		fields["name_en"] = *input.NameEn
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
	if input.Stock != nil {
		fields["stock"] = *input.Stock
	}
	if input.SustainabilityScore != nil {
		fields["sustainability_score"] = *input.SustainabilityScore
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.ImageURL != nil {
		fields["image_url"] = *input.ImageURL
	}
	if input.Featured != nil {
		fields["featured"] = *input.Featured
	}
	if input.Active != nil {
		fields["active"] = *input.Active
	}
	if len(fields) == 0 {
		return domainerrors.NewValidationError("no product fields provided")
	}

	if err := srv.productRepo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("product update failed")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return nil
}

// Delete hard-deletes a product. Historical order items keep their snapshot.
func (srv *productService) Delete(ctx context.Context, id uint) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("product delete failed")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	srv.logger.Info("product deleted", "productID", id)

	return nil
}
