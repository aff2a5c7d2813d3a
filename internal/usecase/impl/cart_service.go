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

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Get returns the caller's cart items.
func (srv *cartService) Get(ctx context.Context, userID uint) ([]*entity.CartItem, error) {
	items, err := srv.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load cart")
	}

	return items, nil
}

// AddItem adds a product to the cart; an existing row has the quantity
// summed instead of duplicated.
func (srv *cartService) AddItem(ctx context.Context, userID uint, input *usecase.CartItemInput) (*entity.CartItem, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.NewValidationError("quantity must be positive")
	}

	if err := srv.ensureProductOrderable(ctx, input.ProductID); err != nil {
		return nil, err
	}

	existing, err := srv.cartRepo.Find(ctx, userID, input.ProductID)
	if err == nil {
		newQuantity := existing.Quantity + input.Quantity
		if err := srv.cartRepo.UpdateQuantity(ctx, existing.ID, newQuantity); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update cart quantity")
		}
		existing.Quantity = newQuantity

		return existing, nil
	}
	if !errors.Is(err, repository.ErrCartItemNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check cart")
	}

	item := &entity.CartItem{
		UserID:    userID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	}
	if err := srv.cartRepo.Create(ctx, item); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	return item, nil
}

// SetItemQuantity overwrites the quantity of one row; zero removes it.
func (srv *cartService) SetItemQuantity(ctx context.Context, userID uint, input *usecase.CartItemInput) error {
	if input.Quantity < 0 {
		return domainerrors.NewValidationError("quantity must not be negative")
	}
	if input.Quantity == 0 {
		return srv.RemoveItem(ctx, userID, input.ProductID)
	}

	existing, err := srv.cartRepo.Find(ctx, userID, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrContentNotFound.WrapMessage("cart item not found")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to load cart item")
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, existing.ID, input.Quantity); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update cart quantity")
	}

	return nil
}

// RemoveItem removes one product from the cart.
func (srv *cartService) RemoveItem(ctx context.Context, userID, productID uint) error {
	if err := srv.cartRepo.Delete(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrContentNotFound.WrapMessage("cart item not found")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to remove cart item")
	}

	return nil
}

// Clear empties the cart.
func (srv *cartService) Clear(ctx context.Context, userID uint) error {
	if err := srv.cartRepo.Clear(ctx, userID); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	srv.logger.Debug("cart cleared", "userID", userID)

	return nil
}

func (srv *cartService) ensureProductOrderable(ctx context.Context, productID uint) error {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("cart product does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to load cart product")
	}
	if !product.Active {
		return domainerrors.NewValidationError("product is not available")
	}

	return nil
}
