package services

import (
	"context"
	"errors"

	"store-api/models"
	"store-api/repository"

	"go.uber.org/zap"
)

// CartService exposes the per-user shopping cart.
type CartService interface {
	ListCart(ctx context.Context) ([]models.CartProductRow, *ServiceError)
	// AddLine inserts a cart line. Amount zero skips the write entirely. A
	// duplicate (product, user) pair leaves the existing row untouched; the
	// returned outcome tells the caller which of the three happened.
	AddLine(ctx context.Context, req *models.AddCartLineRequest) (repository.UpsertOutcome, *ServiceError)
	// UpdateLine rewrites a line's amount and total (or just the total when
	// no amount is supplied) and returns the refreshed joined view.
	UpdateLine(ctx context.Context, productID uint, req *models.UpdateCartLineRequest) ([]models.CartProductRow, *ServiceError)
	// RemoveLine deletes one line and returns the refreshed joined view.
	RemoveLine(ctx context.Context, productID, userID uint) ([]models.CartProductRow, *ServiceError)
	// ClearCart deletes every line a user has and returns the refreshed view.
	ClearCart(ctx context.Context, userID uint) ([]models.CartProductRow, *ServiceError)
}

type cartServiceImpl struct {
	repo   repository.CartRepository
	logger *zap.Logger
}

// NewCartService creates a new CartService.
func NewCartService(repo repository.CartRepository, logger *zap.Logger) CartService {
	return &cartServiceImpl{repo: repo, logger: logger}
}

func (s *cartServiceImpl) ListCart(ctx context.Context) ([]models.CartProductRow, *ServiceError) {
	rows, err := s.repo.FindJoined(ctx)
	if err != nil {
		s.logger.Error("Failed to list cart", zap.Error(err))
		return nil, internal("Failed to fetch cart products")
	}
	return rows, nil
}

func (s *cartServiceImpl) AddLine(ctx context.Context, req *models.AddCartLineRequest) (repository.UpsertOutcome, *ServiceError) {
	if req.NewProduct.Amount == 0 {
		// The storefront fires an add with amount 0 when a cart is emptied
		// client-side; nothing to persist.
		return repository.Skipped, nil
	}

	line := &models.CartLine{
		ProductID:   req.NewProduct.ProductID,
		UserID:      req.UserID,
		Amount:      req.NewProduct.Amount,
		TotalAmount: req.TotalAmount,
	}

	outcome, err := s.repo.InsertIgnore(ctx, line)
	if err != nil {
		s.logger.Error("Failed to add cart line",
			zap.Uint("product_id", req.NewProduct.ProductID),
			zap.Uint("user_id", req.UserID),
			zap.Error(err),
		)
		return outcome, internal("Failed to add product/(s) to cart!")
	}

	if outcome == repository.AlreadyExists {
		s.logger.Info("Cart line already present, insert dropped",
			zap.Uint("product_id", req.NewProduct.ProductID),
			zap.Uint("user_id", req.UserID),
		)
	}
	return outcome, nil
}

func (s *cartServiceImpl) UpdateLine(ctx context.Context, productID uint, req *models.UpdateCartLineRequest) ([]models.CartProductRow, *ServiceError) {
	var err error
	if req.NewProduct != nil {
		err = s.repo.UpdateAmount(ctx, productID, req.UserID, req.NewProduct.Amount, req.TotalAmount)
	} else {
		err = s.repo.UpdateTotal(ctx, productID, req.UserID, req.TotalAmount)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Product not found")
		}
		s.logger.Error("Failed to update cart line", zap.Uint("product_id", productID), zap.Error(err))
		return nil, internal("Internal Server Error")
	}

	return s.ListCart(ctx)
}

func (s *cartServiceImpl) RemoveLine(ctx context.Context, productID, userID uint) ([]models.CartProductRow, *ServiceError) {
	if err := s.repo.Delete(ctx, productID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Product not found")
		}
		s.logger.Error("Failed to delete cart line", zap.Uint("product_id", productID), zap.Error(err))
		return nil, internal("Internal Server Error")
	}

	return s.ListCart(ctx)
}

func (s *cartServiceImpl) ClearCart(ctx context.Context, userID uint) ([]models.CartProductRow, *ServiceError) {
	if err := s.repo.DeleteAllForUser(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Product not found")
		}
		s.logger.Error("Failed to clear cart", zap.Uint("user_id", userID), zap.Error(err))
		return nil, internal("Internal Server Error")
	}

	return s.ListCart(ctx)
}
