package services

import (
	"context"

	"store-api/models"
	"store-api/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService exposes order placement and order lines.
type OrderService interface {
	ListOrders(ctx context.Context) ([]models.Order, *ServiceError)
	// PlaceOrder creates an order. When the caller supplies no confirmation
	// token a fresh UUID is generated.
	PlaceOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError)
	AddDetail(ctx context.Context, req *models.AddOrderDetailRequest) (repository.UpsertOutcome, *ServiceError)
}

type orderServiceImpl struct {
	repo   repository.OrderRepository
	logger *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo repository.OrderRepository, logger *zap.Logger) OrderService {
	return &orderServiceImpl{repo: repo, logger: logger}
}

func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]models.Order, *ServiceError) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, internal("Failed to fetch orders")
	}
	return orders, nil
}

func (s *orderServiceImpl) PlaceOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError) {
	confirmation := req.Confirmation
	if confirmation == "" {
		confirmation = uuid.NewString()
	}

	order := &models.Order{
		CustomerID:   req.CustomerID,
		Confirmation: confirmation,
		TotalAmount:  req.TotalAmount,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order", zap.Uint("customer_id", req.CustomerID), zap.Error(err))
		return nil, internal("Failed to place order")
	}

	s.logger.Info("Order placed",
		zap.Uint("order_id", order.ID),
		zap.String("confirmation", order.Confirmation),
	)
	return order, nil
}

func (s *orderServiceImpl) AddDetail(ctx context.Context, req *models.AddOrderDetailRequest) (repository.UpsertOutcome, *ServiceError) {
	detail := &models.OrderDetail{
		OrderID:   req.OrderID,
		ProductID: req.NewProduct.ProductID,
	}

	outcome, err := s.repo.InsertDetailIgnore(ctx, detail)
	if err != nil {
		s.logger.Error("Failed to add order detail",
			zap.Uint("order_id", req.OrderID),
			zap.Uint("product_id", req.NewProduct.ProductID),
			zap.Error(err),
		)
		return outcome, internal("Failed to add product/(s) to order!")
	}
	return outcome, nil
}
