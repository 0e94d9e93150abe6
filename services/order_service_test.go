package services_test

import (
	"context"
	"testing"

	"store-api/models"
	"store-api/repository"
	"store-api/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// ---- mock order repository ----

type mockOrderRepo struct {
	created       []*models.Order
	createErr     error
	orders        []models.Order
	findErr       error
	detailOutcome repository.UpsertOutcome
	detailErr     error
}

func (m *mockOrderRepo) Create(_ context.Context, order *models.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, order)
	return nil
}

func (m *mockOrderRepo) FindAll(_ context.Context) ([]models.Order, error) {
	return m.orders, m.findErr
}

func (m *mockOrderRepo) InsertDetailIgnore(_ context.Context, _ *models.OrderDetail) (repository.UpsertOutcome, error) {
	return m.detailOutcome, m.detailErr
}

func TestPlaceOrder_GeneratesConfirmationToken(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := services.NewOrderService(repo, zap.NewNop())

	order, svcErr := svc.PlaceOrder(context.Background(), &models.CreateOrderRequest{CustomerID: 1})
	assert.Nil(t, svcErr)
	assert.Len(t, order.Confirmation, 36)

	_, err := uuid.Parse(order.Confirmation)
	assert.NoError(t, err)
}

func TestPlaceOrder_ConfirmationUniqueAcrossCalls(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := services.NewOrderService(repo, zap.NewNop())

	first, svcErr := svc.PlaceOrder(context.Background(), &models.CreateOrderRequest{CustomerID: 1})
	assert.Nil(t, svcErr)
	second, svcErr := svc.PlaceOrder(context.Background(), &models.CreateOrderRequest{CustomerID: 1})
	assert.Nil(t, svcErr)

	assert.NotEqual(t, first.Confirmation, second.Confirmation)
}

func TestPlaceOrder_ClientConfirmationPreserved(t *testing.T) {
	repo := &mockOrderRepo{}
	svc := services.NewOrderService(repo, zap.NewNop())

	order, svcErr := svc.PlaceOrder(context.Background(), &models.CreateOrderRequest{
		CustomerID:   1,
		Confirmation: "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
	})
	assert.Nil(t, svcErr)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", order.Confirmation)
}

func TestAddDetail_DuplicateReportedNotMerged(t *testing.T) {
	repo := &mockOrderRepo{detailOutcome: repository.AlreadyExists}
	svc := services.NewOrderService(repo, zap.NewNop())

	outcome, svcErr := svc.AddDetail(context.Background(), &models.AddOrderDetailRequest{
		NewProduct: &models.OrderDetailProduct{ProductID: 3},
		OrderID:    1,
	})
	assert.Nil(t, svcErr)
	assert.Equal(t, repository.AlreadyExists, outcome)
}
