package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"store-api/models"
	"store-api/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// ---- mock payment provider ----

type mockPaymentProvider struct {
	calls        int
	clientSecret string
	err          error
}

func (m *mockPaymentProvider) CreatePaymentIntent(req models.CheckoutRequest) (string, error) {
	m.calls++
	return m.clientSecret, m.err
}

func checkoutReq() *models.CheckoutRequest {
	return &models.CheckoutRequest{
		Count:    2,
		Amount:   3998,
		Currency: "gbp",
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Address:  "456 Elm St",
		City:     "London",
		State:    "",
		Zip:      "SW1A 1AA",
		Country:  "GB",
	}
}

func TestCheckout_Success(t *testing.T) {
	provider := &mockPaymentProvider{clientSecret: "pi_123_secret_456"}
	svc := services.NewCheckoutService(provider, zap.NewNop())

	secret, svcErr := svc.CreatePaymentIntent(context.Background(), checkoutReq())
	assert.Nil(t, svcErr)
	assert.Equal(t, "pi_123_secret_456", secret)
	assert.Equal(t, 1, provider.calls)
}

func TestCheckout_InvalidEmailRejectedBeforeProviderCall(t *testing.T) {
	provider := &mockPaymentProvider{clientSecret: "pi_123_secret_456"}
	svc := services.NewCheckoutService(provider, zap.NewNop())

	req := checkoutReq()
	req.Email = "not-an-email"

	secret, svcErr := svc.CreatePaymentIntent(context.Background(), req)
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Equal(t, "Invalid email address", svcErr.Message)
	assert.Empty(t, secret)
	assert.Equal(t, 0, provider.calls)
}

func TestCheckout_ZeroCountBypassesEmailCheck(t *testing.T) {
	provider := &mockPaymentProvider{clientSecret: "pi_empty_secret"}
	svc := services.NewCheckoutService(provider, zap.NewNop())

	req := checkoutReq()
	req.Count = 0
	req.Email = "not-an-email"

	secret, svcErr := svc.CreatePaymentIntent(context.Background(), req)
	assert.Nil(t, svcErr)
	assert.Equal(t, "pi_empty_secret", secret)
	assert.Equal(t, 1, provider.calls)
}

func TestCheckout_ProviderErrorPropagated(t *testing.T) {
	provider := &mockPaymentProvider{err: errors.New("Your card was declined.")}
	svc := services.NewCheckoutService(provider, zap.NewNop())

	secret, svcErr := svc.CreatePaymentIntent(context.Background(), checkoutReq())
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
	assert.Equal(t, "Your card was declined.", svcErr.Message)
	assert.Empty(t, secret)
}
