package services

import (
	"context"
	"regexp"

	"store-api/models"
	"store-api/providers"

	"go.uber.org/zap"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CheckoutService turns a checkout request into a payment intent.
type CheckoutService interface {
	// CreatePaymentIntent validates the payer email and asks the payment
	// provider for a client secret. The email check is skipped when the cart
	// quantity counter is zero, matching the storefront's empty-cart probe.
	CreatePaymentIntent(ctx context.Context, req *models.CheckoutRequest) (string, *ServiceError)
}

type checkoutServiceImpl struct {
	provider providers.PaymentProvider
	logger   *zap.Logger
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(provider providers.PaymentProvider, logger *zap.Logger) CheckoutService {
	return &checkoutServiceImpl{provider: provider, logger: logger}
}

func (s *checkoutServiceImpl) CreatePaymentIntent(ctx context.Context, req *models.CheckoutRequest) (string, *ServiceError) {
	if !emailRe.MatchString(req.Email) && req.Count != 0 {
		return "", badRequest("Invalid email address")
	}

	clientSecret, err := s.provider.CreatePaymentIntent(*req)
	if err != nil {
		s.logger.Error("Failed to create payment intent",
			zap.Int64("amount", req.Amount),
			zap.String("currency", req.Currency),
			zap.Error(err),
		)
		// The processor's own message is the response body, per the contract
		// the storefront already depends on.
		return "", internal(err.Error())
	}

	return clientSecret, nil
}
