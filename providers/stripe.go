package providers

import (
	"strings"

	"store-api/models"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"
)

// StripeProvider implements PaymentProvider against the Stripe API.
type StripeProvider struct{}

// NewStripeProvider sets the Stripe API key and returns a provider.
func NewStripeProvider(secretKey string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{}
}

func (p *StripeProvider) CreatePaymentIntent(req models.CheckoutRequest) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(strings.ToLower(req.Currency)),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card", "paypal", "bacs_debit",
		}),
		ReceiptEmail: stripe.String(req.Email),
		Shipping: &stripe.ShippingDetailsParams{
			Name: stripe.String(req.Name),
			Address: &stripe.AddressParams{
				Line1:      stripe.String(req.Address),
				City:       stripe.String(req.City),
				State:      stripe.String(req.State),
				PostalCode: stripe.String(req.Zip),
				Country:    stripe.String(req.Country),
			},
		},
	}
	params.AddMetadata("customer_name", req.Name)
	params.AddMetadata("customer_email", req.Email)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
