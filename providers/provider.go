package providers

import "store-api/models"

// PaymentProvider abstracts the payment processor. The store needs exactly
// one operation from it: create a payment intent and hand back the client
// secret the storefront finishes the payment with.
type PaymentProvider interface {
	CreatePaymentIntent(req models.CheckoutRequest) (clientSecret string, err error)
}
