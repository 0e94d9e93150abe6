package models

// CheckoutRequest is the payload for creating a payment intent. Amount is in
// minor currency units and deliberately unvalidated here: the storefront
// probes with amount 0 on an empty cart, and the payment processor is the
// authority on what amounts it accepts. Count is the cart quantity counter;
// when it is zero the email format check is skipped.
type CheckoutRequest struct {
	Count    int    `json:"count"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency" binding:"required"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
}
