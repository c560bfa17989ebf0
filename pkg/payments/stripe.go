package payments

import (
	"errors"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"github.com/stripe/stripe-go/v79/refund"
)

var ErrNotConfigured = errors.New("stripe is not configured")

// StripeService wraps the Stripe client for card checkouts. Cash and other
// offline payment methods never touch this service.
type StripeService struct {
	configured bool
	currency   string
}

// NewStripeService creates a new Stripe payment service. An empty API key
// leaves the service unconfigured; card charges then fail fast instead of
// hitting the network.
func NewStripeService(apiKey, currency string) *StripeService {
	if apiKey != "" {
		stripe.Key = apiKey
	}
	if currency == "" {
		currency = "usd"
	}
	return &StripeService{
		configured: apiKey != "",
		currency:   currency,
	}
}

// IsConfigured reports whether an API key was provided
func (s *StripeService) IsConfigured() bool {
	return s.configured
}

// Charge creates and confirms a PaymentIntent for the given amount and
// returns its id as the payment reference.
func (s *StripeService) Charge(amount float64, description string, paymentMethodID string) (string, error) {
	if !s.configured {
		return "", ErrNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(toCents(amount)),
		Currency:    stripe.String(s.currency),
		Description: stripe.String(description),
		Confirm:     stripe.Bool(true),
	}
	if paymentMethodID != "" {
		params.PaymentMethod = stripe.String(paymentMethodID)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe charge failed: %w", err)
	}
	return pi.ID, nil
}

// Refund refunds a previous charge by its PaymentIntent id. A zero amount
// refunds the full charge.
func (s *StripeService) Refund(paymentRef string, amount float64) error {
	if !s.configured {
		return ErrNotConfigured
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentRef),
	}
	if amount > 0 {
		params.Amount = stripe.Int64(toCents(amount))
	}

	if _, err := refund.New(params); err != nil {
		return fmt.Errorf("stripe refund failed: %w", err)
	}
	return nil
}

// toCents converts a decimal money amount into Stripe's integer minor units
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
