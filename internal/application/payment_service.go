package application

import (
	"context"
	"errors"
	"math"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

var ErrPaymentsDisabled = errors.New("payment gateway not configured")

// PaymentService creates Stripe payment intents. Amounts arrive as a price
// in dollars and are converted to cents; currency is fixed to usd.
type PaymentService struct {
	stripe *client.API
}

func NewPaymentService(secretKey string) *PaymentService {
	if secretKey == "" {
		return &PaymentService{}
	}
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &PaymentService{stripe: sc}
}

// IntentAmount converts a dollar price to minor units.
func IntentAmount(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateIntent creates a card payment intent and returns its client secret.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if s.stripe == nil {
		return "", ErrPaymentsDisabled
	}
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(IntentAmount(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	pi, err := s.stripe.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
