package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// StripeProvider creates payment intents against the Stripe API. An empty
// key leaves the provider constructed but unusable: every call fails with
// ErrProviderUnconfigured while the rest of the API keeps serving.
type StripeProvider struct {
	key string
}

func NewStripeProvider(key string) *StripeProvider {
	if key != "" {
		stripe.Key = key
	}
	return &StripeProvider{key: key}
}

func (p *StripeProvider) Configured() bool {
	return p.key != ""
}

// CreateIntent requests a payment intent for the amount (smallest currency
// unit) in the fixed currency, tagged with the user id and item count. No
// idempotency key is sent; repeated calls create repeated intents.
func (p *StripeProvider) CreateIntent(ctx context.Context, amount int64, userID string, itemCount int) (string, string, error) {
	if p.key == "" {
		return "", "", ErrProviderUnconfigured
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	params.Context = ctx
	params.AddMetadata("user_id", userID)
	params.AddMetadata("item_count", strconv.Itoa(itemCount))

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", "", fmt.Errorf("creating payment intent: %w", err)
	}
	return intent.ID, intent.ClientSecret, nil
}
