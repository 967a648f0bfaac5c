package gateway

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Gateway is the external payment collaborator. It creates a payment
// intent for an amount and hands back the client-side secret; no local
// state is kept.
type Gateway interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}

// StripeGateway implements Gateway against the Stripe PaymentIntents API.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway builds a client bound to the given secret key.
func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

// CreateIntent creates a card payment intent in USD.
func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	if amountCents <= 0 {
		return "", errors.New("amount must be positive")
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
