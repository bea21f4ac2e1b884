package payment

import (
	"context"
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeGateway is the card-provider variant of Gateway, backed by Stripe
// PaymentIntents. Finalizing retrieves the intent; Stripe settles it on its
// own once the customer completes the payment element.
type StripeGateway struct {
	client *client.API
}

// NewStripeGateway builds a gateway with a dedicated Stripe client for the
// given secret key.
func NewStripeGateway(secretKey string) *StripeGateway {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &StripeGateway{client: sc}
}

func (g *StripeGateway) CreateCharge(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (*Charge, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amountMinorUnits),
		Currency: stripe.String(currency),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := g.client.PaymentIntents.New(params)
	if err != nil {
		return nil, GatewayError{Provider: "stripe", Cause: err}
	}
	return &Charge{
		ProviderReference: intent.ID,
		ClientToken:       intent.ClientSecret,
	}, nil
}

func (g *StripeGateway) FinalizeCharge(ctx context.Context, providerReference string) (*Finalization, error) {
	params := &stripe.PaymentIntentParams{Params: stripe.Params{Context: ctx}}
	intent, err := g.client.PaymentIntents.Get(providerReference, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return nil, GatewayError{Provider: "stripe", Cause: fmt.Errorf("%w: %s", ErrChargeNotFound, providerReference)}
		}
		return nil, GatewayError{Provider: "stripe", Cause: err}
	}

	status := ChargeNotCompleted
	if intent.Status == stripe.PaymentIntentStatusSucceeded {
		status = ChargeSucceeded
	}
	return &Finalization{
		Status:         status,
		FinalReference: intent.ID,
	}, nil
}
