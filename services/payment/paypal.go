package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/plutov/paypal/v4"
)

// PayPalGateway is the wallet-provider variant of Gateway, backed by the
// PayPal Orders API. Creating a charge creates an order with CAPTURE intent;
// finalizing captures it, which actually moves the funds.
type PayPalGateway struct {
	client *paypal.Client
}

// NewPayPalGateway builds a gateway against the sandbox or live API per mode
// and fetches the initial OAuth token.
func NewPayPalGateway(ctx context.Context, clientID, secret, mode string) (*PayPalGateway, error) {
	apiBase := paypal.APIBaseSandBox
	if mode == "live" {
		apiBase = paypal.APIBaseLive
	}

	c, err := paypal.NewClient(clientID, secret, apiBase)
	if err != nil {
		return nil, fmt.Errorf("paypal client: %w", err)
	}
	if _, err := c.GetAccessToken(ctx); err != nil {
		return nil, fmt.Errorf("paypal access token: %w", err)
	}
	return &PayPalGateway{client: c}, nil
}

func (g *PayPalGateway) CreateCharge(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (*Charge, error) {
	units := []paypal.PurchaseUnitRequest{{
		Amount: &paypal.PurchaseUnitAmount{
			Currency: strings.ToUpper(currency),
			Value:    formatMajorUnits(amountMinorUnits),
		},
		Description: metadata["description"],
	}}

	order, err := g.client.CreateOrder(ctx, paypal.OrderIntentCapture, units, nil, nil)
	if err != nil {
		return nil, GatewayError{Provider: "paypal", Cause: err}
	}

	// The order id doubles as the client token: the PayPal button needs it
	// to drive approval.
	return &Charge{
		ProviderReference: order.ID,
		ClientToken:       order.ID,
	}, nil
}

func (g *PayPalGateway) FinalizeCharge(ctx context.Context, providerReference string) (*Finalization, error) {
	capture, err := g.client.CaptureOrder(ctx, providerReference, paypal.CaptureOrderRequest{})
	if err != nil {
		switch {
		case isPayPalIssue(err, "ORDER_ALREADY_CAPTURED"):
			// Idempotent re-capture: report the settled state instead of
			// failing the retry.
			return g.settledFinalization(ctx, providerReference)
		case isPayPalNotFound(err):
			return nil, GatewayError{Provider: "paypal", Cause: fmt.Errorf("%w: %s", ErrChargeNotFound, providerReference)}
		default:
			return nil, GatewayError{Provider: "paypal", Cause: err}
		}
	}

	if capture.Status != "COMPLETED" {
		return &Finalization{Status: ChargeNotCompleted, FinalReference: providerReference}, nil
	}
	return &Finalization{
		Status:         ChargeSucceeded,
		FinalReference: capturedPaymentID(capture, providerReference),
	}, nil
}

// settledFinalization re-reads an already-captured order so the caller still
// gets the capture id.
func (g *PayPalGateway) settledFinalization(ctx context.Context, orderID string) (*Finalization, error) {
	order, err := g.client.GetOrder(ctx, orderID)
	if err != nil {
		return nil, GatewayError{Provider: "paypal", Cause: err}
	}
	if order.Status != "COMPLETED" {
		return &Finalization{Status: ChargeNotCompleted, FinalReference: orderID}, nil
	}

	finalRef := orderID
	for _, unit := range order.PurchaseUnits {
		if unit.Payments != nil && len(unit.Payments.Captures) > 0 {
			finalRef = unit.Payments.Captures[0].ID
			break
		}
	}
	return &Finalization{Status: ChargeSucceeded, FinalReference: finalRef}, nil
}

func capturedPaymentID(capture *paypal.CaptureOrderResponse, fallback string) string {
	for _, unit := range capture.PurchaseUnits {
		if unit.Payments != nil && len(unit.Payments.Captures) > 0 {
			return unit.Payments.Captures[0].ID
		}
	}
	return fallback
}

func isPayPalIssue(err error, issue string) bool {
	var payPalErr *paypal.ErrorResponse
	if !errors.As(err, &payPalErr) {
		return false
	}
	for _, detail := range payPalErr.Details {
		if detail.Issue == issue {
			return true
		}
	}
	return false
}

func isPayPalNotFound(err error) bool {
	var payPalErr *paypal.ErrorResponse
	if !errors.As(err, &payPalErr) {
		return false
	}
	if payPalErr.Name == "RESOURCE_NOT_FOUND" {
		return true
	}
	return payPalErr.Response != nil && payPalErr.Response.StatusCode == http.StatusNotFound
}

// formatMajorUnits renders minor units as the decimal string the Orders API
// expects, e.g. 8500 -> "85.00".
func formatMajorUnits(minorUnits int64) string {
	return fmt.Sprintf("%d.%02d", minorUnits/100, minorUnits%100)
}
