package payment

import "context"

// ChargeStatus is the normalized provider-side outcome of a finalize call.
type ChargeStatus string

const (
	ChargeSucceeded    ChargeStatus = "succeeded"
	ChargeNotCompleted ChargeStatus = "not_completed"
)

// Charge is the result of creating a provider-side charge. ClientToken is the
// opaque value the client-side payment widget needs to finish the transaction;
// it is passed through, never interpreted or stored.
type Charge struct {
	ProviderReference string
	ClientToken       string
}

// Finalization is the result of finalizing a charge. FinalReference may differ
// from the reference the charge was created with (a wallet capture id).
type Finalization struct {
	Status         ChargeStatus
	FinalReference string
}

// Gateway unifies the two payment providers behind one two-operation
// capability so the initiation and confirmation flows stay provider-agnostic.
type Gateway interface {
	// CreateCharge registers a charge with the provider for the given amount
	// in minor currency units.
	CreateCharge(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (*Charge, error)

	// FinalizeCharge retrieves (card) or captures (wallet) the charge and
	// reports its normalized status. Capturing an already-captured charge is
	// idempotent from the caller's perspective.
	FinalizeCharge(ctx context.Context, providerReference string) (*Finalization, error)
}
