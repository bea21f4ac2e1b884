package payment

import (
	"errors"
	"fmt"
)

// ErrChargeNotFound signals that the provider does not know the reference.
// Gateways wrap it in a GatewayError so callers can tell an unknown
// reference apart from a transient provider failure.
var ErrChargeNotFound = errors.New("charge not found at provider")

// ValidationError signals bad or missing input. Nothing was charged or stored.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return "invalid payment request: " + e.Reason
}

// GatewayError signals that the provider call failed. No local state changed.
type GatewayError struct {
	Provider string
	Cause    error
}

func (e GatewayError) Error() string {
	return fmt.Sprintf("%s gateway error: %v", e.Provider, e.Cause)
}

func (e GatewayError) Unwrap() error {
	return e.Cause
}

// StorageError signals that the record store is unreachable or rejected a write.
type StorageError struct {
	Op    string
	Cause error
}

func (e StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Cause)
}

func (e StorageError) Unwrap() error {
	return e.Cause
}

// RecordNotFoundError signals a reconciliation mismatch: the provider reports
// a settled charge but no stored record carries its reference.
type RecordNotFoundError struct {
	Reference string
}

func (e RecordNotFoundError) Error() string {
	return "no payment record found for reference " + e.Reference
}

// ReconciliationRequiredError signals that a provider-side charge was created
// but the local record could not be stored. The charge may linger uncaptured;
// an operator has to reconcile it by the carried reference.
type ReconciliationRequiredError struct {
	Reference string
	Cause     error
}

func (e ReconciliationRequiredError) Error() string {
	return fmt.Sprintf("charge %s created but record not stored, manual reconciliation required: %v", e.Reference, e.Cause)
}

func (e ReconciliationRequiredError) Unwrap() error {
	return e.Cause
}

// PaymentIncompleteError signals that the provider reports the charge as not
// yet settled. The stored record stays pending and confirmation can be retried.
type PaymentIncompleteError struct {
	Reference string
}

func (e PaymentIncompleteError) Error() string {
	return "payment not completed for reference " + e.Reference
}
