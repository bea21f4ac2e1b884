package models

import "time"

// PaymentMethod identifies which provider a payment goes through.
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodWallet PaymentMethod = "wallet"
)

// PaymentStatus is the lifecycle state of a payment record.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment is one deposit attempt for a booked service. TransactionID holds the
// provider-issued reference and is the reconciliation key; for wallet payments
// it is replaced by the capture id once the order is captured.
type Payment struct {
	ID            string        `bson:"id" json:"id"`
	CustomerName  string        `bson:"customerName" json:"customerName"`
	CustomerEmail string        `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone string        `bson:"customerPhone" json:"customerPhone"`
	ServiceType   string        `bson:"serviceType" json:"serviceType"`
	Amount        float64       `bson:"amount" json:"amount"`
	DepositAmount float64       `bson:"depositAmount" json:"depositAmount"`
	PaymentMethod PaymentMethod `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	TransactionID string        `bson:"transactionId" json:"transactionId"`
	BookingDate   string        `bson:"bookingDate,omitempty" json:"bookingDate,omitempty"`
	Address       string        `bson:"address" json:"address"`
	Notes         string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
}

// PaymentRequest is the booking/deposit input from the client.
type PaymentRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	ServiceType   string  `json:"serviceType"`
	Amount        float64 `json:"amount"`
	DepositAmount float64 `json:"depositAmount"`
	// Set by the endpoint, not bound from the request body.
	PaymentMethod PaymentMethod `json:"-"`
	BookingDate   string        `json:"bookingDate"`
	Address       string        `json:"address"`
	Notes         string        `json:"notes"`
}

// PaymentInitiation is what the client needs to complete payment: the
// provider reference, the opaque widget token and the stored record id.
type PaymentInitiation struct {
	PaymentID         string `json:"paymentId"`
	ProviderReference string `json:"providerReference"`
	ClientToken       string `json:"clientToken"`
}

// PaymentPatch is the only mutation a stored payment ever receives.
// TransactionID, when non-empty, replaces the stored reference.
type PaymentPatch struct {
	Status        PaymentStatus
	TransactionID string
}
