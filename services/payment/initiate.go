package payment

import (
	"context"
	"math"

	"onyxgas/models"

	"go.uber.org/zap"
)

// InitiatePayment validates the booking request, creates the provider-side
// charge and then persists a pending record keyed by the provider reference.
// The charge is created before the insert so a gateway failure leaves no
// orphan record.
func (s *DefaultPaymentService) InitiatePayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentInitiation, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	gw, err := s.gatewayFor(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	charge, err := gw.CreateCharge(ctx, toMinorUnits(req.DepositAmount), s.Currency, map[string]string{
		"description":   req.ServiceType + " - Deposit",
		"customerEmail": req.CustomerEmail,
	})
	if err != nil {
		s.Logger.Error("charge creation failed",
			zap.String("method", string(req.PaymentMethod)),
			zap.Error(err))
		return nil, err
	}

	record := models.Payment{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		ServiceType:   req.ServiceType,
		Amount:        req.Amount,
		DepositAmount: req.DepositAmount,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: models.PaymentStatusPending,
		TransactionID: charge.ProviderReference,
		BookingDate:   req.BookingDate,
		Address:       req.Address,
		Notes:         req.Notes,
	}
	id, err := s.Repo.Create(ctx, record)
	if err != nil {
		// The provider-side charge now exists with no local record. Surface
		// it as a distinct outcome so operators can detect the drift.
		s.Logger.Error("payment record insert failed after charge creation",
			zap.String("reference", charge.ProviderReference),
			zap.Error(err))
		return nil, ReconciliationRequiredError{Reference: charge.ProviderReference, Cause: err}
	}

	s.Logger.Info("payment initiated",
		zap.String("paymentId", id),
		zap.String("reference", charge.ProviderReference),
		zap.String("method", string(req.PaymentMethod)))

	return &models.PaymentInitiation{
		PaymentID:         id,
		ProviderReference: charge.ProviderReference,
		ClientToken:       charge.ClientToken,
	}, nil
}

func validateRequest(req models.PaymentRequest) error {
	switch {
	case req.CustomerName == "":
		return ValidationError{Reason: "customerName is required"}
	case req.CustomerEmail == "":
		return ValidationError{Reason: "customerEmail is required"}
	case req.CustomerPhone == "":
		return ValidationError{Reason: "customerPhone is required"}
	case req.ServiceType == "":
		return ValidationError{Reason: "serviceType is required"}
	case req.Address == "":
		return ValidationError{Reason: "address is required"}
	case req.Amount <= 0:
		return ValidationError{Reason: "amount must be positive"}
	case req.DepositAmount <= 0:
		return ValidationError{Reason: "depositAmount must be positive"}
	}
	return nil
}

// toMinorUnits converts a decimal amount to minor currency units,
// rounding half up so 0.005 becomes 1, not 0.
func toMinorUnits(amount float64) int64 {
	return int64(math.Floor(amount*100 + 0.5))
}
