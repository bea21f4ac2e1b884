package payment

import (
	"context"
	"time"

	"onyxgas/models"

	"go.uber.org/zap"
)

// settledTTL bounds how long a settled reference answers duplicate
// confirmations from cache before falling back to the provider.
const settledTTL = 24 * time.Hour

// ConfirmPayment re-queries the provider for the final state of a charge and
// atomically transitions the matching stored record to completed. A
// not-completed outcome leaves the record pending so a later retry can still
// succeed.
func (s *DefaultPaymentService) ConfirmPayment(ctx context.Context, method models.PaymentMethod, reference string) (*models.Payment, error) {
	if reference == "" {
		return nil, ValidationError{Reason: "reference is required"}
	}
	gw, err := s.gatewayFor(method)
	if err != nil {
		return nil, err
	}

	// Duplicate submissions (client retry plus webhook) are answered from
	// the settled cache without another provider round trip.
	if record := s.cachedSettled(ctx, reference); record != nil {
		return record, nil
	}

	finalization, err := gw.FinalizeCharge(ctx, reference)
	if err != nil {
		s.Logger.Error("charge finalization failed",
			zap.String("reference", reference),
			zap.Error(err))
		return nil, err
	}
	if finalization.Status != ChargeSucceeded {
		return nil, PaymentIncompleteError{Reference: reference}
	}

	patch := models.PaymentPatch{
		Status:        models.PaymentStatusCompleted,
		TransactionID: finalization.FinalReference,
	}
	record, err := s.Repo.FindAndUpdateByReference(ctx, reference, patch)
	if err != nil {
		return nil, StorageError{Op: "confirm", Cause: err}
	}
	if record == nil {
		// A wallet retry arrives with the order id after the stored
		// reference was already replaced by the capture id.
		if settled := s.recordByFinalReference(ctx, finalization.FinalReference); settled != nil {
			s.rememberSettled(ctx, reference, settled.ID)
			return settled, nil
		}
		s.Logger.Error("no payment record for settled charge",
			zap.String("reference", reference),
			zap.String("finalReference", finalization.FinalReference))
		return nil, RecordNotFoundError{Reference: reference}
	}

	s.rememberSettled(ctx, reference, record.ID)
	s.Logger.Info("payment confirmed",
		zap.String("paymentId", record.ID),
		zap.String("reference", reference),
		zap.String("finalReference", finalization.FinalReference))
	return record, nil
}

// recordByFinalReference returns the completed record holding finalReference,
// or nil when there is none or it is not completed.
func (s *DefaultPaymentService) recordByFinalReference(ctx context.Context, finalReference string) *models.Payment {
	record, err := s.Repo.GetByReference(ctx, finalReference)
	if err != nil || record == nil {
		return nil
	}
	if record.PaymentStatus != models.PaymentStatusCompleted {
		return nil
	}
	return record
}

func (s *DefaultPaymentService) cachedSettled(ctx context.Context, reference string) *models.Payment {
	if s.Cache == nil {
		return nil
	}
	id, err := s.Cache.Get(ctx, settledKey(reference)).Result()
	if err != nil {
		return nil
	}
	record, err := s.Repo.GetByID(ctx, id)
	if err != nil || record == nil || record.PaymentStatus != models.PaymentStatusCompleted {
		return nil
	}
	return record
}

func (s *DefaultPaymentService) rememberSettled(ctx context.Context, reference, paymentID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Set(ctx, settledKey(reference), paymentID, settledTTL).Err(); err != nil {
		s.Logger.Warn("failed to cache settled reference", zap.String("reference", reference), zap.Error(err))
	}
}

func settledKey(reference string) string {
	return "payment:settled:" + reference
}
