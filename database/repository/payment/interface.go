package paymentRepo

import (
	"context"
	"fmt"

	"onyxgas/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepository is the persistent store of payment attempts.
type PaymentRepository interface {
	// Create appends a new payment record and returns its ID.
	Create(ctx context.Context, payment models.Payment) (string, error)

	// FindAndUpdateByReference atomically applies the patch to the record
	// whose transactionId equals reference and returns the post-update
	// record. It returns (nil, nil) when no record matches; callers treat
	// that as a reconciliation failure, not a storage error.
	FindAndUpdateByReference(ctx context.Context, reference string, patch models.PaymentPatch) (*models.Payment, error)

	// GetByReference returns the record currently holding the given
	// transactionId, or (nil, nil) when none does.
	GetByReference(ctx context.Context, reference string) (*models.Payment, error)

	GetByID(ctx context.Context, id string) (*models.Payment, error)
	List(ctx context.Context, limit int64) ([]models.Payment, error)
}

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo returns a PaymentRepository backed by the "payments"
// collection, creating the transactionId index up front.
func NewMongoPaymentRepo(db *mongo.Database) (PaymentRepository, error) {
	r := &mongoPaymentRepo{coll: db.Collection("payments")}
	if err := r.ensureIndexes(); err != nil {
		return nil, fmt.Errorf("payment repo: %w", err)
	}
	return r, nil
}
