package paymentRepo

import (
	"context"
	"errors"
	"time"

	"onyxgas/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new payment record and returns its ID.
// Creation is a pure append; it never reads previously stored data.
func (r *mongoPaymentRepo) Create(ctx context.Context, payment models.Payment) (string, error) {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.PaymentStatus == "" {
		payment.PaymentStatus = models.PaymentStatusPending
	}
	payment.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return "", err
	}
	return payment.ID, nil
}

// FindAndUpdateByReference locates the record holding the reference and
// applies the patch in a single document operation, so two racing
// confirmations of the same reference cannot interleave partial writes.
func (r *mongoPaymentRepo) FindAndUpdateByReference(ctx context.Context, reference string, patch models.PaymentPatch) (*models.Payment, error) {
	set := bson.M{"paymentStatus": patch.Status}
	if patch.TransactionID != "" {
		set["transactionId"] = patch.TransactionID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Payment
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"transactionId": reference}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetByReference returns the record currently holding the reference.
func (r *mongoPaymentRepo) GetByReference(ctx context.Context, reference string) (*models.Payment, error) {
	var payment models.Payment
	err := r.coll.FindOne(ctx, bson.M{"transactionId": reference}).Decode(&payment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetByID returns a payment record by its ID.
func (r *mongoPaymentRepo) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&payment)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// List returns payment records, newest first.
func (r *mongoPaymentRepo) List(ctx context.Context, limit int64) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
