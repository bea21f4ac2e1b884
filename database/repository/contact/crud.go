package contactRepo

import (
	"context"
	"time"

	"onyxgas/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new contact message and returns its ID.
func (r *mongoContactRepo) Create(ctx context.Context, contact models.Contact) (string, error) {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, contact)
	if err != nil {
		return "", err
	}
	return contact.ID, nil
}

// List returns contact messages, newest first.
func (r *mongoContactRepo) List(ctx context.Context, limit int64) ([]models.Contact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var contacts []models.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}
