package contactRepo

import (
	"context"

	"onyxgas/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ContactRepository stores contact form submissions.
type ContactRepository interface {
	Create(ctx context.Context, contact models.Contact) (string, error)
	List(ctx context.Context, limit int64) ([]models.Contact, error)
}

type mongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo returns a ContactRepository backed by the "contacts" collection.
func NewMongoContactRepo(db *mongo.Database) ContactRepository {
	return &mongoContactRepo{coll: db.Collection("contacts")}
}
