package contact

import (
	"context"
	"testing"

	"onyxgas/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memContactRepo struct {
	created []models.Contact
}

func (r *memContactRepo) Create(_ context.Context, contact models.Contact) (string, error) {
	contact.ID = "contact-1"
	r.created = append(r.created, contact)
	return contact.ID, nil
}

func (r *memContactRepo) List(context.Context, int64) ([]models.Contact, error) {
	return r.created, nil
}

func TestCreateContactStoresMessage(t *testing.T) {
	repo := &memContactRepo{}
	svc := &DefaultContactService{Repo: repo, Logger: zap.NewNop()}

	record, err := svc.CreateContact(context.Background(), models.ContactRequest{
		Name:    "A",
		Email:   "a@x.com",
		Phone:   "1",
		Message: "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "contact-1", record.ID)
	assert.Len(t, repo.created, 1)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestCreateContactValidation(t *testing.T) {
	svc := &DefaultContactService{Repo: &memContactRepo{}, Logger: zap.NewNop()}

	cases := []models.ContactRequest{
		{Email: "a@x.com", Message: "Hello"},
		{Name: "A", Message: "Hello"},
		{Name: "A", Email: "a@x.com"},
	}
	for _, req := range cases {
		_, err := svc.CreateContact(context.Background(), req)
		var validationErr ValidationError
		require.ErrorAs(t, err, &validationErr)
	}
}
