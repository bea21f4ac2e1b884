package handlers

import (
	"context"
	"net/http"
	"testing"

	"onyxgas/models"
	"onyxgas/services/contact"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubContactService struct {
	createFn func(ctx context.Context, req models.ContactRequest) (*models.Contact, error)
}

func (s *stubContactService) CreateContact(ctx context.Context, req models.ContactRequest) (*models.Contact, error) {
	return s.createFn(ctx, req)
}

func (s *stubContactService) ListContacts(context.Context, int64) ([]models.Contact, error) {
	return nil, nil
}

func contactRouter(svc contact.ContactService) *gin.Engine {
	h := NewContactHandler(svc)
	r := gin.New()
	r.POST("/api/contact", h.CreateContactHandler)
	return r
}

func TestCreateContactSuccess(t *testing.T) {
	svc := &stubContactService{
		createFn: func(_ context.Context, req models.ContactRequest) (*models.Contact, error) {
			return &models.Contact{ID: "contact-1", Name: req.Name, Email: req.Email, Message: req.Message}, nil
		},
	}

	w, resp := postJSON(t, contactRouter(svc), "/api/contact", gin.H{
		"name":    "A",
		"email":   "a@x.com",
		"phone":   "1",
		"message": "Hello",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Thank you!", resp["message"])
}

func TestCreateContactValidationError(t *testing.T) {
	svc := &stubContactService{
		createFn: func(context.Context, models.ContactRequest) (*models.Contact, error) {
			return nil, contact.ValidationError{Reason: "message is required"}
		},
	}

	w, resp := postJSON(t, contactRouter(svc), "/api/contact", gin.H{"name": "A"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
}
