package contact

import (
	"context"
	"time"

	contactRepo "onyxgas/database/repository/contact"
	"onyxgas/models"

	"go.uber.org/zap"
)

// ContactService handles contact form submissions.
type ContactService interface {
	CreateContact(ctx context.Context, req models.ContactRequest) (*models.Contact, error)
	ListContacts(ctx context.Context, limit int64) ([]models.Contact, error)
}

type DefaultContactService struct {
	Repo   contactRepo.ContactRepository
	Logger *zap.Logger
}

func (s *DefaultContactService) CreateContact(ctx context.Context, req models.ContactRequest) (*models.Contact, error) {
	if err := validateContact(req); err != nil {
		return nil, err
	}

	record := models.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	id, err := s.Repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	record.ID = id

	s.Logger.Info("contact message stored", zap.String("contactId", id))
	return &record, nil
}

func (s *DefaultContactService) ListContacts(ctx context.Context, limit int64) ([]models.Contact, error) {
	return s.Repo.List(ctx, limit)
}

func validateContact(req models.ContactRequest) error {
	switch {
	case req.Name == "":
		return ValidationError{Reason: "name is required"}
	case req.Email == "":
		return ValidationError{Reason: "email is required"}
	case req.Message == "":
		return ValidationError{Reason: "message is required"}
	}
	return nil
}
