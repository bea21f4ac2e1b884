package payment

import (
	"context"
	"fmt"

	"onyxgas/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// PaymentService runs the deposit lifecycle: initiation against a provider
// and reconciliation of the provider's asynchronous confirmation.
type PaymentService interface {
	InitiatePayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentInitiation, error)
	ConfirmPayment(ctx context.Context, method models.PaymentMethod, reference string) (*models.Payment, error)
}

// Repository is the subset of the record store the flows need.
type Repository interface {
	Create(ctx context.Context, payment models.Payment) (string, error)
	FindAndUpdateByReference(ctx context.Context, reference string, patch models.PaymentPatch) (*models.Payment, error)
	GetByReference(ctx context.Context, reference string) (*models.Payment, error)
	GetByID(ctx context.Context, id string) (*models.Payment, error)
}

// DefaultPaymentService dispatches to one of two gateway variants by payment
// method, resolved once per request.
type DefaultPaymentService struct {
	Repo     Repository
	Card     Gateway
	Wallet   Gateway
	Cache    *redis.Client
	Currency string
	Logger   *zap.Logger
}

// NewPaymentService wires the flows. Cache may be nil; confirmation then
// always goes to the provider.
func NewPaymentService(repo Repository, card, wallet Gateway, cache *redis.Client, currency string, logger *zap.Logger) *DefaultPaymentService {
	return &DefaultPaymentService{
		Repo:     repo,
		Card:     card,
		Wallet:   wallet,
		Cache:    cache,
		Currency: currency,
		Logger:   logger,
	}
}

func (s *DefaultPaymentService) gatewayFor(method models.PaymentMethod) (Gateway, error) {
	switch method {
	case models.PaymentMethodCard:
		return s.Card, nil
	case models.PaymentMethodWallet:
		return s.Wallet, nil
	default:
		return nil, ValidationError{Reason: fmt.Sprintf("unsupported payment method %q", method)}
	}
}
