package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"onyxgas/models"
	"onyxgas/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubPaymentService struct {
	initiateFn func(ctx context.Context, req models.PaymentRequest) (*models.PaymentInitiation, error)
	confirmFn  func(ctx context.Context, method models.PaymentMethod, reference string) (*models.Payment, error)
}

func (s *stubPaymentService) InitiatePayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentInitiation, error) {
	return s.initiateFn(ctx, req)
}

func (s *stubPaymentService) ConfirmPayment(ctx context.Context, method models.PaymentMethod, reference string) (*models.Payment, error) {
	return s.confirmFn(ctx, method, reference)
}

func paymentRouter(svc payment.PaymentService) *gin.Engine {
	h := NewPaymentHandler(svc)
	r := gin.New()
	r.POST("/api/payments/card", h.CreateCardPaymentHandler)
	r.POST("/api/payments/card/confirm", h.ConfirmCardPaymentHandler)
	r.POST("/api/payments/wallet", h.CreateWalletPaymentHandler)
	r.POST("/api/payments/wallet/capture", h.CaptureWalletPaymentHandler)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestCreateCardPaymentSuccess(t *testing.T) {
	var gotMethod models.PaymentMethod
	svc := &stubPaymentService{
		initiateFn: func(_ context.Context, req models.PaymentRequest) (*models.PaymentInitiation, error) {
			gotMethod = req.PaymentMethod
			return &models.PaymentInitiation{
				PaymentID:         "pay-1",
				ProviderReference: "ch_1",
				ClientToken:       "ch_1_secret",
			}, nil
		},
	}

	w, resp := postJSON(t, paymentRouter(svc), "/api/payments/card", gin.H{
		"customerName":  "A",
		"customerEmail": "a@x.com",
		"customerPhone": "1",
		"serviceType":   "Boiler Service",
		"amount":        85,
		"depositAmount": 85,
		"address":       "1 Road",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "pay-1", resp["paymentId"])
	assert.Equal(t, "ch_1", resp["providerReference"])
	assert.Equal(t, "ch_1_secret", resp["clientToken"])
	assert.Equal(t, models.PaymentMethodCard, gotMethod)
}

func TestCreateWalletPaymentSetsMethod(t *testing.T) {
	var gotMethod models.PaymentMethod
	svc := &stubPaymentService{
		initiateFn: func(_ context.Context, req models.PaymentRequest) (*models.PaymentInitiation, error) {
			gotMethod = req.PaymentMethod
			return &models.PaymentInitiation{PaymentID: "pay-2", ProviderReference: "ORDER-1", ClientToken: "ORDER-1"}, nil
		},
	}

	w, _ := postJSON(t, paymentRouter(svc), "/api/payments/wallet", gin.H{"customerName": "A"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.PaymentMethodWallet, gotMethod)
}

func TestCreatePaymentValidationError(t *testing.T) {
	svc := &stubPaymentService{
		initiateFn: func(context.Context, models.PaymentRequest) (*models.PaymentInitiation, error) {
			return nil, payment.ValidationError{Reason: "customerName is required"}
		},
	}

	w, resp := postJSON(t, paymentRouter(svc), "/api/payments/card", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["message"], "customerName")
}

func TestCreatePaymentGatewayFailure(t *testing.T) {
	svc := &stubPaymentService{
		initiateFn: func(context.Context, models.PaymentRequest) (*models.PaymentInitiation, error) {
			return nil, payment.GatewayError{Provider: "stripe", Cause: errors.New("connection reset by peer")}
		},
	}

	w, resp := postJSON(t, paymentRouter(svc), "/api/payments/card", gin.H{})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, false, resp["success"])
	// Raw provider error text must not leak to the client.
	assert.NotContains(t, resp["message"], "connection reset")
}

func TestCreatePaymentReconciliationRequired(t *testing.T) {
	svc := &stubPaymentService{
		initiateFn: func(context.Context, models.PaymentRequest) (*models.PaymentInitiation, error) {
			return nil, payment.ReconciliationRequiredError{Reference: "ch_orphan", Cause: errors.New("mongo down")}
		},
	}

	w, resp := postJSON(t, paymentRouter(svc), "/api/payments/card", gin.H{})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, resp["message"], "contact support")
}

func TestConfirmCardPaymentSuccess(t *testing.T) {
	svc := &stubPaymentService{
		confirmFn: func(_ context.Context, method models.PaymentMethod, reference string) (*models.Payment, error) {
			assert.Equal(t, models.PaymentMethodCard, method)
			assert.Equal(t, "ch_1", reference)
			return &models.Payment{ID: "pay-1", TransactionID: "ch_1", PaymentStatus: models.PaymentStatusCompleted}, nil
		},
	}

	w, resp := postJSON(t, paymentRouter(svc), "/api/payments/card/confirm", gin.H{"transactionId": "ch_1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])

	record, ok := resp["payment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "completed", record["paymentStatus"])
}

func TestConfirmCardPaymentRecordNotFound(t *testing.T) {
	svc := &stubPaymentService{
		confirmFn: func(context.Context, models.PaymentMethod, string) (*models.Payment, error) {
			return nil, payment.RecordNotFoundError{Reference: "ch_unknown"}
		},
	}

	w, resp := postJSON(t, paymentRouter(svc), "/api/payments/card/confirm", gin.H{"transactionId": "ch_unknown"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, false, resp["success"])
}

func TestConfirmCardPaymentIncomplete(t *testing.T) {
	svc := &stubPaymentService{
		confirmFn: func(context.Context, models.PaymentMethod, string) (*models.Payment, error) {
			return nil, payment.PaymentIncompleteError{Reference: "ch_1"}
		},
	}

	w, resp := postJSON(t, paymentRouter(svc), "/api/payments/card/confirm", gin.H{"transactionId": "ch_1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Payment not completed", resp["message"])
}

func TestCaptureWalletPaymentUnknownAtProvider(t *testing.T) {
	svc := &stubPaymentService{
		confirmFn: func(_ context.Context, method models.PaymentMethod, reference string) (*models.Payment, error) {
			assert.Equal(t, models.PaymentMethodWallet, method)
			return nil, payment.GatewayError{
				Provider: "paypal",
				Cause:    fmt.Errorf("%w: %s", payment.ErrChargeNotFound, reference),
			}
		},
	}

	w, resp := postJSON(t, paymentRouter(svc), "/api/payments/wallet/capture", gin.H{"orderId": "ORDER-GONE"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, resp["success"])
}
