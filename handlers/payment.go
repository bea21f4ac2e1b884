package handlers

import (
	"errors"
	"net/http"

	"onyxgas/models"
	"onyxgas/services/payment"
	"onyxgas/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the deposit endpoints for both providers.
type PaymentHandler struct {
	Service payment.PaymentService
}

func NewPaymentHandler(service payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: service}
}

// CreateCardPaymentHandler handles POST /api/payments/card.
func (h *PaymentHandler) CreateCardPaymentHandler(c *gin.Context) {
	h.createPayment(c, models.PaymentMethodCard)
}

// CreateWalletPaymentHandler handles POST /api/payments/wallet.
func (h *PaymentHandler) CreateWalletPaymentHandler(c *gin.Context) {
	h.createPayment(c, models.PaymentMethodWallet)
}

func (h *PaymentHandler) createPayment(c *gin.Context, method models.PaymentMethod) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	req.PaymentMethod = method

	initiation, err := h.Service.InitiatePayment(c.Request.Context(), req)
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"paymentId":         initiation.PaymentID,
		"providerReference": initiation.ProviderReference,
		"clientToken":       initiation.ClientToken,
	})
}

// ConfirmCardPaymentHandler handles POST /api/payments/card/confirm.
func (h *PaymentHandler) ConfirmCardPaymentHandler(c *gin.Context) {
	var req struct {
		TransactionID string `json:"transactionId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	h.confirmPayment(c, models.PaymentMethodCard, req.TransactionID)
}

// CaptureWalletPaymentHandler handles POST /api/payments/wallet/capture.
func (h *PaymentHandler) CaptureWalletPaymentHandler(c *gin.Context) {
	var req struct {
		OrderID string `json:"orderId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	h.confirmPayment(c, models.PaymentMethodWallet, req.OrderID)
}

func (h *PaymentHandler) confirmPayment(c *gin.Context, method models.PaymentMethod, reference string) {
	record, err := h.Service.ConfirmPayment(c.Request.Context(), method, reference)
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment confirmed successfully",
		"payment": record,
	})
}

// respondPaymentError maps the payment error taxonomy onto HTTP statuses with
// client-safe messages.
func respondPaymentError(c *gin.Context, err error) {
	logger := utils.GetLogger()

	var validationErr payment.ValidationError
	var incompleteErr payment.PaymentIncompleteError
	var notFoundErr payment.RecordNotFoundError
	var reconcileErr payment.ReconciliationRequiredError
	var gatewayErr payment.GatewayError
	var storageErr payment.StorageError

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &incompleteErr):
		utils.JSONError(c, http.StatusBadRequest, "Payment not completed")
	case errors.As(err, &notFoundErr):
		logger.Error("payment reconciliation failure", zap.String("reference", notFoundErr.Reference))
		utils.JSONError(c, http.StatusConflict, "Payment succeeded at the provider but no matching record was found")
	case errors.As(err, &reconcileErr):
		logger.Error("manual reconciliation required", zap.String("reference", reconcileErr.Reference), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Payment was registered with the provider but could not be recorded. Please contact support.")
	case errors.As(err, &gatewayErr):
		if errors.Is(err, payment.ErrChargeNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Payment reference not recognised by the provider")
			return
		}
		logger.Error("gateway failure", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Payment could not be processed")
	case errors.As(err, &storageErr):
		logger.Error("storage failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Payment storage is unavailable")
	default:
		logger.Error("unexpected payment error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Payment request failed")
	}
}
