package handlers

import (
	"net/http"
	"strconv"

	contactRepo "onyxgas/database/repository/contact"
	paymentRepo "onyxgas/database/repository/payment"
	"onyxgas/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultListLimit = 100

// AdminHandler exposes read-only listings for the business owner.
type AdminHandler struct {
	Payments paymentRepo.PaymentRepository
	Contacts contactRepo.ContactRepository
}

func NewAdminHandler(payments paymentRepo.PaymentRepository, contacts contactRepo.ContactRepository) *AdminHandler {
	return &AdminHandler{Payments: payments, Contacts: contacts}
}

// ListPaymentsHandler handles GET /api/admin/payments.
func (h *AdminHandler) ListPaymentsHandler(c *gin.Context) {
	payments, err := h.Payments.List(c.Request.Context(), listLimit(c))
	if err != nil {
		utils.GetLogger().Error("failed to list payments", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Could not list payments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "payments": payments})
}

// ListContactsHandler handles GET /api/admin/contacts.
func (h *AdminHandler) ListContactsHandler(c *gin.Context) {
	contacts, err := h.Contacts.List(c.Request.Context(), listLimit(c))
	if err != nil {
		utils.GetLogger().Error("failed to list contacts", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Could not list contacts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "contacts": contacts})
}

func listLimit(c *gin.Context) int64 {
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.ParseInt(raw, 10, 64); err == nil && limit > 0 {
			return limit
		}
	}
	return defaultListLimit
}
