package handlers

import (
	"errors"
	"net/http"

	"onyxgas/models"
	"onyxgas/services/contact"
	"onyxgas/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler exposes the contact form endpoint.
type ContactHandler struct {
	Service contact.ContactService
}

func NewContactHandler(service contact.ContactService) *ContactHandler {
	return &ContactHandler{Service: service}
}

// CreateContactHandler handles POST /api/contact.
func (h *ContactHandler) CreateContactHandler(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.CreateContact(c.Request.Context(), req)
	if err != nil {
		var validationErr contact.ValidationError
		if errors.As(err, &validationErr) {
			utils.JSONError(c, http.StatusBadRequest, validationErr.Error())
			return
		}
		utils.GetLogger().Error("contact intake failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Could not store the contact message")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you!",
		"data":    record,
	})
}
