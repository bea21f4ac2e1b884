package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the handlers the route registration needs.
type HandlerBundle struct {
	// Payment endpoints.
	CreateCardPaymentHandler    gin.HandlerFunc
	ConfirmCardPaymentHandler   gin.HandlerFunc
	CreateWalletPaymentHandler  gin.HandlerFunc
	CaptureWalletPaymentHandler gin.HandlerFunc

	// Contact endpoint.
	CreateContactHandler gin.HandlerFunc

	// Admin read endpoints.
	ListPaymentsHandler gin.HandlerFunc
	ListContactsHandler gin.HandlerFunc
}
