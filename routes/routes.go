package routes

import (
	"net/http"
	"time"

	"onyxgas/handlers"
	"onyxgas/middleware"
	"onyxgas/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPaymentRoutes registers the deposit endpoints for both providers.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/card", hb.CreateCardPaymentHandler)
		api.POST("/card/confirm", hb.ConfirmCardPaymentHandler)
		api.POST("/wallet", hb.CreateWalletPaymentHandler)
		api.POST("/wallet/capture", hb.CaptureWalletPaymentHandler)
	}
}

// RegisterContactRoutes registers the contact form endpoint.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/contact", hb.CreateContactHandler)
}

// RegisterAdminRoutes sets up the read-only listings behind the admin token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/payments", hb.ListPaymentsHandler)
		adminGroup.GET("/contacts", hb.ListContactsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// The payment and contact endpoints are called from the public website,
	// so any origin may reach them. Preflight OPTIONS succeeds with no body;
	// any other unexpected method gets a 405.
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Authorization", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		utils.JSONError(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	RegisterPaymentRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
