package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"onyxgas/config"
	"onyxgas/database"
	contactRepoPkg "onyxgas/database/repository/contact"
	paymentRepoPkg "onyxgas/database/repository/payment"
	"onyxgas/handlers"
	"onyxgas/middleware"
	"onyxgas/routes"
	contactSvc "onyxgas/services/contact"
	paymentSvc "onyxgas/services/payment"
	"onyxgas/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()
	mongoClient, err := database.Connect(ctx, config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.DatabaseName)
	redisClient := utils.InitRedis()
	utils.StartHealthMonitor(redisClient, mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	paymentRepo, err := paymentRepoPkg.NewMongoPaymentRepo(db)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	contactRepo := contactRepoPkg.NewMongoContactRepo(db)

	// Provider gateways.
	cardGateway := paymentSvc.NewStripeGateway(config.AppConfig.StripeSecretKey)
	walletGateway, err := paymentSvc.NewPayPalGateway(ctx,
		config.AppConfig.PayPalClientID,
		config.AppConfig.PayPalClientSecret,
		config.AppConfig.PayPalMode,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize wallet gateway: %v", err)
	}

	// Services.
	paymentService := paymentSvc.NewPaymentService(
		paymentRepo,
		cardGateway,
		walletGateway,
		redisClient,
		config.AppConfig.Currency,
		logger,
	)
	contactService := &contactSvc.DefaultContactService{
		Repo:   contactRepo,
		Logger: logger,
	}

	paymentHandler := handlers.NewPaymentHandler(paymentService)
	contactHandler := handlers.NewContactHandler(contactService)
	adminHandler := handlers.NewAdminHandler(paymentRepo, contactRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateCardPaymentHandler:    paymentHandler.CreateCardPaymentHandler,
		ConfirmCardPaymentHandler:   paymentHandler.ConfirmCardPaymentHandler,
		CreateWalletPaymentHandler:  paymentHandler.CreateWalletPaymentHandler,
		CaptureWalletPaymentHandler: paymentHandler.CaptureWalletPaymentHandler,
		CreateContactHandler:        contactHandler.CreateContactHandler,
		ListPaymentsHandler:         adminHandler.ListPaymentsHandler,
		ListContactsHandler:         adminHandler.ListContactsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := redisClient.Close(); err != nil {
		logger.Sugar().Warnf("main: redis close: %v", err)
	}
	if err := database.Disconnect(shutdownCtx, mongoClient); err != nil {
		logger.Sugar().Warnf("main: mongo disconnect: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
