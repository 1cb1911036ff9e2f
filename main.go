// File: clinovia/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinovia/config"
	"clinovia/cron"
	"clinovia/database"
	outboxRepo "clinovia/database/repository/outbox"
	patientRepo "clinovia/database/repository/patient"
	"clinovia/handlers"
	"clinovia/middleware"
	"clinovia/routes"
	"clinovia/services/booking"
	"clinovia/services/clinicapi"
	"clinovia/services/patient"
	"clinovia/services/payment"
	"clinovia/services/records"
	"clinovia/services/tasks"
	"clinovia/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Upstream clinic API client.
	apiTimeout := time.Duration(config.AppConfig.ClinicAPITimeoutSec) * time.Second
	clinicClient := clinicapi.NewClient(config.AppConfig.ClinicAPIBaseURL, apiTimeout)

	// repositories.
	patients := patientRepo.NewMongoPatientRepo()
	outbox := outboxRepo.NewRedisOutboxRepo(utils.GetPendingCacheClient())

	// services.
	patientService := &patient.DefaultPatientService{
		Repo:        patients,
		MasterIndex: clinicClient,
	}

	var reconcile booking.ReconcileScheduler
	if config.AppConfig.PendingReconcileEnabled {
		asynqClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		})
		defer asynqClient.Close()
		reconcile = tasks.NewAsynqReconcileScheduler(asynqClient, time.Hour)
		cron.InitReconcileWorker(outbox, clinicClient)
	}

	bookingService := &booking.DefaultBookingSessionService{
		Schedule:     clinicClient,
		Outbox:       outbox,
		Names:        booking.NewNameCache(clinicClient),
		SessionCache: utils.GetBookingCacheClient(),
		CatalogCache: utils.GetCacheClient(),
		Reconcile:    reconcile,
	}

	recordService := &records.DefaultRecordService{
		History: clinicClient,
	}

	paymentService, err := payment.NewPaymentService(config.AppConfig.MercadoPagoAccessToken)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize payment service: %v", err)
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:    handlers.NewAuthHandler(patientService, logger),
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Profile: handlers.NewProfileHandler(patientService),
		Records: handlers.NewRecordsHandler(recordService),
		Payment: handlers.NewPaymentHandler(paymentService, logger),
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
