package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sweepstack/config"
	"sweepstack/cron"
	"sweepstack/database"
	bookingRepo "sweepstack/database/repository/booking"
	ratesheetRepo "sweepstack/database/repository/ratesheet"
	"sweepstack/handlers"
	"sweepstack/middleware"
	"sweepstack/routes"
	"sweepstack/services/booking"
	"sweepstack/services/rates"
	"sweepstack/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	handlers.RegisterValidations()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	rateSheets := ratesheetRepo.NewMongoRateSheetRepo()

	// services.
	rateSheetService := &rates.DefaultRateSheetService{
		Repo:     rateSheets,
		Cache:    utils.GetRateSheetCacheClient(),
		CacheTTL: time.Duration(config.AppConfig.RateSheetCacheSeconds) * time.Second,
	}

	reminderScheduler := cron.NewReminderScheduler()
	cron.InitReminderWorker(cron.LogNotifier{})

	bookingService := &booking.DefaultBookingService{
		Repo:      bookings,
		Rates:     rateSheetService,
		Payments:  booking.NewPaymentHandler(logger),
		Reminders: reminderScheduler,
		Policy: booking.Policy{
			AllowUnpriced:     config.AppConfig.PricingAllowUnpriced,
			RescheduleMinLead: time.Duration(config.AppConfig.RescheduleMinLeadHrs) * time.Hour,
		},
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:   handlers.NewBookingHandler(bookingService),
		RateSheet: handlers.NewRateSheetHandler(rateSheetService),
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
