// File: timehuddle/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timehuddle/config"
	"timehuddle/cron"
	"timehuddle/database"
	bookingRepo "timehuddle/database/repository/booking"
	scheduleRepo "timehuddle/database/repository/schedule"
	"timehuddle/handlers"
	"timehuddle/middleware"
	"timehuddle/routes"
	"timehuddle/services/availability"
	"timehuddle/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	schedRepo := scheduleRepo.NewMongoScheduleRepo()
	bkRepo := bookingRepo.NewMongoBookingRepo()

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		ScheduleRepo: schedRepo,
		BookingRepo:  bkRepo,
		Cache:        utils.GetCacheClient(),
		CacheTTL:     time.Duration(config.AppConfig.AvailabilityCacheTTLSec) * time.Second,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, logger)

	// Register routes.
	routes.RegisterRoutes(router, availabilityHandler)

	// Background cache warm worker and health monitor.
	cron.InitWarmWorker(availabilityService)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
