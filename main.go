// File: hirafic/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hirafic/config"
	"hirafic/database"
	artisanRepo "hirafic/database/repository/artisan"
	bookingRepo "hirafic/database/repository/booking"
	reportRepo "hirafic/database/repository/report"
	userRepoPkg "hirafic/database/repository/user"
	"hirafic/handlers"
	"hirafic/middleware"
	"hirafic/routes"
	"hirafic/services/account"
	"hirafic/services/booking"
	"hirafic/services/discovery"
	"hirafic/services/geocode"
	"hirafic/utils"

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
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	artisans := artisanRepo.NewMongoArtisanRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	reports := reportRepo.NewMongoReportRepo()

	// services.
	geocoder := geocode.NewNominatimGeocoder(
		config.AppConfig.NominatimURL,
		utils.GetCacheClient(),
		logger,
	)

	accountService := &account.DefaultAccountService{
		Users:    userRepo,
		Artisans: artisans,
		Geocoder: geocoder,
		Logger:   logger,
	}
	discoveryService := &discovery.DefaultDiscoveryService{
		Repo: artisans,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:        bookings,
		ArtisanRepo: artisans,
		ReportRepo:  reports,
		Logger:      logger,
	}

	accountHandler := handlers.NewAccountHandler(accountService)
	discoveryHandler := handlers.NewDiscoveryHandler(discoveryService, accountService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		RegisterHandler:       accountHandler.RegisterHandler,
		AuthenticateHandler:   accountHandler.AuthenticateHandler,
		ClientProfileHandler:  accountHandler.ClientProfileHandler,
		ArtisanProfileHandler: accountHandler.ArtisanProfileHandler,

		ListArtisansHandler:   discoveryHandler.ListArtisansHandler,
		NearbyArtisansHandler: discoveryHandler.NearbyArtisansHandler,

		CreateBookingHandler:     bookingHandler.CreateBookingHandler,
		ListBookingsHandler:      bookingHandler.ListBookingsHandler,
		TransitionBookingHandler: bookingHandler.TransitionBookingHandler,
		FileReportHandler:        bookingHandler.FileReportHandler,
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
