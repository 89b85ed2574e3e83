package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every endpoint handler for route
// registration.
type HandlerBundle struct {
	// Account endpoints.
	RegisterHandler       gin.HandlerFunc
	AuthenticateHandler   gin.HandlerFunc
	ClientProfileHandler  gin.HandlerFunc
	ArtisanProfileHandler gin.HandlerFunc

	// Discovery endpoints.
	ListArtisansHandler   gin.HandlerFunc
	NearbyArtisansHandler gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler     gin.HandlerFunc
	ListBookingsHandler      gin.HandlerFunc
	TransitionBookingHandler gin.HandlerFunc
	FileReportHandler        gin.HandlerFunc
}
