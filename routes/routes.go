package routes

import (
	"net/http"
	"time"

	"hirafic/handlers"
	"hirafic/middleware"
	"hirafic/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers registration, login and profile endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/register", hb.RegisterHandler)
	r.POST("/login", hb.AuthenticateHandler)

	client := r.Group("/client")
	client.Use(middleware.AuthRequired(), middleware.RequireRole(models.RoleClient))
	{
		client.GET("", hb.ClientProfileHandler)
		client.POST("", hb.ClientProfileHandler)
	}

	artisan := r.Group("/artisan")
	artisan.Use(middleware.AuthRequired(), middleware.RequireRole(models.RoleArtisan))
	{
		artisan.GET("", hb.ArtisanProfileHandler)
		artisan.POST("", hb.ArtisanProfileHandler)
	}
}

// RegisterDiscoveryRoutes registers the provider discovery endpoints.
func RegisterDiscoveryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := r.Group("")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/all_artisans", hb.ListArtisansHandler)
		auth.POST("/nearby_artisans", middleware.RequireRole(models.RoleClient), hb.NearbyArtisansHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
// /book_artisan is kept as an alias for the original front-end.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := r.Group("")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/bookings", hb.ListBookingsHandler)

		clientOnly := middleware.RequireRole(models.RoleClient)
		auth.POST("/bookings", clientOnly, hb.CreateBookingHandler)
		auth.POST("/book_artisan", clientOnly, hb.CreateBookingHandler)
		auth.POST("/reports", clientOnly, hb.FileReportHandler)
		auth.GET("/report", clientOnly, hb.FileReportHandler)

		artisanOnly := middleware.RequireRole(models.RoleArtisan)
		auth.PUT("/bookings", artisanOnly, hb.TransitionBookingHandler)
		auth.PUT("/book_artisan", artisanOnly, hb.TransitionBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Hirafic"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAccountRoutes(r, hb)
	RegisterDiscoveryRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
