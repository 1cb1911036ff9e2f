package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"clinovia/handlers"
	"clinovia/middleware"
)

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bundle *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", bundle.Auth.Register)
			auth.POST("/login", bundle.Auth.Login)
		}

		api.GET("/specialties", bundle.Booking.ListSpecialties)
		api.GET("/specialties/:specialtyID/doctors", bundle.Booking.ListDoctors)

		authed := api.Group("")
		authed.Use(middleware.JWTAuthPatientMiddleware())
		{
			authed.GET("/profile", bundle.Profile.GetProfile)
			authed.PUT("/profile", bundle.Profile.UpdateProfile)

			authed.GET("/appointments", bundle.Booking.ListAppointments)
			authed.GET("/records", bundle.Records.ListRecords)
			authed.POST("/payments/preference", bundle.Payment.CreatePreference)
		}
	}

	RegisterBookingRoutes(r, bundle)
}
