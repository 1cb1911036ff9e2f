package routes

import (
	"github.com/gin-gonic/gin"

	"clinovia/handlers"
	"clinovia/middleware"
)

// RegisterBookingRoutes registers all endpoints of the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, bundle *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	booking.Use(middleware.JWTAuthPatientMiddleware())
	{
		booking.POST("/session", bundle.Booking.StartSession)
		booking.GET("/session/:sessionID", bundle.Booking.GetSession)
		booking.PUT("/session/:sessionID", bundle.Booking.UpdateSelection)
		booking.GET("/session/:sessionID/availability", bundle.Booking.WeekAvailability)
		booking.POST("/session/:sessionID/advance", bundle.Booking.Advance)
		booking.POST("/session/:sessionID/retreat", bundle.Booking.Retreat)
		booking.POST("/session/:sessionID/confirm", bundle.Booking.Confirm)
		booking.DELETE("/session/:sessionID", bundle.Booking.Cancel)
	}
}
