package routes

import (
	"net/http"
	"time"

	"sweepstack/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the route tables need.
type HandlerBundle struct {
	Booking   *handlers.BookingHandler
	RateSheet *handlers.RateSheetHandler
}

// RegisterQuoteRoutes registers the pricing preview endpoint.
func RegisterQuoteRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/api/quotes", hb.Booking.QuoteHandler)
}

// RegisterBookingRoutes registers all endpoints for the booking core.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("", hb.Booking.ListBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.PATCH("/:id", hb.Booking.UpdateBookingHandler)

		// Cleaner workflow.
		api.PATCH("/:id/claim", hb.Booking.ClaimBookingHandler)
		api.PATCH("/:id/start", hb.Booking.StartBookingHandler)
		api.PATCH("/:id/complete", hb.Booking.CompleteBookingHandler)
	}
}

// RegisterSettingsRoutes registers the rate-sheet collaborator surface.
func RegisterSettingsRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/settings")
	{
		api.GET("/ratesheet", hb.RateSheet.GetRateSheetHandler)
		api.PUT("/ratesheet", hb.RateSheet.PublishRateSheetHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterQuoteRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterSettingsRoutes(r, hb)
}
