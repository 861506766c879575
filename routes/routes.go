package routes

import (
	"net/http"
	"time"

	"tripweaver/handlers"
	"tripweaver/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterTripRoutes registers the conversational trip-planning endpoints.
func RegisterTripRoutes(r *gin.Engine, h *handlers.TripHandler) {
	api := r.Group("/api/v1")
	{
		api.POST("/chat", h.ChatHandler)
		api.GET("/itinerary/:sessionId", h.GetItineraryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.TripHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterTripRoutes(r, h)
}
