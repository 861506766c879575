// File: handlers/trip.go
package handlers

import (
	"errors"
	"net/http"

	itineraryRepo "tripweaver/database/repository/itinerary"
	"tripweaver/models"
	"tripweaver/services/trip"
	"tripweaver/utils"

	"github.com/gin-gonic/gin"
)

// TripHandler exposes the trip-planning service over HTTP.
type TripHandler struct {
	Service trip.PlannerService
}

// NewTripHandler returns a handler bound to the given service.
func NewTripHandler(service trip.PlannerService) *TripHandler {
	return &TripHandler{Service: service}
}

// ChatHandler submits one user message for a session and returns the
// assistant's reply plus the finished flag.
func (h *TripHandler) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	resp, err := h.Service.SubmitMessage(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, trip.ErrMissingFields) {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to process message", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetItineraryHandler returns the persisted final itinerary document for a
// session id, or 404 when none has been produced yet.
func (h *TripHandler) GetItineraryHandler(c *gin.Context) {
	sessionID := c.Param("sessionId")

	document, err := h.Service.GetItinerary(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, itineraryRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "trip plan not found", sessionID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch itinerary", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "itinerary": document})
}
