package api

import (
	"errors"
	"net/http"
	"time"

	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

// EventHandler holds the event service dependency.
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// SetEventRequest defines the expected JSON for setting the countdown.
type SetEventRequest struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required"` // RFC 3339 or "2006-01-02"
}

// SetEvent handles PUT /event.
func (h *EventHandler) SetEvent(c *gin.Context) {
	var req SetEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		// Date-only input counts down to midnight of that day.
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid date format.")
			return
		}
	}

	event, err := h.eventService.SetEvent(c.Request.Context(), req.Name, date)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, event)
}

// GetCountdown handles GET /event.
func (h *EventHandler) GetCountdown(c *gin.Context) {
	countdown, err := h.eventService.GetCountdown(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrEventNotSet) {
			abortWithError(c, http.StatusNotFound, "No countdown event is set.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to compute countdown.")
		}
		return
	}
	c.JSON(http.StatusOK, countdown)
}

// ClearEvent handles DELETE /event.
func (h *EventHandler) ClearEvent(c *gin.Context) {
	if err := h.eventService.ClearEvent(c.Request.Context()); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to clear countdown event.")
		return
	}
	c.Status(http.StatusNoContent)
}
