package api

import (
	"net/http"
	"strconv"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the notification event stream the
// frontend polls for toasts.
type NotificationHandler struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationRepo repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepo: notificationRepo}
}

// NotificationResponse is the DTO for a notification event.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	GoalID    string    `json:"goalId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// MapNotificationsToResponse converts notifications to DTOs.
func MapNotificationsToResponse(notifications []domain.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = NotificationResponse{
			ID:        n.ID.Hex(),
			Kind:      string(n.Kind),
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		}
		if n.GoalID != nil {
			responses[i].GoalID = n.GoalID.Hex()
		}
	}
	return responses
}

// GetNotifications handles GET /notifications?limit=N.
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	limit := int64(20)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			abortWithError(c, http.StatusBadRequest, "Invalid limit parameter.")
			return
		}
		limit = parsed
	}

	notifications, err := h.notificationRepo.GetRecent(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve notifications.")
		return
	}
	c.JSON(http.StatusOK, MapNotificationsToResponse(notifications))
}
