package api

import (
	"net/http"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

// AchievementHandler holds the achievement service dependency.
type AchievementHandler struct {
	achievementService service.AchievementService
}

// NewAchievementHandler creates a new AchievementHandler.
func NewAchievementHandler(achievementService service.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService}
}

// AchievementResponse is the DTO for an earned badge.
type AchievementResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	DateEarned  time.Time `json:"dateEarned"`
}

// MapAchievementsToResponse converts domain achievements to DTOs.
func MapAchievementsToResponse(achievements []domain.Achievement) []AchievementResponse {
	responses := make([]AchievementResponse, len(achievements))
	for i, a := range achievements {
		responses[i] = AchievementResponse{
			ID:          a.ID.Hex(),
			Code:        a.Code,
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
			DateEarned:  a.DateEarned,
		}
	}
	return responses
}

// GetAchievements handles GET /achievements.
func (h *AchievementHandler) GetAchievements(c *gin.Context) {
	achievements, err := h.achievementService.GetAchievements(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve achievements.")
		return
	}
	c.JSON(http.StatusOK, MapAchievementsToResponse(achievements))
}
