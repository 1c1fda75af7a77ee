package api

import (
	"errors"
	"net/http"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GoalHandler holds the goal service dependency.
type GoalHandler struct {
	goalService service.GoalService
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateGoalRequest defines the expected JSON for creating a goal.
type CreateGoalRequest struct {
	Type        string  `json:"type" binding:"required"`
	Target      float64 `json:"target" binding:"required"`
	Period      string  `json:"period" binding:"required"`
	WorkoutType string  `json:"workoutType" binding:"omitempty"` // specific_type goals only
	Category    string  `json:"category" binding:"omitempty"`    // category goals only
}

// GoalViewResponse is the display-ready DTO for a goal with progress.
type GoalViewResponse struct {
	ID                  string     `json:"id"`
	Type                string     `json:"type"`
	Target              float64    `json:"target"`
	Period              string     `json:"period"`
	WorkoutType         string     `json:"workoutType,omitempty"`
	Category            string     `json:"category,omitempty"`
	StartDate           time.Time  `json:"startDate"`
	Completed           bool       `json:"completed"`
	CompletionDate      *time.Time `json:"completionDate,omitempty"`
	Title               string     `json:"title"`
	Progress            float64    `json:"progress"`
	ProgressPercentage  float64    `json:"progressPercentage"`
	Remaining           float64    `json:"remaining"`
	Unit                string     `json:"unit"`
	TimeRemaining       string     `json:"timeRemaining"`
	MotivationalMessage string     `json:"motivationalMessage,omitempty"`
}

// GoalListResponse splits views the way the goals page renders them.
type GoalListResponse struct {
	Active    []GoalViewResponse `json:"active"`
	Completed []GoalViewResponse `json:"completed"`
}

// MapGoalViewToResponse converts a service.GoalView to its DTO.
func MapGoalViewToResponse(view *service.GoalView) GoalViewResponse {
	resp := GoalViewResponse{
		ID:                  view.Goal.ID.Hex(),
		Type:                string(view.Goal.Type),
		Target:              view.Goal.Target,
		Period:              string(view.Goal.Period),
		StartDate:           view.Goal.StartDate,
		Completed:           view.Goal.Completed,
		CompletionDate:      view.Goal.CompletionDate,
		Title:               view.Title,
		Progress:            view.Progress,
		ProgressPercentage:  view.ProgressPercentage,
		Remaining:           view.Remaining,
		Unit:                view.Unit,
		TimeRemaining:       view.TimeRemaining,
		MotivationalMessage: view.MotivationalMessage,
	}
	if view.Goal.WorkoutType != nil {
		resp.WorkoutType = string(*view.Goal.WorkoutType)
	}
	if view.Goal.Category != nil {
		resp.Category = string(*view.Goal.Category)
	}
	return resp
}

// --- Handler Methods ---

// CreateGoal handles POST /goals.
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	var workoutType *domain.WorkoutType
	if req.WorkoutType != "" {
		wt := domain.WorkoutType(req.WorkoutType)
		workoutType = &wt
	}
	var category *domain.Category
	if req.Category != "" {
		cat := domain.Category(req.Category)
		category = &cat
	}

	view, err := h.goalService.CreateGoal(
		c.Request.Context(),
		domain.GoalType(req.Type),
		req.Target,
		domain.Period(req.Period),
		workoutType,
		category,
	)
	if err != nil {
		if errors.Is(err, service.ErrGoalValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create goal.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapGoalViewToResponse(view))
}

// GetGoals handles GET /goals, returning active and completed views.
func (h *GoalHandler) GetGoals(c *gin.Context) {
	views, err := h.goalService.GetGoalViews(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve goals.")
		return
	}

	resp := GoalListResponse{
		Active:    []GoalViewResponse{},
		Completed: []GoalViewResponse{},
	}
	for i := range views {
		mapped := MapGoalViewToResponse(&views[i])
		if views[i].Goal.Completed {
			resp.Completed = append(resp.Completed, mapped)
		} else {
			resp.Active = append(resp.Active, mapped)
		}
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteGoal handles DELETE /goals/:id.
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid goal ID format.")
		return
	}

	err = h.goalService.DeleteGoal(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGoalNotFound) {
			abortWithError(c, http.StatusNotFound, "Goal not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete goal.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
