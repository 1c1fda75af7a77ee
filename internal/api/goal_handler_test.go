package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubGoalService returns canned goal views.
type stubGoalService struct {
	created *service.GoalView
	views   []service.GoalView
	err     error
}

func (s *stubGoalService) CreateGoal(ctx context.Context, goalType domain.GoalType, target float64, period domain.Period, workoutType *domain.WorkoutType, category *domain.Category) (*service.GoalView, error) {
	return s.created, s.err
}

func (s *stubGoalService) GetGoalViews(ctx context.Context) ([]service.GoalView, error) {
	return s.views, s.err
}

func (s *stubGoalService) DeleteGoal(ctx context.Context, goalID primitive.ObjectID) error {
	return s.err
}

func (s *stubGoalService) EvaluateActiveGoals(ctx context.Context) error {
	return nil
}

func (s *stubGoalService) ReevaluateAllGoals(ctx context.Context) error {
	return nil
}

func newGoalTestRouter(svc service.GoalService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewGoalHandler(svc)
	router.POST("/goals", handler.CreateGoal)
	router.GET("/goals", handler.GetGoals)
	router.DELETE("/goals/:id", handler.DeleteGoal)
	return router
}

func TestCreateGoalHandler(t *testing.T) {
	t.Run("valid request returns 201 with the service-built view", func(t *testing.T) {
		created := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)
		goal := domain.Goal{
			ID:        primitive.NewObjectID(),
			Type:      domain.GoalDistance,
			Target:    10,
			Period:    domain.PeriodWeek,
			StartDate: created,
		}
		view := service.BuildGoalView(&goal, 0, created)
		svc := &stubGoalService{created: &view}
		router := newGoalTestRouter(svc)

		body := `{"type":"distance","target":10,"period":"week"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/goals", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp GoalViewResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "10 miles in a week", resp.Title)
		assert.Equal(t, 0.0, resp.Progress)
		assert.Equal(t, 10.0, resp.Remaining)
		assert.False(t, resp.Completed)
		// The handler echoes the service's clocked view untouched.
		assert.Equal(t, "7 days remaining", resp.TimeRemaining)
	})

	t.Run("service validation failure returns 400", func(t *testing.T) {
		router := newGoalTestRouter(&stubGoalService{err: service.ErrGoalValidation})

		body := `{"type":"distance","target":-1,"period":"week"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/goals", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetGoalsHandler(t *testing.T) {
	now := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)
	active := domain.Goal{ID: primitive.NewObjectID(), Type: domain.GoalWorkouts, Target: 5, Period: domain.PeriodWeek, StartDate: now}
	completed := domain.Goal{ID: primitive.NewObjectID(), Type: domain.GoalCalories, Target: 500, Period: domain.PeriodWeek, StartDate: now, Completed: true}

	svc := &stubGoalService{views: []service.GoalView{
		service.BuildGoalView(&active, 2, now),
		service.BuildGoalView(&completed, 500, now),
	}}
	router := newGoalTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/goals", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp GoalListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Active, 1)
	require.Len(t, resp.Completed, 1)
	assert.Equal(t, "5 workouts in a week", resp.Active[0].Title)
	assert.Equal(t, "500 calories in a week", resp.Completed[0].Title)
}

func TestDeleteGoalHandler(t *testing.T) {
	t.Run("unknown goal returns 404", func(t *testing.T) {
		router := newGoalTestRouter(&stubGoalService{err: service.ErrGoalNotFound})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/goals/"+primitive.NewObjectID().Hex(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		router := newGoalTestRouter(&stubGoalService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/goals/oops", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
