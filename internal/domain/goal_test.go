package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalValidate(t *testing.T) {
	running := WorkoutRunning
	cardio := CategoryCardio
	base := Goal{
		Type:      GoalCalories,
		Target:    500,
		Period:    PeriodWeek,
		StartDate: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name    string
		mutate  func(g *Goal)
		wantErr error
	}{
		{
			name:   "valid calories goal",
			mutate: func(g *Goal) {},
		},
		{
			name: "valid specific_type goal",
			mutate: func(g *Goal) {
				g.Type = GoalSpecificType
				g.WorkoutType = &running
			},
		},
		{
			name: "valid category goal",
			mutate: func(g *Goal) {
				g.Type = GoalCategory
				g.Category = &cardio
			},
		},
		{
			name:    "zero target",
			mutate:  func(g *Goal) { g.Target = 0 },
			wantErr: ErrGoalTargetNotPositive,
		},
		{
			name:    "negative target",
			mutate:  func(g *Goal) { g.Target = -5 },
			wantErr: ErrGoalTargetNotPositive,
		},
		{
			name:    "unknown goal type",
			mutate:  func(g *Goal) { g.Type = "streak" },
			wantErr: ErrGoalInvalidType,
		},
		{
			name:    "unknown period",
			mutate:  func(g *Goal) { g.Period = "year" },
			wantErr: ErrGoalInvalidPeriod,
		},
		{
			name:    "specific_type without workout type",
			mutate:  func(g *Goal) { g.Type = GoalSpecificType },
			wantErr: ErrGoalWorkoutTypeMissing,
		},
		{
			name: "specific_type with unknown workout type",
			mutate: func(g *Goal) {
				g.Type = GoalSpecificType
				bogus := WorkoutType("parkour")
				g.WorkoutType = &bogus
			},
			wantErr: ErrGoalWorkoutTypeMissing,
		},
		{
			name:    "category goal without category",
			mutate:  func(g *Goal) { g.Type = GoalCategory },
			wantErr: ErrGoalCategoryMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := base
			tt.mutate(&goal)
			err := goal.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	t.Run("workout type on a plain goal is rejected", func(t *testing.T) {
		goal := base
		goal.WorkoutType = &running
		assert.Error(t, goal.Validate())
	})

	t.Run("category on a specific_type goal is rejected", func(t *testing.T) {
		goal := base
		goal.Type = GoalSpecificType
		goal.WorkoutType = &running
		goal.Category = &cardio
		assert.Error(t, goal.Validate())
	})
}

func TestGoalLifecycle(t *testing.T) {
	goal := Goal{
		Type:      GoalWorkouts,
		Target:    3,
		Period:    PeriodWeek,
		StartDate: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
	}

	now := time.Date(2026, time.March, 12, 15, 4, 5, 0, time.UTC)
	goal.MarkCompleted(now)
	require.True(t, goal.Completed)
	require.NotNil(t, goal.CompletionDate)
	assert.Equal(t, now, *goal.CompletionDate)

	goal.Reopen()
	assert.False(t, goal.Completed)
	assert.Nil(t, goal.CompletionDate)
}
