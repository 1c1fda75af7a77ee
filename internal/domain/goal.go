package domain

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GoalType determines what a goal measures and how progress aggregates.
type GoalType string

const (
	GoalDistance     GoalType = "distance"      // sum of miles over distance-capable workouts
	GoalCalories     GoalType = "calories"      // sum of calories over all workouts
	GoalWorkouts     GoalType = "workouts"      // count of all workouts
	GoalDuration     GoalType = "duration"      // sum of minutes over all workouts
	GoalSpecificType GoalType = "specific_type" // count of workouts of one type
	GoalCategory     GoalType = "category"      // count of workouts in one category
)

// Period is the recurrence window length starting at a goal's StartDate.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Goal is a target the user wants to reach within a recurring period.
// WorkoutType is present iff Type == specific_type; Category is present
// iff Type == category. Completed and CompletionDate are set together
// or neither.
type Goal struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type           GoalType           `bson:"type" json:"type"`
	Target         float64            `bson:"target" json:"target"`
	Period         Period             `bson:"period" json:"period"`
	WorkoutType    *WorkoutType       `bson:"workoutType,omitempty" json:"workoutType,omitempty"`
	Category       *Category          `bson:"category,omitempty" json:"category,omitempty"`
	StartDate      time.Time          `bson:"startDate" json:"startDate"` // normalized to midnight UTC
	Completed      bool               `bson:"completed" json:"completed"`
	CompletionDate *time.Time         `bson:"completionDate,omitempty" json:"completionDate,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

var (
	ErrGoalTargetNotPositive  = errors.New("goal target must be positive")
	ErrGoalInvalidType        = errors.New("unknown goal type")
	ErrGoalInvalidPeriod      = errors.New("goal period must be week or month")
	ErrGoalWorkoutTypeMissing = errors.New("specific_type goals require a workout type")
	ErrGoalCategoryMissing    = errors.New("category goals require a category")
)

// IsValidGoalType reports whether t is one of the known goal types.
func IsValidGoalType(t GoalType) bool {
	switch t {
	case GoalDistance, GoalCalories, GoalWorkouts, GoalDuration, GoalSpecificType, GoalCategory:
		return true
	}
	return false
}

// Validate checks the goal definition invariants. The lifecycle manager
// never receives a goal that fails validation.
func (g *Goal) Validate() error {
	if !IsValidGoalType(g.Type) {
		return fmt.Errorf("%w: %q", ErrGoalInvalidType, g.Type)
	}
	if g.Period != PeriodWeek && g.Period != PeriodMonth {
		return fmt.Errorf("%w: %q", ErrGoalInvalidPeriod, g.Period)
	}
	if g.Target <= 0 {
		return ErrGoalTargetNotPositive
	}
	switch g.Type {
	case GoalSpecificType:
		if g.WorkoutType == nil || !IsValidWorkoutType(*g.WorkoutType) {
			return ErrGoalWorkoutTypeMissing
		}
		if g.Category != nil {
			return errors.New("category must not be set on a specific_type goal")
		}
	case GoalCategory:
		if g.Category == nil || !IsValidCategory(*g.Category) {
			return ErrGoalCategoryMissing
		}
		if g.WorkoutType != nil {
			return errors.New("workout type must not be set on a category goal")
		}
	default:
		if g.WorkoutType != nil || g.Category != nil {
			return errors.New("workout type and category are only valid for specific_type/category goals")
		}
	}
	return nil
}

// MarkCompleted flips the goal to the completed state, timestamping it.
func (g *Goal) MarkCompleted(now time.Time) {
	g.Completed = true
	t := now.UTC()
	g.CompletionDate = &t
}

// Reopen reverts a completed goal to active. Used when a workout
// deletion drops recomputed progress below the target.
func (g *Goal) Reopen() {
	g.Completed = false
	g.CompletionDate = nil
}
