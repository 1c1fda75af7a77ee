package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutType identifies the kind of exercise session.
type WorkoutType string

const (
	WorkoutRunning  WorkoutType = "running"
	WorkoutCycling  WorkoutType = "cycling"
	WorkoutSwimming WorkoutType = "swimming"
	WorkoutStrength WorkoutType = "strength"
	WorkoutYoga     WorkoutType = "yoga"
	WorkoutHIIT     WorkoutType = "hiit"
)

// Category groups workout types for category-based goals.
type Category string

const (
	CategoryCardio      Category = "cardio"
	CategoryStrength    Category = "strength"
	CategoryFlexibility Category = "flexibility"
)

// Workout represents a single logged exercise session.
// Category is derived from Type at creation time and stored redundantly
// so category goals can filter without re-deriving.
type Workout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type      WorkoutType        `bson:"type" json:"type"`
	Category  Category           `bson:"category" json:"category"`
	Date      time.Time          `bson:"date" json:"date"`         // normalized to midnight UTC
	Duration  int                `bson:"duration" json:"duration"` // minutes
	Calories  int                `bson:"calories" json:"calories"`
	Distance  *float64           `bson:"distance,omitempty" json:"distance,omitempty"` // miles, distance-capable types only
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// workoutTypeConfig carries the per-type defaults used when logging.
type workoutTypeConfig struct {
	requiresDistance  bool
	defaultDuration   int
	caloriesPerMinute int
	category          Category
}

var workoutTypes = map[WorkoutType]workoutTypeConfig{
	WorkoutRunning:  {requiresDistance: true, defaultDuration: 30, caloriesPerMinute: 10, category: CategoryCardio},
	WorkoutCycling:  {requiresDistance: true, defaultDuration: 45, caloriesPerMinute: 8, category: CategoryCardio},
	WorkoutSwimming: {requiresDistance: true, defaultDuration: 30, caloriesPerMinute: 9, category: CategoryCardio},
	WorkoutStrength: {requiresDistance: false, defaultDuration: 45, caloriesPerMinute: 7, category: CategoryStrength},
	WorkoutYoga:     {requiresDistance: false, defaultDuration: 60, caloriesPerMinute: 4, category: CategoryFlexibility},
	WorkoutHIIT:     {requiresDistance: false, defaultDuration: 30, caloriesPerMinute: 12, category: CategoryCardio},
}

// IsValidWorkoutType reports whether t is one of the known workout types.
func IsValidWorkoutType(t WorkoutType) bool {
	_, ok := workoutTypes[t]
	return ok
}

// IsValidCategory reports whether c is one of the known categories.
func IsValidCategory(c Category) bool {
	return c == CategoryCardio || c == CategoryStrength || c == CategoryFlexibility
}

// CategoryOf returns the category a workout type belongs to.
// Unknown types map to the empty category.
func CategoryOf(t WorkoutType) Category {
	return workoutTypes[t].category
}

// RequiresDistance reports whether workouts of this type carry a distance.
func RequiresDistance(t WorkoutType) bool {
	return workoutTypes[t].requiresDistance
}

// DefaultDuration returns the suggested duration (minutes) for a type.
func DefaultDuration(t WorkoutType) int {
	return workoutTypes[t].defaultDuration
}

// EstimatedCalories estimates the calorie burn for a session of the
// given type and duration. Used when a logged workout omits calories.
func EstimatedCalories(t WorkoutType, durationMinutes int) int {
	return workoutTypes[t].caloriesPerMinute * durationMinutes
}

// DistanceValue returns the workout's distance, treating an absent
// distance as 0 so aggregation never fails on a malformed record.
func (w *Workout) DistanceValue() float64 {
	if w.Distance == nil {
		return 0
	}
	return *w.Distance
}

// DateOnly truncates t to midnight UTC. All date comparisons in the
// goal engine run on values normalized through this single helper to
// avoid off-by-one-day membership errors.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
