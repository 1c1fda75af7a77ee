package service

import (
	"time"

	"fittrack/internal/domain"
)

// This file is the single home of the goal-progress rules. Every
// trigger site (workout logged, workout deleted, periodic re-scan,
// presentation) calls these same functions; the rules exist nowhere
// else.

// distanceCapable is the set of workout types that count toward
// distance goals.
var distanceCapable = map[domain.WorkoutType]bool{
	domain.WorkoutRunning:  true,
	domain.WorkoutCycling:  true,
	domain.WorkoutSwimming: true,
}

// PeriodEnd returns the last day of a goal's window. A week runs 7
// calendar days from the start; a month advances the month field by
// one, clamping the day to the target month's length (Jan 31 -> Feb 28).
func PeriodEnd(startDate time.Time, period domain.Period) time.Time {
	start := domain.DateOnly(startDate)
	switch period {
	case domain.PeriodWeek:
		return start.AddDate(0, 0, 7)
	case domain.PeriodMonth:
		return addMonthClamped(start)
	default:
		return start
	}
}

// addMonthClamped advances one calendar month. time.AddDate normalizes
// Jan 31 + 1 month to Mar 2/3, so the day is clamped explicitly.
func addMonthClamped(t time.Time) time.Time {
	year, month, day := t.Date()
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfNext.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, 0, 0, 0, 0, time.UTC)
}

// IsWithinPeriod reports whether date falls inside the goal window,
// inclusive on both ends.
func IsWithinPeriod(date, startDate time.Time, period domain.Period) bool {
	d := domain.DateOnly(date)
	start := domain.DateOnly(startDate)
	end := PeriodEnd(startDate, period)
	return !d.Before(start) && !d.After(end)
}

// IsRelevant decides whether a single workout counts toward a goal.
// Workouts without a date never count; workouts outside the goal
// window never count; otherwise eligibility dispatches on goal type.
// Unrecognized goal types fail soft.
func IsRelevant(workout *domain.Workout, goal *domain.Goal) bool {
	if workout.Date.IsZero() {
		return false
	}
	if !IsWithinPeriod(workout.Date, goal.StartDate, goal.Period) {
		return false
	}

	switch goal.Type {
	case domain.GoalDistance:
		return distanceCapable[workout.Type]
	case domain.GoalCalories, domain.GoalWorkouts, domain.GoalDuration:
		return true
	case domain.GoalSpecificType:
		return goal.WorkoutType != nil && workout.Type == *goal.WorkoutType
	case domain.GoalCategory:
		return goal.Category != nil && workout.Category == *goal.Category
	default:
		return false
	}
}

// Progress reduces the workout collection to the goal's current
// progress value. Missing numeric fields aggregate as 0; a single
// malformed record never fails the whole aggregation.
func Progress(goal *domain.Goal, workouts []domain.Workout) float64 {
	var relevant []domain.Workout
	for _, w := range workouts {
		if IsRelevant(&w, goal) {
			relevant = append(relevant, w)
		}
	}

	switch goal.Type {
	case domain.GoalDistance:
		var sum float64
		for _, w := range relevant {
			sum += w.DistanceValue()
		}
		return sum
	case domain.GoalCalories:
		var sum float64
		for _, w := range relevant {
			sum += float64(w.Calories)
		}
		return sum
	case domain.GoalWorkouts:
		return float64(len(relevant))
	case domain.GoalDuration:
		var sum float64
		for _, w := range relevant {
			sum += float64(w.Duration)
		}
		return sum
	case domain.GoalSpecificType:
		// Re-checked even though the filter already matched the type.
		var count int
		for _, w := range relevant {
			if goal.WorkoutType != nil && w.Type == *goal.WorkoutType {
				count++
			}
		}
		return float64(count)
	case domain.GoalCategory:
		var count int
		for _, w := range relevant {
			if goal.Category != nil && w.Category == *goal.Category {
				count++
			}
		}
		return float64(count)
	default:
		return 0
	}
}
