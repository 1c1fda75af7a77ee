package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"fittrack/internal/domain"
)

// GoalView is the display-ready projection of a goal and its computed
// progress. Building a view never mutates the goal.
type GoalView struct {
	Goal                domain.Goal `json:"goal"`
	Title               string      `json:"title"`
	Progress            float64     `json:"progress"`
	ProgressPercentage  float64     `json:"progressPercentage"`
	Remaining           float64     `json:"remaining"`
	Unit                string      `json:"unit"`
	TimeRemaining       string      `json:"timeRemaining"`
	MotivationalMessage string      `json:"motivationalMessage,omitempty"`
}

// BuildGoalView derives every display string for a goal from its
// computed progress at the given instant.
func BuildGoalView(goal *domain.Goal, progress float64, now time.Time) GoalView {
	pct := ProgressPercentage(progress, goal.Target)
	return GoalView{
		Goal:                *goal,
		Title:               GoalTitle(goal),
		Progress:            progress,
		ProgressPercentage:  pct,
		Remaining:           RemainingAmount(progress, goal.Target),
		Unit:                UnitLabel(goal.Type),
		TimeRemaining:       TimeRemainingLabel(goal, now),
		MotivationalMessage: MotivationalMessage(pct),
	}
}

// GoalTitle renders a human-readable label combining target, unit and
// period, e.g. "10 miles in a week" or "5 Running workouts in a month".
func GoalTitle(goal *domain.Goal) string {
	target := formatAmount(goal.Target)
	base := fmt.Sprintf("%s %s", target, UnitLabel(goal.Type))
	switch goal.Type {
	case domain.GoalSpecificType:
		if goal.WorkoutType != nil {
			base = fmt.Sprintf("%s %s workouts", target, capitalizeFirst(string(*goal.WorkoutType)))
		}
	case domain.GoalCategory:
		if goal.Category != nil {
			base = fmt.Sprintf("%s %s workouts", target, capitalizeFirst(string(*goal.Category)))
		}
	}
	return fmt.Sprintf("%s in a %s", base, goal.Period)
}

// UnitLabel maps a goal type to the unit shown next to its numbers.
func UnitLabel(goalType domain.GoalType) string {
	switch goalType {
	case domain.GoalDistance:
		return "miles"
	case domain.GoalCalories:
		return "calories"
	case domain.GoalWorkouts:
		return "workouts"
	case domain.GoalDuration:
		return "minutes"
	case domain.GoalSpecificType, domain.GoalCategory:
		return "workouts"
	default:
		return ""
	}
}

// ProgressPercentage returns progress as a percentage of target,
// clamped to 100. A non-positive target yields 0 rather than dividing
// by zero (targets are validated positive at creation anyway).
func ProgressPercentage(progress, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(progress/target*100, 100)
}

// RemainingAmount returns how much is left to reach the target, never
// negative.
func RemainingAmount(progress, target float64) float64 {
	return math.Max(target-progress, 0)
}

// TimeRemainingLabel renders the days until the goal window closes.
func TimeRemainingLabel(goal *domain.Goal, now time.Time) string {
	end := PeriodEnd(goal.StartDate, goal.Period)
	days := int(end.Sub(domain.DateOnly(now)).Hours() / 24)

	switch {
	case days < 0:
		return "Time expired"
	case days == 0:
		return "Last day"
	case days == 1:
		return "1 day remaining"
	default:
		return fmt.Sprintf("%d days remaining", days)
	}
}

// MotivationalMessage returns the encouragement tier for a progress
// percentage. Boundaries are inclusive: exactly 75% is "almost there".
func MotivationalMessage(progressPercentage float64) string {
	switch {
	case progressPercentage >= 100:
		return "🎉 Congratulations! You've reached your goal!"
	case progressPercentage >= 75:
		return "🔥 Almost there! Keep pushing!"
	case progressPercentage >= 50:
		return "💪 Halfway there! You're doing great!"
	case progressPercentage >= 25:
		return "👊 Great start! Keep up the momentum!"
	default:
		return ""
	}
}

// formatAmount renders a target without a trailing ".0" for whole numbers.
func formatAmount(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%g", v)
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
