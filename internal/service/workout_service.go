package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound   = errors.New("workout not found")
	ErrWorkoutValidation = errors.New("workout validation failed")
)

// WorkoutInput carries the fields of the logging form.
type WorkoutInput struct {
	Type     domain.WorkoutType
	Date     time.Time
	Duration int      // minutes; 0 falls back to the type default
	Calories int      // 0 falls back to the per-type estimate
	Distance *float64 // required to be absent for non-distance types
}

// WorkoutService owns the workout collection. Logging and deleting
// drive goal re-evaluation and achievement checks.
type WorkoutService interface {
	LogWorkout(ctx context.Context, input WorkoutInput) (*domain.Workout, error)
	GetWorkouts(ctx context.Context) ([]domain.Workout, error)
	DeleteWorkout(ctx context.Context, workoutID primitive.ObjectID) error
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo        repository.WorkoutRepository
	goalService        GoalService
	achievementService AchievementService
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(
	workoutRepo repository.WorkoutRepository,
	goalService GoalService,
	achievementService AchievementService,
) WorkoutService {
	return &workoutService{
		workoutRepo:        workoutRepo,
		goalService:        goalService,
		achievementService: achievementService,
	}
}

// LogWorkout validates the form input, derives the stored category,
// fills duration/calorie defaults from the type config, persists the
// workout, then re-evaluates active goals and achievements.
func (s *workoutService) LogWorkout(ctx context.Context, input WorkoutInput) (*domain.Workout, error) {
	if !domain.IsValidWorkoutType(input.Type) {
		return nil, fmt.Errorf("%w: unknown workout type %q", ErrWorkoutValidation, input.Type)
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrWorkoutValidation)
	}
	if input.Duration < 0 || input.Calories < 0 {
		return nil, fmt.Errorf("%w: duration and calories must be non-negative", ErrWorkoutValidation)
	}
	if input.Distance != nil {
		if !domain.RequiresDistance(input.Type) {
			return nil, fmt.Errorf("%w: %s workouts do not carry a distance", ErrWorkoutValidation, input.Type)
		}
		if *input.Distance < 0 {
			return nil, fmt.Errorf("%w: distance must be non-negative", ErrWorkoutValidation)
		}
	}

	duration := input.Duration
	if duration == 0 {
		duration = domain.DefaultDuration(input.Type)
	}
	calories := input.Calories
	if calories == 0 {
		calories = domain.EstimatedCalories(input.Type, duration)
	}

	workout := &domain.Workout{
		Type:     input.Type,
		Category: domain.CategoryOf(input.Type),
		Date:     domain.DateOnly(input.Date),
		Duration: duration,
		Calories: calories,
	}
	if domain.RequiresDistance(input.Type) {
		distance := 0.0
		if input.Distance != nil {
			distance = *input.Distance
		}
		workout.Distance = &distance
	}

	id, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	workout.ID = id

	// The workout is saved regardless of what evaluation does next.
	if err := s.goalService.EvaluateActiveGoals(ctx); err != nil {
		log.Printf("ERROR: goal evaluation after logging workout %s: %v", id.Hex(), err)
	}
	if err := s.achievementService.CheckAndAward(ctx); err != nil {
		log.Printf("ERROR: achievement check after logging workout %s: %v", id.Hex(), err)
	}

	return workout, nil
}

// GetWorkouts returns the full workout history, newest first.
func (s *workoutService) GetWorkouts(ctx context.Context) ([]domain.Workout, error) {
	return s.workoutRepo.GetAll(ctx)
}

// DeleteWorkout removes a workout and recomputes every goal, since the
// deleted workout may invalidate a prior completion.
func (s *workoutService) DeleteWorkout(ctx context.Context, workoutID primitive.ObjectID) error {
	err := s.workoutRepo.Delete(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}

	if err := s.goalService.ReevaluateAllGoals(ctx); err != nil {
		log.Printf("ERROR: goal re-evaluation after deleting workout %s: %v", workoutID.Hex(), err)
	}
	return nil
}
