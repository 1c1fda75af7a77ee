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
	ErrGoalNotFound       = errors.New("goal not found")
	ErrGoalValidation     = errors.New("goal validation failed")
	ErrWorkoutTypeUnknown = errors.New("unknown workout type")
)

// GoalService owns goal records and their Active -> Completed
// lifecycle. All progress math goes through the shared functions in
// progress.go; the service only decides when to evaluate and what to
// persist.
type GoalService interface {
	// CreateGoal returns the stored goal as a display-ready view with
	// zero progress, clocked consistently with GetGoalViews.
	CreateGoal(ctx context.Context, goalType domain.GoalType, target float64, period domain.Period, workoutType *domain.WorkoutType, category *domain.Category) (*GoalView, error)
	GetGoalViews(ctx context.Context) ([]GoalView, error)
	DeleteGoal(ctx context.Context, goalID primitive.ObjectID) error

	// EvaluateActiveGoals re-scans all active goals against the full
	// workout collection. Invoked after logging a workout and by the
	// periodic monitor tick; idempotent across any interleaving.
	EvaluateActiveGoals(ctx context.Context) error

	// ReevaluateAllGoals recomputes every goal, reopening completed
	// goals whose progress fell below target. Invoked after a workout
	// deletion.
	ReevaluateAllGoals(ctx context.Context) error
}

// goalService implements the GoalService interface.
type goalService struct {
	goalRepo         repository.GoalRepository
	workoutRepo      repository.WorkoutRepository
	notificationRepo repository.NotificationRepository
	now              func() time.Time
}

// NewGoalService creates a new instance of goalService.
func NewGoalService(
	goalRepo repository.GoalRepository,
	workoutRepo repository.WorkoutRepository,
	notificationRepo repository.NotificationRepository,
) GoalService {
	return &goalService{
		goalRepo:         goalRepo,
		workoutRepo:      workoutRepo,
		notificationRepo: notificationRepo,
		now:              time.Now,
	}
}

// CreateGoal validates and stores a new goal. The period window opens
// at the moment of creation.
func (s *goalService) CreateGoal(ctx context.Context, goalType domain.GoalType, target float64, period domain.Period, workoutType *domain.WorkoutType, category *domain.Category) (*GoalView, error) {
	goal := &domain.Goal{
		Type:        goalType,
		Target:      target,
		Period:      period,
		WorkoutType: workoutType,
		Category:    category,
		StartDate:   domain.DateOnly(s.now()),
		Completed:   false,
	}

	if err := goal.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGoalValidation, err)
	}

	id, err := s.goalRepo.Create(ctx, goal)
	if err != nil {
		return nil, err
	}
	goal.ID = id

	// A fresh goal has no progress yet; the same clock drives its
	// time-remaining label here and on later reads.
	view := BuildGoalView(goal, 0, s.now())
	return &view, nil
}

// GetGoalViews returns display-ready views of every goal with its
// progress computed from the live workout collection.
func (s *goalService) GetGoalViews(ctx context.Context) ([]GoalView, error) {
	goals, err := s.goalRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	workouts, err := s.workoutRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]GoalView, 0, len(goals))
	for i := range goals {
		goal := &goals[i]
		views = append(views, BuildGoalView(goal, Progress(goal, workouts), now))
	}
	return views, nil
}

// DeleteGoal removes a goal at any point in its lifecycle.
func (s *goalService) DeleteGoal(ctx context.Context, goalID primitive.ObjectID) error {
	err := s.goalRepo.Delete(ctx, goalID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrGoalNotFound
	}
	return err
}

// EvaluateActiveGoals checks each active goal and completes the ones
// whose progress reached target. A goal transitions at most once;
// already-completed goals are never re-notified.
func (s *goalService) EvaluateActiveGoals(ctx context.Context) error {
	goals, err := s.goalRepo.GetActive(ctx)
	if err != nil {
		return err
	}
	if len(goals) == 0 {
		return nil
	}
	workouts, err := s.workoutRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for i := range goals {
		goal := &goals[i]
		progress := Progress(goal, workouts)
		if progress < goal.Target {
			continue
		}

		goal.MarkCompleted(s.now())
		if err := s.goalRepo.Update(ctx, goal); err != nil {
			log.Printf("ERROR: failed to persist completion of goal %s: %v", goal.ID.Hex(), err)
			continue
		}
		s.notifyGoalCompleted(ctx, goal)
	}
	return nil
}

// ReevaluateAllGoals recomputes every goal after a deletion. Completed
// goals whose recomputed progress dropped below target reopen; active
// goals that now satisfy their target complete as usual.
func (s *goalService) ReevaluateAllGoals(ctx context.Context) error {
	goals, err := s.goalRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	workouts, err := s.workoutRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for i := range goals {
		goal := &goals[i]
		progress := Progress(goal, workouts)

		switch {
		case goal.Completed && progress < goal.Target:
			goal.Reopen()
			if err := s.goalRepo.Update(ctx, goal); err != nil {
				log.Printf("ERROR: failed to reopen goal %s: %v", goal.ID.Hex(), err)
			}
		case !goal.Completed && progress >= goal.Target:
			goal.MarkCompleted(s.now())
			if err := s.goalRepo.Update(ctx, goal); err != nil {
				log.Printf("ERROR: failed to persist completion of goal %s: %v", goal.ID.Hex(), err)
				continue
			}
			s.notifyGoalCompleted(ctx, goal)
		}
	}
	return nil
}

// notifyGoalCompleted emits the one-time completion notification for a
// transition that just happened. A notification failure never rolls
// back the completion.
func (s *goalService) notifyGoalCompleted(ctx context.Context, goal *domain.Goal) {
	goalID := goal.ID
	notification := &domain.Notification{
		Kind:    domain.NotificationGoalCompleted,
		Message: fmt.Sprintf("🎉 Congratulations! You've completed your goal: %s", GoalTitle(goal)),
		GoalID:  &goalID,
	}
	if _, err := s.notificationRepo.Create(ctx, notification); err != nil {
		log.Printf("ERROR: failed to record completion notification for goal %s: %v", goal.ID.Hex(), err)
	}
}
