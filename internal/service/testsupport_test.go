package service

import (
	"context"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. They mirror the mongo implementations'
// observable behavior (ErrNotFound on misses, insertion order on GetAll)
// without a running database.

type fakeWorkoutRepo struct {
	workouts []domain.Workout
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{}
}

func (r *fakeWorkoutRepo) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	workout.ID = primitive.NewObjectID()
	workout.CreatedAt = time.Now().UTC()
	r.workouts = append(r.workouts, *workout)
	return workout.ID, nil
}

func (r *fakeWorkoutRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	for i := range r.workouts {
		if r.workouts[i].ID == id {
			w := r.workouts[i]
			return &w, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeWorkoutRepo) GetAll(ctx context.Context) ([]domain.Workout, error) {
	out := make([]domain.Workout, len(r.workouts))
	copy(out, r.workouts)
	return out, nil
}

func (r *fakeWorkoutRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i := range r.workouts {
		if r.workouts[i].ID == id {
			r.workouts = append(r.workouts[:i], r.workouts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeGoalRepo struct {
	goals []domain.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{}
}

func (r *fakeGoalRepo) Create(ctx context.Context, goal *domain.Goal) (primitive.ObjectID, error) {
	goal.ID = primitive.NewObjectID()
	goal.CreatedAt = time.Now().UTC()
	r.goals = append(r.goals, *goal)
	return goal.ID, nil
}

func (r *fakeGoalRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Goal, error) {
	for i := range r.goals {
		if r.goals[i].ID == id {
			g := r.goals[i]
			return &g, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeGoalRepo) GetAll(ctx context.Context) ([]domain.Goal, error) {
	out := make([]domain.Goal, len(r.goals))
	copy(out, r.goals)
	return out, nil
}

func (r *fakeGoalRepo) GetActive(ctx context.Context) ([]domain.Goal, error) {
	var out []domain.Goal
	for _, g := range r.goals {
		if !g.Completed {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(ctx context.Context, goal *domain.Goal) error {
	for i := range r.goals {
		if r.goals[i].ID == goal.ID {
			r.goals[i].Completed = goal.Completed
			r.goals[i].CompletionDate = goal.CompletionDate
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeGoalRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i := range r.goals {
		if r.goals[i].ID == id {
			r.goals = append(r.goals[:i], r.goals[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeAchievementRepo struct {
	achievements []domain.Achievement
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{}
}

func (r *fakeAchievementRepo) Create(ctx context.Context, achievement *domain.Achievement) (primitive.ObjectID, error) {
	achievement.ID = primitive.NewObjectID()
	r.achievements = append(r.achievements, *achievement)
	return achievement.ID, nil
}

func (r *fakeAchievementRepo) GetAll(ctx context.Context) ([]domain.Achievement, error) {
	out := make([]domain.Achievement, len(r.achievements))
	copy(out, r.achievements)
	return out, nil
}

func (r *fakeAchievementRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	for _, a := range r.achievements {
		if a.Code == code {
			return true, nil
		}
	}
	return false, nil
}

type fakeEventRepo struct {
	event *domain.EventCountdown
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{}
}

func (r *fakeEventRepo) Set(ctx context.Context, event *domain.EventCountdown) error {
	e := *event
	r.event = &e
	return nil
}

func (r *fakeEventRepo) Get(ctx context.Context) (*domain.EventCountdown, error) {
	if r.event == nil {
		return nil, repository.ErrNotFound
	}
	e := *r.event
	return &e, nil
}

func (r *fakeEventRepo) Clear(ctx context.Context) error {
	r.event = nil
	return nil
}

type fakeNotificationRepo struct {
	notifications []domain.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *domain.Notification) (primitive.ObjectID, error) {
	notification.ID = primitive.NewObjectID()
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}
	r.notifications = append(r.notifications, *notification)
	return notification.ID, nil
}

func (r *fakeNotificationRepo) GetRecent(ctx context.Context, limit int64) ([]domain.Notification, error) {
	out := make([]domain.Notification, len(r.notifications))
	copy(out, r.notifications)
	// Newest first, like the mongo implementation.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

// day builds a midnight-UTC date for test fixtures.
func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func floatPtr(v float64) *float64 {
	return &v
}

func workoutTypePtr(t domain.WorkoutType) *domain.WorkoutType {
	return &t
}

func categoryPtr(c domain.Category) *domain.Category {
	return &c
}
