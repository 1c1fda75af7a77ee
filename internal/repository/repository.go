package repository

import (
	"context"

	"fittrack/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// WorkoutRepository defines the interface for interacting with workout data.
// Goal progress is always recomputed from the full collection, so GetAll
// is the primary read path.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	GetAll(ctx context.Context) ([]domain.Workout, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// GoalRepository defines the interface for interacting with goal data.
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Goal, error)
	GetAll(ctx context.Context) ([]domain.Goal, error)
	GetActive(ctx context.Context) ([]domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// AchievementRepository defines the interface for earned badges.
type AchievementRepository interface {
	Create(ctx context.Context, achievement *domain.Achievement) (primitive.ObjectID, error)
	GetAll(ctx context.Context) ([]domain.Achievement, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// EventRepository holds at most one countdown event.
type EventRepository interface {
	Set(ctx context.Context, event *domain.EventCountdown) error
	Get(ctx context.Context) (*domain.EventCountdown, error)
	Clear(ctx context.Context) error
}

// NotificationRepository stores the event stream polled by the frontend.
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) (primitive.ObjectID, error)
	GetRecent(ctx context.Context, limit int64) ([]domain.Notification, error)
}
