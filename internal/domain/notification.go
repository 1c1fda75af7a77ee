package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationKind distinguishes the events surfaced to the frontend.
type NotificationKind string

const (
	NotificationGoalCompleted     NotificationKind = "goal_completed"
	NotificationAchievementEarned NotificationKind = "achievement_earned"
)

// Notification is a one-time event record the presentation layer polls
// and renders as a toast. Goal completions emit exactly one of these
// per Active -> Completed transition.
type Notification struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Kind      NotificationKind    `bson:"kind" json:"kind"`
	Message   string              `bson:"message" json:"message"`
	GoalID    *primitive.ObjectID `bson:"goalId,omitempty" json:"goalId,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}
