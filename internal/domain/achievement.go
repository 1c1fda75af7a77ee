package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Achievement codes. Each is awarded at most once.
const (
	AchievementFirstWorkout = "first_workout"
	AchievementStreak3      = "streak_3"
	AchievementStreak7      = "streak_7"
	AchievementCalories500  = "calories_500"
	AchievementCalories1000 = "calories_1000"
)

// AchievementDef describes a badge in the fixed catalog.
type AchievementDef struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// AchievementCatalog lists every badge the tracker can award, in the
// order they are checked.
var AchievementCatalog = []AchievementDef{
	{Code: AchievementFirstWorkout, Title: "First Step", Description: "Completed your first workout", Icon: "🎯"},
	{Code: AchievementStreak3, Title: "Hat Trick", Description: "3-day workout streak", Icon: "🔥"},
	{Code: AchievementStreak7, Title: "Week Warrior", Description: "7-day workout streak", Icon: "⚔️"},
	{Code: AchievementCalories500, Title: "Calorie Crusher", Description: "Burned 500 total calories", Icon: "🔥"},
	{Code: AchievementCalories1000, Title: "Burn Master", Description: "Burned 1,000 total calories", Icon: "⚡"},
}

// Achievement is an earned badge.
type Achievement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code        string             `bson:"code" json:"code"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Icon        string             `bson:"icon" json:"icon"`
	DateEarned  time.Time          `bson:"dateEarned" json:"dateEarned"`
}
