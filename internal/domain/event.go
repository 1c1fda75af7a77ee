package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventCountdown is the single upcoming event the user counts down to,
// e.g. a race or competition date.
type EventCountdown struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
	Date time.Time          `bson:"date" json:"date"`
}

// Countdown is the derived time remaining until an event.
type Countdown struct {
	EventName string `json:"eventName"`
	Days      int    `json:"days"`
	Hours     int    `json:"hours"`
	Minutes   int    `json:"minutes"`
	Seconds   int    `json:"seconds"`
	Ended     bool   `json:"ended"`
}
