package mongo

import (
	"context"
	"errors"

	"fittrack/internal/domain"
	"fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const eventCollectionName = "event_countdown"

// mongoEventRepository implements repository.EventRepository. The
// collection holds at most one document, keyed by a fixed id.
type mongoEventRepository struct {
	collection *mongo.Collection
}

// NewMongoEventRepository creates a new Event repository.
func NewMongoEventRepository(db *mongo.Database) repository.EventRepository {
	return &mongoEventRepository{
		collection: db.Collection(eventCollectionName),
	}
}

const singletonEventKey = "countdown"

// Set upserts the countdown event.
func (r *mongoEventRepository) Set(ctx context.Context, event *domain.EventCountdown) error {
	if event.Name == "" || event.Date.IsZero() {
		return errors.New("event requires name and date")
	}

	filter := bson.M{"key": singletonEventKey}
	updateDoc := bson.M{
		"$set": bson.M{
			"key":  singletonEventKey,
			"name": event.Name,
			"date": event.Date,
		},
	}
	_, err := r.collection.UpdateOne(ctx, filter, updateDoc, options.Update().SetUpsert(true))
	return err
}

// Get returns the countdown event, or ErrNotFound when none is set.
func (r *mongoEventRepository) Get(ctx context.Context) (*domain.EventCountdown, error) {
	var event domain.EventCountdown
	err := r.collection.FindOne(ctx, bson.M{"key": singletonEventKey}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

// Clear removes the countdown event. Clearing an absent event is a no-op.
func (r *mongoEventRepository) Clear(ctx context.Context) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"key": singletonEventKey})
	return err
}
