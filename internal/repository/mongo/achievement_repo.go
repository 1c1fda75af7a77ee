package mongo

import (
	"context"
	"errors"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const achievementCollectionName = "achievements"

// mongoAchievementRepository implements repository.AchievementRepository
type mongoAchievementRepository struct {
	collection *mongo.Collection
}

// NewMongoAchievementRepository creates a new Achievement repository.
func NewMongoAchievementRepository(db *mongo.Database) repository.AchievementRepository {
	return &mongoAchievementRepository{
		collection: db.Collection(achievementCollectionName),
	}
}

// Create records an earned badge.
func (r *mongoAchievementRepository) Create(ctx context.Context, achievement *domain.Achievement) (primitive.ObjectID, error) {
	if achievement.Code == "" {
		return primitive.NilObjectID, errors.New("achievement requires a code")
	}
	achievement.ID = primitive.NewObjectID()
	if achievement.DateEarned.IsZero() {
		achievement.DateEarned = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, achievement)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted achievement ID")
	}
	return insertedID, nil
}

// GetAll retrieves every earned badge, in award order.
func (r *mongoAchievementRepository) GetAll(ctx context.Context) ([]domain.Achievement, error) {
	var achievements []domain.Achievement
	findOptions := options.Find().SetSort(bson.D{{Key: "dateEarned", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &achievements); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return achievements, nil
}

// ExistsByCode reports whether the badge was already awarded.
func (r *mongoAchievementRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"code": code}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// EnsureAchievementIndexes creates necessary indexes. Call during startup.
func EnsureAchievementIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// One award per code, ever.
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
