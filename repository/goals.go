package repository

import (
	"context"
	"errors"
	"time"

	"taskpulse/model"
	"taskpulse/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const goalsCollection = "goals"

type GoalsRepo struct {
	MongoCollection *mongo.Collection
}

func GetGoalsRepo(db *mongo.Database, collectionName string) *GoalsRepo {
	return &GoalsRepo{
		MongoCollection: db.Collection(collectionName),
	}
}

func (r *GoalsRepo) CreateGoal(ctx context.Context, goal *model.Goal) error {
	timer := utils.TrackDBOperation("insert", goalsCollection)
	defer timer.ObserveDuration()

	if _, err := r.MongoCollection.InsertOne(ctx, goal); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		utils.TrackError("database", "goal_creation_failed")
		return err
	}
	return nil
}

// GetUserGoals lists a user's goals, newest year first.
func (r *GoalsRepo) GetUserGoals(ctx context.Context, userID string) ([]model.Goal, error) {
	timer := utils.TrackDBOperation("find", goalsCollection)
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{
		{Key: "timeframe.year", Value: -1},
		{Key: "created_at", Value: 1},
	})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "goal_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	goals := []model.Goal{}
	if err := cursor.All(ctx, &goals); err != nil {
		utils.TrackError("database", "goal_decode_failed")
		return nil, err
	}
	return goals, nil
}

func (r *GoalsRepo) GetGoal(ctx context.Context, userID, goalID string) (*model.Goal, error) {
	timer := utils.TrackDBOperation("find", goalsCollection)
	defer timer.ObserveDuration()

	var goal model.Goal
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": goalID, "user_id": userID}).Decode(&goal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "goal_fetch_failed")
		return nil, err
	}
	return &goal, nil
}

func (r *GoalsRepo) SetGoalCompleted(ctx context.Context, userID, goalID string, completed bool) error {
	timer := utils.TrackDBOperation("update", goalsCollection)
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": goalID, "user_id": userID},
		bson.M{"$set": bson.M{
			"is_completed": completed,
			"updated_at":   time.Now().UTC(),
		}},
	)
	if err != nil {
		utils.TrackError("database", "goal_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GoalsRepo) DeleteGoal(ctx context.Context, userID, goalID string) error {
	timer := utils.TrackDBOperation("delete", goalsCollection)
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": goalID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "goal_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
