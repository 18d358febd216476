package repository

import (
	"context"
	"fmt"
	"time"

	"taskpulse/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections names the three collections the service owns.
type Collections struct {
	Todos string
	Users string
	Goals string
}

func SetupIndexes(ctx context.Context, db *mongo.Database, names Collections) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	todosIndexes := []mongo.IndexModel{
		// range scans for the dashboard and the todo list
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "selected_date", Value: 1},
			},
			Options: options.Index().
				SetName("user_todos_selected_date"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "tag", Value: 1},
			},
			Options: options.Index().
				SetName("user_todos_tag"),
		},
	}

	usersIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "username", Value: 1}},
			Options: options.Index().
				SetName("username_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_id_unique").
				SetUnique(true),
		},
	}

	goalsIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "timeframe.year", Value: -1},
			},
			Options: options.Index().
				SetName("user_goals_year"),
		},
	}

	for _, set := range []struct {
		collection string
		indexes    []mongo.IndexModel
	}{
		{names.Todos, todosIndexes},
		{names.Users, usersIndexes},
		{names.Goals, goalsIndexes},
	} {
		if _, err := db.Collection(set.collection).Indexes().CreateMany(ctx, set.indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", set.collection, err)
		}
	}

	logger.Info("Successfully created all indexes")
	return nil
}
