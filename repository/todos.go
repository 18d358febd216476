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

const todosCollection = "todos"

type TodosRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for todos
func GetTodosRepo(db *mongo.Database, collectionName string) *TodosRepo {
	return &TodosRepo{
		MongoCollection: db.Collection(collectionName),
	}
}

// Add a new todo into the database
func (r *TodosRepo) CreateTodo(ctx context.Context, todo *model.Todo) error {
	timer := utils.TrackDBOperation("insert", todosCollection)
	defer timer.ObserveDuration()

	if todo.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, todo); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		utils.TrackError("database", "todo_creation_failed")
		return err
	}
	return nil
}

func (r *TodosRepo) GetTodo(ctx context.Context, userID, todoID string) (*model.Todo, error) {
	timer := utils.TrackDBOperation("find", todosCollection)
	defer timer.ObserveDuration()

	var todo model.Todo
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": todoID, "user_id": userID}).Decode(&todo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "todo_fetch_failed")
		return nil, err
	}
	return &todo, nil
}

// Overwrites the editable fields of a todo the user owns
func (r *TodosRepo) UpdateTodo(ctx context.Context, todo *model.Todo) error {
	timer := utils.TrackDBOperation("update", todosCollection)
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     todo.TodoID,
		"user_id": todo.UserID,
	}
	update := bson.M{
		"$set": bson.M{
			"text":          todo.Text,
			"tag":           todo.Tag,
			"priority":      todo.Priority,
			"status":        todo.Status,
			"selected_date": todo.SelectedDate,
			"updated_at":    todo.UpdatedAt,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "todo_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TodosRepo) DeleteTodo(ctx context.Context, userID, todoID string) error {
	timer := utils.TrackDBOperation("delete", todosCollection)
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": todoID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "todo_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TodosRepo) DeleteUserTodos(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete_many", todosCollection)
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "todo_bulk_deletion_failed")
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *TodosRepo) FindTodos(ctx context.Context, userID string, filter model.TodoFilter) ([]model.Todo, error) {
	return r.find(ctx, todoQuery(userID, filter))
}

// FindByUserAndRange returns todos scheduled in [start, end).
func (r *TodosRepo) FindByUserAndRange(ctx context.Context, userID string, start, end time.Time, filter model.TodoFilter) ([]model.Todo, error) {
	query := todoQuery(userID, filter)
	query["selected_date"] = dateRange(start, end)
	return r.find(ctx, query)
}

func (r *TodosRepo) find(ctx context.Context, query bson.M) ([]model.Todo, error) {
	timer := utils.TrackDBOperation("find", todosCollection)
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "selected_date", Value: 1}, {Key: "created_at", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, query, opts)
	if err != nil {
		utils.TrackError("database", "todo_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	todos := []model.Todo{}
	if err = cursor.All(ctx, &todos); err != nil {
		utils.TrackError("database", "todo_decode_failed")
		return nil, err
	}
	return todos, nil
}

// Analytics queries. Days are grouped on the UTC calendar day of
// selected_date and returned ascending.

func (r *TodosRepo) GroupByDayWithCompletedCount(ctx context.Context, userID string, start, end time.Time) ([]model.DayCompletion, error) {
	match := rangeMatch(userID, start, end)
	match["status"] = model.StatusCompleted

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: dayKeyExpr},
			{Key: "completed", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	out := []model.DayCompletion{}
	if err := r.aggregate(ctx, "completion_trend", pipeline, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TodosRepo) GroupByDayWithTotalAndCompleted(ctx context.Context, userID string, start, end time.Time) ([]model.DayTotals, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: rangeMatch(userID, start, end)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: dayKeyExpr},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "completed", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{
					bson.D{{Key: "$eq", Value: bson.A{"$status", model.StatusCompleted}}}, 1, 0,
				}},
			}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	out := []model.DayTotals{}
	if err := r.aggregate(ctx, "created_vs_completed_trend", pipeline, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GroupByTagCount skips untagged todos and orders by count, then tag.
func (r *TodosRepo) GroupByTagCount(ctx context.Context, userID string, start, end time.Time) ([]model.TagCount, error) {
	match := rangeMatch(userID, start, end)
	match["tag"] = bson.M{"$nin": bson.A{"", nil}}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$tag"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}

	out := []model.TagCount{}
	if err := r.aggregate(ctx, "tag_breakdown", pipeline, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TodosRepo) DistinctCompletedDays(ctx context.Context, userID string, start, end time.Time) ([]time.Time, error) {
	match := rangeMatch(userID, start, end)
	match["status"] = model.StatusCompleted

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: dayKeyExpr}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	var rows []struct {
		Day string `bson:"_id"`
	}
	if err := r.aggregate(ctx, "active_days", pipeline, &rows); err != nil {
		return nil, err
	}

	days := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		d, err := time.Parse(model.DateLayout, row.Day)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

func (r *TodosRepo) aggregate(ctx context.Context, name string, pipeline mongo.Pipeline, out interface{}) error {
	timer := utils.TrackDBOperation("aggregate_"+name, todosCollection)
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.TrackError("database", name+"_failed")
		return err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		utils.TrackError("database", name+"_decode_failed")
		return err
	}
	return nil
}

// helpers

var dayKeyExpr = bson.D{{Key: "$dateToString", Value: bson.D{
	{Key: "format", Value: "%Y-%m-%d"},
	{Key: "date", Value: "$selected_date"},
	{Key: "timezone", Value: "UTC"},
}}}

func dateRange(start, end time.Time) bson.M {
	return bson.M{"$gte": start.UTC(), "$lt": end.UTC()}
}

func rangeMatch(userID string, start, end time.Time) bson.M {
	return bson.M{
		"user_id":       userID,
		"selected_date": dateRange(start, end),
	}
}

func todoQuery(userID string, filter model.TodoFilter) bson.M {
	query := bson.M{"user_id": userID}
	if filter.Tag != "" {
		query["tag"] = filter.Tag
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}
	return query
}
