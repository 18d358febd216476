package usecase

import (
	"context"
	"time"

	"taskpulse/model"
)

// TodoStore is the persistence the todo and analytics services need. Range
// arguments are half-open: [start, end).
type TodoStore interface {
	CreateTodo(ctx context.Context, todo *model.Todo) error
	GetTodo(ctx context.Context, userID, todoID string) (*model.Todo, error)
	UpdateTodo(ctx context.Context, todo *model.Todo) error
	DeleteTodo(ctx context.Context, userID, todoID string) error
	DeleteUserTodos(ctx context.Context, userID string) (int64, error)
	FindTodos(ctx context.Context, userID string, filter model.TodoFilter) ([]model.Todo, error)

	FindByUserAndRange(ctx context.Context, userID string, start, end time.Time, filter model.TodoFilter) ([]model.Todo, error)
	GroupByDayWithCompletedCount(ctx context.Context, userID string, start, end time.Time) ([]model.DayCompletion, error)
	GroupByDayWithTotalAndCompleted(ctx context.Context, userID string, start, end time.Time) ([]model.DayTotals, error)
	GroupByTagCount(ctx context.Context, userID string, start, end time.Time) ([]model.TagCount, error)
	DistinctCompletedDays(ctx context.Context, userID string, start, end time.Time) ([]time.Time, error)
}

type UserStore interface {
	AddUser(ctx context.Context, user *model.User) error
	FindUser(ctx context.Context, userID string) (*model.User, error)
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateUserPassword(ctx context.Context, userID, hashedPassword string) error
	RecordLogin(ctx context.Context, userID, device string, at time.Time) error
}

type GoalStore interface {
	CreateGoal(ctx context.Context, goal *model.Goal) error
	GetUserGoals(ctx context.Context, userID string) ([]model.Goal, error)
	SetGoalCompleted(ctx context.Context, userID, goalID string, completed bool) error
	GetGoal(ctx context.Context, userID, goalID string) (*model.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID string) error
}
