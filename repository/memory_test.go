package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskpulse/model"
)

func day(s string) time.Time {
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedTodos() []model.Todo {
	created := day("2024-05-01")
	return []model.Todo{
		{TodoID: "a", UserID: "u1", Tag: "work", Priority: model.PriorityHigh, Status: model.StatusCompleted, SelectedDate: day("2024-05-18"), CreatedAt: created},
		{TodoID: "b", UserID: "u1", Tag: "work", Priority: model.PriorityLow, Status: model.StatusPending, SelectedDate: day("2024-05-18"), CreatedAt: created.Add(time.Minute)},
		{TodoID: "c", UserID: "u1", Tag: "home", Priority: model.PriorityMedium, Status: model.StatusCompleted, SelectedDate: day("2024-05-20"), CreatedAt: created},
		{TodoID: "d", UserID: "u1", Tag: "", Priority: model.PriorityMedium, Status: model.StatusCompleted, SelectedDate: day("2024-05-21"), CreatedAt: created},
		{TodoID: "e", UserID: "u2", Tag: "work", Priority: model.PriorityHigh, Status: model.StatusCompleted, SelectedDate: day("2024-05-18"), CreatedAt: created},
	}
}

func TestMemoryTodosRepoRangeIsHalfOpen(t *testing.T) {
	repo := NewMemoryTodosRepo(seedTodos()...)
	ctx := context.Background()

	todos, err := repo.FindByUserAndRange(ctx, "u1", day("2024-05-18"), day("2024-05-21"), model.TodoFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 3 {
		t.Fatalf("expected 3 todos in [18, 21), got %d", len(todos))
	}
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if todos[i].TodoID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, todos[i].TodoID)
		}
	}
}

func TestMemoryTodosRepoGroupedQueries(t *testing.T) {
	repo := NewMemoryTodosRepo(seedTodos()...)
	ctx := context.Background()
	start, end := day("2024-05-18"), day("2024-05-22")

	trend, err := repo.GroupByDayWithCompletedCount(ctx, "u1", start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trend) != 3 || trend[0].Date != "2024-05-18" || trend[0].Completed != 1 {
		t.Errorf("unexpected completion trend: %+v", trend)
	}

	totals, err := repo.GroupByDayWithTotalAndCompleted(ctx, "u1", start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals[0].Total != 2 || totals[0].Completed != 1 {
		t.Errorf("unexpected totals for first day: %+v", totals[0])
	}

	tags, err := repo.GroupByTagCount(ctx, "u1", start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 2 || tags[0].Tag != "work" || tags[0].Count != 2 {
		t.Errorf("unexpected tag breakdown: %+v", tags)
	}

	days, err := repo.DistinctCompletedDays(ctx, "u1", start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 3 || !days[0].Equal(start) {
		t.Errorf("unexpected active days: %v", days)
	}
}

func TestMemoryTodosRepoOwnership(t *testing.T) {
	repo := NewMemoryTodosRepo(seedTodos()...)
	ctx := context.Background()

	if _, err := repo.GetTodo(ctx, "u2", "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound reading another user's todo, got %v", err)
	}
	if err := repo.DeleteTodo(ctx, "u2", "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting another user's todo, got %v", err)
	}
	if err := repo.CreateTodo(ctx, &model.Todo{TodoID: "a", UserID: "u1"}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	n, err := repo.DeleteUserTodos(ctx, "u1")
	if err != nil || n != 4 {
		t.Errorf("expected 4 deleted, got %d (%v)", n, err)
	}
	left, _ := repo.FindTodos(ctx, "u2", model.TodoFilter{})
	if len(left) != 1 {
		t.Errorf("other user's todos should survive, got %d", len(left))
	}
}

func TestMemoryTodosRepoFailure(t *testing.T) {
	repo := NewMemoryTodosRepo()
	repo.Err = errors.New("connection refused")

	if _, err := repo.FindTodos(context.Background(), "u1", model.TodoFilter{}); err == nil {
		t.Fatal("expected injected error")
	}
}

func TestMemoryUserRepoUniqueUsername(t *testing.T) {
	repo := NewMemoryUserRepo()
	ctx := context.Background()

	if err := repo.AddUser(ctx, &model.User{UserID: "1", Username: "ana", Password: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.AddUser(ctx, &model.User{UserID: "2", Username: "ana", Password: "y"}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	u, err := repo.FindUserByUsername(ctx, "missing")
	if u != nil || err != nil {
		t.Errorf("expected nil, nil for a missing user, got %v, %v", u, err)
	}
}
