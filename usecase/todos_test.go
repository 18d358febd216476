package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskpulse/model"
	"taskpulse/repository"
)

func newTodosService() (*TodosService, *repository.MemoryTodosRepo) {
	repo := repository.NewMemoryTodosRepo()
	svc := NewTodosService(repo)
	svc.now = clock
	return svc, repo
}

func strPtr(s string) *string { return &s }

func TestCreateTodo(t *testing.T) {
	svc, _ := newTodosService()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     model.TodoRequest
		wantErr error
		check   func(t *testing.T, todo *model.Todo)
	}{
		{
			name: "Defaults",
			req:  model.TodoRequest{Text: "  write report ", SelectedDate: "2024-05-21"},
			check: func(t *testing.T, todo *model.Todo) {
				if todo.Text != "write report" {
					t.Errorf("text not trimmed: %q", todo.Text)
				}
				if todo.Priority != model.PriorityMedium || todo.Status != model.StatusPending {
					t.Errorf("unexpected defaults: %s/%s", todo.Priority, todo.Status)
				}
				if !todo.SelectedDate.Equal(time.Date(2024, 5, 21, 0, 0, 0, 0, time.UTC)) {
					t.Errorf("unexpected date %v", todo.SelectedDate)
				}
				if todo.TodoID == "" {
					t.Error("expected an id")
				}
			},
		},
		{
			name: "Timestamp is truncated to the day",
			req:  model.TodoRequest{Text: "call", Priority: "HIGH", SelectedDate: "2024-05-21T18:45:00Z"},
			check: func(t *testing.T, todo *model.Todo) {
				if todo.Priority != model.PriorityHigh {
					t.Errorf("expected high, got %s", todo.Priority)
				}
				if todo.SelectedDate.Hour() != 0 {
					t.Errorf("expected midnight, got %v", todo.SelectedDate)
				}
			},
		},
		{
			name:    "Bad priority",
			req:     model.TodoRequest{Text: "x", Priority: "urgent", SelectedDate: "2024-05-21"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "Bad date",
			req:     model.TodoRequest{Text: "x", SelectedDate: "21/05/2024"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "Long tag",
			req:     model.TodoRequest{Text: "x", Tag: "abcdefghijklmnopqrstuvwxyz", SelectedDate: "2024-05-21"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "Blank text",
			req:     model.TodoRequest{Text: "   ", SelectedDate: "2024-05-21"},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo, err := svc.CreateTodo(ctx, "user-1", tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, todo)
		})
	}
}

func TestListTodosOrderingAndFilters(t *testing.T) {
	svc, _ := newTodosService()
	ctx := context.Background()

	for _, req := range []model.TodoRequest{
		{Text: "low", Priority: "low", Tag: "work", SelectedDate: "2024-05-20"},
		{Text: "high", Priority: "high", Tag: "home", SelectedDate: "2024-05-20"},
		{Text: "tomorrow", Priority: "high", Tag: "work", SelectedDate: "2024-05-21"},
	} {
		if _, err := svc.CreateTodo(ctx, "user-1", req); err != nil {
			t.Fatalf("failed to seed: %v", err)
		}
	}

	todos, err := svc.ListTodos(ctx, "user-1", model.TodoQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := []string{todos[0].Text, todos[1].Text, todos[2].Text}
	want := []string{"high", "low", "tomorrow"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}

	byDay, err := svc.ListTodos(ctx, "user-1", model.TodoQuery{SelectedDate: "2024-05-21"})
	if err != nil || len(byDay) != 1 || byDay[0].Text != "tomorrow" {
		t.Errorf("selectedDate filter failed: %+v (%v)", byDay, err)
	}

	byTag, err := svc.ListTodos(ctx, "user-1", model.TodoQuery{Tag: "work"})
	if err != nil || len(byTag) != 2 {
		t.Errorf("tag filter failed: %+v (%v)", byTag, err)
	}

	if _, err := svc.ListTodos(ctx, "user-1", model.TodoQuery{Status: "done"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for bad status, got %v", err)
	}

	empty, err := svc.ListTodos(ctx, "user-2", model.TodoQuery{})
	if err != nil || empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil list, got %#v (%v)", empty, err)
	}
}

func TestUpdateTodo(t *testing.T) {
	svc, _ := newTodosService()
	ctx := context.Background()

	todo, err := svc.CreateTodo(ctx, "user-1", model.TodoRequest{Text: "draft", SelectedDate: "2024-05-20"})
	if err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	updated, err := svc.UpdateTodo(ctx, "user-1", todo.TodoID, model.TodoPatch{
		Status:       strPtr("completed"),
		SelectedDate: strPtr("2024-05-22"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.IsCompleted() || model.DayKey(updated.SelectedDate) != "2024-05-22" {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.Text != "draft" {
		t.Errorf("untouched field changed: %q", updated.Text)
	}

	if _, err := svc.UpdateTodo(ctx, "user-2", todo.TodoID, model.TodoPatch{Text: strPtr("mine")}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for another user, got %v", err)
	}
	if _, err := svc.UpdateTodo(ctx, "user-1", todo.TodoID, model.TodoPatch{Priority: strPtr("p0")}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDeleteTodos(t *testing.T) {
	svc, _ := newTodosService()
	ctx := context.Background()

	first, _ := svc.CreateTodo(ctx, "user-1", model.TodoRequest{Text: "a", SelectedDate: "2024-05-20"})
	_, _ = svc.CreateTodo(ctx, "user-1", model.TodoRequest{Text: "b", SelectedDate: "2024-05-20"})
	_, _ = svc.CreateTodo(ctx, "user-1", model.TodoRequest{Text: "c", SelectedDate: "2024-05-20"})

	if err := svc.DeleteTodo(ctx, "user-1", first.TodoID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.DeleteTodo(ctx, "user-1", first.TodoID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}

	n, err := svc.DeleteAllTodos(ctx, "user-1")
	if err != nil || n != 2 {
		t.Errorf("expected 2 deleted, got %d (%v)", n, err)
	}
}
