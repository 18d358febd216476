package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"taskpulse/analytics"
	"taskpulse/model"
)

// MemoryTodosRepo keeps todos in process and answers the same queries as
// TodosRepo.
type MemoryTodosRepo struct {
	mu    sync.RWMutex
	todos map[string]model.Todo

	// Err, when set, is returned by every call.
	Err error
}

func NewMemoryTodosRepo(seed ...model.Todo) *MemoryTodosRepo {
	r := &MemoryTodosRepo{todos: make(map[string]model.Todo)}
	for _, t := range seed {
		r.todos[t.TodoID] = t
	}
	return r
}

func (r *MemoryTodosRepo) CreateTodo(_ context.Context, todo *model.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, exists := r.todos[todo.TodoID]; exists {
		return ErrDuplicate
	}
	r.todos[todo.TodoID] = *todo
	return nil
}

func (r *MemoryTodosRepo) GetTodo(_ context.Context, userID, todoID string) (*model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	t, ok := r.todos[todoID]
	if !ok || t.UserID != userID {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (r *MemoryTodosRepo) UpdateTodo(_ context.Context, todo *model.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	existing, ok := r.todos[todo.TodoID]
	if !ok || existing.UserID != todo.UserID {
		return ErrNotFound
	}
	todo.CreatedAt = existing.CreatedAt
	r.todos[todo.TodoID] = *todo
	return nil
}

func (r *MemoryTodosRepo) DeleteTodo(_ context.Context, userID, todoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	t, ok := r.todos[todoID]
	if !ok || t.UserID != userID {
		return ErrNotFound
	}
	delete(r.todos, todoID)
	return nil
}

func (r *MemoryTodosRepo) DeleteUserTodos(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	var n int64
	for id, t := range r.todos {
		if t.UserID == userID {
			delete(r.todos, id)
			n++
		}
	}
	return n, nil
}

func (r *MemoryTodosRepo) FindTodos(_ context.Context, userID string, filter model.TodoFilter) ([]model.Todo, error) {
	return r.collect(func(t *model.Todo) bool {
		return t.UserID == userID && matches(t, filter)
	})
}

func (r *MemoryTodosRepo) FindByUserAndRange(_ context.Context, userID string, start, end time.Time, filter model.TodoFilter) ([]model.Todo, error) {
	return r.collect(func(t *model.Todo) bool {
		return t.UserID == userID && inRange(t, start, end) && matches(t, filter)
	})
}

func (r *MemoryTodosRepo) GroupByDayWithCompletedCount(ctx context.Context, userID string, start, end time.Time) ([]model.DayCompletion, error) {
	todos, err := r.FindByUserAndRange(ctx, userID, start, end, model.TodoFilter{})
	if err != nil {
		return nil, err
	}
	return analytics.CompletionTrend(todos), nil
}

func (r *MemoryTodosRepo) GroupByDayWithTotalAndCompleted(ctx context.Context, userID string, start, end time.Time) ([]model.DayTotals, error) {
	todos, err := r.FindByUserAndRange(ctx, userID, start, end, model.TodoFilter{})
	if err != nil {
		return nil, err
	}
	return analytics.CreatedVsCompletedTrend(todos), nil
}

func (r *MemoryTodosRepo) GroupByTagCount(ctx context.Context, userID string, start, end time.Time) ([]model.TagCount, error) {
	todos, err := r.FindByUserAndRange(ctx, userID, start, end, model.TodoFilter{})
	if err != nil {
		return nil, err
	}
	return analytics.TagBreakdown(todos), nil
}

func (r *MemoryTodosRepo) DistinctCompletedDays(ctx context.Context, userID string, start, end time.Time) ([]time.Time, error) {
	todos, err := r.FindByUserAndRange(ctx, userID, start, end, model.TodoFilter{Status: model.StatusCompleted})
	if err != nil {
		return nil, err
	}

	seen := make(map[time.Time]struct{})
	days := []time.Time{}
	for i := range todos {
		d := model.StartOfDay(todos[i].SelectedDate)
		if _, ok := seen[d]; !ok {
			seen[d] = struct{}{}
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days, nil
}

func (r *MemoryTodosRepo) collect(keep func(*model.Todo) bool) ([]model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}

	out := []model.Todo{}
	for _, t := range r.todos {
		if keep(&t) {
			out = append(out, t)
		}
	}
	// map order is random; match the Mongo sort
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SelectedDate.Equal(out[j].SelectedDate) {
			return out[i].SelectedDate.Before(out[j].SelectedDate)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].TodoID < out[j].TodoID
	})
	return out, nil
}

func inRange(t *model.Todo, start, end time.Time) bool {
	return !t.SelectedDate.Before(start) && t.SelectedDate.Before(end)
}

func matches(t *model.Todo, filter model.TodoFilter) bool {
	if filter.Tag != "" && t.Tag != filter.Tag {
		return false
	}
	if filter.Status != "" && t.Status != filter.Status {
		return false
	}
	if filter.Priority != "" && t.Priority != filter.Priority {
		return false
	}
	return true
}

// MemoryUserRepo mirrors UserRepo, including the unique username index.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[string]model.User)}
}

func (r *MemoryUserRepo) AddUser(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.UserID]; exists {
		return ErrDuplicate
	}
	for _, u := range r.users {
		if u.Username == user.Username {
			return ErrDuplicate
		}
	}
	r.users[user.UserID] = *user
	return nil
}

func (r *MemoryUserRepo) FindUser(_ context.Context, userID string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *MemoryUserRepo) FindUserByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepo) UpdateUserPassword(_ context.Context, userID, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return ErrNotFound
	}
	u.Password = hashedPassword
	r.users[userID] = u
	return nil
}

func (r *MemoryUserRepo) RecordLogin(_ context.Context, userID, device string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return ErrNotFound
	}
	u.LastLoginAt = at.UTC()
	u.LastLoginDevice = device
	r.users[userID] = u
	return nil
}

type MemoryGoalsRepo struct {
	mu    sync.RWMutex
	goals map[string]model.Goal
}

func NewMemoryGoalsRepo() *MemoryGoalsRepo {
	return &MemoryGoalsRepo{goals: make(map[string]model.Goal)}
}

func (r *MemoryGoalsRepo) CreateGoal(_ context.Context, goal *model.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.goals[goal.GoalID]; exists {
		return ErrDuplicate
	}
	r.goals[goal.GoalID] = *goal
	return nil
}

func (r *MemoryGoalsRepo) GetUserGoals(_ context.Context, userID string) ([]model.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.Goal{}
	for _, g := range r.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timeframe.Year != out[j].Timeframe.Year {
			return out[i].Timeframe.Year > out[j].Timeframe.Year
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryGoalsRepo) GetGoal(_ context.Context, userID, goalID string) (*model.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.goals[goalID]
	if !ok || g.UserID != userID {
		return nil, ErrNotFound
	}
	return &g, nil
}

func (r *MemoryGoalsRepo) SetGoalCompleted(_ context.Context, userID, goalID string, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.goals[goalID]
	if !ok || g.UserID != userID {
		return ErrNotFound
	}
	g.IsCompleted = completed
	g.UpdatedAt = time.Now().UTC()
	r.goals[goalID] = g
	return nil
}

func (r *MemoryGoalsRepo) DeleteGoal(_ context.Context, userID, goalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.goals[goalID]
	if !ok || g.UserID != userID {
		return ErrNotFound
	}
	delete(r.goals, goalID)
	return nil
}
