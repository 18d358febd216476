package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"taskpulse/model"

	"github.com/google/uuid"
)

type TodosService struct {
	repo TodoStore
	now  func() time.Time
}

func NewTodosService(repo TodoStore) *TodosService {
	return &TodosService{repo: repo, now: time.Now}
}

// Create Todo
func (svc *TodosService) CreateTodo(ctx context.Context, userID string, req model.TodoRequest) (*model.Todo, error) {
	if userID == "" {
		return nil, invalid("user ID is required")
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, invalid("todo text is required")
	}

	tag, err := validateTag(req.Tag)
	if err != nil {
		return nil, err
	}

	// empty priority defaults to medium
	priority := model.PriorityMedium
	if req.Priority != "" {
		p, ok := model.ParsePriority(req.Priority)
		if !ok {
			return nil, invalid("invalid priority level %q", req.Priority)
		}
		priority = p
	}

	selected, err := parseSelectedDate(req.SelectedDate)
	if err != nil {
		return nil, err
	}

	now := svc.now().UTC()
	todo := &model.Todo{
		TodoID:       uuid.New().String(),
		UserID:       userID,
		Text:         text,
		Tag:          tag,
		Priority:     priority,
		Status:       model.StatusPending,
		SelectedDate: selected,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := svc.repo.CreateTodo(ctx, todo); err != nil {
		return nil, storeErr("create todo", err)
	}
	return todo, nil
}

// ListTodos returns the user's todos, optionally narrowed by tag, status,
// priority, or a single scheduled day.
func (svc *TodosService) ListTodos(ctx context.Context, userID string, q model.TodoQuery) ([]model.Todo, error) {
	if userID == "" {
		return nil, invalid("user ID is required")
	}

	filter := model.TodoFilter{Tag: strings.TrimSpace(q.Tag)}
	if q.Status != "" {
		st, ok := model.ParseStatus(q.Status)
		if !ok {
			return nil, invalid("invalid status %q", q.Status)
		}
		filter.Status = st
	}
	if q.Priority != "" {
		p, ok := model.ParsePriority(q.Priority)
		if !ok {
			return nil, invalid("invalid priority level %q", q.Priority)
		}
		filter.Priority = p
	}

	var (
		todos []model.Todo
		err   error
	)
	if q.SelectedDate != "" {
		day, perr := parseSelectedDate(q.SelectedDate)
		if perr != nil {
			return nil, perr
		}
		todos, err = svc.repo.FindByUserAndRange(ctx, userID, day, day.AddDate(0, 0, 1), filter)
	} else {
		todos, err = svc.repo.FindTodos(ctx, userID, filter)
	}
	if err != nil {
		return nil, storeErr("list todos", err)
	}

	// Scheduled day first, then pending before completed, then by priority
	sort.SliceStable(todos, func(i, j int) bool {
		if !todos[i].SelectedDate.Equal(todos[j].SelectedDate) {
			return todos[i].SelectedDate.Before(todos[j].SelectedDate)
		}
		if todos[i].IsCompleted() != todos[j].IsCompleted() {
			return !todos[i].IsCompleted()
		}
		return getPriorityWeight(todos[i].Priority) > getPriorityWeight(todos[j].Priority)
	})

	if todos == nil {
		todos = []model.Todo{}
	}
	return todos, nil
}

// UpdateTodo applies a partial update to a todo the user owns.
func (svc *TodosService) UpdateTodo(ctx context.Context, userID, todoID string, patch model.TodoPatch) (*model.Todo, error) {
	if userID == "" || todoID == "" {
		return nil, invalid("user ID and todo ID are required")
	}

	existing, err := svc.repo.GetTodo(ctx, userID, todoID)
	if err != nil {
		return nil, storeErr("get todo", err)
	}

	if patch.Text != nil {
		text := strings.TrimSpace(*patch.Text)
		if text == "" {
			return nil, invalid("todo text cannot be empty")
		}
		existing.Text = text
	}
	if patch.Tag != nil {
		tag, err := validateTag(*patch.Tag)
		if err != nil {
			return nil, err
		}
		existing.Tag = tag
	}
	if patch.Priority != nil {
		p, ok := model.ParsePriority(*patch.Priority)
		if !ok {
			return nil, invalid("invalid priority level %q", *patch.Priority)
		}
		existing.Priority = p
	}
	if patch.Status != nil {
		st, ok := model.ParseStatus(*patch.Status)
		if !ok {
			return nil, invalid("invalid status %q", *patch.Status)
		}
		existing.Status = st
	}
	if patch.SelectedDate != nil {
		selected, err := parseSelectedDate(*patch.SelectedDate)
		if err != nil {
			return nil, err
		}
		existing.SelectedDate = selected
	}

	existing.UpdatedAt = svc.now().UTC()
	if err := svc.repo.UpdateTodo(ctx, existing); err != nil {
		return nil, storeErr("update todo", err)
	}
	return existing, nil
}

func (svc *TodosService) DeleteTodo(ctx context.Context, userID, todoID string) error {
	if userID == "" || todoID == "" {
		return invalid("user ID and todo ID are required")
	}
	return storeErr("delete todo", svc.repo.DeleteTodo(ctx, userID, todoID))
}

// DeleteAllTodos removes every todo the user owns and reports how many went.
func (svc *TodosService) DeleteAllTodos(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, invalid("user ID is required")
	}
	n, err := svc.repo.DeleteUserTodos(ctx, userID)
	if err != nil {
		return 0, storeErr("delete todos", err)
	}
	return n, nil
}

// helpers

func validateTag(tag string) (string, error) {
	tag = strings.TrimSpace(tag)
	if len(tag) > 20 {
		return "", invalid("tag cannot exceed 20 characters")
	}
	return tag, nil
}

// parseSelectedDate accepts a calendar date or an RFC 3339 timestamp and
// returns UTC midnight of that day.
func parseSelectedDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, invalid("selected date is required")
	}
	if t, err := time.Parse(model.DateLayout, raw); err == nil {
		return model.StartOfDay(t), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return model.StartOfDay(t), nil
	}
	return time.Time{}, invalid("selected date %q must be YYYY-MM-DD or RFC 3339", raw)
}

func getPriorityWeight(p model.Priority) int {
	switch p.Bucket() {
	case model.PriorityHigh:
		return 3
	case model.PriorityMedium:
		return 2
	default:
		return 1
	}
}
