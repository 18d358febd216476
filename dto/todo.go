package dto

import (
	"time"

	"taskpulse/model"
)

type TodoResponse struct {
	ID           string         `json:"id"`
	Text         string         `json:"text"`
	Tag          string         `json:"tag,omitempty"`
	Priority     model.Priority `json:"priority"`
	Status       model.Status   `json:"status"`
	SelectedDate string         `json:"selectedDate"` // YYYY-MM-DD
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func ToTodoResponse(todo *model.Todo) TodoResponse {
	return TodoResponse{
		ID:           todo.TodoID,
		Text:         todo.Text,
		Tag:          todo.Tag,
		Priority:     todo.Priority,
		Status:       todo.Status,
		SelectedDate: model.DayKey(todo.SelectedDate),
		CreatedAt:    todo.CreatedAt,
		UpdatedAt:    todo.UpdatedAt,
	}
}

func ToTodoResponses(todos []model.Todo) []TodoResponse {
	responses := make([]TodoResponse, len(todos))
	for i := range todos {
		responses[i] = ToTodoResponse(&todos[i])
	}
	return responses
}
