package model

import (
	"strings"
	"time"
)

type Priority string
type Status string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"

	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// DateLayout is the calendar-day format used for query parameters and
// analytics series keys.
const DateLayout = "2006-01-02"

type Todo struct {
	TodoID       string    `bson:"_id,omitempty" json:"id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	Text         string    `bson:"text" json:"text"`
	Tag          string    `bson:"tag,omitempty" json:"tag,omitempty"`
	Priority     Priority  `bson:"priority" json:"priority"`
	Status       Status    `bson:"status" json:"status"`
	SelectedDate time.Time `bson:"selected_date" json:"selected_date"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// TodoFilter narrows a range query. Empty fields match everything.
type TodoFilter struct {
	Tag      string
	Status   Status
	Priority Priority
}

// ParsePriority accepts any casing and reports whether the value is one of
// low, medium or high.
func ParsePriority(s string) (Priority, bool) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, true
	default:
		return "", false
	}
}

func ParseStatus(s string) (Status, bool) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusCompleted:
		return st, true
	default:
		return "", false
	}
}

// Bucket maps stored priorities onto the enumeration. Legacy documents may
// carry free-form values; those land in medium.
func (p Priority) Bucket() Priority {
	if parsed, ok := ParsePriority(string(p)); ok {
		return parsed
	}
	return PriorityMedium
}

func (t *Todo) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// StartOfDay truncates t to midnight UTC of its UTC calendar day.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func DayKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// TodoRequest is the body of a create call. SelectedDate accepts either a
// calendar date (2006-01-02) or an RFC 3339 timestamp.
type TodoRequest struct {
	Text         string `json:"text" binding:"required,max=500"`
	Tag          string `json:"tag" binding:"max=20"`
	Priority     string `json:"priority" binding:"omitempty,priority"`
	SelectedDate string `json:"selectedDate" binding:"required"`
}

// TodoPatch is the body of an update call. Nil fields are left unchanged.
type TodoPatch struct {
	Text         *string `json:"text" binding:"omitempty,max=500"`
	Tag          *string `json:"tag" binding:"omitempty,max=20"`
	Priority     *string `json:"priority" binding:"omitempty,priority"`
	Status       *string `json:"status" binding:"omitempty,status"`
	SelectedDate *string `json:"selectedDate"`
}

// TodoQuery mirrors the list endpoint's query string.
type TodoQuery struct {
	Tag          string `form:"tag"`
	Status       string `form:"status"`
	Priority     string `form:"priority"`
	SelectedDate string `form:"selectedDate"`
}
