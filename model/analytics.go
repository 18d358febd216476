package model

type StatusBreakdown struct {
	TotalTodos     int `json:"totalTodos"`
	PendingTodos   int `json:"pendingTodos"`
	CompletedTodos int `json:"completedTodos"`
}

type PriorityBreakdown struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

type DayCompletion struct {
	Date      string `bson:"_id" json:"date"`
	Completed int    `bson:"completed" json:"completed"`
}

type DayTotals struct {
	Date      string `bson:"_id" json:"date"`
	Total     int    `bson:"total" json:"total"`
	Completed int    `bson:"completed" json:"completed"`
}

type TagCount struct {
	Tag   string `bson:"_id" json:"tag"`
	Count int    `bson:"count" json:"count"`
}

// Dashboard is the combined analytics view over a date window.
type Dashboard struct {
	StatusBreakdown         StatusBreakdown   `json:"status_breakdown"`
	PriorityBreakdown       PriorityBreakdown `json:"priority_breakdown"`
	CompletionTrend         []DayCompletion   `json:"completion_trend"`
	CreatedVsCompletedTrend []DayTotals       `json:"created_vs_completed_trend"`
	TagBreakdown            []TagCount        `json:"tag_breakdown"`
}

type StreakSummary struct {
	CompletedTasks int `json:"completedTasks"`
	TotalTasks     int `json:"totalTasks"`
	ActiveDays     int `json:"activeDays"`
	MaxStreak      int `json:"maxStreak"`
}

// StreakDay is one calendar cell. Active means at least one todo of any
// status was scheduled that day.
type StreakDay struct {
	Date   string `json:"date"`
	Active bool   `json:"active"`
	Count  int    `json:"count"`
}

type StreakReport struct {
	Summary    StreakSummary `json:"summary"`
	StreakData []StreakDay   `json:"streakData"`
}
