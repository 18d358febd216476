package analytics

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"taskpulse/model"
)

var today = time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

func dayOffset(n int) time.Time {
	return today.AddDate(0, 0, n)
}

func todo(offset int, status model.Status, priority model.Priority, tag string) model.Todo {
	return model.Todo{
		UserID:       "user-1",
		Text:         "task",
		Tag:          tag,
		Priority:     priority,
		Status:       status,
		SelectedDate: dayOffset(offset),
	}
}

func TestBreakdown(t *testing.T) {
	todos := []model.Todo{
		todo(0, model.StatusCompleted, model.PriorityHigh, "work"),
		todo(0, model.StatusPending, model.PriorityLow, "home"),
		todo(-1, model.StatusPending, model.PriorityMedium, ""),
		todo(-2, model.StatusCompleted, "urgent", "work"),
		todo(-2, "", "", ""),
	}

	status, priority := Breakdown(todos)

	wantStatus := model.StatusBreakdown{TotalTodos: 5, PendingTodos: 3, CompletedTodos: 2}
	if status != wantStatus {
		t.Errorf("expected %+v, got %+v", wantStatus, status)
	}
	wantPriority := model.PriorityBreakdown{Low: 1, Medium: 3, High: 1}
	if priority != wantPriority {
		t.Errorf("expected %+v, got %+v", wantPriority, priority)
	}
}

func TestBreakdownEmpty(t *testing.T) {
	status, priority := Breakdown(nil)
	if status != (model.StatusBreakdown{}) || priority != (model.PriorityBreakdown{}) {
		t.Errorf("expected zero breakdowns, got %+v %+v", status, priority)
	}
}

func TestBreakdownPartitionsAlwaysSum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	statuses := []model.Status{model.StatusPending, model.StatusCompleted, "archived", ""}
	priorities := []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh, "HIGH", "p1", ""}

	for round := 0; round < 200; round++ {
		todos := make([]model.Todo, rng.Intn(40))
		for i := range todos {
			todos[i] = todo(-rng.Intn(10), statuses[rng.Intn(len(statuses))], priorities[rng.Intn(len(priorities))], "")
		}

		status, priority := Breakdown(todos)
		if status.TotalTodos != len(todos) {
			t.Fatalf("round %d: expected total %d, got %d", round, len(todos), status.TotalTodos)
		}
		if status.PendingTodos+status.CompletedTodos != status.TotalTodos {
			t.Fatalf("round %d: status partition broken: %+v", round, status)
		}
		if priority.Low+priority.Medium+priority.High != status.TotalTodos {
			t.Fatalf("round %d: priority partition broken: %+v vs %d", round, priority, status.TotalTodos)
		}
	}
}

func TestTrends(t *testing.T) {
	todos := []model.Todo{
		todo(-4, model.StatusCompleted, model.PriorityLow, "work"),
		todo(-4, model.StatusPending, model.PriorityLow, "work"),
		todo(-2, model.StatusPending, model.PriorityLow, "home"),
		{UserID: "user-1", Status: model.StatusCompleted, Tag: "gym", SelectedDate: dayOffset(0).Add(23 * time.Hour)},
		todo(0, model.StatusCompleted, model.PriorityLow, "work"),
	}

	t.Run("completion trend skips days without completions", func(t *testing.T) {
		got := CompletionTrend(todos)
		want := []model.DayCompletion{
			{Date: "2024-05-16", Completed: 1},
			{Date: "2024-05-20", Completed: 2},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("created vs completed skips empty days", func(t *testing.T) {
		got := CreatedVsCompletedTrend(todos)
		want := []model.DayTotals{
			{Date: "2024-05-16", Total: 2, Completed: 1},
			{Date: "2024-05-18", Total: 1, Completed: 0},
			{Date: "2024-05-20", Total: 2, Completed: 2},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("tag breakdown sorted by count then tag", func(t *testing.T) {
		got := TagBreakdown(append(todos, todo(-1, model.StatusPending, model.PriorityLow, "")))
		want := []model.TagCount{
			{Tag: "work", Count: 3},
			{Tag: "gym", Count: 1},
			{Tag: "home", Count: 1},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %+v, got %+v", want, got)
		}
		for i := 1; i < len(got); i++ {
			if got[i].Count > got[i-1].Count {
				t.Errorf("tag breakdown not descending at %d: %+v", i, got)
			}
		}
	})

	t.Run("empty input yields empty series", func(t *testing.T) {
		if got := CompletionTrend(nil); len(got) != 0 {
			t.Errorf("expected empty, got %+v", got)
		}
		if got := CreatedVsCompletedTrend(nil); len(got) != 0 {
			t.Errorf("expected empty, got %+v", got)
		}
		if got := TagBreakdown(nil); len(got) != 0 {
			t.Errorf("expected empty, got %+v", got)
		}
	})
}

func TestMaxStreak(t *testing.T) {
	tests := []struct {
		name string
		days []time.Time
		want int
	}{
		{name: "empty", days: nil, want: 0},
		{name: "single day", days: []time.Time{dayOffset(-3)}, want: 1},
		{name: "three consecutive", days: []time.Time{dayOffset(-2), dayOffset(-1), dayOffset(0)}, want: 3},
		{name: "gap", days: []time.Time{dayOffset(-2), dayOffset(0)}, want: 1},
		{name: "run after gap resets to one", days: []time.Time{dayOffset(-6), dayOffset(-4), dayOffset(-3), dayOffset(-2), dayOffset(0)}, want: 3},
		{name: "longest run first", days: []time.Time{dayOffset(-9), dayOffset(-8), dayOffset(-7), dayOffset(-6), dayOffset(-2), dayOffset(-1)}, want: 4},
		{name: "duplicates ignored", days: []time.Time{dayOffset(-1), dayOffset(-1), dayOffset(0)}, want: 2},
		{name: "time of day ignored", days: []time.Time{dayOffset(-1).Add(22 * time.Hour), dayOffset(0).Add(time.Hour)}, want: 2},
		{name: "month boundary", days: []time.Time{
			time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxStreak(tt.days); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestActiveDays(t *testing.T) {
	w := ResolveWindow(5, today.Add(9*time.Hour))
	todos := []model.Todo{
		todo(0, model.StatusCompleted, model.PriorityLow, ""),
		todo(0, model.StatusCompleted, model.PriorityLow, ""),
		todo(-1, model.StatusPending, model.PriorityLow, ""),
		todo(-3, model.StatusCompleted, model.PriorityLow, ""),
		todo(-9, model.StatusCompleted, model.PriorityLow, ""),
	}

	got := ActiveDays(w, todos)
	want := []time.Time{dayOffset(-3), dayOffset(0)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBuildStreakReport(t *testing.T) {
	// Five-day window, completions on days 1, 2, 3 and 5; day 4 has only
	// a pending todo.
	w := ResolveWindow(4, today.Add(12*time.Hour))
	todos := []model.Todo{
		todo(-4, model.StatusCompleted, model.PriorityLow, ""),
		todo(-3, model.StatusCompleted, model.PriorityLow, ""),
		todo(-3, model.StatusPending, model.PriorityLow, ""),
		todo(-2, model.StatusCompleted, model.PriorityLow, ""),
		todo(-1, model.StatusPending, model.PriorityLow, ""),
		todo(0, model.StatusCompleted, model.PriorityLow, ""),
	}

	report := BuildStreakReport(w, ActiveDays(w, todos), todos)

	wantSummary := model.StreakSummary{CompletedTasks: 4, TotalTasks: 6, ActiveDays: 4, MaxStreak: 3}
	if report.Summary != wantSummary {
		t.Errorf("expected %+v, got %+v", wantSummary, report.Summary)
	}

	wantData := []model.StreakDay{
		{Date: "2024-05-16", Active: true, Count: 1},
		{Date: "2024-05-17", Active: true, Count: 2},
		{Date: "2024-05-18", Active: true, Count: 1},
		{Date: "2024-05-19", Active: true, Count: 1},
		{Date: "2024-05-20", Active: true, Count: 1},
	}
	if !reflect.DeepEqual(report.StreakData, wantData) {
		t.Errorf("expected %+v, got %+v", wantData, report.StreakData)
	}
}

func TestCalendarActiveDiffersFromStreakActive(t *testing.T) {
	w := ResolveWindow(2, today)
	todos := []model.Todo{
		todo(-1, model.StatusPending, model.PriorityLow, ""),
	}

	report := BuildStreakReport(w, ActiveDays(w, todos), todos)

	if report.Summary.ActiveDays != 0 || report.Summary.MaxStreak != 0 {
		t.Errorf("pending-only day should not count toward the streak: %+v", report.Summary)
	}
	if !report.StreakData[1].Active || report.StreakData[1].Count != 1 {
		t.Errorf("pending-only day should be active on the calendar: %+v", report.StreakData[1])
	}
}

func TestTrendOmitsEmptyDaysWhileCalendarKeepsThem(t *testing.T) {
	w := ResolveWindow(2, today)
	todos := []model.Todo{
		todo(-2, model.StatusCompleted, model.PriorityLow, ""),
		todo(0, model.StatusCompleted, model.PriorityLow, ""),
	}

	for _, entry := range CompletionTrend(todos) {
		if entry.Date == "2024-05-19" {
			t.Fatalf("completion trend should omit the empty day, got %+v", entry)
		}
	}

	report := BuildStreakReport(w, ActiveDays(w, todos), todos)
	want := model.StreakDay{Date: "2024-05-19", Active: false, Count: 0}
	if report.StreakData[1] != want {
		t.Errorf("expected %+v, got %+v", want, report.StreakData[1])
	}
}

func TestStreakDataLengthMatchesWindow(t *testing.T) {
	for _, days := range []int{0, 1, 6, 29, 365} {
		w := ResolveWindow(days, today)
		report := BuildStreakReport(w, nil, nil)
		if len(report.StreakData) != days+1 {
			t.Errorf("days=%d: expected %d entries, got %d", days, days+1, len(report.StreakData))
		}
		if report.StreakData[0].Date != model.DayKey(w.Start) || report.StreakData[days].Date != model.DayKey(w.End) {
			t.Errorf("days=%d: calendar bounds %s..%s do not match window", days, report.StreakData[0].Date, report.StreakData[days].Date)
		}
	}
}

func TestAggregationIsIdempotent(t *testing.T) {
	w := ResolveWindow(3, today)
	todos := []model.Todo{
		todo(-3, model.StatusCompleted, model.PriorityHigh, "a"),
		todo(-1, model.StatusPending, model.PriorityLow, "b"),
		todo(0, model.StatusCompleted, model.PriorityMedium, "a"),
	}

	first := BuildStreakReport(w, ActiveDays(w, todos), todos)
	second := BuildStreakReport(w, ActiveDays(w, todos), todos)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical reports, got %+v and %+v", first, second)
	}
	if !reflect.DeepEqual(TagBreakdown(todos), TagBreakdown(todos)) {
		t.Error("tag breakdown is not deterministic")
	}
}
