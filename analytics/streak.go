package analytics

import (
	"sort"
	"time"

	"taskpulse/model"
)

// ActiveDays returns the distinct UTC days in w on which at least one todo
// is completed, ascending.
func ActiveDays(w Window, todos []model.Todo) []time.Time {
	seen := make(map[time.Time]struct{})
	for i := range todos {
		if !todos[i].IsCompleted() || !w.Contains(todos[i].SelectedDate) {
			continue
		}
		seen[model.StartOfDay(todos[i].SelectedDate)] = struct{}{}
	}

	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// MaxStreak is the longest run of consecutive calendar days in an ascending
// list of days. Duplicates of the same day do not break or extend a run.
func MaxStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}

	longest, current := 1, 1
	prev := model.StartOfDay(days[0])
	for _, d := range days[1:] {
		d = model.StartOfDay(d)
		switch d.Sub(prev) {
		case 0:
			continue
		case day:
			current++
		default:
			current = 1
		}
		if current > longest {
			longest = current
		}
		prev = d
	}
	return longest
}

// BuildStreakReport combines the completed-day streak with a calendar of
// every day in w. activeDays drives activeDays/maxStreak; todos drive the
// task totals and the per-day counts. A calendar day is active when any
// todo is scheduled on it, completed or not.
func BuildStreakReport(w Window, activeDays []time.Time, todos []model.Todo) model.StreakReport {
	perDay := make(map[string]int)
	summary := model.StreakSummary{
		ActiveDays: len(activeDays),
		MaxStreak:  MaxStreak(activeDays),
	}
	for i := range todos {
		summary.TotalTasks++
		if todos[i].IsCompleted() {
			summary.CompletedTasks++
		}
		perDay[model.DayKey(todos[i].SelectedDate)]++
	}

	calendar := make([]model.StreakDay, 0, w.Days())
	w.Each(func(d time.Time) {
		key := model.DayKey(d)
		count := perDay[key]
		calendar = append(calendar, model.StreakDay{
			Date:   key,
			Active: count > 0,
			Count:  count,
		})
	})

	return model.StreakReport{Summary: summary, StreakData: calendar}
}
