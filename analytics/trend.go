package analytics

import (
	"sort"

	"taskpulse/model"
)

// Trend series are keyed by the UTC day of SelectedDate. Days without a
// matching todo are left out; nothing here synthesizes zero entries.

func CompletionTrend(todos []model.Todo) []model.DayCompletion {
	counts := make(map[string]int)
	for i := range todos {
		if todos[i].IsCompleted() {
			counts[model.DayKey(todos[i].SelectedDate)]++
		}
	}

	trend := make([]model.DayCompletion, 0, len(counts))
	for date, n := range counts {
		trend = append(trend, model.DayCompletion{Date: date, Completed: n})
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })
	return trend
}

func CreatedVsCompletedTrend(todos []model.Todo) []model.DayTotals {
	byDay := make(map[string]*model.DayTotals)
	for i := range todos {
		key := model.DayKey(todos[i].SelectedDate)
		entry, ok := byDay[key]
		if !ok {
			entry = &model.DayTotals{Date: key}
			byDay[key] = entry
		}
		entry.Total++
		if todos[i].IsCompleted() {
			entry.Completed++
		}
	}

	trend := make([]model.DayTotals, 0, len(byDay))
	for _, entry := range byDay {
		trend = append(trend, *entry)
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })
	return trend
}

// TagBreakdown counts tag usage. Untagged todos are not counted.
func TagBreakdown(todos []model.Todo) []model.TagCount {
	counts := make(map[string]int)
	for i := range todos {
		if todos[i].Tag != "" {
			counts[todos[i].Tag]++
		}
	}

	tags := make([]model.TagCount, 0, len(counts))
	for tag, n := range counts {
		tags = append(tags, model.TagCount{Tag: tag, Count: n})
	}
	SortTagCounts(tags)
	return tags
}

// SortTagCounts orders by count descending, then tag ascending.
func SortTagCounts(tags []model.TagCount) {
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})
}
