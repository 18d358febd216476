package analytics

import "taskpulse/model"

// Breakdown partitions todos by status and by priority in one pass.
// Anything not completed counts as pending, and priorities outside the
// enumeration count as medium, so both partitions always sum to the total.
func Breakdown(todos []model.Todo) (model.StatusBreakdown, model.PriorityBreakdown) {
	var status model.StatusBreakdown
	var priority model.PriorityBreakdown

	for i := range todos {
		status.TotalTodos++
		if todos[i].IsCompleted() {
			status.CompletedTodos++
		} else {
			status.PendingTodos++
		}

		switch todos[i].Priority.Bucket() {
		case model.PriorityLow:
			priority.Low++
		case model.PriorityHigh:
			priority.High++
		default:
			priority.Medium++
		}
	}
	return status, priority
}
