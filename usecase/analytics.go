package usecase

import (
	"context"
	"strings"
	"time"

	"taskpulse/analytics"
	"taskpulse/logger"
	"taskpulse/model"
	"taskpulse/utils"
)

type AnalyticsService struct {
	store   TodoStore
	maxDays int
	now     func() time.Time
}

func NewAnalyticsService(store TodoStore, maxDays int) *AnalyticsService {
	return &AnalyticsService{
		store:   store,
		maxDays: maxDays,
		now:     time.Now,
	}
}

// WithClock replaces the wall clock used to resolve "today".
func (svc *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	svc.now = now
	return svc
}

// resolve validates the request before anything reaches the store.
func (svc *AnalyticsService) resolve(userID, days string) (analytics.Window, error) {
	if strings.TrimSpace(userID) == "" {
		return analytics.Window{}, invalid("user ID is required")
	}
	n, err := analytics.ParseDays(days, svc.maxDays)
	if err != nil {
		return analytics.Window{}, invalid("%v", err)
	}
	return analytics.ResolveWindow(n, svc.now()), nil
}

// Dashboard returns the status and priority breakdowns of the window
// together with the per-day trends and the tag histogram.
func (svc *AnalyticsService) Dashboard(ctx context.Context, userID, days string) (*model.Dashboard, error) {
	dashboard, err := svc.dashboard(ctx, userID, days)
	utils.TrackAnalyticsRequest("dashboard", err)
	return dashboard, err
}

func (svc *AnalyticsService) dashboard(ctx context.Context, userID, days string) (*model.Dashboard, error) {
	w, err := svc.resolve(userID, days)
	if err != nil {
		return nil, err
	}
	start, end := w.Start, w.EndExclusive()

	todos, err := svc.store.FindByUserAndRange(ctx, userID, start, end, model.TodoFilter{})
	if err != nil {
		return nil, storeErr("fetch todos", err)
	}
	status, priority := analytics.Breakdown(todos)

	completion, err := svc.store.GroupByDayWithCompletedCount(ctx, userID, start, end)
	if err != nil {
		return nil, storeErr("completion trend", err)
	}
	totals, err := svc.store.GroupByDayWithTotalAndCompleted(ctx, userID, start, end)
	if err != nil {
		return nil, storeErr("created vs completed trend", err)
	}
	tags, err := svc.store.GroupByTagCount(ctx, userID, start, end)
	if err != nil {
		return nil, storeErr("tag breakdown", err)
	}

	logger.Debug("dashboard computed",
		"user_id", userID,
		"start", model.DayKey(w.Start),
		"end", model.DayKey(w.End),
		"todos", status.TotalTodos)

	return &model.Dashboard{
		StatusBreakdown:         status,
		PriorityBreakdown:       priority,
		CompletionTrend:         nonNil(completion),
		CreatedVsCompletedTrend: nonNil(totals),
		TagBreakdown:            nonNil(tags),
	}, nil
}

// Streak returns the longest run of days with a completed todo plus a
// calendar entry for every day in the window.
func (svc *AnalyticsService) Streak(ctx context.Context, userID, days string) (*model.StreakReport, error) {
	report, err := svc.streak(ctx, userID, days)
	utils.TrackAnalyticsRequest("streak", err)
	return report, err
}

func (svc *AnalyticsService) streak(ctx context.Context, userID, days string) (*model.StreakReport, error) {
	w, err := svc.resolve(userID, days)
	if err != nil {
		return nil, err
	}
	start, end := w.Start, w.EndExclusive()

	activeDays, err := svc.store.DistinctCompletedDays(ctx, userID, start, end)
	if err != nil {
		return nil, storeErr("active days", err)
	}
	todos, err := svc.store.FindByUserAndRange(ctx, userID, start, end, model.TodoFilter{})
	if err != nil {
		return nil, storeErr("fetch todos", err)
	}

	report := analytics.BuildStreakReport(w, activeDays, todos)
	logger.Debug("streak computed",
		"user_id", userID,
		"active_days", report.Summary.ActiveDays,
		"max_streak", report.Summary.MaxStreak)
	return &report, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
