package usecase

import (
	"context"
	"strings"
	"time"

	"taskpulse/model"

	"github.com/google/uuid"
)

type GoalsService struct {
	repo GoalStore
	now  func() time.Time
}

func NewGoalsService(repo GoalStore) *GoalsService {
	return &GoalsService{repo: repo, now: time.Now}
}

type GoalRequest struct {
	Title     string          `json:"title" binding:"required,max=200"`
	Type      model.GoalType  `json:"type" binding:"required,goaltype"`
	Timeframe model.Timeframe `json:"timeframe"`
}

func (svc *GoalsService) CreateGoal(ctx context.Context, userID string, req GoalRequest) (*model.Goal, error) {
	if userID == "" {
		return nil, invalid("user ID is required")
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalid("goal title is required")
	}
	if err := validateTimeframe(req.Type, req.Timeframe); err != nil {
		return nil, err
	}

	tf := req.Timeframe
	// only the field matching the goal type is kept
	switch req.Type {
	case model.GoalMonthly:
		tf.Quarter = 0
	case model.GoalQuarterly:
		tf.Month = 0
	case model.GoalYearly:
		tf.Month, tf.Quarter = 0, 0
	}

	now := svc.now().UTC()
	goal := &model.Goal{
		GoalID:    uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Type:      req.Type,
		Timeframe: tf,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := svc.repo.CreateGoal(ctx, goal); err != nil {
		return nil, storeErr("create goal", err)
	}
	return goal, nil
}

func (svc *GoalsService) ListGoals(ctx context.Context, userID string) ([]model.Goal, error) {
	goals, err := svc.repo.GetUserGoals(ctx, userID)
	if err != nil {
		return nil, storeErr("list goals", err)
	}
	return nonNil(goals), nil
}

// ToggleGoal flips the completion flag and returns the updated goal.
func (svc *GoalsService) ToggleGoal(ctx context.Context, userID, goalID string) (*model.Goal, error) {
	goal, err := svc.repo.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, storeErr("get goal", err)
	}
	goal.IsCompleted = !goal.IsCompleted
	if err := svc.repo.SetGoalCompleted(ctx, userID, goalID, goal.IsCompleted); err != nil {
		return nil, storeErr("update goal", err)
	}
	goal.UpdatedAt = svc.now().UTC()
	return goal, nil
}

func (svc *GoalsService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	return storeErr("delete goal", svc.repo.DeleteGoal(ctx, userID, goalID))
}

func validateTimeframe(t model.GoalType, tf model.Timeframe) error {
	if tf.Year < 1970 || tf.Year > 9999 {
		return invalid("timeframe year is required")
	}
	switch t {
	case model.GoalMonthly:
		if tf.Month < 1 || tf.Month > 12 {
			return invalid("monthly goals need a month between 1 and 12")
		}
	case model.GoalQuarterly:
		if tf.Quarter < 1 || tf.Quarter > 4 {
			return invalid("quarterly goals need a quarter between 1 and 4")
		}
	case model.GoalYearly:
	default:
		return invalid("invalid goal type %q", t)
	}
	return nil
}
