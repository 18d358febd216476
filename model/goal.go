package model

import "time"

type GoalType string

const (
	GoalMonthly   GoalType = "monthly"
	GoalQuarterly GoalType = "quarterly"
	GoalYearly    GoalType = "yearly"
)

type Timeframe struct {
	Month   int `bson:"month,omitempty" json:"month,omitempty"`
	Quarter int `bson:"quarter,omitempty" json:"quarter,omitempty"`
	Year    int `bson:"year" json:"year"`
}

type Goal struct {
	GoalID      string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	Title       string    `bson:"title" json:"title"`
	Type        GoalType  `bson:"type" json:"type"`
	Timeframe   Timeframe `bson:"timeframe" json:"timeframe"`
	IsCompleted bool      `bson:"is_completed" json:"is_completed"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
