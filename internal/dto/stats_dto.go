package dto

import "time"

type ProgressResponse struct {
	ID             uint      `json:"id"`
	UserID         string    `json:"user_id"`
	Topic          string    `json:"topic"`
	Difficulty     string    `json:"difficulty"`
	TotalAttempted int       `json:"total_attempted"`
	TotalCorrect   int       `json:"total_correct"`
	TotalTimeSpent int       `json:"total_time_spent"`
	AverageTime    float64   `json:"average_time"`
	Accuracy       float64   `json:"accuracy"`
	Streak         int       `json:"streak"`
	LastPracticed  time.Time `json:"last_practiced"`
	MasteryLevel   string    `json:"mastery_level"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// StatsResponse is the dashboard summary. Derived on every read, never stored.
type StatsResponse struct {
	TotalSolved int                `json:"total_solved"`
	TotalTime   int                `json:"total_time"` // seconds
	Accuracy    int                `json:"accuracy"`   // 0-100 percentage
	Streak      int                `json:"streak"`     // consecutive practice days
	Progress    []ProgressResponse `json:"progress"`
}
