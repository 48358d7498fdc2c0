package model

import "time"

// AttemptResult is the graded outcome of a single question inside a session.
// Immutable once recorded; rows are only ever written by Session end.
type AttemptResult struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	SessionID  string    `json:"session_id" gorm:"type:uuid;not null;index"`
	QuestionID string    `json:"question_id" gorm:"not null"`
	IsCorrect  bool      `json:"is_correct" gorm:"not null"`
	TimeSpent  int       `json:"time_spent" gorm:"not null"` // seconds
	Attempts   int       `json:"attempts" gorm:"not null;default:1"`
	HintsUsed  int       `json:"hints_used" gorm:"not null;default:0"`
	Solution   *string   `json:"solution,omitempty" gorm:"type:text"`
	Position   int       `json:"position" gorm:"not null"` // order within the session
	CreatedAt  time.Time `json:"created_at"`
}
