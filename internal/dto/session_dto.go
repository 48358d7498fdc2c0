package dto

import "time"

// AttemptResultDTO carries one graded answer inside an end-session submission.
type AttemptResultDTO struct {
	QuestionID string  `json:"question_id" binding:"required"`
	IsCorrect  bool    `json:"is_correct"`
	TimeSpent  int     `json:"time_spent" binding:"gte=0"` // seconds
	Attempts   int     `json:"attempts" binding:"omitempty,gte=1"`
	HintsUsed  int     `json:"hints_used" binding:"gte=0"`
	Solution   *string `json:"solution,omitempty"`
}

// CreateSessionRequest starts a new practice or mock-interview session.
type CreateSessionRequest struct {
	UserID      string   `json:"user_id" binding:"required"`
	Topic       string   `json:"topic" binding:"required"`
	Difficulty  string   `json:"difficulty" binding:"required,oneof=easy medium hard"`
	TimeLimit   int      `json:"time_limit" binding:"gte=0"` // minutes, 0 = unlimited
	SessionType string   `json:"session_type" binding:"omitempty,oneof=practice mock-interview"`
	Questions   []string `json:"questions"`
}

// UpdateSessionRequest merges the allowed mutable fields into a stored session.
// Nil fields are left untouched.
type UpdateSessionRequest struct {
	Status    *string            `json:"status" binding:"omitempty,oneof=active completed abandoned"`
	EndTime   *time.Time         `json:"end_time"`
	TotalTime *int               `json:"total_time" binding:"omitempty,gte=0"`
	Score     *int               `json:"score" binding:"omitempty,gte=0,lte=100"`
	Accuracy  *float64           `json:"accuracy" binding:"omitempty,gte=0,lte=1"`
	Results   []AttemptResultDTO `json:"results" binding:"omitempty,dive"`
}

// EndSessionRequest finalizes a session with its graded results. TotalTime is
// optional; when absent it is derived from the session start time.
type EndSessionRequest struct {
	Results   []AttemptResultDTO `json:"results" binding:"dive"`
	TotalTime *int               `json:"total_time" binding:"omitempty,gte=0"`
}

type AttemptResultResponse struct {
	ID         uint      `json:"id"`
	QuestionID string    `json:"question_id"`
	IsCorrect  bool      `json:"is_correct"`
	TimeSpent  int       `json:"time_spent"`
	Attempts   int       `json:"attempts"`
	HintsUsed  int       `json:"hints_used"`
	Solution   *string   `json:"solution,omitempty"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

type SessionResponse struct {
	ID          string                  `json:"id"`
	UserID      string                  `json:"user_id"`
	SessionType string                  `json:"session_type"`
	Topic       string                  `json:"topic"`
	Difficulty  string                  `json:"difficulty"`
	TimeLimit   int                     `json:"time_limit"`
	Questions   []string                `json:"questions"`
	StartTime   time.Time               `json:"start_time"`
	EndTime     *time.Time              `json:"end_time,omitempty"`
	TotalTime   int                     `json:"total_time"`
	Status      string                  `json:"status"`
	Results     []AttemptResultResponse `json:"results,omitempty"`
	Score       int                     `json:"score"`
	Accuracy    float64                 `json:"accuracy"`
	CreatedAt   time.Time               `json:"created_at"`
}

// SessionSummaryResponse is the list-view shape, without per-question results.
type SessionSummaryResponse struct {
	ID          string     `json:"id"`
	SessionType string     `json:"session_type"`
	Topic       string     `json:"topic"`
	Difficulty  string     `json:"difficulty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	TotalTime   int        `json:"total_time"`
	Status      string     `json:"status"`
	Score       int        `json:"score"`
	Accuracy    float64    `json:"accuracy"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
