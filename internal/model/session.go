package model

import (
	"time"

	"gorm.io/gorm"
)

// Session lifecycle states. A session only ever moves forward:
// active -> completed (on end) or active -> abandoned.
const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
	SessionStatusAbandoned = "abandoned"
)

const (
	SessionTypePractice      = "practice"
	SessionTypeMockInterview = "mock-interview"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Session struct {
	ID          string          `json:"id" gorm:"primarykey;type:uuid"`
	UserID      string          `json:"user_id" gorm:"not null;index"`
	SessionType string          `json:"session_type" gorm:"not null;default:'practice'"` // "practice", "mock-interview"
	Topic       string          `json:"topic" gorm:"not null;index"`
	Difficulty  string          `json:"difficulty" gorm:"not null"` // "easy", "medium", "hard"
	TimeLimit   int             `json:"time_limit"`                 // minutes, 0 = unlimited
	Questions   []string        `json:"questions" gorm:"serializer:json"`
	StartTime   time.Time       `json:"start_time" gorm:"not null"`
	EndTime     *time.Time      `json:"end_time,omitempty"`
	TotalTime   int             `json:"total_time"`                                    // seconds
	Status      string          `json:"status" gorm:"not null;default:'active';index"` // "active", "completed", "abandoned"
	Results     []AttemptResult `json:"results,omitempty" gorm:"foreignKey:SessionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Score       int             `json:"score"`    // 0-100, computed once at completion
	Accuracy    float64         `json:"accuracy"` // 0.0-1.0, computed once at completion
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// IsTerminal reports whether the session has left the active state.
func (s *Session) IsTerminal() bool {
	return s.Status == SessionStatusCompleted || s.Status == SessionStatusAbandoned
}

// CorrectCount counts the results graded correct.
func (s *Session) CorrectCount() int {
	n := 0
	for _, r := range s.Results {
		if r.IsCorrect {
			n++
		}
	}
	return n
}
