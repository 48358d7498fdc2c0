package model

import (
	"time"
)

// Mastery tiers, classified from rolling accuracy alone. Thresholds are
// inclusive at the lower bound of each tier, evaluated highest-first.
const (
	MasteryBeginner     = "beginner"
	MasteryIntermediate = "intermediate"
	MasteryAdvanced     = "advanced"
	MasteryExpert       = "expert"
)

// Progress is the rolling per-(user, topic, difficulty) aggregate of attempt
// history. At most one row exists per key; counters never decrease.
type Progress struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	UserID         string    `json:"user_id" gorm:"not null;uniqueIndex:idx_progress_key,priority:1"`
	Topic          string    `json:"topic" gorm:"not null;uniqueIndex:idx_progress_key,priority:2"`
	Difficulty     string    `json:"difficulty" gorm:"not null;uniqueIndex:idx_progress_key,priority:3"`
	TotalAttempted int       `json:"total_attempted" gorm:"not null;default:0"`
	TotalCorrect   int       `json:"total_correct" gorm:"not null;default:0"`
	TotalTimeSpent int       `json:"total_time_spent" gorm:"not null;default:0"` // seconds
	AverageTime    float64   `json:"average_time"`                               // seconds per attempt
	Accuracy       float64   `json:"accuracy"`                                   // 0.0-1.0
	Streak         int       `json:"streak"`
	LastPracticed  time.Time `json:"last_practiced"`
	MasteryLevel   string    `json:"mastery_level" gorm:"not null;default:'beginner'"` // "beginner", "intermediate", "advanced", "expert"
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MasteryForAccuracy classifies an accuracy ratio into a mastery tier.
func MasteryForAccuracy(accuracy float64) string {
	switch {
	case accuracy >= 0.8:
		return MasteryExpert
	case accuracy >= 0.6:
		return MasteryAdvanced
	case accuracy >= 0.4:
		return MasteryIntermediate
	default:
		return MasteryBeginner
	}
}
