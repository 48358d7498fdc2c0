package service

import (
	"sort"
	"time"

	"github.com/lequan2902/codeprep/internal/model"
)

// StreakService derives the consecutive-day practice streak from a user's
// sessions. Only completed sessions with an end time count; days are compared
// at calendar-day granularity and a streak must include today to be alive.
type StreakService interface {
	Calculate(sessions []model.Session) int
}

type streakService struct{}

func NewStreakService() StreakService {
	return &streakService{}
}

func (s *streakService) Calculate(sessions []model.Session) int {
	return streakFrom(time.Now(), sessions)
}

func streakFrom(now time.Time, sessions []model.Session) int {
	seen := make(map[time.Time]struct{})
	days := make([]time.Time, 0, len(sessions))
	for _, session := range sessions {
		if session.Status != model.SessionStatusCompleted || session.EndTime == nil {
			continue
		}
		day := truncateToDay(*session.EndTime)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 0
	expected := truncateToDay(now)
	for _, day := range days {
		if day.After(expected) {
			// End time ahead of the reference clock; ignore.
			continue
		}
		if !day.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
