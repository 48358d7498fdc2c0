package service

import (
	"testing"
	"time"

	"github.com/lequan2902/codeprep/internal/model"
)

func completedAt(end time.Time) model.Session {
	return model.Session{Status: model.SessionStatusCompleted, EndTime: &end}
}

func TestStreakFrom(t *testing.T) {
	now := time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC)
	day := 24 * time.Hour

	cases := []struct {
		name     string
		sessions []model.Session
		want     int
	}{
		{
			name:     "no sessions",
			sessions: nil,
			want:     0,
		},
		{
			name: "three consecutive days",
			sessions: []model.Session{
				completedAt(now.Add(-2 * time.Hour)),
				completedAt(now.Add(-1 * day)),
				completedAt(now.Add(-2 * day)),
			},
			want: 3,
		},
		{
			name: "gap after today",
			sessions: []model.Session{
				completedAt(now.Add(-1 * time.Hour)),
				completedAt(now.Add(-2 * day)),
			},
			want: 1,
		},
		{
			name: "two sessions same day count once",
			sessions: []model.Session{
				completedAt(now.Add(-1 * time.Hour)),
				completedAt(now.Add(-3 * time.Hour)),
				completedAt(now.Add(-1 * day)),
			},
			want: 2,
		},
		{
			name: "most recent session yesterday",
			sessions: []model.Session{
				completedAt(now.Add(-1 * day)),
				completedAt(now.Add(-2 * day)),
			},
			want: 0,
		},
		{
			name: "abandoned and active sessions ignored",
			sessions: []model.Session{
				{Status: model.SessionStatusAbandoned, EndTime: ptrTime(now)},
				{Status: model.SessionStatusActive},
				completedAt(now.Add(-1 * time.Hour)),
			},
			want: 1,
		},
		{
			name: "completed without end time ignored",
			sessions: []model.Session{
				{Status: model.SessionStatusCompleted},
			},
			want: 0,
		},
		{
			name: "unordered input",
			sessions: []model.Session{
				completedAt(now.Add(-2 * day)),
				completedAt(now.Add(-1 * time.Hour)),
				completedAt(now.Add(-1 * day)),
			},
			want: 3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := streakFrom(now, tc.sessions); got != tc.want {
				t.Fatalf("streakFrom() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestStreakCrossesMidnightBoundary(t *testing.T) {
	// A session late yesterday evening and one early this morning are
	// different calendar days even though they are hours apart.
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	sessions := []model.Session{
		completedAt(time.Date(2026, time.March, 10, 0, 30, 0, 0, time.UTC)),
		completedAt(time.Date(2026, time.March, 9, 23, 30, 0, 0, time.UTC)),
	}
	if got := streakFrom(now, sessions); got != 2 {
		t.Fatalf("streakFrom() = %d, want 2", got)
	}
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
