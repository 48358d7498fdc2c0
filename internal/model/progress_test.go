package model

import "testing"

func TestMasteryForAccuracy(t *testing.T) {
	cases := []struct {
		name     string
		accuracy float64
		want     string
	}{
		{"zero", 0.0, MasteryBeginner},
		{"low", 0.10, MasteryBeginner},
		{"just below intermediate", 0.39, MasteryBeginner},
		{"intermediate lower bound", 0.40, MasteryIntermediate},
		{"intermediate", 0.45, MasteryIntermediate},
		{"just below advanced", 0.59, MasteryIntermediate},
		{"advanced lower bound", 0.60, MasteryAdvanced},
		{"advanced", 0.65, MasteryAdvanced},
		{"just below expert", 0.79, MasteryAdvanced},
		{"expert lower bound", 0.80, MasteryExpert},
		{"expert", 0.85, MasteryExpert},
		{"perfect", 1.0, MasteryExpert},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MasteryForAccuracy(tc.accuracy); got != tc.want {
				t.Fatalf("MasteryForAccuracy(%.2f) = %q, want %q", tc.accuracy, got, tc.want)
			}
		})
	}
}

func TestSessionCorrectCount(t *testing.T) {
	s := Session{Results: []AttemptResult{
		{IsCorrect: true},
		{IsCorrect: false},
		{IsCorrect: true},
	}}
	if got := s.CorrectCount(); got != 2 {
		t.Fatalf("CorrectCount() = %d, want 2", got)
	}
}

func TestSessionIsTerminal(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{SessionStatusActive, false},
		{SessionStatusCompleted, true},
		{SessionStatusAbandoned, true},
	}
	for _, tc := range cases {
		s := Session{Status: tc.status}
		if got := s.IsTerminal(); got != tc.want {
			t.Fatalf("IsTerminal() for %q = %v, want %v", tc.status, got, tc.want)
		}
	}
}
