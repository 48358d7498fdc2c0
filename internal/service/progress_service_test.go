package service

import (
	"math"
	"testing"

	"github.com/lequan2902/codeprep/internal/apperr"
	"github.com/lequan2902/codeprep/internal/model"
)

func completedSession(userID, topic, difficulty string, results []model.AttemptResult) *model.Session {
	return &model.Session{
		ID:         "s1",
		UserID:     userID,
		Topic:      topic,
		Difficulty: difficulty,
		Status:     model.SessionStatusCompleted,
		Results:    results,
	}
}

func TestProgressApplyCreatesRecordOnFirstSession(t *testing.T) {
	repo := newFakeProgressRepo()
	svc := NewProgressService(repo)

	session := completedSession("u1", "arrays", "easy", []model.AttemptResult{
		{IsCorrect: true, TimeSpent: 60},
		{IsCorrect: false, TimeSpent: 90},
	})

	progress, err := svc.Apply("u1", session)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if progress.TotalAttempted != 2 || progress.TotalCorrect != 1 {
		t.Fatalf("counters = %d/%d, want 2/1", progress.TotalAttempted, progress.TotalCorrect)
	}
	if progress.TotalTimeSpent != 150 {
		t.Fatalf("TotalTimeSpent = %d, want 150", progress.TotalTimeSpent)
	}
	if math.Abs(progress.Accuracy-0.5) > 1e-9 {
		t.Fatalf("Accuracy = %f, want 0.5", progress.Accuracy)
	}
	if math.Abs(progress.AverageTime-75) > 1e-9 {
		t.Fatalf("AverageTime = %f, want 75", progress.AverageTime)
	}
	if progress.MasteryLevel != model.MasteryIntermediate {
		t.Fatalf("MasteryLevel = %q, want %q", progress.MasteryLevel, model.MasteryIntermediate)
	}
	if progress.LastPracticed.IsZero() {
		t.Fatal("LastPracticed not set")
	}
}

func TestProgressApplyAccumulatesAcrossSessions(t *testing.T) {
	repo := newFakeProgressRepo()
	svc := NewProgressService(repo)

	first := completedSession("u1", "graphs", "medium", []model.AttemptResult{
		{IsCorrect: true, TimeSpent: 120},
		{IsCorrect: true, TimeSpent: 100},
	})
	if _, err := svc.Apply("u1", first); err != nil {
		t.Fatalf("Apply first: %v", err)
	}

	second := completedSession("u1", "graphs", "medium", []model.AttemptResult{
		{IsCorrect: true, TimeSpent: 80},
		{IsCorrect: true, TimeSpent: 60},
		{IsCorrect: false, TimeSpent: 200},
	})
	progress, err := svc.Apply("u1", second)
	if err != nil {
		t.Fatalf("Apply second: %v", err)
	}

	if progress.TotalAttempted != 5 || progress.TotalCorrect != 4 {
		t.Fatalf("counters = %d/%d, want 5/4", progress.TotalAttempted, progress.TotalCorrect)
	}
	if progress.TotalTimeSpent != 560 {
		t.Fatalf("TotalTimeSpent = %d, want 560", progress.TotalTimeSpent)
	}
	if math.Abs(progress.Accuracy-0.8) > 1e-9 {
		t.Fatalf("Accuracy = %f, want 0.8", progress.Accuracy)
	}
	if progress.MasteryLevel != model.MasteryExpert {
		t.Fatalf("MasteryLevel = %q, want %q", progress.MasteryLevel, model.MasteryExpert)
	}

	// Accuracy must always equal totalCorrect/totalAttempted.
	want := float64(progress.TotalCorrect) / float64(progress.TotalAttempted)
	if math.Abs(progress.Accuracy-want) > 1e-9 {
		t.Fatalf("Accuracy invariant broken: %f vs %f", progress.Accuracy, want)
	}
}

func TestProgressApplySeparateKeys(t *testing.T) {
	repo := newFakeProgressRepo()
	svc := NewProgressService(repo)

	easy := completedSession("u1", "arrays", "easy", []model.AttemptResult{{IsCorrect: true}})
	hard := completedSession("u1", "arrays", "hard", []model.AttemptResult{{IsCorrect: false}})

	if _, err := svc.Apply("u1", easy); err != nil {
		t.Fatalf("Apply easy: %v", err)
	}
	if _, err := svc.Apply("u1", hard); err != nil {
		t.Fatalf("Apply hard: %v", err)
	}

	records, err := repo.FindAllByUser("u1")
	if err != nil {
		t.Fatalf("FindAllByUser: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 progress records, got %d", len(records))
	}
}

func TestProgressApplyEmptyResultsGuardsDivision(t *testing.T) {
	repo := newFakeProgressRepo()
	svc := NewProgressService(repo)

	session := completedSession("u1", "dp", "hard", nil)
	progress, err := svc.Apply("u1", session)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if progress.TotalAttempted != 0 {
		t.Fatalf("TotalAttempted = %d, want 0", progress.TotalAttempted)
	}
	if progress.Accuracy != 0 || progress.AverageTime != 0 {
		t.Fatalf("empty session must keep zeroed derived fields, got accuracy=%f avg=%f", progress.Accuracy, progress.AverageTime)
	}
	if progress.MasteryLevel != model.MasteryBeginner {
		t.Fatalf("MasteryLevel = %q, want %q", progress.MasteryLevel, model.MasteryBeginner)
	}
}

func TestProgressApplyRejectsNonCompletedSession(t *testing.T) {
	repo := newFakeProgressRepo()
	svc := NewProgressService(repo)

	session := completedSession("u1", "arrays", "easy", nil)
	session.Status = model.SessionStatusActive

	if _, err := svc.Apply("u1", session); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
