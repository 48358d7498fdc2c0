package service

import (
	"fmt"
	"math"

	"github.com/lequan2902/codeprep/internal/dto"
	"github.com/lequan2902/codeprep/internal/model"
	"github.com/lequan2902/codeprep/internal/repository"
	"github.com/rs/zerolog/log"
)

// StatsService composes the dashboard summary from sessions, progress records
// and the streak. Pure read; recomputed on every call.
type StatsService interface {
	Compute(userID string) (*dto.StatsResponse, error)
}

type statsService struct {
	sessionRepo     repository.SessionRepository
	progressService ProgressService
	streakService   StreakService
}

func NewStatsService(
	sessionRepo repository.SessionRepository,
	progressService ProgressService,
	streakService StreakService,
) StatsService {
	return &statsService{
		sessionRepo:     sessionRepo,
		progressService: progressService,
		streakService:   streakService,
	}
}

func (s *statsService) Compute(userID string) (*dto.StatsResponse, error) {
	sessions, err := s.sessionRepo.FindAllByUserWithResults(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Compute: failed to fetch sessions")
		return nil, fmt.Errorf("fetching sessions for user %s: %w", userID, err)
	}

	stats := &dto.StatsResponse{Progress: []dto.ProgressResponse{}}

	// Overall accuracy averages each completed session's own ratio rather
	// than recomputing from raw counts, so a short session weighs the same
	// as a long one.
	accuracySum := 0.0
	scoredSessions := 0
	for _, session := range sessions {
		stats.TotalTime += session.TotalTime
		if session.Status != model.SessionStatusCompleted || len(session.Results) == 0 {
			continue
		}
		stats.TotalSolved += session.CorrectCount()
		accuracySum += session.Accuracy
		scoredSessions++
	}
	if scoredSessions > 0 {
		stats.Accuracy = int(math.Round(100 * accuracySum / float64(scoredSessions)))
	}

	stats.Streak = s.streakService.Calculate(sessions)

	progress, err := s.progressService.ListByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Compute: failed to fetch progress records")
		return nil, fmt.Errorf("fetching progress for user %s: %w", userID, err)
	}
	if progress != nil {
		stats.Progress = progress
	}

	return stats, nil
}
