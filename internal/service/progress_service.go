package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lequan2902/codeprep/internal/apperr"
	"github.com/lequan2902/codeprep/internal/dto"
	"github.com/lequan2902/codeprep/internal/model"
	"github.com/lequan2902/codeprep/internal/repository"
	"github.com/rs/zerolog/log"
)

// ProgressService folds completed sessions into the per-(user, topic,
// difficulty) rolling aggregate and classifies mastery from its accuracy.
type ProgressService interface {
	Apply(userID string, session *model.Session) (*model.Progress, error)
	ListByUser(userID string) ([]dto.ProgressResponse, error)
}

type progressService struct {
	progressRepo repository.ProgressRepository

	// One lock per user serializes the read-modify-write of progress rows so
	// two sessions ending concurrently cannot drop each other's counters.
	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

func NewProgressService(progressRepo repository.ProgressRepository) ProgressService {
	return &progressService{
		progressRepo: progressRepo,
		userLocks:    make(map[string]*sync.Mutex),
	}
}

func (s *progressService) lockFor(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}

// Apply accumulates one completed session into the user's progress record for
// the session's (topic, difficulty), creating the record on first practice.
func (s *progressService) Apply(userID string, session *model.Session) (*model.Progress, error) {
	if session == nil || session.Status != model.SessionStatusCompleted {
		return nil, apperr.Validation("session", "progress only accumulates completed sessions")
	}

	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	progress, err := s.progressRepo.FindByKey(userID, session.Topic, session.Difficulty)
	if err != nil {
		if !apperr.IsNotFound(err) {
			log.Error().Err(err).Str("userID", userID).Str("topic", session.Topic).Msg("Apply: progress lookup failed")
			return nil, fmt.Errorf("looking up progress: %w", err)
		}
		progress = &model.Progress{
			UserID:       userID,
			Topic:        session.Topic,
			Difficulty:   session.Difficulty,
			MasteryLevel: model.MasteryBeginner,
		}
	}

	for _, result := range session.Results {
		progress.TotalAttempted++
		if result.IsCorrect {
			progress.TotalCorrect++
		}
		progress.TotalTimeSpent += result.TimeSpent
	}

	if progress.TotalAttempted > 0 {
		progress.Accuracy = float64(progress.TotalCorrect) / float64(progress.TotalAttempted)
		progress.AverageTime = float64(progress.TotalTimeSpent) / float64(progress.TotalAttempted)
	} else {
		progress.Accuracy = 0
		progress.AverageTime = 0
	}
	progress.MasteryLevel = model.MasteryForAccuracy(progress.Accuracy)
	progress.LastPracticed = time.Now()

	if err := s.progressRepo.Save(progress); err != nil {
		log.Error().Err(err).Str("userID", userID).Str("topic", session.Topic).Str("difficulty", session.Difficulty).Msg("Apply: failed to persist progress")
		return nil, fmt.Errorf("saving progress: %w", err)
	}

	log.Info().
		Str("userID", userID).
		Str("topic", session.Topic).
		Str("difficulty", session.Difficulty).
		Int("totalAttempted", progress.TotalAttempted).
		Str("masteryLevel", progress.MasteryLevel).
		Msg("Progress updated")
	return progress, nil
}

func (s *progressService) ListByUser(userID string) ([]dto.ProgressResponse, error) {
	records, err := s.progressRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("ListByUser: failed to fetch progress records")
		return nil, fmt.Errorf("fetching progress for user %s: %w", userID, err)
	}

	responses := make([]dto.ProgressResponse, 0, len(records))
	for _, record := range records {
		var resp dto.ProgressResponse
		if err := copier.Copy(&resp, &record); err != nil {
			return nil, fmt.Errorf("preparing progress response: %w", err)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
