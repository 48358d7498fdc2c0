package service

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lequan2902/codeprep/internal/apperr"
	"github.com/lequan2902/codeprep/internal/dto"
	"github.com/lequan2902/codeprep/internal/model"
	"github.com/lequan2902/codeprep/internal/repository"
	"github.com/rs/zerolog/log"
)

// SessionService owns the session lifecycle: create, merge-update, finalize.
// Ending a session is the only path that computes score and accuracy, and it
// feeds the finalized session into ProgressService as a side effect.
type SessionService interface {
	Create(req dto.CreateSessionRequest) (*dto.SessionResponse, error)
	Update(sessionID string, req dto.UpdateSessionRequest) (*dto.SessionResponse, error)
	End(sessionID string, req dto.EndSessionRequest) (*dto.SessionResponse, error)
	Get(sessionID string) (*dto.SessionResponse, error)
	ListByUser(userID string) ([]dto.SessionSummaryResponse, error)
}

type sessionService struct {
	sessionRepo     repository.SessionRepository
	progressService ProgressService
}

func NewSessionService(sessionRepo repository.SessionRepository, progressService ProgressService) SessionService {
	return &sessionService{
		sessionRepo:     sessionRepo,
		progressService: progressService,
	}
}

func (s *sessionService) Create(req dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	if req.UserID == "" {
		return nil, apperr.Validation("user_id", "must not be empty")
	}
	if req.Topic == "" {
		return nil, apperr.Validation("topic", "must not be empty")
	}
	if req.Difficulty == "" {
		return nil, apperr.Validation("difficulty", "must not be empty")
	}

	sessionType := req.SessionType
	if sessionType == "" {
		sessionType = model.SessionTypePractice
	}

	session := &model.Session{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		SessionType: sessionType,
		Topic:       req.Topic,
		Difficulty:  req.Difficulty,
		TimeLimit:   req.TimeLimit,
		Questions:   req.Questions,
		StartTime:   time.Now(),
		Status:      model.SessionStatusActive,
	}

	if err := s.sessionRepo.Create(session); err != nil {
		log.Error().Err(err).Str("userID", req.UserID).Msg("Create: failed to persist session")
		return nil, fmt.Errorf("creating session: %w", err)
	}

	log.Info().
		Str("sessionID", session.ID).
		Str("userID", session.UserID).
		Str("topic", session.Topic).
		Str("difficulty", session.Difficulty).
		Str("sessionType", session.SessionType).
		Msg("Session created")
	return toSessionResponse(session)
}

// Update merges the allowed mutable fields into the stored session. It does
// not re-check status transition legality; End is the guarded path.
func (s *sessionService) Update(sessionID string, req dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	session, err := s.sessionRepo.FindByIDWithResults(sessionID)
	if err != nil {
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("Update: session lookup failed")
		return nil, err
	}

	if req.Status != nil {
		session.Status = *req.Status
	}
	if req.EndTime != nil {
		session.EndTime = req.EndTime
	}
	if req.TotalTime != nil {
		session.TotalTime = *req.TotalTime
	}
	if req.Score != nil {
		session.Score = *req.Score
	}
	if req.Accuracy != nil {
		session.Accuracy = *req.Accuracy
	}

	if req.Results != nil {
		session.Results = resultsFromDTOs(session.ID, req.Results)
		if err := s.sessionRepo.SaveWithResults(session); err != nil {
			log.Error().Err(err).Str("sessionID", sessionID).Msg("Update: failed to persist session with results")
			return nil, fmt.Errorf("updating session %s: %w", sessionID, err)
		}
	} else if err := s.sessionRepo.Update(session); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Update: failed to persist session")
		return nil, fmt.Errorf("updating session %s: %w", sessionID, err)
	}

	return toSessionResponse(session)
}

// End finalizes an active session: stamps the end time, grades score and
// accuracy from the submitted results, and folds the outcome into progress.
// A session with no results finalizes with score 0 and accuracy 0.
func (s *sessionService) End(sessionID string, req dto.EndSessionRequest) (*dto.SessionResponse, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("End: session lookup failed")
		return nil, err
	}
	if session.IsTerminal() {
		return nil, apperr.Validation("status", fmt.Sprintf("session %s is already %s", sessionID, session.Status))
	}

	endTime := time.Now()
	session.EndTime = &endTime
	session.Status = model.SessionStatusCompleted
	session.Results = resultsFromDTOs(session.ID, req.Results)

	if req.TotalTime != nil {
		session.TotalTime = *req.TotalTime
	} else {
		session.TotalTime = int(endTime.Sub(session.StartTime).Seconds())
	}

	if n := len(session.Results); n > 0 {
		correct := session.CorrectCount()
		session.Score = int(math.Round(100 * float64(correct) / float64(n)))
		session.Accuracy = float64(correct) / float64(n)
	} else {
		session.Score = 0
		session.Accuracy = 0
	}

	if err := s.sessionRepo.SaveWithResults(session); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("End: failed to persist finalized session")
		return nil, fmt.Errorf("finalizing session %s: %w", sessionID, err)
	}

	if _, err := s.progressService.Apply(session.UserID, session); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Str("userID", session.UserID).Msg("End: failed to fold session into progress")
		return nil, fmt.Errorf("updating progress for session %s: %w", sessionID, err)
	}

	log.Info().
		Str("sessionID", session.ID).
		Str("userID", session.UserID).
		Int("score", session.Score).
		Float64("accuracy", session.Accuracy).
		Int("results", len(session.Results)).
		Msg("Session completed")
	return toSessionResponse(session)
}

func (s *sessionService) Get(sessionID string) (*dto.SessionResponse, error) {
	session, err := s.sessionRepo.FindByIDWithResults(sessionID)
	if err != nil {
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("Get: session lookup failed")
		return nil, err
	}
	return toSessionResponse(session)
}

func (s *sessionService) ListByUser(userID string) ([]dto.SessionSummaryResponse, error) {
	sessions, err := s.sessionRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("ListByUser: failed to fetch sessions")
		return nil, fmt.Errorf("fetching sessions for user %s: %w", userID, err)
	}

	summaries := make([]dto.SessionSummaryResponse, 0, len(sessions))
	for _, session := range sessions {
		var summary dto.SessionSummaryResponse
		if err := copier.Copy(&summary, &session); err != nil {
			return nil, fmt.Errorf("preparing session summary: %w", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func resultsFromDTOs(sessionID string, dtos []dto.AttemptResultDTO) []model.AttemptResult {
	results := make([]model.AttemptResult, 0, len(dtos))
	for i, r := range dtos {
		attempts := r.Attempts
		if attempts == 0 {
			attempts = 1
		}
		results = append(results, model.AttemptResult{
			SessionID:  sessionID,
			QuestionID: r.QuestionID,
			IsCorrect:  r.IsCorrect,
			TimeSpent:  r.TimeSpent,
			Attempts:   attempts,
			HintsUsed:  r.HintsUsed,
			Solution:   r.Solution,
			Position:   i,
		})
	}
	return results
}

func toSessionResponse(session *model.Session) (*dto.SessionResponse, error) {
	var resp dto.SessionResponse
	if err := copier.Copy(&resp, session); err != nil {
		return nil, fmt.Errorf("preparing session response: %w", err)
	}
	return &resp, nil
}
