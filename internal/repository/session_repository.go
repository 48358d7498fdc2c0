package repository

import (
	"errors"
	"time"

	"github.com/lequan2902/codeprep/internal/apperr"
	"github.com/lequan2902/codeprep/internal/model"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *model.Session) error
	Update(session *model.Session) error
	SaveWithResults(session *model.Session) error
	FindByID(id string) (*model.Session, error)
	FindByIDWithResults(id string) (*model.Session, error)
	FindAllByUser(userID string) ([]model.Session, error)
	FindAllByUserWithResults(userID string) ([]model.Session, error)
	FindStaleActive(cutoff time.Time) ([]model.Session, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.Session) error {
	if err := r.db.Create(session).Error; err != nil {
		return apperr.Storage("session create", err)
	}
	return nil
}

func (r *sessionRepository) Update(session *model.Session) error {
	// Save writes all fields, including associated results when populated.
	if err := r.db.Save(session).Error; err != nil {
		return apperr.Storage("session update", err)
	}
	return nil
}

// SaveWithResults persists the session fields and replaces its result rows in
// one transaction. The caller's slice is the new source of truth.
func (r *sessionRepository) SaveWithResults(session *model.Session) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", session.ID).Delete(&model.AttemptResult{}).Error; err != nil {
			return err
		}
		if err := tx.Omit("Results").Save(session).Error; err != nil {
			return err
		}
		if len(session.Results) == 0 {
			return nil
		}
		for i := range session.Results {
			session.Results[i].ID = 0
			session.Results[i].SessionID = session.ID
		}
		return tx.Create(&session.Results).Error
	})
	if err != nil {
		return apperr.Storage("session save with results", err)
	}
	return nil
}

func (r *sessionRepository) FindByID(id string) (*model.Session, error) {
	var session model.Session
	if err := r.db.First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("session", id)
		}
		return nil, apperr.Storage("session lookup", err)
	}
	return &session, nil
}

func (r *sessionRepository) FindByIDWithResults(id string) (*model.Session, error) {
	var session model.Session
	err := r.db.
		Preload("Results", func(db *gorm.DB) *gorm.DB {
			return db.Order("attempt_results.position ASC")
		}).
		First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("session", id)
		}
		return nil, apperr.Storage("session lookup", err)
	}
	return &session, nil
}

func (r *sessionRepository) FindAllByUser(userID string) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, apperr.Storage("session list", err)
	}
	return sessions, nil
}

func (r *sessionRepository) FindAllByUserWithResults(userID string) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.
		Preload("Results", func(db *gorm.DB) *gorm.DB {
			return db.Order("attempt_results.position ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, apperr.Storage("session list", err)
	}
	return sessions, nil
}

func (r *sessionRepository) FindStaleActive(cutoff time.Time) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.
		Where("status = ? AND start_time < ?", model.SessionStatusActive, cutoff).
		Find(&sessions).Error
	if err != nil {
		return nil, apperr.Storage("stale session scan", err)
	}
	return sessions, nil
}
