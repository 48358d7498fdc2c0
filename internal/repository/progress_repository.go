package repository

import (
	"errors"
	"fmt"

	"github.com/lequan2902/codeprep/internal/apperr"
	"github.com/lequan2902/codeprep/internal/model"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	FindByKey(userID, topic, difficulty string) (*model.Progress, error)
	Save(progress *model.Progress) error
	FindAllByUser(userID string) ([]model.Progress, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) FindByKey(userID, topic, difficulty string) (*model.Progress, error) {
	var progress model.Progress
	err := r.db.
		Where("user_id = ? AND topic = ? AND difficulty = ?", userID, topic, difficulty).
		First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("progress", fmt.Sprintf("%s/%s/%s", userID, topic, difficulty))
		}
		return nil, apperr.Storage("progress lookup", err)
	}
	return &progress, nil
}

func (r *progressRepository) Save(progress *model.Progress) error {
	// Save inserts when ID is zero and updates otherwise.
	if err := r.db.Save(progress).Error; err != nil {
		return apperr.Storage("progress save", err)
	}
	return nil
}

func (r *progressRepository) FindAllByUser(userID string) ([]model.Progress, error) {
	var records []model.Progress
	err := r.db.
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, apperr.Storage("progress list", err)
	}
	return records, nil
}
