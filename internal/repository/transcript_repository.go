package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"transcriptai/internal/model"
)

type TranscriptRepository struct {
	db *gorm.DB
}

func NewTranscriptRepository(db *gorm.DB) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

func (r *TranscriptRepository) Create(transcript *model.Transcript) error {
	if err := r.db.Create(transcript).Error; err != nil {
		return fmt.Errorf("create transcript failed: %w", err)
	}
	return nil
}

// GetByID returns (nil, nil) when no transcript with that id exists.
func (r *TranscriptRepository) GetByID(id string) (*model.Transcript, error) {
	var transcript model.Transcript
	if err := r.db.Where("id = ?", id).First(&transcript).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transcript failed: %w", err)
	}
	return &transcript, nil
}

func (r *TranscriptRepository) UpdateSummary(id, summaryText string) error {
	if err := r.db.Model(&model.Transcript{}).Where("id = ?", id).Update("summary_text", summaryText).Error; err != nil {
		return fmt.Errorf("update transcript summary failed: %w", err)
	}
	return nil
}
