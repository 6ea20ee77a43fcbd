package repository

import (
	"fmt"

	"gorm.io/gorm"

	"transcriptai/internal/model"
)

type ShareLogRepository struct {
	db *gorm.DB
}

func NewShareLogRepository(db *gorm.DB) *ShareLogRepository {
	return &ShareLogRepository{db: db}
}

func (r *ShareLogRepository) Create(log *model.ShareLog) error {
	if err := r.db.Create(log).Error; err != nil {
		return fmt.Errorf("create share log failed: %w", err)
	}
	return nil
}

func (r *ShareLogRepository) ListByTranscriptID(transcriptID string) ([]model.ShareLog, error) {
	var logs []model.ShareLog
	if err := r.db.Where("transcript_id = ?", transcriptID).Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list share logs failed: %w", err)
	}
	return logs, nil
}
