package model

import "time"

// ShareLog records one summary email dispatch. Rows are written
// asynchronously by the share log worker.
type ShareLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TranscriptID string    `gorm:"type:char(36);not null;index" json:"transcript_id"`
	Recipients   string    `gorm:"type:text;not null" json:"recipients"`
	CreatedAt    time.Time `json:"created_at"`
}
