package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transcript holds an uploaded transcript and its generated summary. The ID
// doubles as the public URL token.
type Transcript struct {
	ID           string    `gorm:"type:char(36);primaryKey" json:"id"`
	OriginalText string    `gorm:"type:longtext;not null" json:"original_text"`
	SummaryText  string    `gorm:"type:longtext" json:"summary_text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (t *Transcript) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
