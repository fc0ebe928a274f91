package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Analysis is a persisted compatibility-scoring result. Append-only.
type Analysis struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	JobTitle        string         `gorm:"size:255" json:"job_title"`
	MatchPercentage int            `json:"match_percentage"`
	MissingKeywords datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"missing_keywords"`
	ImprovementTips datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"improvement_tips"`
	Summary         string         `gorm:"type:text" json:"summary"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
}
