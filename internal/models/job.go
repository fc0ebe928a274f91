package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the pipeline stage of a job application.
type Status string

const (
	StatusApplied   Status = "APPLIED"
	StatusInterview Status = "INTERVIEW"
	StatusOffer     Status = "OFFER"
	StatusRejected  Status = "REJECTED"
)

// AllStatuses lists every valid pipeline stage, in pipeline order.
var AllStatuses = []Status{StatusApplied, StatusInterview, StatusOffer, StatusRejected}

func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// JobApplication is a tracked application owned by exactly one user.
// Deletion is a soft delete: gorm.DeletedAt keeps the row recoverable
// and excludes it from all default queries.
type JobApplication struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Company   string         `gorm:"size:255;not null" json:"company"`
	Position  string         `gorm:"size:255;not null" json:"position"`
	Location  string         `gorm:"size:255" json:"location"`
	Status    Status         `gorm:"size:20;default:'APPLIED';index" json:"status"`
	Notes     string         `gorm:"type:text" json:"notes"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
