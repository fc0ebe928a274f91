package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User holds credentials plus the public-profile fields.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Name      string         `gorm:"size:100" json:"name"`
	Title     string         `gorm:"size:150" json:"title"`
	Bio       string         `gorm:"size:1000" json:"bio"`
	Username  *string        `gorm:"size:50;uniqueIndex" json:"username,omitempty"`
	IsPublic  bool           `gorm:"default:false" json:"is_public"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
