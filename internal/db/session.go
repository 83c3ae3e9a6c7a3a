package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PlaySession struct {
	ID        string         `gorm:"primaryKey;size:36"`
	GameID    string         `gorm:"size:36;index;not null"`
	Date      time.Time      `gorm:"not null;index"`
	Duration  int            `gorm:"not null"`
	Notes     string         `gorm:"size:1000"`
	Players   datatypes.JSON `gorm:"type:jsonb"`
	Winner    string         `gorm:"size:100"`
	CreatedAt time.Time      `gorm:"not null"`
}

func (s *PlaySession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (PlaySession) TableName() string {
	return "play_sessions"
}
