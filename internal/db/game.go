package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Game struct {
	ID              string    `gorm:"primaryKey;size:36"`
	Title           string    `gorm:"size:200;not null"`
	GameMechanics   string    `gorm:"size:200;not null"`
	Genre           string    `gorm:"size:100"`
	MinPlayers      int       `gorm:"not null"`
	MaxPlayers      int       `gorm:"not null"`
	TypicalPlaytime int       `gorm:"not null;default:0"`
	BoxColor        string    `gorm:"size:32"`
	IsFavorite      bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

func (g *Game) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

func (Game) TableName() string {
	return "games"
}
