package models

import (
	"time"

	"gorm.io/gorm"
)

type WeightRecord struct {
	gorm.Model
	UserID       uint      `gorm:"index;not null"`
	WeightKg     float64   `gorm:"not null"`
	RecordedDate time.Time `gorm:"index;not null"` // truncate to YYYY-MM-DD
	Notes        string    `gorm:"type:text"`
}
