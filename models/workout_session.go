package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	IntensityLow    = "low"
	IntensityMedium = "medium"
	IntensityHigh   = "high"
)

type WorkoutSession struct {
	gorm.Model
	UserID          uint `gorm:"index;not null"`
	ExerciseTypeID  uint `gorm:"index;not null"`
	DurationMinutes int  `gorm:"not null"`
	CaloriesBurned  int
	IntensityLevel  string    `gorm:"size:20"`        // low|medium|high, legacy rows may carry anything
	WorkoutDate     time.Time `gorm:"index;not null"` // truncate to YYYY-MM-DD
	Notes           string    `gorm:"type:text"`
}
