package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusAbandoned = "abandoned"
)

const (
	GoalTypeWeightLoss        = "weight_loss"
	GoalTypeWeightMaintenance = "weight_maintenance"
	GoalTypeMuscleGain        = "muscle_gain"
)

type Goal struct {
	gorm.Model
	UserID       uint    `gorm:"index;not null"`
	GoalType     string  `gorm:"size:32;not null"`
	TargetValue  float64 `gorm:"not null"`
	CurrentValue float64 `gorm:"default:0"`
	TargetDate   time.Time
	Status       string `gorm:"size:20;default:'active'"`
}
