package models

import "gorm.io/gorm"

// A catalog entry shared across all users; seeded or created by an
// administrator, never owned by a single account.
type ExerciseType struct {
    gorm.Model
    Name              string  `gorm:"uniqueIndex;not null"`
    Category          string  // e.g. "Cardio" | "Strength" | "Flexibility"
    CaloriesPerMinute float64 `gorm:"not null"`
}
