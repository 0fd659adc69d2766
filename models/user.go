package models

import (
    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Username string  `gorm:"uniqueIndex;not null"`
    Email    string  `gorm:"uniqueIndex;not null"`
    Password string  `gorm:"not null"`
    Age      int     // optional, 0 = not provided
    HeightCm float64 // optional, 0 = not provided
}
