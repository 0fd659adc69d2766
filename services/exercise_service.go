package services

import (
	"errors"

	"github.com/rikuto-mikado/fitness-tracker/apperror"
	"github.com/rikuto-mikado/fitness-tracker/config"
	"github.com/rikuto-mikado/fitness-tracker/models"

	"gorm.io/gorm"
)

// CreateExerciseType adds an entry to the shared exercise catalog. Names are
// globally unique.
func CreateExerciseType(name, category string, caloriesPerMinute float64) (*models.ExerciseType, error) {
	if name == "" {
		return nil, apperror.ValidationFailed("name", "name is required")
	}
	if caloriesPerMinute <= 0 {
		return nil, apperror.ValidationFailed("calories_per_minute", "calorie burn rate must be positive")
	}

	var existing models.ExerciseType
	err := config.DB.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, apperror.Conflict("exercise type", "name")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.StorageUnavailable(err)
	}

	et := models.ExerciseType{
		Name:              name,
		Category:          category,
		CaloriesPerMinute: caloriesPerMinute,
	}
	if err := config.DB.Create(&et).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("exercise type", "name")
		}
		return nil, apperror.StorageUnavailable(err)
	}
	return &et, nil
}

func GetExerciseType(id uint) (*models.ExerciseType, error) {
	var et models.ExerciseType
	if err := config.DB.First(&et, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("exercise type", id)
		}
		return nil, apperror.StorageUnavailable(err)
	}
	return &et, nil
}

func ListExerciseTypes() ([]models.ExerciseType, error) {
	var types []models.ExerciseType
	if err := config.DB.Order("name asc").Find(&types).Error; err != nil {
		return nil, apperror.StorageUnavailable(err)
	}
	return types, nil
}
