package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/rikuto-mikado/fitness-tracker/apperror"
	"github.com/rikuto-mikado/fitness-tracker/config"
	"github.com/rikuto-mikado/fitness-tracker/models"

	"gorm.io/gorm"
)

// LogWorkout records a workout session. When caloriesBurned is nil the value
// is derived from the exercise type's burn rate and rounded to the nearest
// integer; an explicit value always wins.
func LogWorkout(
	userID, exerciseTypeID uint,
	durationMinutes int,
	intensity string,
	workoutDate time.Time,
	caloriesBurned *int,
	notes string,
) (*models.WorkoutSession, error) {
	if durationMinutes <= 0 {
		return nil, apperror.ValidationFailed("duration_minutes", "duration must be positive")
	}
	if caloriesBurned != nil && *caloriesBurned <= 0 {
		return nil, apperror.ValidationFailed("calories_burned", "calories burned must be positive")
	}
	if workoutDate.IsZero() {
		return nil, apperror.ValidationFailed("workout_date", "workout date is required")
	}

	if _, err := FindUserByID(userID); err != nil {
		return nil, err
	}
	et, err := GetExerciseType(exerciseTypeID)
	if err != nil {
		return nil, err
	}

	calories := 0
	if caloriesBurned != nil {
		calories = *caloriesBurned
	} else {
		calories = int(math.Round(float64(durationMinutes) * et.CaloriesPerMinute))
	}

	session := models.WorkoutSession{
		UserID:          userID,
		ExerciseTypeID:  exerciseTypeID,
		DurationMinutes: durationMinutes,
		CaloriesBurned:  calories,
		IntensityLevel:  normalizeIntensity(intensity),
		WorkoutDate:     dayStart(workoutDate),
		Notes:           notes,
	}

	if err := config.DB.Create(&session).Error; err != nil {
		return nil, apperror.StorageUnavailable(err)
	}

	BroadcastEvent(userID, "workout.logged", &session)
	return &session, nil
}

// ListWorkouts returns the user's sessions, newest workout date first.
func ListWorkouts(userID uint) ([]models.WorkoutSession, error) {
	var sessions []models.WorkoutSession
	err := config.DB.
		Where("user_id = ?", userID).
		Order("workout_date desc, id desc").
		Find(&sessions).Error
	if err != nil {
		return nil, apperror.StorageUnavailable(err)
	}
	return sessions, nil
}

// DeleteWorkout removes a single session. Explicit and user-initiated only.
func DeleteWorkout(userID, sessionID uint) error {
	var session models.WorkoutSession
	err := config.DB.
		Where("id = ? AND user_id = ?", sessionID, userID).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("workout session", sessionID)
		}
		return apperror.StorageUnavailable(err)
	}

	if err := config.DB.Unscoped().Delete(&session).Error; err != nil {
		return apperror.StorageUnavailable(err)
	}
	return nil
}

// normalizeIntensity folds the known labels to lowercase but stores anything
// else verbatim; the legacy schema never enforced an enumeration.
func normalizeIntensity(intensity string) string {
	switch strings.ToLower(strings.TrimSpace(intensity)) {
	case models.IntensityLow:
		return models.IntensityLow
	case models.IntensityMedium:
		return models.IntensityMedium
	case models.IntensityHigh:
		return models.IntensityHigh
	}
	return intensity
}
