package services

import (
	"time"

	"github.com/rikuto-mikado/fitness-tracker/config"
	"github.com/rikuto-mikado/fitness-tracker/models"
)

// SeedExerciseTypes loads the shared exercise catalog. Idempotent: existing
// entries are left untouched.
func SeedExerciseTypes() error {
	catalog := []models.ExerciseType{
		{Name: "Running", Category: "Cardio", CaloriesPerMinute: 12.0},
		{Name: "Cycling", Category: "Cardio", CaloriesPerMinute: 8.5},
		{Name: "Swimming", Category: "Cardio", CaloriesPerMinute: 11.0},
		{Name: "Weightlifting", Category: "Strength", CaloriesPerMinute: 6.0},
		{Name: "Yoga", Category: "Flexibility", CaloriesPerMinute: 3.5},
		{Name: "Walking", Category: "Cardio", CaloriesPerMinute: 4.5},
	}

	for _, et := range catalog {
		entry := et
		if err := config.DB.
			Where("name = ?", entry.Name).
			FirstOrCreate(&entry).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedDemoData creates a demo account with a few weeks of weight records, a
// handful of workouts and an active weight-loss goal. Local development only.
func SeedDemoData() error {
	if err := SeedExerciseTypes(); err != nil {
		return err
	}

	user, err := CreateUser("john_doe", "john@example.com", "password123", 28, 175)
	if err != nil {
		return err
	}

	today := dayStart(time.Now())
	weights := []float64{75.0, 74.8, 74.5, 74.3, 74.1}
	for i, w := range weights {
		date := today.AddDate(0, 0, -7*(len(weights)-1-i))
		if _, err := RecordWeight(user.ID, w, date, ""); err != nil {
			return err
		}
	}

	var running models.ExerciseType
	if err := config.DB.Where("name = ?", "Running").First(&running).Error; err != nil {
		return err
	}
	if _, err := LogWorkout(user.ID, running.ID, 30, models.IntensityMedium, today.AddDate(0, 0, -1), nil, "morning run"); err != nil {
		return err
	}

	_, err = SetGoal(user.ID, models.GoalTypeWeightLoss, 72.0, today.AddDate(0, 3, 0), 74.1)
	return err
}
