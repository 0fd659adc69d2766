package services

import (
	"errors"

	"github.com/rikuto-mikado/fitness-tracker/apperror"
	"github.com/rikuto-mikado/fitness-tracker/config"
	"github.com/rikuto-mikado/fitness-tracker/models"
	"github.com/rikuto-mikado/fitness-tracker/utils"

	"gorm.io/gorm"
)

type ProfileInput struct {
	Age      *int     `json:"age"`
	HeightCm *float64 `json:"height_cm"`
}

// CreateUser registers a new account. Username and email are globally unique;
// a duplicate of either fails with a conflict error.
func CreateUser(username, email, password string, age int, heightCm float64) (*models.User, error) {
	if username == "" {
		return nil, apperror.ValidationFailed("username", "username is required")
	}
	if email == "" {
		return nil, apperror.ValidationFailed("email", "email is required")
	}
	if age < 0 {
		return nil, apperror.ValidationFailed("age", "age must not be negative")
	}
	if heightCm < 0 {
		return nil, apperror.ValidationFailed("height_cm", "height must not be negative")
	}

	var existing models.User
	err := config.DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, apperror.Conflict("user", "username")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.StorageUnavailable(err)
	}

	err = config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperror.Conflict("user", "email")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.StorageUnavailable(err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Age:      age,
		HeightCm: heightCm,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		// Unique index is the backstop for concurrent registrations.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("user", "username or email")
		}
		return nil, apperror.StorageUnavailable(err)
	}
	return &user, nil
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user", id)
		}
		return nil, apperror.StorageUnavailable(err)
	}
	return &user, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperror.AppError{Err: apperror.ErrNotFound, Message: "user not found"}
		}
		return nil, apperror.StorageUnavailable(err)
	}
	return &user, nil
}

// GetUserProfile returns the profile card shown on the dashboard, including
// BMI when both height and a weight record are available.
func GetUserProfile(userID uint) (map[string]interface{}, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	profile := map[string]interface{}{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"age":        user.Age,
		"height_cm":  user.HeightCm,
		"created_at": user.CreatedAt,
	}

	latest, err := LatestWeight(userID)
	if err == nil {
		profile["latest_weight_kg"] = latest.WeightKg
		if bmi, bmiErr := utils.ComputeBMI(user.HeightCm, latest.WeightKg); bmiErr == nil {
			profile["bmi"] = bmi
		}
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	return profile, nil
}

// UpdateUserProfile edits the optional profile fields. Username and email are
// fixed at registration.
func UpdateUserProfile(userID uint, input ProfileInput) (*models.User, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	if input.Age != nil {
		if *input.Age < 0 {
			return nil, apperror.ValidationFailed("age", "age must not be negative")
		}
		user.Age = *input.Age
	}
	if input.HeightCm != nil {
		if *input.HeightCm < 0 {
			return nil, apperror.ValidationFailed("height_cm", "height must not be negative")
		}
		user.HeightCm = *input.HeightCm
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, apperror.StorageUnavailable(err)
	}
	return user, nil
}

// DeleteUser removes the account and cascades to everything it owns. Runs in
// one transaction so a failure never leaves orphaned rows. The exercise-type
// catalog is shared and untouched.
func DeleteUser(userID uint) error {
	if _, err := FindUserByID(userID); err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.WeightRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.WorkoutSession{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.Goal{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Alert{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.User{}, userID).Error
	})
}
