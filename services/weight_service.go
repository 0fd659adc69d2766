package services

import (
	"errors"
	"time"

	"github.com/rikuto-mikado/fitness-tracker/apperror"
	"github.com/rikuto-mikado/fitness-tracker/config"
	"github.com/rikuto-mikado/fitness-tracker/models"

	"gorm.io/gorm"
)

// RecordWeight appends a weight measurement for the user. Same-date duplicates
// are allowed; the legacy schema never constrained them.
func RecordWeight(userID uint, weightKg float64, recordedDate time.Time, notes string) (*models.WeightRecord, error) {
	if weightKg <= 0 {
		return nil, apperror.ValidationFailed("weight_kg", "weight must be positive")
	}
	if recordedDate.IsZero() {
		return nil, apperror.ValidationFailed("recorded_date", "recorded date is required")
	}

	if _, err := FindUserByID(userID); err != nil {
		return nil, err
	}

	record := models.WeightRecord{
		UserID:       userID,
		WeightKg:     weightKg,
		RecordedDate: dayStart(recordedDate),
		Notes:        notes,
	}

	if err := config.DB.Create(&record).Error; err != nil {
		return nil, apperror.StorageUnavailable(err)
	}

	BroadcastEvent(userID, "weight.recorded", &record)
	return &record, nil
}

// WeightHistory returns the user's full weight time series ordered by recorded
// date ascending, oldest first. Insertion order breaks same-date ties.
func WeightHistory(userID uint) ([]models.WeightRecord, error) {
	var records []models.WeightRecord
	err := config.DB.
		Where("user_id = ?", userID).
		Order("recorded_date asc, id asc").
		Find(&records).Error
	if err != nil {
		return nil, apperror.StorageUnavailable(err)
	}
	return records, nil
}

// LatestWeight returns the most recent record by recorded date.
func LatestWeight(userID uint) (*models.WeightRecord, error) {
	var record models.WeightRecord
	err := config.DB.
		Where("user_id = ?", userID).
		Order("recorded_date desc, id desc").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperror.AppError{Err: apperror.ErrNotFound, Message: "no weight records for user"}
		}
		return nil, apperror.StorageUnavailable(err)
	}
	return &record, nil
}

// UpdateWeightNote edits the free-text note on an existing record. The weight
// value and date are append-only.
func UpdateWeightNote(userID, recordID uint, notes string) (*models.WeightRecord, error) {
	record, err := findOwnedWeightRecord(userID, recordID)
	if err != nil {
		return nil, err
	}

	record.Notes = notes
	if err := config.DB.Save(record).Error; err != nil {
		return nil, apperror.StorageUnavailable(err)
	}
	return record, nil
}

// DeleteWeightRecord removes a single record. Explicit and user-initiated only.
func DeleteWeightRecord(userID, recordID uint) error {
	record, err := findOwnedWeightRecord(userID, recordID)
	if err != nil {
		return err
	}

	if err := config.DB.Unscoped().Delete(record).Error; err != nil {
		return apperror.StorageUnavailable(err)
	}
	return nil
}

func findOwnedWeightRecord(userID, recordID uint) (*models.WeightRecord, error) {
	var record models.WeightRecord
	err := config.DB.
		Where("id = ? AND user_id = ?", recordID, userID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("weight record", recordID)
		}
		return nil, apperror.StorageUnavailable(err)
	}
	return &record, nil
}
