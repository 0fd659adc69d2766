package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rikuto-mikado/fitness-tracker/apperror"
	"github.com/rikuto-mikado/fitness-tracker/config"
	"github.com/rikuto-mikado/fitness-tracker/models"
	"github.com/rikuto-mikado/fitness-tracker/utils"

	"gorm.io/gorm"
)

// SetGoal creates a goal for the user. Status starts as "active" and the
// current value defaults to zero unless provided.
func SetGoal(userID uint, goalType string, targetValue float64, targetDate time.Time, currentValue float64) (*models.Goal, error) {
	if goalType == "" {
		return nil, apperror.ValidationFailed("goal_type", "goal type is required")
	}
	if targetValue <= 0 {
		return nil, apperror.ValidationFailed("target_value", "target value must be positive")
	}

	if _, err := FindUserByID(userID); err != nil {
		return nil, err
	}

	goal := models.Goal{
		UserID:       userID,
		GoalType:     normalizeGoalType(goalType),
		TargetValue:  targetValue,
		CurrentValue: currentValue,
		TargetDate:   targetDate,
		Status:       models.GoalStatusActive,
	}

	if err := config.DB.Create(&goal).Error; err != nil {
		return nil, apperror.StorageUnavailable(err)
	}
	return &goal, nil
}

// UpdateGoalProgress sets the goal's current value. A goal whose progress
// ratio reaches 1 is marked completed and the user is notified.
func UpdateGoalProgress(userID, goalID uint, currentValue float64) (*models.Goal, error) {
	goal, err := findOwnedGoal(userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.CurrentValue = currentValue

	completed := false
	if goal.Status == models.GoalStatusActive {
		baseline := goalBaseline(goal)
		if ProgressRatio(goal.GoalType, baseline, goal.CurrentValue, goal.TargetValue) >= 1 {
			goal.Status = models.GoalStatusCompleted
			completed = true
		}
	}

	if err := config.DB.Save(goal).Error; err != nil {
		return nil, apperror.StorageUnavailable(err)
	}

	if completed {
		EmitAlert(userID, "success", fmt.Sprintf("Goal %q completed: reached %.1f", goal.GoalType, goal.TargetValue))
		if user, uerr := FindUserByID(userID); uerr == nil {
			_ = utils.SendGoalCompletedEmail(user.Email, goal.GoalType, goal.TargetValue)
		}
	}
	return goal, nil
}

// UpdateGoalStatus handles explicit lifecycle transitions. New writes are held
// to the known statuses; legacy rows with other values are left alone on read.
func UpdateGoalStatus(userID, goalID uint, status string) (*models.Goal, error) {
	switch status {
	case models.GoalStatusActive, models.GoalStatusCompleted, models.GoalStatusAbandoned:
	default:
		return nil, apperror.ValidationFailed("status", "status must be active, completed or abandoned")
	}

	goal, err := findOwnedGoal(userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.Status = status
	if err := config.DB.Save(goal).Error; err != nil {
		return nil, apperror.StorageUnavailable(err)
	}
	return goal, nil
}

func ListGoals(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&goals).Error
	if err != nil {
		return nil, apperror.StorageUnavailable(err)
	}
	return goals, nil
}

// GoalProgress reports the normalized progress ratio for one goal.
func GoalProgress(userID, goalID uint) (*models.Goal, float64, error) {
	goal, err := findOwnedGoal(userID, goalID)
	if err != nil {
		return nil, 0, err
	}
	ratio := ProgressRatio(goal.GoalType, goalBaseline(goal), goal.CurrentValue, goal.TargetValue)
	return goal, ratio, nil
}

// ProgressRatio measures how far current has moved from baseline toward
// target, clamped to [0, 1]. Direction depends on the goal type: weight loss
// counts downward movement, maintenance counts closeness to the target, and
// everything else counts upward movement.
func ProgressRatio(goalType string, baseline, current, target float64) float64 {
	switch goalType {
	case models.GoalTypeWeightLoss:
		span := baseline - target
		if span <= 0 {
			if current <= target {
				return 1
			}
			return 0
		}
		return clamp01((baseline - current) / span)
	case models.GoalTypeWeightMaintenance:
		span := baseline - target
		if span < 0 {
			span = -span
		}
		if span == 0 {
			return 1
		}
		drift := current - target
		if drift < 0 {
			drift = -drift
		}
		return clamp01(1 - drift/span)
	default: // muscle_gain and any unrecognized legacy type: higher is better
		span := target - baseline
		if span <= 0 {
			if current >= target {
				return 1
			}
			return 0
		}
		return clamp01((current - baseline) / span)
	}
}

// goalBaseline picks the user's earliest weight record as the starting point.
// Without any weight history the goal's own current value stands in, which
// yields a zero ratio until progress is logged.
func goalBaseline(goal *models.Goal) float64 {
	var first models.WeightRecord
	err := config.DB.
		Where("user_id = ?", goal.UserID).
		Order("recorded_date asc, id asc").
		First(&first).Error
	if err != nil {
		return goal.CurrentValue
	}
	return first.WeightKg
}

func findOwnedGoal(userID, goalID uint) (*models.Goal, error) {
	var goal models.Goal
	err := config.DB.
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("goal", goalID)
		}
		return nil, apperror.StorageUnavailable(err)
	}
	return &goal, nil
}

func normalizeGoalType(goalType string) string {
	switch strings.ToLower(strings.TrimSpace(goalType)) {
	case models.GoalTypeWeightLoss:
		return models.GoalTypeWeightLoss
	case models.GoalTypeWeightMaintenance:
		return models.GoalTypeWeightMaintenance
	case models.GoalTypeMuscleGain:
		return models.GoalTypeMuscleGain
	}
	return goalType
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
