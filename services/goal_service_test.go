package services

import (
	"testing"

	"github.com/rikuto-mikado/fitness-tracker/apperror"
	"github.com/rikuto-mikado/fitness-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGoalDefaults(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "john_doe", "john@example.com")

	goal, err := SetGoal(user.ID, "Weight_Loss", 72.0, date(t, "2025-06-01"), 0)
	require.NoError(t, err)
	assert.Equal(t, models.GoalStatusActive, goal.Status)
	assert.Equal(t, models.GoalTypeWeightLoss, goal.GoalType) // normalized
	assert.Zero(t, goal.CurrentValue)
}

func TestSetGoalUnknownUser(t *testing.T) {
	setupTestDB(t)
	_, err := SetGoal(9999, models.GoalTypeWeightLoss, 72.0, date(t, "2025-06-01"), 0)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestSetGoalValidation(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "john_doe", "john@example.com")

	_, err := SetGoal(user.ID, "", 72.0, date(t, "2025-06-01"), 0)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = SetGoal(user.ID, models.GoalTypeWeightLoss, 0, date(t, "2025-06-01"), 0)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestUpdateGoalProgressNotFound(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "john_doe", "john@example.com")

	_, err := UpdateGoalProgress(user.ID, 9999, 73.0)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestWeightLossProgressDirection(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "john_doe", "john@example.com")

	// first weight record sets the baseline
	_, err := RecordWeight(user.ID, 75.0, date(t, "2025-01-01"), "")
	require.NoError(t, err)

	goal, err := SetGoal(user.ID, models.GoalTypeWeightLoss, 72.0, date(t, "2025-06-01"), 74.1)
	require.NoError(t, err)

	_, ratio, err := GoalProgress(user.ID, goal.ID)
	require.NoError(t, err)
	// 74.1 is progress toward 72.0 from 75.0, not away from it
	assert.Greater(t, ratio, 0.0)
	assert.Less(t, ratio, 1.0)
	assert.InDelta(t, 0.3, ratio, 1e-9) // (75.0-74.1)/(75.0-72.0)
}

func TestGoalAutoCompletes(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, "john_doe", "john@example.com")

	_, err := RecordWeight(user.ID, 75.0, date(t, "2025-01-01"), "")
	require.NoError(t, err)

	goal, err := SetGoal(user.ID, models.GoalTypeWeightLoss, 72.0, date(t, "2025-06-01"), 75.0)
	require.NoError(t, err)

	updated, err := UpdateGoalProgress(user.ID, goal.ID, 73.0)
	require.NoError(t, err)
	assert.Equal(t, models.GoalStatusActive, updated.Status)

	updated, err = UpdateGoalProgress(user.ID, goal.ID, 72.0)
	require.NoError(t, err)
	assert.Equal(t, models.GoalStatusCompleted, updated.Status)

	var alerts int64
	db.Model(&models.Alert{}).Where("user_id = ?", user.ID).Count(&alerts)
	assert.EqualValues(t, 1, alerts)
}

func TestUpdateGoalStatus(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "john_doe", "john@example.com")

	goal, err := SetGoal(user.ID, models.GoalTypeMuscleGain, 80.0, date(t, "2025-06-01"), 70.0)
	require.NoError(t, err)

	updated, err := UpdateGoalStatus(user.ID, goal.ID, models.GoalStatusAbandoned)
	require.NoError(t, err)
	assert.Equal(t, models.GoalStatusAbandoned, updated.Status)

	_, err = UpdateGoalStatus(user.ID, goal.ID, "paused")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestProgressRatio(t *testing.T) {
	tests := []struct {
		name     string
		goalType string
		baseline float64
		current  float64
		target   float64
		want     float64
	}{
		{"loss partway", models.GoalTypeWeightLoss, 75, 74.1, 72, 0.3},
		{"loss at target", models.GoalTypeWeightLoss, 75, 72, 72, 1},
		{"loss beyond target clamps", models.GoalTypeWeightLoss, 75, 71, 72, 1},
		{"loss moved away clamps", models.GoalTypeWeightLoss, 75, 76, 72, 0},
		{"loss baseline below target", models.GoalTypeWeightLoss, 71, 70, 72, 1},
		{"gain partway", models.GoalTypeMuscleGain, 70, 75, 80, 0.5},
		{"gain at target", models.GoalTypeMuscleGain, 70, 80, 80, 1},
		{"gain moved away clamps", models.GoalTypeMuscleGain, 70, 69, 80, 0},
		{"maintenance on target", models.GoalTypeWeightMaintenance, 74, 72, 72, 1},
		{"maintenance halfway", models.GoalTypeWeightMaintenance, 74, 73, 72, 0.5},
		{"unrecognized type counts upward", "step_count", 0, 5000, 10000, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressRatio(tt.goalType, tt.baseline, tt.current, tt.target)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
