package services

import (
	"testing"

	"github.com/rikuto-mikado/fitness-tracker/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWeight(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "john_doe", "john@example.com")

	record, err := RecordWeight(user.ID, 75.0, date(t, "2025-01-01"), "after holidays")
	require.NoError(t, err)
	assert.NotZero(t, record.ID)
	assert.Equal(t, 75.0, record.WeightKg)
	assert.Equal(t, "after holidays", record.Notes)
}

func TestRecordWeightValidation(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "john_doe", "john@example.com")

	tests := []struct {
		name   string
		weight float64
	}{
		{"zero weight", 0},
		{"negative weight", -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RecordWeight(user.ID, tt.weight, date(t, "2025-01-01"), "")
			assert.ErrorIs(t, err, apperror.ErrValidation)
		})
	}
}

func TestRecordWeightUnknownUser(t *testing.T) {
	setupTestDB(t)

	_, err := RecordWeight(9999, 75.0, date(t, "2025-01-01"), "")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRecordWeightSameDateDuplicatesAllowed(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "john_doe", "john@example.com")

	_, err := RecordWeight(user.ID, 75.0, date(t, "2025-01-01"), "morning")
	require.NoError(t, err)
	_, err = RecordWeight(user.ID, 74.6, date(t, "2025-01-01"), "evening")
	require.NoError(t, err)

	history, err := WeightHistory(user.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestWeightHistoryOrderedAndIdempotent(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "john_doe", "john@example.com")

	// inserted out of order on purpose
	for _, d := range []string{"2025-01-15", "2025-01-01", "2025-01-08"} {
		_, err := RecordWeight(user.ID, 75.0, date(t, d), "")
		require.NoError(t, err)
	}

	first, err := WeightHistory(user.ID)
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, "2025-01-01", first[0].RecordedDate.Format("2006-01-02"))
	assert.Equal(t, "2025-01-08", first[1].RecordedDate.Format("2006-01-02"))
	assert.Equal(t, "2025-01-15", first[2].RecordedDate.Format("2006-01-02"))

	second, err := WeightHistory(user.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLatestWeight(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "john_doe", "john@example.com")

	_, err := LatestWeight(user.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	for _, w := range []struct {
		d string
		v float64
	}{
		{"2025-01-01", 75.0},
		{"2025-01-15", 74.1},
		{"2025-01-08", 74.5},
	} {
		_, err := RecordWeight(user.ID, w.v, date(t, w.d), "")
		require.NoError(t, err)
	}

	latest, err := LatestWeight(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 74.1, latest.WeightKg)
}

func TestUpdateWeightNoteAndDelete(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "john_doe", "john@example.com")
	other := createTestUser(t, "jane_doe", "jane@example.com")

	record, err := RecordWeight(user.ID, 75.0, date(t, "2025-01-01"), "")
	require.NoError(t, err)

	updated, err := UpdateWeightNote(user.ID, record.ID, "fasted weigh-in")
	require.NoError(t, err)
	assert.Equal(t, "fasted weigh-in", updated.Notes)
	assert.Equal(t, 75.0, updated.WeightKg)

	// another user cannot touch the record
	_, err = UpdateWeightNote(other.ID, record.ID, "nope")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.ErrorIs(t, DeleteWeightRecord(other.ID, record.ID), apperror.ErrNotFound)

	require.NoError(t, DeleteWeightRecord(user.ID, record.ID))
	_, err = LatestWeight(user.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
