package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/rikuto-mikado/fitness-tracker/config"
	"github.com/rikuto-mikado/fitness-tracker/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points config.DB at a fresh in-memory sqlite database. The
// named shared-cache DSN keeps every pooled connection on the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	config.DB = db
	InitAlertDeps(db, nil)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
		config.DB = nil
		InitAlertDeps(nil, nil)
	})
	return db
}

func createTestUser(t *testing.T, username, email string) *models.User {
	t.Helper()
	user, err := CreateUser(username, email, "password123", 28, 175)
	require.NoError(t, err)
	return user
}

func seedRunning(t *testing.T) *models.ExerciseType {
	t.Helper()
	et, err := CreateExerciseType("Running", "Cardio", 12.0)
	require.NoError(t, err)
	return et
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}
