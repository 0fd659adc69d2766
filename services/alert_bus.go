package services

import (
	"time"

	"github.com/rikuto-mikado/fitness-tracker/config"
	"github.com/rikuto-mikado/fitness-tracker/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub) {
	_alert = alertDeps{db: db, rt: rt}
}

// EmitAlert persists an alert row and pushes it to the user's live dashboard
// clients. Safe to call anywhere; a no-op before InitAlertDeps.
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
}

// BroadcastEvent pushes a non-persisted dashboard event (e.g. a freshly logged
// workout) to the user's clients.
func BroadcastEvent(userID uint, kind string, payload any) {
	if _alert.rt == nil {
		return
	}
	_alert.rt.Broadcast(userID, map[string]any{
		"kind": kind,
		"data": payload,
	})
}

// ListAlerts returns the user's alert feed, newest first.
func ListAlerts(userID uint) ([]models.Alert, error) {
	var alerts []models.Alert
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&alerts).Error
	return alerts, err
}
