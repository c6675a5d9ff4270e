package utils

import (
	"os"

	"github.com/sirupsen/logrus"

	"realty-admin-server/models"
)

var logg *logrus.Logger

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(os.Stdout)
}

func GetLogger() *logrus.Logger {
	return logg
}

// LogAction records a mutation in the audit trail: a structured log line
// plus a Log row, so the admin UI can list per-user activity.
func LogAction(userID, action, entity, entityID, detail string) {
	logg.WithFields(logrus.Fields{
		"user_id":   userID,
		"action":    action,
		"entity":    entity,
		"entity_id": entityID,
	}).Info(detail)

	if DB == nil {
		return
	}

	entry := models.Log{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Detail:   detail,
	}
	if err := DB.Create(&entry).Error; err != nil {
		logg.WithFields(logrus.Fields{
			"user_id": userID,
			"action":  action,
		}).Error("failed to persist audit log: ", err)
	}
}
