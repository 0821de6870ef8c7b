package migrations

import (
	"vaccinehub.app/configs/configslog"
	"vaccinehub.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateAppointmentsTable patients ve vaccines tablolarından sonra çalışmalıdır (FK).
func MigrateAppointmentsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating appointments table...")
	err := db.AutoMigrate(&models.Appointment{})
	if err != nil {
		configslog.Log.Error("Failed to migrate appointments table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Appointments table migrated successfully")
	return nil
}
