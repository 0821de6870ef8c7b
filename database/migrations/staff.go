package migrations

import (
	"vaccinehub.app/configs/configslog"
	"vaccinehub.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateStaffTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating staff table...")
	err := db.AutoMigrate(&models.Staff{})
	if err != nil {
		configslog.Log.Error("Failed to migrate staff table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Staff table migrated successfully")
	return nil
}
