package migrations

import (
	"errors"

	"vaccinehub.app/configs/configslog"
	"vaccinehub.app/models"

	"gorm.io/gorm"
)

func MigrateVaccinesTable(db *gorm.DB) error {
	configslog.SLog.Info("Vaccine tablosu migrate ediliyor...")

	if err := db.AutoMigrate(&models.Vaccine{}); err != nil {
		errMsg := "Vaccine tablosu migrate edilemedi: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("Vaccine tablosu migrate işlemi tamamlandı.")
	return nil
}
