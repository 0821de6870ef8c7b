package seeders

import (
	"errors"

	"vaccinehub.app/configs/configslog"
	"vaccinehub.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultVaccines başlangıç kataloğudur (randevu formundaki varsayılan aşı türleri).
var DefaultVaccines = []models.Vaccine{
	{Code: models.VaccineCodeCovid19, Name: "COVID-19", Manufacturer: "Pfizer-BioNTech", DosesRequired: 2, StockQuantity: 500, IsEnabled: true},
	{Code: models.VaccineCodeInfluenza, Name: "Influenza", Manufacturer: "Sanofi Pasteur", DosesRequired: 1, StockQuantity: 300, IsEnabled: true},
	{Code: models.VaccineCodeMeasles, Name: "Measles", Manufacturer: "Serum Institute of India", DosesRequired: 2, StockQuantity: 200, IsEnabled: true},
	{Code: models.VaccineCodePolio, Name: "Polio", Manufacturer: "Bharat Biotech", DosesRequired: 4, StockQuantity: 400, IsEnabled: true},
}

// SeedVaccines eksik katalog kayıtlarını ekler; var olanlara dokunmaz.
func SeedVaccines(db *gorm.DB) error {
	var createdCount int64
	errorOccurred := false

	configslog.SLog.Info("Aşı kataloğu seed işlemi başlıyor...")

	for _, vaccineToSeed := range DefaultVaccines {
		var existing models.Vaccine
		result := db.Where("code = ?", vaccineToSeed.Code).First(&existing)

		if result.Error == nil {
			configslog.SLog.Debugf("Aşı '%s' zaten mevcut, oluşturma atlanıyor.", vaccineToSeed.Code)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Aşı kontrol edilirken veritabanı hatası",
				zap.String("code", vaccineToSeed.Code),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		vaccine := vaccineToSeed
		if err := db.Create(&vaccine).Error; err != nil {
			configslog.Log.Error("Aşı oluşturulamadı",
				zap.String("code", vaccine.Code),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}

		configslog.SLog.Infof("Aşı '%s' oluşturuldu (ID: %s).", vaccine.Code, vaccine.ID)
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni aşı seed edildi.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("Tüm aşılar zaten mevcut, yeni ekleme yapılmadı.")
	}

	if errorOccurred {
		return errors.New("aşı kataloğu seed edilirken en az bir hata oluştu")
	}
	return nil
}
