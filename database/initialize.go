package database

import (
	"errors"

	"vaccinehub.app/configs/configslog"
	"vaccinehub.app/database/migrations"
	"vaccinehub.app/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrNothingToDo = errors.New("migrate veya seed bayrağı belirtilmedi")

// Initialize migrasyonları ve seeder'ları tek bir transaction içinde çalıştırır;
// herhangi bir adım başarısız olursa tamamı geri alınır.
func Initialize(db *gorm.DB, migrate bool, seed bool) error {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return ErrNothingToDo
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	err := db.Transaction(func(tx *gorm.DB) error {
		if migrate {
			configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
			if err := RunMigrationsInOrder(tx); err != nil {
				configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Migrasyonlar tamamlandı.")
		} else {
			configslog.SLog.Info("Migrate bayrağı belirtilmedi, migrasyon adımı atlanıyor.")
		}

		if seed {
			configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
			if err := CheckAndRunSeeders(tx); err != nil {
				configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Seeder'lar tamamlandı.")
		} else {
			configslog.SLog.Info("Seed bayrağı belirtilmedi, seeder adımı atlanıyor.")
		}
		return nil
	})
	if err != nil {
		configslog.Log.Warn("Başlatma sırasında hata oluştuğu için işlem geri alındı.", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
	return nil
}

// RunMigrationsInOrder tabloları FK bağımlılık sırasına göre oluşturur.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")

	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"Staff", migrations.MigrateStaffTable},
		{"Vaccine", migrations.MigrateVaccinesTable},
		{"Patient", migrations.MigratePatientsTable},
		{"Appointment", migrations.MigrateAppointmentsTable},
	}

	for _, step := range steps {
		configslog.SLog.Infof(" -> %s migrasyonları çalıştırılıyor...", step.name)
		if err := step.run(db); err != nil {
			configslog.Log.Error("Migrasyon adımı başarısız oldu", zap.String("step", step.name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof(" -> %s migrasyonları tamamlandı.", step.name)
	}

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info("Sistem yöneticisi kontrol ediliyor/oluşturuluyor...")
	if err := seeders.SeedSystemAdmin(db); err != nil {
		configslog.Log.Error("Sistem yöneticisi seed işlemi başarısız", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Vaccine seeder çalıştırılıyor...")
	if err := seeders.SeedVaccines(db); err != nil {
		configslog.Log.Error("Vaccines tablosu seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Vaccine seeder tamamlandı.")

	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
