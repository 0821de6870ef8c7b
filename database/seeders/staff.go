package seeders

import (
	"errors"
	"os"

	"vaccinehub.app/configs/configslog"
	"vaccinehub.app/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultAdminEmail = "admin@vaccinehub.local"

// SeedSystemAdmin SEED_ADMIN_PASSWORD tanımlıysa bir yönetici personel oluşturur.
// Aynı e-postayla kayıt varsa şifresini günceller.
func SeedSystemAdmin(db *gorm.DB) error {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		configslog.SLog.Info("SEED_ADMIN_PASSWORD tanımlı değil, yönetici seed adımı atlanıyor.")
		return nil
	}
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = defaultAdminEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Yönetici şifresi hashlenemedi", zap.Error(err))
		return err
	}

	var existing models.Staff
	result := db.Where("email = ?", email).First(&existing)
	switch {
	case result.Error == nil:
		existing.PasswordHash = string(hash)
		existing.Role = models.StaffRoleAdmin
		existing.IsActive = true
		if err := db.Save(&existing).Error; err != nil {
			configslog.Log.Error("Yönetici güncellenemedi", zap.String("email", email), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Yönetici '%s' güncellendi.", email)
	case errors.Is(result.Error, gorm.ErrRecordNotFound):
		admin := models.Staff{
			Name:         "System Admin",
			Email:        email,
			PasswordHash: string(hash),
			Role:         models.StaffRoleAdmin,
			IsActive:     true,
		}
		if err := db.Create(&admin).Error; err != nil {
			configslog.Log.Error("Yönetici oluşturulamadı", zap.String("email", email), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Yönetici '%s' oluşturuldu (ID: %s).", email, admin.ID)
	default:
		configslog.Log.Error("Yönetici kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}
	return nil
}
