package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel tüm tablolarda ortak olan alanları içerir.
// ID uygulama tarafında üretilen UUID'dir.
type BaseModel struct {
	ID        string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// NewID yeni bir kayıt kimliği üretir.
func NewID() string {
	return uuid.NewString()
}

// BeforeCreate ID atanmamışsa yeni bir UUID atar.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	return nil
}
