package models

// Vaccine aşı kataloğu (envanter) kaydıdır. Code doğrulama anahtarıdır;
// şema seviyesinde tekil değildir.
type Vaccine struct {
	BaseModel
	Code          string `gorm:"type:varchar(50);not null;index" json:"code"`
	Name          string `gorm:"type:varchar(150);not null" json:"name"`
	Manufacturer  string `gorm:"type:varchar(150)" json:"manufacturer"`
	Description   string `gorm:"type:text" json:"description"`
	DosesRequired int    `gorm:"type:integer;not null;default:1" json:"dosesRequired"`
	StockQuantity int    `gorm:"type:integer;not null;default:0" json:"stockQuantity"`
	IsEnabled     bool   `gorm:"not null;index" json:"isEnabled"`
}

// Başlangıç kataloğundaki aşı kodları
const (
	VaccineCodeCovid19   = "COVID-19"
	VaccineCodeInfluenza = "INFLUENZA"
	VaccineCodeMeasles   = "MEASLES"
	VaccineCodePolio     = "POLIO"
)
