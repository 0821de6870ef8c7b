package models

import "time"

// Patient randevu formundan oluşturulan kişi kaydıdır.
// NationalID ve BirthCertificateID alanlarından yalnızca biri doludur.
type Patient struct {
	BaseModel
	Name       string    `gorm:"type:varchar(200);not null" json:"name"`
	DOB        time.Time `gorm:"not null" json:"dob"`
	Gender     string    `gorm:"type:varchar(20);not null" json:"gender"`
	FatherName string    `gorm:"type:varchar(200);not null" json:"fatherName"`
	MotherName string    `gorm:"type:varchar(200);not null" json:"motherName"`
	Email      string    `gorm:"type:varchar(150);not null;index" json:"email"`
	Phone      string    `gorm:"type:varchar(30);not null" json:"phone"`

	AddressLine1 string `gorm:"type:text;not null" json:"addressLine1"`
	AddressLine2 string `gorm:"type:text" json:"addressLine2"`
	City         string `gorm:"type:varchar(100);not null" json:"city"`
	State        string `gorm:"type:varchar(100);not null" json:"state"`
	Zip          string `gorm:"type:varchar(20);not null" json:"zip"`
	Country      string `gorm:"type:varchar(100);not null" json:"country"`

	NationalID         *string `gorm:"type:text;index" json:"nationalId"`
	BirthCertificateID *string `gorm:"type:text;index" json:"birthCertificateId"`
}

// Identifier dolu olan kimlik numarasını döndürür.
func (p Patient) Identifier() string {
	if p.NationalID != nil {
		return *p.NationalID
	}
	if p.BirthCertificateID != nil {
		return *p.BirthCertificateID
	}
	return ""
}
