package models

// AppointmentStatus randevunun olası durumlarını tanımlar.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"   // Yeni oluşturuldu
	AppointmentStatusConfirmed AppointmentStatus = "confirmed" // Personel onayladı
	AppointmentStatusCompleted AppointmentStatus = "completed" // Aşı yapıldı
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentStatuses geçerli durumların sıralı listesidir (form seçenekleri için).
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}

// Valid durumun tanımlı değerlerden biri olup olmadığını kontrol eder.
func (s AppointmentStatus) Valid() bool {
	for _, st := range AppointmentStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Appointment bir hastayı bir aşı türüne bağlar. Adres alanları teslimat adresidir,
// hastanın ev adresinden bağımsızdır.
type Appointment struct {
	BaseModel
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	RegNo     string            `gorm:"type:varchar(40);not null;index" json:"regNo"`
	VaccineID string            `gorm:"type:varchar(36);not null;index" json:"vaccineId"`
	PatientID string            `gorm:"type:varchar(36);not null;index" json:"patientId"`

	AddressLine1 string `gorm:"type:text;not null" json:"addressLine1"`
	AddressLine2 string `gorm:"type:text" json:"addressLine2"`
	City         string `gorm:"type:varchar(100);not null" json:"city"`
	State        string `gorm:"type:varchar(100);not null" json:"state"`
	Zip          string `gorm:"type:varchar(20);not null" json:"zip"`
	Country      string `gorm:"type:varchar(100);not null;default:'Bangladesh'" json:"country"`

	// GORM İlişkileri
	Patient *Patient `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"patient,omitempty"`
	Vaccine *Vaccine `gorm:"foreignKey:VaccineID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"vaccine,omitempty"`
}
