package models

// StaffRole personelin paneldeki görevini belirtir.
type StaffRole string

const (
	StaffRoleAdmin      StaffRole = "admin"
	StaffRoleVaccinator StaffRole = "vaccinator"
	StaffRoleStaff      StaffRole = "staff"
)

var StaffRoles = []StaffRole{StaffRoleAdmin, StaffRoleVaccinator, StaffRoleStaff}

func (r StaffRole) Valid() bool {
	for _, role := range StaffRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Staff aşı merkezi personelidir.
type Staff struct {
	BaseModel
	Name         string    `gorm:"type:varchar(150);not null" json:"name"`
	Email        string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         StaffRole `gorm:"type:varchar(20);not null;default:'staff'" json:"role"`
	IsActive     bool      `gorm:"not null;index" json:"isActive"`
}

// TableName tablo adını sabitler ("staffs" yerine).
func (Staff) TableName() string {
	return "staff"
}
