package repositories

import (
	"context"
	"errors"

	"vaccinehub.app/configs/configsdatabase"
	"vaccinehub.app/configs/configslog"
	"vaccinehub.app/models"
	"vaccinehub.app/pkg/queryparams"
	"vaccinehub.app/pkg/search"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IAppointmentRepository randevu veritabanı işlemleri için arayüz.
type IAppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, id string) (*models.Appointment, error)
	FindByRegNo(ctx context.Context, regNo string) (*models.Appointment, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Appointment, int64, error)
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.AppointmentStatus) (int64, error)
	CountByVaccineID(ctx context.Context, vaccineID string) (int64, error)
}

// AppointmentRepository IAppointmentRepository arayüzünü uygular.
type AppointmentRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Appointment]
}

// NewAppointmentRepository paket genelindeki bağlantı ile repo oluşturur.
func NewAppointmentRepository() IAppointmentRepository {
	return NewAppointmentRepositoryTx(configsdatabase.GetDB())
}

// NewAppointmentRepositoryTx verilen bağlantı veya transaction ile repo oluşturur.
func NewAppointmentRepositoryTx(tx *gorm.DB) IAppointmentRepository {
	base := NewBaseRepository[models.Appointment](tx)
	base.SetAllowedSortColumns([]string{"created_at", "reg_no", "status"})
	return &AppointmentRepository{db: tx, base: base}
}

func (r *AppointmentRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create randevuyu ilişkili kayıtlara dokunmadan ekler; hasta ve aşı önceden var olmalıdır.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil || appointment.PatientID == "" || appointment.VaccineID == "" {
		return errors.New("hasta veya aşı bilgisi eksik randevu oluşturulamaz")
	}
	return r.getDB(ctx).Omit(clause.Associations).Create(appointment).Error
}

// FindByID randevuyu hasta ve aşı bilgisiyle birlikte getirir.
func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	var appointment models.Appointment
	err := r.getDB(ctx).Preload("Patient").Preload("Vaccine").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AppointmentRepository.FindByID: DB error", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &appointment, nil
}

// FindByRegNo kayıt numarasıyla randevuyu getirir.
func (r *AppointmentRepository) FindByRegNo(ctx context.Context, regNo string) (*models.Appointment, error) {
	if regNo == "" {
		return nil, ErrNotFound
	}
	var appointment models.Appointment
	err := r.getDB(ctx).Preload("Patient").Preload("Vaccine").Where("reg_no = ?", regNo).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AppointmentRepository.FindByRegNo: DB error", zap.String("reg_no", regNo), zap.Error(err))
		return nil, err
	}
	return &appointment, nil
}

// FindAllPaginated randevuları kayıt numarası / hasta adı araması ve durum filtresiyle sayfalar.
func (r *AppointmentRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Appointment, int64, error) {
	var appointments []models.Appointment
	var totalCount int64

	query := r.getDB(ctx).Model(&models.Appointment{})
	if params.Name != "" {
		regFilter, regArgs := search.SQLFilter("appointments.reg_no", params.Name)
		nameFilter, nameArgs := search.SQLFilter("patients.name", params.Name)
		query = query.Joins("JOIN patients ON patients.id = appointments.patient_id").
			Where(r.db.Where(regFilter, regArgs...).Or(nameFilter, nameArgs...))
	}
	if params.Status != "" {
		query = query.Where("appointments.status = ?", params.Status)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("AppointmentRepository.Count (Paginated): DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return appointments, 0, nil
	}

	query = r.base.ApplySort(query, params, "appointments")
	err := query.Preload("Patient").Preload("Vaccine").
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.Find (Paginated): DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return appointments, totalCount, nil
}

// UpdateStatus yalnızca status sütununu günceller.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	result := r.getDB(ctx).Model(&models.Appointment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete randevuyu soft delete ile siler.
func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	return r.base.Delete(ctx, id)
}

func (r *AppointmentRepository) Count(ctx context.Context) (int64, error) {
	return r.base.Count(ctx)
}

func (r *AppointmentRepository) CountByStatus(ctx context.Context, status models.AppointmentStatus) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Appointment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// CountByVaccineID silinmemiş randevulardan bu aşıyı kullananları sayar.
func (r *AppointmentRepository) CountByVaccineID(ctx context.Context, vaccineID string) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Appointment{}).Where("vaccine_id = ?", vaccineID).Count(&count).Error
	return count, err
}

var _ IAppointmentRepository = (*AppointmentRepository)(nil)
