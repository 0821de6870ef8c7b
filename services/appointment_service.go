package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"vaccinehub.app/configs/configsdatabase"
	"vaccinehub.app/configs/configslog"
	"vaccinehub.app/models"
	"vaccinehub.app/pkg/queryparams"
	"vaccinehub.app/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AppointmentServiceError özel servis hataları
type AppointmentServiceError string

func (e AppointmentServiceError) Error() string { return string(e) }

const (
	ErrAppointmentNotFound       AppointmentServiceError = "Appointment not found"
	ErrAppointmentCreationFailed AppointmentServiceError = "Failed to create appointment"
	ErrAppointmentUpdateFailed   AppointmentServiceError = "Failed to update appointment"
	ErrAppointmentDeletionFailed AppointmentServiceError = "Failed to delete appointment"
	ErrAppInvalidInput           AppointmentServiceError = "Invalid appointment data"
	ErrAppInvalidStatus          AppointmentServiceError = "Invalid appointment status"
)

const dobLayout = "2006-01-02"

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9\-+()\s]+$`)
)

// CreateAppointmentRequest randevu formunun düz (flat) halidir.
type CreateAppointmentRequest struct {
	Name            string `json:"name" form:"name"`
	DOB             string `json:"dob" form:"dob"`
	Gender          string `json:"gender" form:"gender"`
	FathersName     string `json:"fathersName" form:"fathersName"`
	MothersName     string `json:"mothersName" form:"mothersName"`
	Email           string `json:"email" form:"email"`
	Phone           string `json:"phone" form:"phone"`
	AddressLine1    string `json:"addressLine1" form:"addressLine1"`
	AddressLine2    string `json:"addressLine2" form:"addressLine2"`
	City            string `json:"city" form:"city"`
	State           string `json:"state" form:"state"`
	Zip             string `json:"zip" form:"zip"`
	Country         string `json:"country" form:"country"`
	VaccinationType string `json:"vaccinationType" form:"vaccinationType"`
	NationalID      string `json:"nationalId" form:"nationalId"`
}

// DashboardCounts dashboard ana sayfasındaki özet sayılardır.
type DashboardCounts struct {
	Appointments        int64
	PendingAppointments int64
	Vaccines            int64
	Staff               int64
}

// ValidateCreateAppointmentRequest formdaki girdi hatalarını döndürür. addressLine2 dışındaki
// tüm alanlar zorunludur.
func ValidateCreateAppointmentRequest(req CreateAppointmentRequest) error {
	required := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"dob", req.DOB},
		{"gender", req.Gender},
		{"fathersName", req.FathersName},
		{"mothersName", req.MothersName},
		{"email", req.Email},
		{"phone", req.Phone},
		{"addressLine1", req.AddressLine1},
		{"city", req.City},
		{"state", req.State},
		{"zip", req.Zip},
		{"country", req.Country},
		{"vaccinationType", req.VaccinationType},
		{"nationalId", req.NationalID},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrAppInvalidInput, r.field)
		}
	}
	if !emailPattern.MatchString(req.Email) {
		return fmt.Errorf("%w: invalid email address", ErrAppInvalidInput)
	}
	if !phonePattern.MatchString(req.Phone) {
		return fmt.Errorf("%w: invalid phone number", ErrAppInvalidInput)
	}
	if _, err := time.Parse(dobLayout, req.DOB); err != nil {
		return fmt.Errorf("%w: dob must be YYYY-MM-DD", ErrAppInvalidInput)
	}
	return nil
}

// classifyIdentifier 10 karakterlik numarayı NID, diğerlerini doğum belgesi numarası sayar.
func classifyIdentifier(id string) (nationalID, birthCertificateID *string) {
	if utf8.RuneCountInString(id) == 10 {
		return &id, nil
	}
	return nil, &id
}

// IAppointmentService randevu işlemleri için arayüz.
type IAppointmentService interface {
	CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*models.Appointment, error)
	GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error)
	GetAppointmentByRegNo(ctx context.Context, regNo string) (*models.Appointment, error)
	GetAllAppointmentsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus) error
	DeleteAppointment(ctx context.Context, id string) error
	GetDashboardCounts(ctx context.Context) (*DashboardCounts, error)
}

// AppointmentService IAppointmentService arayüzünü uygular.
type AppointmentService struct {
	db   *gorm.DB
	repo repositories.IAppointmentRepository
	now  func() time.Time
}

// NewAppointmentService paket genelindeki veritabanı bağlantısını kullanır.
func NewAppointmentService() IAppointmentService {
	return NewAppointmentServiceWithDB(configsdatabase.GetDB())
}

func NewAppointmentServiceWithDB(db *gorm.DB) *AppointmentService {
	return &AppointmentService{
		db:   db,
		repo: repositories.NewAppointmentRepositoryTx(db),
		now:  time.Now,
	}
}

// WithClock kayıt numarası üretiminde kullanılan saati değiştirir.
func (s *AppointmentService) WithClock(now func() time.Time) *AppointmentService {
	s.now = now
	return s
}

// newRegNo REG-<unix milisaniye> biçiminde kayıt numarası üretir.
func (s *AppointmentService) newRegNo() string {
	return fmt.Sprintf("REG-%d", s.now().UnixMilli())
}

// CreateAppointment hastayı ve randevuyu tek transaction içinde oluşturur.
// İkisinden biri başarısız olursa hiçbiri kalıcı olmaz.
func (s *AppointmentService) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*models.Appointment, error) {
	if err := ValidateCreateAppointmentRequest(req); err != nil {
		return nil, err
	}
	dob, _ := time.Parse(dobLayout, req.DOB)
	nationalID, birthCertificateID := classifyIdentifier(req.NationalID)

	patient := models.Patient{
		BaseModel:          models.BaseModel{ID: models.NewID()},
		Name:               req.Name,
		DOB:                dob,
		Gender:             req.Gender,
		FatherName:         req.FathersName,
		MotherName:         req.MothersName,
		Email:              req.Email,
		Phone:              req.Phone,
		AddressLine1:       req.AddressLine1,
		AddressLine2:       req.AddressLine2,
		City:               req.City,
		State:              req.State,
		Zip:                req.Zip,
		Country:            req.Country,
		NationalID:         nationalID,
		BirthCertificateID: birthCertificateID,
	}
	appointment := models.Appointment{
		BaseModel:    models.BaseModel{ID: models.NewID()},
		Status:       models.AppointmentStatusPending,
		RegNo:        s.newRegNo(),
		VaccineID:    req.VaccinationType,
		PatientID:    patient.ID,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
		Country:      req.Country,
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		patientRepoTx := repositories.NewPatientRepositoryTx(tx)
		appointmentRepoTx := repositories.NewAppointmentRepositoryTx(tx)

		if err := patientRepoTx.Create(ctx, &patient); err != nil {
			return fmt.Errorf("patient insert: %w", err)
		}
		if err := appointmentRepoTx.Create(ctx, &appointment); err != nil {
			return fmt.Errorf("appointment insert: %w", err)
		}
		return nil
	})
	if txErr != nil {
		fields := []zap.Field{zap.String("regNo", appointment.RegNo), zap.String("vaccineId", req.VaccinationType), zap.Error(txErr)}
		if constraint, ok := repositories.IsForeignKeyViolation(txErr); ok {
			fields = append(fields, zap.Bool("foreignKeyViolation", true), zap.String("constraint", constraint))
		}
		configslog.Log.Error("CreateAppointment transaction failed", fields...)
		return nil, ErrAppointmentCreationFailed
	}

	appointment.Patient = &patient
	configslog.SLog.Infof("Randevu oluşturuldu: %s (hasta %s)", appointment.RegNo, patient.ID)
	return &appointment, nil
}

func (s *AppointmentService) GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return appointment, nil
}

func (s *AppointmentService) GetAppointmentByRegNo(ctx context.Context, regNo string) (*models.Appointment, error) {
	appointment, err := s.repo.FindByRegNo(ctx, strings.TrimSpace(regNo))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return appointment, nil
}

// GetAllAppointmentsPaginated dashboard listesi için randevuları sayfalar.
func (s *AppointmentService) GetAllAppointmentsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	if params.Status != "" && !models.AppointmentStatus(params.Status).Valid() {
		params.Status = ""
	}

	appointments, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		configslog.Log.Error("Randevular listelenirken hata", zap.Error(err))
		return nil, err
	}

	return &queryparams.PaginatedResult{
		Data: appointments,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page, PerPage: params.PerPage,
			TotalItems: totalCount, TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func (s *AppointmentService) UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	if !status.Valid() {
		return ErrAppInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		configslog.Log.Error("Randevu durumu güncellenemedi", zap.String("id", id), zap.Error(err))
		return ErrAppointmentUpdateFailed
	}
	configslog.SLog.Infof("Randevu durumu güncellendi: %s -> %s", id, status)
	return nil
}

func (s *AppointmentService) DeleteAppointment(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		configslog.Log.Error("Randevu silinemedi", zap.String("id", id), zap.Error(err))
		return ErrAppointmentDeletionFailed
	}
	configslog.SLog.Infof("Randevu silindi: %s", id)
	return nil
}

// GetDashboardCounts dashboard ana sayfasındaki sayaçları toplar.
func (s *AppointmentService) GetDashboardCounts(ctx context.Context) (*DashboardCounts, error) {
	var counts DashboardCounts
	var err error

	if counts.Appointments, err = s.repo.Count(ctx); err != nil {
		return nil, err
	}
	if counts.PendingAppointments, err = s.repo.CountByStatus(ctx, models.AppointmentStatusPending); err != nil {
		return nil, err
	}
	if counts.Vaccines, err = repositories.NewVaccineRepositoryTx(s.db).Count(ctx); err != nil {
		return nil, err
	}
	if counts.Staff, err = repositories.NewStaffRepositoryTx(s.db).Count(ctx); err != nil {
		return nil, err
	}
	return &counts, nil
}

var _ IAppointmentService = (*AppointmentService)(nil)
