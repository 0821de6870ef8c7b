package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vaccinehub.app/configs/configsdatabase"
	"vaccinehub.app/configs/configslog"
	"vaccinehub.app/models"
	"vaccinehub.app/pkg/queryparams"
	"vaccinehub.app/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type VaccineServiceError string

func (e VaccineServiceError) Error() string { return string(e) }

const (
	ErrVaccineNotFound       VaccineServiceError = "Vaccine not found"
	ErrVaccineCodeRequired   VaccineServiceError = "Vaccine code is required"
	ErrVaccineVerifyFailed   VaccineServiceError = "Failed to verify vaccine"
	ErrVaccineInvalidInput   VaccineServiceError = "Invalid vaccine data"
	ErrVaccineCreationFailed VaccineServiceError = "Failed to create vaccine"
	ErrVaccineUpdateFailed   VaccineServiceError = "Failed to update vaccine"
	ErrVaccineDeletionFailed VaccineServiceError = "Failed to delete vaccine"
	ErrVaccineInUse          VaccineServiceError = "Vaccine is referenced by appointments and cannot be deleted"
)

// VaccineInput dashboard envanter formundan gelen veridir.
type VaccineInput struct {
	Code          string `form:"code"`
	Name          string `form:"name"`
	Manufacturer  string `form:"manufacturer"`
	Description   string `form:"description"`
	DosesRequired int    `form:"doses_required"`
	StockQuantity int    `form:"stock_quantity"`
	IsEnabled     bool   `form:"-"`
}

func ValidateVaccineInput(in VaccineInput) error {
	if strings.TrimSpace(in.Code) == "" {
		return ErrVaccineCodeRequired
	}
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrVaccineInvalidInput)
	}
	if in.DosesRequired < 1 {
		return fmt.Errorf("%w: doses required must be at least 1", ErrVaccineInvalidInput)
	}
	if in.StockQuantity < 0 {
		return fmt.Errorf("%w: stock quantity cannot be negative", ErrVaccineInvalidInput)
	}
	return nil
}

// IVaccineService aşı doğrulama ve envanter işlemleri için arayüz.
type IVaccineService interface {
	VerifyVaccine(ctx context.Context, code string) (*models.Vaccine, error)
	ListEnabledVaccines(ctx context.Context) ([]models.Vaccine, error)
	GetVaccineByID(ctx context.Context, id string) (*models.Vaccine, error)
	GetAllVaccinesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	CreateVaccine(ctx context.Context, in VaccineInput) (*models.Vaccine, error)
	UpdateVaccine(ctx context.Context, id string, in VaccineInput) error
	DeleteVaccine(ctx context.Context, id string) error
}

type VaccineService struct {
	db   *gorm.DB
	repo repositories.IVaccineRepository
}

func NewVaccineService() IVaccineService {
	return NewVaccineServiceWithDB(configsdatabase.GetDB())
}

func NewVaccineServiceWithDB(db *gorm.DB) *VaccineService {
	return &VaccineService{db: db, repo: repositories.NewVaccineRepositoryTx(db)}
}

// VerifyVaccine koda göre birebir eşleşen tek bir aşı kaydı arar. Kayıt yoksa ErrVaccineNotFound döner.
func (s *VaccineService) VerifyVaccine(ctx context.Context, code string) (*models.Vaccine, error) {
	if code == "" {
		return nil, ErrVaccineCodeRequired
	}
	vaccine, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrVaccineNotFound
		}
		configslog.Log.Error("Aşı doğrulanamadı", zap.String("code", code), zap.Error(err))
		return nil, ErrVaccineVerifyFailed
	}
	return vaccine, nil
}

func (s *VaccineService) ListEnabledVaccines(ctx context.Context) ([]models.Vaccine, error) {
	vaccines, err := s.repo.FindAllEnabled(ctx)
	if err != nil {
		configslog.Log.Error("Aktif aşılar listelenemedi", zap.Error(err))
		return nil, err
	}
	return vaccines, nil
}

func (s *VaccineService) GetVaccineByID(ctx context.Context, id string) (*models.Vaccine, error) {
	vaccine, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrVaccineNotFound
		}
		return nil, err
	}
	return vaccine, nil
}

func (s *VaccineService) GetAllVaccinesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	vaccines, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		configslog.Log.Error("Aşılar listelenirken hata", zap.Error(err))
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: vaccines,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page, PerPage: params.PerPage,
			TotalItems: totalCount, TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func (s *VaccineService) CreateVaccine(ctx context.Context, in VaccineInput) (*models.Vaccine, error) {
	if err := ValidateVaccineInput(in); err != nil {
		return nil, err
	}
	vaccine := models.Vaccine{
		Code:          strings.TrimSpace(in.Code),
		Name:          strings.TrimSpace(in.Name),
		Manufacturer:  in.Manufacturer,
		Description:   in.Description,
		DosesRequired: in.DosesRequired,
		StockQuantity: in.StockQuantity,
		IsEnabled:     in.IsEnabled,
	}
	if err := s.repo.Create(ctx, &vaccine); err != nil {
		configslog.Log.Error("Aşı oluşturulamadı", zap.String("code", vaccine.Code), zap.Error(err))
		return nil, ErrVaccineCreationFailed
	}
	configslog.SLog.Infof("Aşı oluşturuldu: %s (%s)", vaccine.Name, vaccine.Code)
	return &vaccine, nil
}

func (s *VaccineService) UpdateVaccine(ctx context.Context, id string, in VaccineInput) error {
	if err := ValidateVaccineInput(in); err != nil {
		return err
	}
	vaccine, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrVaccineNotFound
		}
		return err
	}

	vaccine.Code = strings.TrimSpace(in.Code)
	vaccine.Name = strings.TrimSpace(in.Name)
	vaccine.Manufacturer = in.Manufacturer
	vaccine.Description = in.Description
	vaccine.DosesRequired = in.DosesRequired
	vaccine.StockQuantity = in.StockQuantity
	vaccine.IsEnabled = in.IsEnabled

	if err := s.repo.Update(ctx, vaccine); err != nil {
		configslog.Log.Error("Aşı güncellenemedi", zap.String("id", id), zap.Error(err))
		return ErrVaccineUpdateFailed
	}
	configslog.SLog.Infof("Aşı güncellendi: %s", id)
	return nil
}

// DeleteVaccine aşıyı siler. Soft delete FK kısıtını tetiklemediği için randevularda
// kullanılan aşılar burada reddedilir.
func (s *VaccineService) DeleteVaccine(ctx context.Context, id string) error {
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inUse, err := repositories.NewAppointmentRepositoryTx(tx).CountByVaccineID(ctx, id)
		if err != nil {
			return err
		}
		if inUse > 0 {
			return ErrVaccineInUse
		}
		return repositories.NewVaccineRepositoryTx(tx).Delete(ctx, id)
	})
	if txErr != nil {
		switch {
		case errors.Is(txErr, ErrVaccineInUse):
			return ErrVaccineInUse
		case errors.Is(txErr, repositories.ErrNotFound):
			return ErrVaccineNotFound
		}
		if _, ok := repositories.IsForeignKeyViolation(txErr); ok {
			return ErrVaccineInUse
		}
		configslog.Log.Error("Aşı silinemedi", zap.String("id", id), zap.Error(txErr))
		return ErrVaccineDeletionFailed
	}
	configslog.SLog.Infof("Aşı silindi: %s", id)
	return nil
}

var _ IVaccineService = (*VaccineService)(nil)
