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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type StaffServiceError string

func (e StaffServiceError) Error() string { return string(e) }

const (
	ErrStaffNotFound         StaffServiceError = "Staff member not found"
	ErrStaffInvalidInput     StaffServiceError = "Invalid staff data"
	ErrStaffEmailExists      StaffServiceError = "A staff member with this email already exists"
	ErrStaffPasswordTooShort StaffServiceError = "Password must be at least 6 characters"
	ErrStaffPasswordHashing  StaffServiceError = "Failed to hash password"
	ErrStaffCreationFailed   StaffServiceError = "Failed to create staff member"
	ErrStaffUpdateFailed     StaffServiceError = "Failed to update staff member"
	ErrStaffDeletionFailed   StaffServiceError = "Failed to delete staff member"
)

const minStaffPasswordLength = 6

// StaffInput personel oluşturma formudur.
type StaffInput struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
	Role     string `form:"role"`
	IsActive bool   `form:"-"`
}

func ValidateStaffInput(in StaffInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrStaffInvalidInput)
	}
	if !emailPattern.MatchString(strings.TrimSpace(in.Email)) {
		return fmt.Errorf("%w: invalid email address", ErrStaffInvalidInput)
	}
	if len(in.Password) < minStaffPasswordLength {
		return ErrStaffPasswordTooShort
	}
	if in.Role != "" && !models.StaffRole(in.Role).Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrStaffInvalidInput, in.Role)
	}
	return nil
}

type IStaffService interface {
	GetStaffByID(ctx context.Context, id string) (*models.Staff, error)
	GetAllStaffPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	CreateStaff(ctx context.Context, in StaffInput) (*models.Staff, error)
	ToggleStaffActive(ctx context.Context, id string) (*models.Staff, error)
	DeleteStaff(ctx context.Context, id string) error
}

type StaffService struct {
	repo repositories.IStaffRepository
}

func NewStaffService() IStaffService {
	return NewStaffServiceWithDB(configsdatabase.GetDB())
}

func NewStaffServiceWithDB(db *gorm.DB) *StaffService {
	return &StaffService{repo: repositories.NewStaffRepositoryTx(db)}
}

func (s *StaffService) GetStaffByID(ctx context.Context, id string) (*models.Staff, error) {
	staff, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return staff, nil
}

func (s *StaffService) GetAllStaffPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	staff, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		configslog.Log.Error("Personel listelenirken hata", zap.Error(err))
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: staff,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page, PerPage: params.PerPage,
			TotalItems: totalCount, TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// CreateStaff şifreyi bcrypt ile hashleyerek yeni personel ekler. E-posta tekildir.
func (s *StaffService) CreateStaff(ctx context.Context, in StaffInput) (*models.Staff, error) {
	if err := ValidateStaffInput(in); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, ErrStaffEmailExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrStaffCreationFailed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Personel şifresi hashlenemedi", zap.Error(err))
		return nil, ErrStaffPasswordHashing
	}

	role := models.StaffRole(in.Role)
	if role == "" {
		role = models.StaffRoleStaff
	}
	staff := models.Staff{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     in.IsActive,
	}
	if err := s.repo.Create(ctx, &staff); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrStaffEmailExists
		}
		configslog.Log.Error("Personel oluşturulamadı", zap.String("email", email), zap.Error(err))
		return nil, ErrStaffCreationFailed
	}
	configslog.SLog.Infof("Personel oluşturuldu: %s (%s)", staff.Email, staff.Role)
	return &staff, nil
}

// ToggleStaffActive personelin aktiflik durumunu tersine çevirir.
func (s *StaffService) ToggleStaffActive(ctx context.Context, id string) (*models.Staff, error) {
	staff, err := s.GetStaffByID(ctx, id)
	if err != nil {
		return nil, err
	}
	staff.IsActive = !staff.IsActive
	if err := s.repo.Update(ctx, staff); err != nil {
		configslog.Log.Error("Personel durumu güncellenemedi", zap.String("id", id), zap.Error(err))
		return nil, ErrStaffUpdateFailed
	}
	return staff, nil
}

func (s *StaffService) DeleteStaff(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStaffNotFound
		}
		configslog.Log.Error("Personel silinemedi", zap.String("id", id), zap.Error(err))
		return ErrStaffDeletionFailed
	}
	configslog.SLog.Infof("Personel silindi: %s", id)
	return nil
}

var _ IStaffService = (*StaffService)(nil)
