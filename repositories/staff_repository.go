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
)

// IStaffRepository personel işlemleri için arayüz.
type IStaffRepository interface {
	Create(ctx context.Context, staff *models.Staff) error
	FindByID(ctx context.Context, id string) (*models.Staff, error)
	FindByEmail(ctx context.Context, email string) (*models.Staff, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Staff, int64, error)
	Update(ctx context.Context, staff *models.Staff) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type StaffRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Staff]
}

func NewStaffRepository() IStaffRepository {
	return NewStaffRepositoryTx(configsdatabase.GetDB())
}

func NewStaffRepositoryTx(tx *gorm.DB) IStaffRepository {
	base := NewBaseRepository[models.Staff](tx)
	base.SetAllowedSortColumns([]string{"created_at", "name", "email", "role"})
	return &StaffRepository{db: tx, base: base}
}

func (r *StaffRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	return r.base.Create(ctx, staff)
}

func (r *StaffRepository) FindByID(ctx context.Context, id string) (*models.Staff, error) {
	return r.base.FindByID(ctx, id)
}

func (r *StaffRepository) FindByEmail(ctx context.Context, email string) (*models.Staff, error) {
	var staff models.Staff
	err := r.getDB(ctx).Where("email = ?", email).First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("StaffRepository.FindByEmail: DB error", zap.Error(err))
		return nil, err
	}
	return &staff, nil
}

func (r *StaffRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Staff, int64, error) {
	var staff []models.Staff
	var totalCount int64

	query := r.getDB(ctx).Model(&models.Staff{})
	if params.Name != "" {
		nameFilter, nameArgs := search.SQLFilter("name", params.Name)
		emailFilter, emailArgs := search.SQLFilter("email", params.Name)
		query = query.Where(r.db.Where(nameFilter, nameArgs...).Or(emailFilter, emailArgs...))
	}
	if params.Status != "" {
		query = query.Where("is_active = ?", params.Status == "true")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("StaffRepository.Count (Paginated): DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return staff, 0, nil
	}

	err := r.base.ApplySort(query, params, "").
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&staff).Error
	if err != nil {
		configslog.Log.Error("StaffRepository.Find (Paginated): DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return staff, totalCount, nil
}

func (r *StaffRepository) Update(ctx context.Context, staff *models.Staff) error {
	if staff == nil || staff.ID == "" {
		return errors.New("güncellenecek personel geçerli değil")
	}
	return r.base.Save(ctx, staff)
}

// Delete personeli kalıcı olarak siler; e-posta adresi yeniden kullanılabilir olur.
func (r *StaffRepository) Delete(ctx context.Context, id string) error {
	result := r.getDB(ctx).Unscoped().Where("id = ?", id).Delete(&models.Staff{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *StaffRepository) Count(ctx context.Context) (int64, error) {
	return r.base.Count(ctx)
}

var _ IStaffRepository = (*StaffRepository)(nil)
